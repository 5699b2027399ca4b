package sequence

import (
	"strings"
	"testing"

	"github.com/fulldump/biff"

	"github.com/funmatu/sawsolver/saw"
)

func TestKnown(t *testing.T) {

	table := Known()
	biff.AssertEqual(table.Name, "square-lattice-saw")
	biff.AssertEqual(table.Max(), 30)

	count, ok := table.Lookup(30)
	biff.AssertTrue(ok)
	biff.AssertEqual(count.String(), "16741957935348")

	_, ok = table.Lookup(31)
	biff.AssertFalse(ok)
	_, ok = table.Lookup(-1)
	biff.AssertFalse(ok)
}

func TestKnown_MatchesKernel(t *testing.T) {

	table := Known()
	for n := 0; n <= 13; n++ {
		expected, _ := table.Lookup(n)
		got, err := saw.Count(n)
		if err != nil {
			t.Fatalf("Count(%d): %v", n, err)
		}
		if got.Cmp(expected) != 0 {
			t.Fatalf("Count(%d) = %s, table says %s", n, got, expected)
		}
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {

	a, _ := Known().Lookup(4)
	a.SetInt64(0)

	b, _ := Known().Lookup(4)
	biff.AssertEqual(b.String(), "100")
}

func TestLoad(t *testing.T) {

	biff.Alternative("Load", func(a *biff.A) {

		a.Alternative("Out of order", func(a *biff.A) {
			table, err := Load(strings.NewReader(`
name: test
counts:
  - {n: 1, count: "4"}
  - {n: 0, count: "1"}
`))
			biff.AssertNil(err)
			biff.AssertEqual(table.Max(), 1)
			count, _ := table.Lookup(1)
			biff.AssertEqual(count.String(), "4")
		})

		a.Alternative("Gap", func(a *biff.A) {
			_, err := Load(strings.NewReader(`
counts:
  - {n: 0, count: "1"}
  - {n: 2, count: "12"}
`))
			biff.AssertNotNil(err)
		})

		a.Alternative("Duplicated", func(a *biff.A) {
			_, err := Load(strings.NewReader(`
counts:
  - {n: 0, count: "1"}
  - {n: 0, count: "1"}
`))
			biff.AssertNotNil(err)
		})

		a.Alternative("Malformed count", func(a *biff.A) {
			_, err := Load(strings.NewReader(`
counts:
  - {n: 0, count: "one"}
`))
			biff.AssertNotNil(err)
		})

		a.Alternative("Unknown field", func(a *biff.A) {
			_, err := Load(strings.NewReader(`
counts:
  - {n: 0, count: "1", extra: true}
`))
			biff.AssertNotNil(err)
		})
	})
}
