package saw

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/fulldump/biff"
)

// square lattice SAW counts, n = 0..12
var known = []int64{1, 4, 12, 36, 100, 284, 780, 2172, 5916, 16268, 44100, 120292, 324932}

func TestCount_KnownValues(t *testing.T) {

	for _, name := range MethodNames() {
		count, _ := GetMethod(name)
		for n, expected := range known {
			got, err := count(n)
			if err != nil {
				t.Fatalf("%s(%d): %v", name, n, err)
			}
			if got.Cmp(big.NewInt(expected)) != 0 {
				t.Fatalf("%s(%d) = %s, expected %d", name, n, got, expected)
			}
		}
	}
}

func TestCount_Negative(t *testing.T) {

	for _, name := range MethodNames() {
		count, _ := GetMethod(name)
		got, err := count(-1)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%s(-1): expected ErrInvalidArgument, got %v", name, err)
		}
		if got != nil {
			t.Fatalf("%s(-1): expected no count, got %s", name, got)
		}
	}

	called := false
	err := Enumerate(-3, func(walk []Point) bool {
		called = true
		return true
	})
	biff.AssertTrue(errors.Is(err, ErrInvalidArgument))
	biff.AssertFalse(called)
}

func TestCount_StrictlyIncreasing(t *testing.T) {

	previous, _ := Count(0)
	for n := 1; n <= 11; n++ {
		current, err := Count(n)
		biff.AssertNil(err)
		if current.Cmp(previous) <= 0 {
			t.Fatalf("Count(%d) = %s is not greater than Count(%d) = %s", n, current, n-1, previous)
		}
		previous = current
	}
}

func TestCount_Deterministic(t *testing.T) {

	first, err := Count(9)
	biff.AssertNil(err)

	for i := 0; i < 3; i++ {
		again, err := Count(9)
		biff.AssertNil(err)
		biff.AssertEqual(again.String(), first.String())
	}
}

func TestCount_ResultIsOwnedByCaller(t *testing.T) {

	a, _ := Count(3)
	a.Add(a, big.NewInt(1000))

	b, _ := Count(3)
	biff.AssertEqual(b.String(), "36")
}

func TestCountFrom_SparseMatchesDense(t *testing.T) {

	for n := 0; n <= 9; n++ {
		dense := newDenseGrid(n)
		denseAcc := newAccumulator()
		countFrom[int](dense, n, allDirections, denseAcc)

		sparse := newSparseSet(n)
		sparseAcc := newAccumulator()
		countFrom[Point](sparse, n, allDirections, sparseAcc)

		biff.AssertEqual(sparseAcc.Total().String(), denseAcc.Total().String())

		// visited sets are fully restored by backtracking
		biff.AssertEqual(dense.size(), 0)
		biff.AssertEqual(sparse.size(), 0)
	}
}

func TestDenseGrid_Coordinates(t *testing.T) {

	g := newDenseGrid(3)
	o := g.origin()
	biff.AssertEqual(g.point(o), Origin)

	for _, d := range Directions {
		biff.AssertEqual(g.point(g.next(o, d)), Origin.Add(d))
	}

	corner := o
	for i := 0; i < 3; i++ {
		corner = g.next(g.next(corner, West), South)
	}
	biff.AssertEqual(corner, 0)
	biff.AssertEqual(g.point(corner), Point{X: -3, Y: -3})
}

func TestAccumulator_CarriesPastUint64(t *testing.T) {

	a := newAccumulator()
	a.Add(math.MaxUint64)
	a.Add(1)
	a.Add(math.MaxUint64)

	expected := new(big.Int).Lsh(big.NewInt(1), 65)
	expected.Sub(expected, big.NewInt(1))

	biff.AssertEqual(a.Total().String(), expected.String())
}

func TestCount_Moderate(t *testing.T) {

	stack, err := Count(16)
	biff.AssertNil(err)
	biff.AssertEqual(stack.String(), "17245332")

	symmetric, err := CountSymmetric(16)
	biff.AssertNil(err)
	biff.AssertEqual(symmetric.String(), stack.String())
}

func TestCount_ExceedsUint32(t *testing.T) {

	if testing.Short() {
		t.Skip("long running count")
	}

	got, err := CountSymmetric(22)
	biff.AssertNil(err)
	biff.AssertEqual(got.String(), "6444560484")
	biff.AssertTrue(got.Cmp(new(big.Int).SetUint64(math.MaxUint32)) > 0)
}

// corridor is a board that only lets a walk go east for a fixed number of
// cells, so a search of any requested length ends quickly.
type corridor struct {
	length int
	marked map[int]bool
}

func (c *corridor) origin() int { return 0 }

func (c *corridor) next(cell int, d Direction) int {
	if d != East {
		return -1
	}
	return cell + 1
}

func (c *corridor) visited(cell int) bool {
	return cell < 0 || cell > c.length || c.marked[cell]
}

func (c *corridor) mark(cell int)   { c.marked[cell] = true }
func (c *corridor) unmark(cell int) { delete(c.marked, cell) }

func TestCountFrom_StackGrowsOnDemand(t *testing.T) {

	// deeper than the reserved scratch, far shorter than the walk length
	b := &corridor{length: 3 * scratchHint, marked: map[int]bool{}}
	acc := newAccumulator()

	countFrom[int](b, math.MaxInt, allDirections, acc)

	biff.AssertEqual(acc.Total().String(), "0")
	biff.AssertEqual(len(b.marked), 0)

	// exactly as long as the corridor
	countFrom[int](b, 3*scratchHint, allDirections, acc)
	biff.AssertEqual(acc.Total().String(), "1")
}

func TestScratchCap(t *testing.T) {

	biff.AssertEqual(scratchCap(0), 1)
	biff.AssertEqual(scratchCap(10), 11)
	biff.AssertEqual(scratchCap(math.MaxInt), scratchHint+1)

	s := newSparseSet(math.MaxInt)
	biff.AssertEqual(s.size(), 0)
}
