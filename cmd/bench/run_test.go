package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fulldump/biff"
)

func TestRun(t *testing.T) {

	biff.Alternative("Run", func(a *biff.A) {

		a.Alternative("Local", func(a *biff.A) {
			rows := Run(CountLocal, []int{3, 5}, []string{"stack", "symmetric", "recursive"}, time.Minute, 4)

			biff.AssertEqual(len(rows), 6)
			biff.AssertEqual(rows[0].Count, "36")
			biff.AssertEqual(rows[0].Status, StatusOK)
			biff.AssertEqual(rows[4].Count, "284")
			biff.AssertEqual(rows[5].Status, StatusSkipped)
		})

		a.Alternative("Mismatch", func(a *biff.A) {
			wrong := func(ctx context.Context, n int, method string) (string, bool, error) {
				return "1", false, nil
			}
			rows := Run(wrong, []int{2}, []string{"stack"}, time.Minute, 18)
			biff.AssertEqual(rows[0].Status, StatusMismatch)
			biff.AssertEqual(rows[0].Detail, "published 12")
		})

		a.Alternative("Cached results are not cross-checked", func(a *biff.A) {
			computed := map[int]bool{}
			server := func(ctx context.Context, n int, method string) (string, bool, error) {
				cached := computed[n]
				computed[n] = true
				return "100", cached, nil
			}
			rows := Run(server, []int{4}, []string{"stack", "symmetric"}, time.Minute, 18)

			biff.AssertEqual(rows[0].Status, StatusOK)
			biff.AssertFalse(rows[0].Cached)
			biff.AssertEqual(rows[0].Detail, "")
			biff.AssertEqual(rows[1].Status, StatusOK)
			biff.AssertTrue(rows[1].Cached)
			biff.AssertEqual(rows[1].Detail, "cached, not cross-checked")
		})

		a.Alternative("Cached results still checked against the table", func(a *biff.A) {
			wrong := func(ctx context.Context, n int, method string) (string, bool, error) {
				return "7", true, nil
			}
			rows := Run(wrong, []int{3}, []string{"stack"}, time.Minute, 18)
			biff.AssertEqual(rows[0].Status, StatusMismatch)
		})

		a.Alternative("Timeout skips bigger cases", func(a *biff.A) {
			slow := func(ctx context.Context, n int, method string) (string, bool, error) {
				<-ctx.Done()
				return "", false, ctx.Err()
			}
			rows := Run(slow, []int{10, 12}, []string{"stack"}, time.Millisecond, 18)
			biff.AssertEqual(rows[0].Status, StatusTimeout)
			biff.AssertEqual(rows[1].Status, StatusSkipped)
		})

		a.Alternative("Table", func(a *biff.A) {
			rows := Run(CountLocal, []int{4}, []string{"stack"}, time.Minute, 18)
			out := &bytes.Buffer{}
			PrintTable(out, rows)
			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			biff.AssertEqual(len(lines), 2)
			biff.AssertTrue(strings.HasPrefix(lines[0], "N "))
			biff.AssertTrue(strings.Contains(lines[1], "100"))
		})
	})
}

func TestParseCases(t *testing.T) {

	cases, err := parseCases("3, 10,,12")
	biff.AssertNil(err)
	biff.AssertEqual(cases, []int{3, 10, 12})

	_, err = parseCases("3,-1")
	biff.AssertNotNil(err)
}
