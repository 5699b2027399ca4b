package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fulldump/biff"

	"github.com/funmatu/sawsolver/saw"
	"github.com/funmatu/sawsolver/solver"
)

func TestService_Verify(t *testing.T) {

	biff.Alternative("Verify", func(a *biff.A) {

		s := solver.NewSolver(&solver.Config{MaxN: 40})
		biff.AssertNil(s.Load())
		defer s.Stop()

		service := NewService(s)
		ctx := context.Background()

		a.Alternative("Match", func(a *biff.A) {
			v, err := service.Verify(ctx, 8, "symmetric")
			biff.AssertNil(err)
			biff.AssertTrue(v.Match)
			biff.AssertEqual(v.Expected.String(), "5916")
			biff.AssertEqual(v.Result.Count.String(), "5916")
			biff.AssertEqual(v.Result.Method, "symmetric")
		})

		a.Alternative("No reference", func(a *biff.A) {
			_, err := service.Verify(ctx, 31, "")
			biff.AssertTrue(errors.Is(err, ErrorNoReference))

			// nothing was computed
			biff.AssertEqual(len(service.ListResults(1, -1)), 0)
		})

		a.Alternative("Negative", func(a *biff.A) {
			_, err := service.Verify(ctx, -1, "")
			biff.AssertTrue(errors.Is(err, saw.ErrInvalidArgument))
		})

		a.Alternative("Methods", func(a *biff.A) {
			biff.AssertEqual(service.Methods(), []string{"recursive", "stack", "symmetric"})
		})

		a.Alternative("Results", func(a *biff.A) {
			service.Count(ctx, 2, "")
			service.Count(ctx, 1, "")

			results := service.ListResults(0, -1)
			biff.AssertEqual(len(results), 3)
			biff.AssertEqual(results[1].Count.String(), "4")
			biff.AssertEqual(results[2].Count.String(), "12")
		})
	})
}
