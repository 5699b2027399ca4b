package apicountv1

import (
	"context"

	"github.com/funmatu/sawsolver/solver"
)

func listJobs(ctx context.Context) []*solver.Job {
	return GetServicer(ctx).ListJobs()
}
