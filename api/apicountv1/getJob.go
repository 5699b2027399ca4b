package apicountv1

import (
	"context"

	"github.com/fulldump/box"

	"github.com/funmatu/sawsolver/solver"
)

func getJob(ctx context.Context) (*solver.Job, error) {

	s := GetServicer(ctx)
	jobId := box.GetUrlParameter(ctx, "jobId")

	return s.GetJob(jobId)
}
