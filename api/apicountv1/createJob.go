package apicountv1

import (
	"context"
	"net/http"

	"github.com/funmatu/sawsolver/solver"
)

func createJob(ctx context.Context, w http.ResponseWriter, r *http.Request) (*solver.Job, error) {

	input := &countRequest{}
	err := decodeBody(r, input)
	if err != nil {
		return nil, err
	}
	err = input.validate()
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)
	job, err := s.Submit(*input.N, input.Method)
	if err != nil {
		return nil, err
	}

	w.Header().Set("Location", "/v1/jobs/"+job.Id)
	w.WriteHeader(http.StatusAccepted)
	return job, nil
}
