package apicountv1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SierraSoftworks/connor"
	json2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/funmatu/sawsolver/solver"
	"github.com/funmatu/sawsolver/utils"
)

type findRequest struct {
	Filter map[string]any `json:"filter"`
	Skip   int64          `json:"skip"`
	Limit  int64          `json:"limit"`
}

// find streams the jobs matching a connor filter as one JSON document per
// line, oldest first.
func find(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	input := &findRequest{
		Filter: map[string]any{},
		Skip:   0,
		Limit:  10,
	}
	if r.ContentLength != 0 {
		err := decodeBody(r, input)
		if err != nil {
			return err
		}
	}

	s := GetServicer(ctx)

	w.Header().Set("Content-Type", "application/x-ndjson")
	// status goes out before the first line, even when nothing matches
	w.WriteHeader(http.StatusOK)
	encoder := jsontext.NewEncoder(w)

	return traverseJobs(s.ListJobs(), input, func(job *solver.Job) error {
		return json2.MarshalEncode(encoder, job)
	})
}

func traverseJobs(jobs []*solver.Job, params *findRequest, f func(job *solver.Job) error) error {

	hasFilter := len(params.Filter) > 0

	skip := params.Skip
	limit := params.Limit
	for _, job := range jobs {

		if limit == 0 {
			break
		}

		if hasFilter {
			jobData := map[string]any{}
			err := utils.Remarshal(job, &jobData)
			if err != nil {
				return fmt.Errorf("remarshal job: %w", err)
			}

			match, err := connor.Match(params.Filter, jobData)
			if err != nil {
				return fmt.Errorf("match: %w", err)
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		limit--
		err := f(job)
		if err != nil {
			return err
		}
	}

	return nil
}
