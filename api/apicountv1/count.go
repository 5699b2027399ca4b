package apicountv1

import (
	"github.com/funmatu/sawsolver/solver"
)

type CountResponse struct {
	N       int    `json:"n"`
	Count   string `json:"count"`
	Digits  int    `json:"digits"`
	Method  string `json:"method"`
	Elapsed string `json:"elapsed"`
	Cached  bool   `json:"cached"`
}

func newCountResponse(r *solver.Result) *CountResponse {
	count := r.Count.String()
	return &CountResponse{
		N:       r.N,
		Count:   count,
		Digits:  len(count),
		Method:  r.Method,
		Elapsed: r.Elapsed.String(),
		Cached:  r.Cached,
	}
}
