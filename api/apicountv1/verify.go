package apicountv1

import (
	"context"
	"net/http"
)

type VerifyResponse struct {
	N        int    `json:"n"`
	Count    string `json:"count"`
	Expected string `json:"expected"`
	Match    bool   `json:"match"`
	Method   string `json:"method"`
}

func verify(ctx context.Context, r *http.Request) (*VerifyResponse, error) {

	n, err := getN(ctx)
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)
	v, err := s.Verify(ctx, n, r.URL.Query().Get("method"))
	if err != nil {
		return nil, err
	}

	return &VerifyResponse{
		N:        v.Result.N,
		Count:    v.Result.Count.String(),
		Expected: v.Expected.String(),
		Match:    v.Match,
		Method:   v.Result.Method,
	}, nil
}
