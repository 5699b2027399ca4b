package apicountv1

import (
	"context"
	"net/http"
)

func getCount(ctx context.Context, r *http.Request) (*CountResponse, error) {

	n, err := getN(ctx)
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)
	result, err := s.Count(ctx, n, r.URL.Query().Get("method"))
	if err != nil {
		return nil, err
	}

	return newCountResponse(result), nil
}
