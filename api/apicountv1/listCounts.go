package apicountv1

import (
	"context"
	"net/http"
)

// listCounts returns the cached results, optionally bounded by ?from=&to=
func listCounts(ctx context.Context, r *http.Request) ([]*CountResponse, error) {

	from, err := getQueryInt(r, "from", 0)
	if err != nil {
		return nil, err
	}
	to, err := getQueryInt(r, "to", -1)
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)

	result := []*CountResponse{}
	for _, item := range s.ListResults(from, to) {
		response := newCountResponse(item)
		response.Cached = true
		result = append(result, response)
	}

	return result, nil
}
