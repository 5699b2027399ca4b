package apicountv1

import (
	"context"
	"net/http"
)

func createCount(ctx context.Context, r *http.Request) (*CountResponse, error) {

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
	result, err := s.Count(ctx, *input.N, input.Method)
	if err != nil {
		return nil, err
	}

	return newCountResponse(result), nil
}
