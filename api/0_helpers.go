package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/funmatu/sawsolver/saw"
	"github.com/funmatu/sawsolver/service"
	"github.com/funmatu/sawsolver/solver"
)

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

func InterceptorUnavailable(s *solver.Solver) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := s.GetStatus()
			if status == solver.StatusOpening {
				box.SetError(ctx, fmt.Errorf("%w: opening", solver.ErrUnavailable))
				return
			}
			if status == solver.StatusClosing {
				box.SetError(ctx, fmt.Errorf("%w: closing", solver.ErrUnavailable))
				return
			}
			next(ctx)
		}
	}
}

// errorStatus maps domain errors to HTTP, first match wins.
var errorStatus = []struct {
	err         error
	status      int
	description string
}{
	{ErrUnauthorized, http.StatusUnauthorized, "user is not authenticated"},
	{saw.ErrInvalidArgument, http.StatusBadRequest, "walk length must be a non-negative integer"},
	{saw.ErrUnknownMethod, http.StatusBadRequest, "see GET /v1/methods"},
	{solver.ErrTooLarge, http.StatusUnprocessableEntity, "walk length is above the configured limit"},
	{solver.ErrJobNotFound, http.StatusNotFound, "job does not exist"},
	{service.ErrorNoReference, http.StatusNotFound, "there is no published value to compare with"},
	{solver.ErrTimeout, http.StatusGatewayTimeout, "the count is still running, retry later or submit a job"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "request deadline exceeded"},
	{solver.ErrUnavailable, http.StatusServiceUnavailable, "temporary unavailable"},
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		if err == box.ErrResourceNotFound {
			w.WriteHeader(http.StatusNotFound)
			writePrettyError(w, err, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String()))
			return
		}

		if err == box.ErrMethodNotAllowed {
			w.WriteHeader(http.StatusMethodNotAllowed)
			writePrettyError(w, err, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method))
			return
		}

		if _, ok := err.(*json.SyntaxError); ok {
			w.WriteHeader(http.StatusBadRequest)
			writePrettyError(w, err, "Malformed JSON")
			return
		}

		for _, e := range errorStatus {
			if errors.Is(err, e.err) {
				w.WriteHeader(e.status)
				writePrettyError(w, err, e.description)
				return
			}
		}

		w.WriteHeader(http.StatusInternalServerError)
		writePrettyError(w, err, "Unexpected error")
	}
}

func writePrettyError(w io.Writer, err error, description string) {
	PrettyError{
		Message:     err.Error(),
		Description: description,
	}.MarshalTo(w)
}
