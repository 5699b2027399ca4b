package apicountv1

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/fulldump/box"
	json2 "github.com/go-json-experiment/json"

	"github.com/funmatu/sawsolver/saw"
)

// decodeBody reads a strict JSON body. Unknown members, fractional numbers
// and values that overflow int are rejected instead of coerced.
func decodeBody(r *http.Request, v any) error {

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	err = json2.Unmarshal(body, v, json2.RejectUnknownMembers(true))
	if err != nil {
		return fmt.Errorf("%w: %s", saw.ErrInvalidArgument, err.Error())
	}

	return nil
}

func getN(ctx context.Context) (int, error) {

	raw := box.GetUrlParameter(ctx, "n")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: walk length must be an integer, got '%s'", saw.ErrInvalidArgument, raw)
	}

	return n, nil
}

func getQueryInt(r *http.Request, key string, defaultValue int) (int, error) {

	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s' must be an integer, got '%s'", saw.ErrInvalidArgument, key, raw)
	}

	return v, nil
}

type countRequest struct {
	N      *int   `json:"n"`
	Method string `json:"method"`
}

func (c *countRequest) validate() error {
	if c.N == nil {
		return fmt.Errorf("%w: missing walk length 'n'", saw.ErrInvalidArgument)
	}
	return nil
}
