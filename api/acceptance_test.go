package api

import (
	"net/http"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/funmatu/sawsolver/service"
	"github.com/funmatu/sawsolver/solver"
)

func newTestSolver(t *testing.T) *solver.Solver {
	t.Helper()

	s := solver.NewSolver(&solver.Config{
		MaxN:    20,
		Workers: 2,
	})
	biff.AssertNil(s.Load())
	biff.AssertEqual(s.GetStatus(), solver.StatusOperating)
	t.Cleanup(func() {
		s.Stop()
	})

	return s
}

func TestAcceptance(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		s := newTestSolver(t)

		b := Build(service.NewService(s), "test", "", "")
		b.WithInterceptors(
			InterceptorUnavailable(s),
			RecoverFromPanic,
			PrettyErrorInterceptor,
		)

		api := apitest.NewWithHandler(b)

		service.Acceptance(a, func(method, path string) *apitest.Request {
			return api.Request(method, "/v1"+path)
		})

		a.Alternative("Release", func(a *biff.A) {
			resp := api.Request("GET", "/release").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), "test")
		})

		a.Alternative("OpenAPI", func(a *biff.A) {
			resp := api.Request("GET", "/openapi.json").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			spec := resp.BodyJsonMap()
			biff.AssertEqual(spec["info"].(map[string]interface{})["title"], "SAW Solver")
			biff.AssertNotNil(spec["paths"])
		})

		a.Alternative("Unavailable after stop", func(a *biff.A) {
			s.Stop()
			resp := api.Request("GET", "/v1/counts/3").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusServiceUnavailable)
			biff.AssertEqualJson(resp.BodyJson(), map[string]any{
				"error": map[string]any{
					"message":     "solver unavailable: closing",
					"description": "temporary unavailable",
				},
			})
		})
	})
}

func TestCompression(t *testing.T) {

	s := newTestSolver(t)

	b := Build(service.NewService(s), "test", "", "")
	b.WithInterceptors(
		Compression,
		PrettyErrorInterceptor,
	)

	api := apitest.NewWithHandler(b)

	// the default transport asks for gzip and decompresses transparently
	resp := api.Request("GET", "/v1/counts/3").Do()

	biff.AssertEqual(resp.StatusCode, http.StatusOK)
	biff.AssertEqual(resp.Header.Get("Vary"), "Accept-Encoding")
	biff.AssertTrue(resp.Uncompressed)
	biff.AssertEqual(resp.BodyJsonMap()["count"], "36")
}
