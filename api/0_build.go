package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	"github.com/fulldump/box/boxopenapi"

	"github.com/funmatu/sawsolver/api/apicountv1"
	"github.com/funmatu/sawsolver/service"
)

func Build(s service.Servicer, version string, apiKey, apiSecret string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		box.SetResponseHeader("Content-Type", "application/json"),
	)
	if apiKey != "" || apiSecret != "" {
		v1.WithInterceptors(Authenticate(apiKey, apiSecret))
	}
	v1.WithInterceptors(injectServicer(s))

	apicountv1.BuildV1Counts(v1)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}).WithName("release"))

	spec := boxopenapi.Spec(b)
	spec.Info.Title = "SAW Solver"
	spec.Info.Description = "Exact counts of self-avoiding walks on the square lattice."
	spec.Info.Version = version
	spec.Info.Contact = &boxopenapi.Contact{
		Url: "https://github.com/funmatu/sawsolver/issues/new",
	}
	b.Resource("/openapi.json").
		WithActions(box.Get(func(r *http.Request) any {

			spec.Servers = []boxopenapi.Server{
				{
					Url: "https://" + r.Host,
				},
				{
					Url: "http://" + r.Host,
				},
			}

			return spec
		}).WithName("openapi"))

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(apicountv1.SetServicer(ctx, s))
		}
	}
}
