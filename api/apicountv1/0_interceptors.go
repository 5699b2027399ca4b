package apicountv1

import (
	"context"

	"github.com/funmatu/sawsolver/service"
)

const ContextServicerKey = "4d0b8f52-8c1e-11f0-9a3b-3f5c2a7e1d90"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer) // TODO: can raise panic :D
}
