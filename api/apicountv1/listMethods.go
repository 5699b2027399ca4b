package apicountv1

import (
	"context"
)

func listMethods(ctx context.Context) []string {
	return GetServicer(ctx).Methods()
}
