package saw

import (
	"errors"
	"math/big"

	"github.com/funmatu/sawsolver/utils"
)

var ErrUnknownMethod = errors.New("unknown method")

type CountFunc func(n int) (*big.Int, error)

const DefaultMethod = "stack"

var methods = map[string]CountFunc{
	"stack":     Count,
	"symmetric": CountSymmetric,
	"recursive": CountRecursive,
}

// GetMethod resolves a counting method by name. The empty name selects
// DefaultMethod.
func GetMethod(name string) (CountFunc, bool) {
	if name == "" {
		name = DefaultMethod
	}
	f, ok := methods[name]
	return f, ok
}

func MethodNames() []string {
	return utils.GetKeys(methods)
}
