package saw

import (
	"math"
	"math/big"
)

// accumulator counts exactly. Increments land in a machine word that is
// folded into the big total before it could wrap.
type accumulator struct {
	small uint64
	total *big.Int
}

func newAccumulator() *accumulator {
	return &accumulator{
		total: new(big.Int),
	}
}

func (a *accumulator) Add(k uint64) {
	if a.small > math.MaxUint64-k {
		a.flush()
	}
	a.small += k
}

func (a *accumulator) flush() {
	if a.small == 0 {
		return
	}
	a.total.Add(a.total, new(big.Int).SetUint64(a.small))
	a.small = 0
}

// Total flushes pending increments and returns the exact count. The returned
// value is owned by the caller.
func (a *accumulator) Total() *big.Int {
	a.flush()
	return new(big.Int).Set(a.total)
}
