package solver

import (
	"math/big"
	"sync"
	"time"

	"github.com/google/btree"
)

// Result is a finished count. Count is shared between every reader of the
// same result and must not be modified.
type Result struct {
	N          int
	Count      *big.Int
	Method     string
	Elapsed    time.Duration
	ComputedAt time.Time
	Cached     bool
}

// Results keeps finished counts ordered by n.
type Results struct {
	mutex *sync.RWMutex
	tree  *btree.BTreeG[*Result]
}

func NewResults() *Results {
	return &Results{
		mutex: &sync.RWMutex{},
		tree: btree.NewG(32, func(a, b *Result) bool {
			return a.N < b.N
		}),
	}
}

func (r *Results) Get(n int) (*Result, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.tree.Get(&Result{N: n})
}

// Put stores a result, keeping the first one stored for the same n.
func (r *Results) Put(result *Result) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.tree.Has(result) {
		return
	}
	r.tree.ReplaceOrInsert(result)
}

// Range returns results with from <= n <= to in ascending n. A negative to
// means no upper bound.
func (r *Results) Range(from, to int) []*Result {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	list := []*Result{}
	collect := func(item *Result) bool {
		list = append(list, item)
		return true
	}

	if to < 0 {
		r.tree.AscendGreaterOrEqual(&Result{N: from}, collect)
		return list
	}
	if to < from {
		return list
	}
	r.tree.AscendRange(&Result{N: from}, &Result{N: to + 1}, collect)

	return list
}

func (r *Results) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.tree.Len()
}
