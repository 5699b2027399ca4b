package saw

import "math/big"

// CountRecursive is the textbook formulation: plain recursion over a map of
// visited points. It is slower than Count and its depth is bounded by the
// goroutine stack, but it shares no code with the explicit-stack search,
// which makes it a useful cross-check.
func CountRecursive(n int) (*big.Int, error) {
	if err := validate(n); err != nil {
		return nil, err
	}

	visited := map[Point]bool{Origin: true}
	acc := newAccumulator()

	var step func(p Point, taken int)
	step = func(p Point, taken int) {
		if taken == n {
			acc.Add(1)
			return
		}
		for _, d := range Directions {
			q := p.Add(d)
			if visited[q] {
				continue
			}
			visited[q] = true
			step(q, taken+1)
			delete(visited, q)
		}
	}
	step(Origin, 0)

	return acc.Total(), nil
}
