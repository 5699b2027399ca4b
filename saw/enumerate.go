package saw

// Enumerate calls fn with every self-avoiding walk of length n, in the order
// the search finds them: depth first, trying Directions in order at every
// position. A walk holds n+1 points starting at Origin. The slice is reused
// between calls, copy it to keep it. Returning false from fn stops the
// enumeration.
func Enumerate(n int, fn func(walk []Point) bool) error {
	if err := validate(n); err != nil {
		return err
	}

	walk := make([]Point, 1, scratchCap(n))
	walk[0] = Origin
	if n == 0 {
		fn(walk)
		return nil
	}

	visited := newSparseSet(n)
	visited.mark(Origin)

	stack := make([]frame[Point], 1, scratchCap(n))
	stack[0] = frame[Point]{cell: Origin}

	for len(stack) > 0 {
		depth := len(stack) - 1
		top := &stack[depth]

		if top.next >= allDirections {
			visited.unmark(top.cell)
			stack = stack[:depth]
			walk = walk[:depth]
			continue
		}

		d := top.next
		top.next++

		p := top.cell.Add(d)
		if visited.visited(p) {
			continue
		}
		if depth+1 == n {
			if !fn(append(walk, p)) {
				return nil
			}
			continue
		}

		visited.mark(p)
		stack = append(stack, frame[Point]{cell: p})
		walk = append(walk, p)
	}

	return nil
}
