package saw

// DenseLimit is the largest walk length searched over a dense grid. Longer
// walks fall back to a sparse set so scratch memory stays proportional to the
// depth actually reached.
const DenseLimit = 1024

// scratchHint caps the capacity reserved up front for stacks, walks and
// sparse sets. Anything deeper grows on demand.
const scratchHint = 1024

// board is a visited set plus the coordinate arithmetic of its cells.
type board[C comparable] interface {
	origin() C
	next(c C, d Direction) C
	visited(c C) bool
	mark(c C)
	unmark(c C)
}

// denseGrid addresses the (2r+1)² square centered at the origin as a flat
// slice. A walk of length r never leaves it.
type denseGrid struct {
	radius  int
	side    int
	cells   []bool
	offsets [4]int
}

func newDenseGrid(radius int) *denseGrid {
	side := 2*radius + 1
	return &denseGrid{
		radius: radius,
		side:   side,
		cells:  make([]bool, side*side),
		offsets: [4]int{
			East:  1,
			West:  -1,
			North: side,
			South: -side,
		},
	}
}

func (g *denseGrid) origin() int {
	return g.radius*g.side + g.radius
}

func (g *denseGrid) next(c int, d Direction) int {
	return c + g.offsets[d]
}

func (g *denseGrid) visited(c int) bool {
	return g.cells[c]
}

func (g *denseGrid) mark(c int) {
	g.cells[c] = true
}

func (g *denseGrid) unmark(c int) {
	g.cells[c] = false
}

func (g *denseGrid) point(c int) Point {
	return Point{X: c%g.side - g.radius, Y: c/g.side - g.radius}
}

func (g *denseGrid) size() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}
	return n
}

type sparseSet struct {
	cells map[Point]struct{}
}

func newSparseSet(depth int) *sparseSet {
	return &sparseSet{
		cells: make(map[Point]struct{}, scratchCap(depth)),
	}
}

// scratchCap is the room reserved for a search of the given depth.
func scratchCap(depth int) int {
	return min(depth, scratchHint) + 1
}

func (s *sparseSet) origin() Point {
	return Origin
}

func (s *sparseSet) next(p Point, d Direction) Point {
	return p.Add(d)
}

func (s *sparseSet) visited(p Point) bool {
	_, ok := s.cells[p]
	return ok
}

func (s *sparseSet) mark(p Point) {
	s.cells[p] = struct{}{}
}

func (s *sparseSet) unmark(p Point) {
	delete(s.cells, p)
}

func (s *sparseSet) size() int {
	return len(s.cells)
}
