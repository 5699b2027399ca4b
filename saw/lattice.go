package saw

import "fmt"

// Point is a position on the square lattice.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var Origin = Point{}

func (p Point) Add(d Direction) Point {
	delta := deltas[d]
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type Direction int

const (
	East Direction = iota
	West
	North
	South
)

// Directions is the fixed order in which every search tries unit steps.
var Directions = [4]Direction{East, West, North, South}

var deltas = [4]Point{
	East:  {X: 1},
	West:  {X: -1},
	North: {Y: 1},
	South: {Y: -1},
}

var directionNames = [4]string{
	East:  "east",
	West:  "west",
	North: "north",
	South: "south",
}

func (d Direction) Delta() Point {
	return deltas[d]
}

func (d Direction) String() string {
	if d < East || d > South {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}
