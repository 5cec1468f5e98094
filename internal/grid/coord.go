// Package grid provides the board, tile, and coordinate primitives for the
// gemgrid engine. It contains no external dependencies to keep the game
// logic pure and testable.
package grid

import "fmt"

// Coord is a cell position on the board. X grows rightward, Y grows downward.
type Coord struct {
	X, Y int
}

// C is a shorthand constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate offset by the given direction.
func (c Coord) Add(d Direction) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Adjacent returns true if the other coordinate is exactly one step away
// in a cardinal direction. A coordinate is not adjacent to itself.
func (c Coord) Adjacent(other Coord) bool {
	dx := abs(c.X - other.X)
	dy := abs(c.Y - other.Y)
	return dx+dy == 1
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit vector along one of the four cardinal axes.
type Direction struct {
	DX, DY int
}

var (
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// Directions lists the cardinal directions in clockwise order starting
// from up. Iteration order matters for reproducible edge handling.
var Directions = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsZero reports whether the direction is the zero vector.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return fmt.Sprintf("dir(%d,%d)", d.DX, d.DY)
}

// DirectionBetween derives the cardinal direction of the displacement from
// a to b. Returns the zero Direction if the coordinates are not adjacent.
func DirectionBetween(a, b Coord) Direction {
	if !a.Adjacent(b) {
		return Direction{}
	}
	return Direction{DX: sign(b.X - a.X), DY: sign(b.Y - a.Y)}
}

// Edge identifies one of the four board edges.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Edges lists the board edges in clockwise order starting from the top.
var Edges = [4]Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	}
	return fmt.Sprintf("edge(%d)", int(e))
}

// Inward returns the direction pointing from this edge into the board.
func (e Edge) Inward() Direction {
	switch e {
	case EdgeTop:
		return DirDown
	case EdgeRight:
		return DirLeft
	case EdgeBottom:
		return DirUp
	default:
		return DirRight
	}
}

// Outward returns the direction pointing from the board across this edge.
func (e Edge) Outward() Direction {
	return e.Inward().Opposite()
}

// TrailingEdge returns the edge tiles move away from under the given
// gravity direction. Newly supplied tiles enter the board there.
func TrailingEdge(d Direction) Edge {
	switch d {
	case DirDown:
		return EdgeTop
	case DirUp:
		return EdgeBottom
	case DirRight:
		return EdgeLeft
	default:
		return EdgeRight
	}
}

// LeadingEdge returns the edge tiles move toward under the given gravity
// direction.
func LeadingEdge(d Direction) Edge {
	return TrailingEdge(d.Opposite())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
