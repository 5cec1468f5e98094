// Package gravity implements the directional resettling pass: tiles shift
// one step at a time toward a turn-scoped cardinal direction, trailing-edge
// vacancies are filled from a tile supply, and blocking obstacles are
// ejected when displaced off the leading edge.
package gravity

import (
	"github.com/ninakotova/gemgrid/internal/grid"
)

// Supply provides a tile for a newly exposed trailing-edge cell.
// Returning ok=false leaves the cell empty (e.g. an exhausted queue in
// simulation fixtures).
type Supply func(pos grid.Coord) (grid.Tile, bool)

// Move records one tile shifting a single step.
type Move struct {
	From, To grid.Coord
	Tile     grid.Tile
}

// Spawn records a supplied tile entering at a trailing-edge cell.
type Spawn struct {
	At   grid.Coord
	Tile grid.Tile
}

// Exit records a blocking obstacle displaced off the leading edge.
type Exit struct {
	From grid.Coord
	Tile grid.Tile
}

// Result accumulates everything one Settle call did, in order, sufficient
// to drive animation.
type Result struct {
	Moves  []Move
	Spawns []Spawn
	Exits  []Exit
	Passes int
}

// Changed reports whether the settle moved, spawned, or ejected anything.
func (r Result) Changed() bool {
	return len(r.Moves) > 0 || len(r.Spawns) > 0 || len(r.Exits) > 0
}

// Settle repeatedly shifts every tile one step toward dir where the
// destination cell is empty, filling vacated trailing-edge cells from the
// supply, until no tile can move. Only blocking obstacles may leave the
// board across the leading edge; regular tiles and orbs stop at the border.
func Settle(b *grid.Board, dir grid.Direction, supply Supply) Result {
	var res Result
	if dir.IsZero() {
		return res
	}

	trailing := grid.TrailingEdge(dir)
	for {
		moved := shiftPass(b, dir, &res)
		filled := fillTrailing(b, trailing, supply, &res)
		res.Passes++
		if !moved && !filled {
			return res
		}
	}
}

// shiftPass moves each movable tile one step. Cells nearest the leading
// edge are processed first so a vacating cell is seen by its follower
// within the same pass.
func shiftPass(b *grid.Board, dir grid.Direction, res *Result) bool {
	moved := false
	for _, c := range leadingFirst(b, dir) {
		t := b.Get(c)
		if t.IsEmpty() {
			continue
		}
		dest := c.Add(dir)
		if !b.InBounds(dest) {
			if t.Kind == grid.KindBlocking {
				b.Clear(c)
				res.Exits = append(res.Exits, Exit{From: c, Tile: t})
				moved = true
			}
			continue
		}
		if b.IsEmpty(dest) {
			b.Clear(c)
			b.Set(dest, t)
			res.Moves = append(res.Moves, Move{From: c, To: dest, Tile: t})
			moved = true
		}
	}
	return moved
}

// fillTrailing supplies tiles for empty trailing-edge cells. Edges are
// visited in fixed clockwise order (top, right, bottom, left) so fill
// behavior is reproducible; only the trailing edge of the current
// direction ever has entry cells.
func fillTrailing(b *grid.Board, trailing grid.Edge, supply Supply, res *Result) bool {
	if supply == nil {
		return false
	}
	filled := false
	for _, e := range grid.Edges {
		if e != trailing {
			continue
		}
		for _, c := range b.EdgeCells(e) {
			if !b.IsEmpty(c) {
				continue
			}
			t, ok := supply(c)
			if !ok {
				continue
			}
			b.Set(c, t)
			res.Spawns = append(res.Spawns, Spawn{At: c, Tile: t})
			filled = true
		}
	}
	return filled
}

// leadingFirst returns all coordinates ordered so cells nearest the
// leading edge of dir come first.
func leadingFirst(b *grid.Board, dir grid.Direction) []grid.Coord {
	out := make([]grid.Coord, 0, b.W*b.H)

	xs := ascending(b.W)
	ys := ascending(b.H)
	if dir == grid.DirRight {
		xs = descending(b.W)
	}
	if dir == grid.DirDown {
		ys = descending(b.H)
	}

	for _, y := range ys {
		for _, x := range xs {
			out = append(out, grid.C(x, y))
		}
	}
	return out
}

func ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - 1 - i
	}
	return out
}
