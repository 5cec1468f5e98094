// Package match implements match detection for the gemgrid board: maximal
// row/column runs of identical regular colors and the compound shapes
// (L, T, cross) built from intersecting runs.
package match

import (
	"sort"

	"github.com/ninakotova/gemgrid/internal/grid"
)

// MinRun is the minimum run length that forms a match.
const MinRun = 3

// Shape tags the geometry of a match group.
type Shape string

const (
	ShapeLine  Shape = "line"
	ShapeL     Shape = "L"
	ShapeT     Shape = "T"
	ShapeCross Shape = "cross"
)

// Group is one detected match: the union of one or more intersecting runs
// of the same color. Overlapping runs are merged into a single group and
// never reported twice.
type Group struct {
	Positions []grid.Coord
	Color     grid.Color
	Shape     Shape
}

// Size returns the number of cells in the group.
func (g Group) Size() int {
	return len(g.Positions)
}

// run is a maximal straight sequence of same-colored regular tiles.
type run struct {
	cells      []grid.Coord
	color      grid.Color
	horizontal bool
}

func (r run) endpoint(c grid.Coord) bool {
	return c == r.cells[0] || c == r.cells[len(r.cells)-1]
}

func (r run) contains(c grid.Coord) bool {
	for _, cell := range r.cells {
		if cell == c {
			return true
		}
	}
	return false
}

// Find scans the whole board and returns all match groups. O(W·H).
func Find(b *grid.Board) []Group {
	rows := make([]int, 0, b.H)
	for y := 0; y < b.H; y++ {
		rows = append(rows, y)
	}
	cols := make([]int, 0, b.W)
	for x := 0; x < b.W; x++ {
		cols = append(cols, x)
	}
	return groups(scanLines(b, rows, cols))
}

// FindAt scans only the rows and columns containing the dirty positions.
// Complete on boards that were stable before the dirty cells changed: any
// new run must pass through a dirty cell, so it lies in a scanned line.
func FindAt(b *grid.Board, dirty []grid.Coord) []Group {
	rowSet := make(map[int]bool, len(dirty))
	colSet := make(map[int]bool, len(dirty))
	for _, c := range dirty {
		rowSet[c.Y] = true
		colSet[c.X] = true
	}
	rows := make([]int, 0, len(rowSet))
	for y := range rowSet {
		rows = append(rows, y)
	}
	cols := make([]int, 0, len(colSet))
	for x := range colSet {
		cols = append(cols, x)
	}
	sort.Ints(rows)
	sort.Ints(cols)
	return groups(scanLines(b, rows, cols))
}

// scanLines collects maximal runs of length >= MinRun along the given rows
// and columns. Blocking and orb tiles never start or extend a run.
func scanLines(b *grid.Board, rows, cols []int) []run {
	var runs []run

	for _, y := range rows {
		runs = appendLineRuns(runs, b, grid.C(0, y), grid.DirRight, b.W, true)
	}
	for _, x := range cols {
		runs = appendLineRuns(runs, b, grid.C(x, 0), grid.DirDown, b.H, false)
	}
	return runs
}

func appendLineRuns(runs []run, b *grid.Board, start grid.Coord, step grid.Direction, length int, horizontal bool) []run {
	var cur []grid.Coord
	curColor := grid.ColorNone

	flush := func() {
		if len(cur) >= MinRun {
			cells := make([]grid.Coord, len(cur))
			copy(cells, cur)
			runs = append(runs, run{cells: cells, color: curColor, horizontal: horizontal})
		}
		cur = cur[:0]
		curColor = grid.ColorNone
	}

	pos := start
	for i := 0; i < length; i++ {
		t := b.Get(pos)
		if t.Matchable() && t.Color == curColor {
			cur = append(cur, pos)
		} else {
			flush()
			if t.Matchable() {
				cur = append(cur, pos)
				curColor = t.Color
			}
		}
		pos = pos.Add(step)
	}
	flush()
	return runs
}

// groups merges runs that share a cell (necessarily of the same color,
// since runs through one cell see the same tile) and tags each merged
// group's shape.
func groups(runs []run) []Group {
	if len(runs) == 0 {
		return nil
	}

	// Union-find over run indices keyed by shared cells.
	parent := make([]int, len(runs))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(a, b int) {
		parent[find(a)] = find(b)
	}

	owner := make(map[grid.Coord]int)
	for i, r := range runs {
		for _, c := range r.cells {
			if j, ok := owner[c]; ok {
				union(i, j)
			} else {
				owner[c] = i
			}
		}
	}

	merged := make(map[int][]int)
	for i := range runs {
		root := find(i)
		merged[root] = append(merged[root], i)
	}

	roots := make([]int, 0, len(merged))
	for root := range merged {
		roots = append(roots, root)
	}
	sort.Ints(roots)

	out := make([]Group, 0, len(roots))
	for _, root := range roots {
		members := merged[root]
		out = append(out, buildGroup(runs, members))
	}
	return out
}

func buildGroup(runs []run, members []int) Group {
	seen := make(map[grid.Coord]bool)
	var positions []grid.Coord
	for _, i := range members {
		for _, c := range runs[i].cells {
			if !seen[c] {
				seen[c] = true
				positions = append(positions, c)
			}
		}
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})

	return Group{
		Positions: positions,
		Color:     runs[members[0]].color,
		Shape:     classify(runs, members),
	}
}

// classify tags the merged group: a single run is a line regardless of
// length; two intersecting runs form an L (corner at both endpoints),
// a T (corner interior to exactly one run), or a cross (interior to both);
// three or more runs collapse to cross.
func classify(runs []run, members []int) Shape {
	if len(members) == 1 {
		return ShapeLine
	}
	if len(members) > 2 {
		return ShapeCross
	}

	a, b := runs[members[0]], runs[members[1]]
	corner, ok := intersection(a, b)
	if !ok {
		// Same-orientation runs merged through a shared cell collapse into
		// one straight line.
		return ShapeLine
	}
	switch {
	case a.endpoint(corner) && b.endpoint(corner):
		return ShapeL
	case a.endpoint(corner) || b.endpoint(corner):
		return ShapeT
	default:
		return ShapeCross
	}
}

func intersection(a, b run) (grid.Coord, bool) {
	if a.horizontal == b.horizontal {
		return grid.Coord{}, false
	}
	for _, c := range a.cells {
		if b.contains(c) {
			return c, true
		}
	}
	return grid.Coord{}, false
}
