package grid

// Board is a fixed W×H grid of cells, each holding at most one tile.
// Cells are stored in row-major order: index = y*W + x.
// The board performs bounds-checking only; all game-rule validation lives
// in callers.
type Board struct {
	W, H  int
	cells []Tile
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(w, h int) *Board {
	return &Board{W: w, H: h, cells: make([]Tile, w*h)}
}

func (b *Board) index(c Coord) int {
	return c.Y*b.W + c.X
}

// InBounds returns true if the coordinate is within the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// Get returns the tile at the given coordinate, or the empty cell value if
// the coordinate is out of bounds.
func (b *Board) Get(c Coord) Tile {
	if !b.InBounds(c) {
		return Empty()
	}
	return b.cells[b.index(c)]
}

// Set places the tile at the given coordinate. Out-of-bounds sets are
// silently ignored.
func (b *Board) Set(c Coord, t Tile) {
	if b.InBounds(c) {
		b.cells[b.index(c)] = t
	}
}

// Clear empties the cell at the given coordinate.
func (b *Board) Clear(c Coord) {
	b.Set(c, Empty())
}

// IsEmpty reports whether the cell at the coordinate holds no tile.
// Out-of-bounds coordinates report false: there is no cell to fill there.
func (b *Board) IsEmpty(c Coord) bool {
	return b.InBounds(c) && b.cells[b.index(c)].IsEmpty()
}

// Swap exchanges the tiles at the two coordinates.
func (b *Board) Swap(a, c Coord) {
	if !b.InBounds(a) || !b.InBounds(c) {
		return
	}
	i, j := b.index(a), b.index(c)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Tile, len(b.cells))
	copy(cells, b.cells)
	return &Board{W: b.W, H: b.H, cells: cells}
}

// Equal returns true if both boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.W != other.W || b.H != other.H {
		return false
	}
	for i, t := range b.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}

// OnEdge reports whether the coordinate lies on the given edge.
func (b *Board) OnEdge(c Coord, e Edge) bool {
	if !b.InBounds(c) {
		return false
	}
	switch e {
	case EdgeTop:
		return c.Y == 0
	case EdgeBottom:
		return c.Y == b.H-1
	case EdgeLeft:
		return c.X == 0
	default:
		return c.X == b.W-1
	}
}

// EdgeDistance returns the number of steps from the coordinate to the
// given edge.
func (b *Board) EdgeDistance(c Coord, e Edge) int {
	switch e {
	case EdgeTop:
		return c.Y
	case EdgeBottom:
		return b.H - 1 - c.Y
	case EdgeLeft:
		return c.X
	default:
		return b.W - 1 - c.X
	}
}

// EdgeCells returns the coordinates along the given edge. Cells are ordered
// clockwise: the top edge left-to-right, the right edge top-to-bottom, the
// bottom edge right-to-left, the left edge bottom-to-top.
func (b *Board) EdgeCells(e Edge) []Coord {
	switch e {
	case EdgeTop:
		out := make([]Coord, 0, b.W)
		for x := 0; x < b.W; x++ {
			out = append(out, C(x, 0))
		}
		return out
	case EdgeRight:
		out := make([]Coord, 0, b.H)
		for y := 0; y < b.H; y++ {
			out = append(out, C(b.W-1, y))
		}
		return out
	case EdgeBottom:
		out := make([]Coord, 0, b.W)
		for x := b.W - 1; x >= 0; x-- {
			out = append(out, C(x, b.H-1))
		}
		return out
	default:
		out := make([]Coord, 0, b.H)
		for y := b.H - 1; y >= 0; y-- {
			out = append(out, C(0, y))
		}
		return out
	}
}

// CenterCells returns the reserved center cells: one cell for odd
// dimensions, two per axis for even dimensions (so a 2×2 block on an even
// square board).
func (b *Board) CenterCells() []Coord {
	xs := centerIndices(b.W)
	ys := centerIndices(b.H)
	out := make([]Coord, 0, len(xs)*len(ys))
	for _, y := range ys {
		for _, x := range xs {
			out = append(out, C(x, y))
		}
	}
	return out
}

func centerIndices(n int) []int {
	if n%2 == 1 {
		return []int{n / 2}
	}
	return []int{n/2 - 1, n / 2}
}

// AllCoords returns every coordinate on the board, ordered by row then
// column.
func (b *Board) AllCoords() []Coord {
	out := make([]Coord, 0, b.W*b.H)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			out = append(out, C(x, y))
		}
	}
	return out
}

// Count returns the number of tiles of the given kind on the board.
func (b *Board) Count(k Kind) int {
	n := 0
	for _, t := range b.cells {
		if t.Kind == k {
			n++
		}
	}
	return n
}

// CountColor returns the number of regular tiles of the given color.
func (b *Board) CountColor(c Color) int {
	n := 0
	for _, t := range b.cells {
		if t.Kind == KindRegular && t.Color == c {
			n++
		}
	}
	return n
}
