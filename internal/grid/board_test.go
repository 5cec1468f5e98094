package grid

import "testing"

func TestBoardGetSet(t *testing.T) {
	b := NewBoard(4, 3)

	if got := b.Get(C(1, 1)); !got.IsEmpty() {
		t.Errorf("new board cell = %v, want empty", got)
	}

	b.Set(C(1, 1), Regular(ColorRed))
	if got := b.Get(C(1, 1)); got.Color != ColorRed || got.Kind != KindRegular {
		t.Errorf("Get(1,1) = %v, want red regular", got)
	}

	// Out-of-bounds access is safe and inert.
	b.Set(C(-1, 0), Regular(ColorBlue))
	b.Set(C(4, 0), Regular(ColorBlue))
	if got := b.Get(C(-1, 0)); !got.IsEmpty() {
		t.Errorf("out-of-bounds Get = %v, want empty", got)
	}

	b.Clear(C(1, 1))
	if !b.IsEmpty(C(1, 1)) {
		t.Error("cell not empty after Clear")
	}
	if b.IsEmpty(C(9, 9)) {
		t.Error("out-of-bounds cell reported empty")
	}
}

func TestBoardSwap(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(C(0, 0), Regular(ColorRed))
	b.Set(C(1, 0), Regular(ColorBlue))

	b.Swap(C(0, 0), C(1, 0))

	if b.Get(C(0, 0)).Color != ColorBlue || b.Get(C(1, 0)).Color != ColorRed {
		t.Errorf("swap failed: got %v, %v", b.Get(C(0, 0)), b.Get(C(1, 0)))
	}
}

func TestBoardCloneEqual(t *testing.T) {
	b := MustParseBoard(
		"rgb",
		"#y.",
	)
	clone := b.Clone()

	if !b.Equal(clone) {
		t.Fatal("clone not equal to original")
	}

	clone.Set(C(0, 0), Regular(ColorYellow))
	if b.Equal(clone) {
		t.Error("mutating clone affected original")
	}
	if b.Get(C(0, 0)).Color != ColorRed {
		t.Error("original mutated through clone")
	}
}

func TestAdjacency(t *testing.T) {
	tests := []struct {
		a, b Coord
		want bool
	}{
		{C(2, 2), C(2, 3), true},
		{C(2, 2), C(3, 2), true},
		{C(2, 2), C(1, 2), true},
		{C(2, 2), C(2, 1), true},
		{C(2, 2), C(3, 3), false},
		{C(2, 2), C(2, 2), false},
		{C(2, 2), C(2, 4), false},
	}

	for _, tt := range tests {
		if got := tt.a.Adjacent(tt.b); got != tt.want {
			t.Errorf("%v.Adjacent(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDirectionBetween(t *testing.T) {
	if d := DirectionBetween(C(3, 3), C(3, 4)); d != DirDown {
		t.Errorf("DirectionBetween down = %v", d)
	}
	if d := DirectionBetween(C(3, 3), C(2, 3)); d != DirLeft {
		t.Errorf("DirectionBetween left = %v", d)
	}
	if d := DirectionBetween(C(3, 3), C(4, 4)); !d.IsZero() {
		t.Errorf("diagonal pair produced direction %v", d)
	}
}

func TestEdgeCellsClockwise(t *testing.T) {
	b := NewBoard(3, 3)

	top := b.EdgeCells(EdgeTop)
	if top[0] != C(0, 0) || top[2] != C(2, 0) {
		t.Errorf("top edge order wrong: %v", top)
	}
	bottom := b.EdgeCells(EdgeBottom)
	if bottom[0] != C(2, 2) || bottom[2] != C(0, 2) {
		t.Errorf("bottom edge order wrong: %v", bottom)
	}
}

func TestEdgeDistance(t *testing.T) {
	b := NewBoard(8, 8)
	c := C(2, 5)

	tests := []struct {
		edge Edge
		want int
	}{
		{EdgeTop, 5},
		{EdgeBottom, 2},
		{EdgeLeft, 2},
		{EdgeRight, 5},
	}
	for _, tt := range tests {
		if got := b.EdgeDistance(c, tt.edge); got != tt.want {
			t.Errorf("EdgeDistance(%v, %v) = %d, want %d", c, tt.edge, got, tt.want)
		}
	}
}

func TestCenterCells(t *testing.T) {
	odd := NewBoard(9, 9)
	if cells := odd.CenterCells(); len(cells) != 1 || cells[0] != C(4, 4) {
		t.Errorf("9x9 center = %v, want [(4,4)]", cells)
	}

	even := NewBoard(8, 8)
	cells := even.CenterCells()
	if len(cells) != 4 {
		t.Fatalf("8x8 center count = %d, want 4", len(cells))
	}
	want := map[Coord]bool{C(3, 3): true, C(4, 3): true, C(3, 4): true, C(4, 4): true}
	for _, c := range cells {
		if !want[c] {
			t.Errorf("unexpected center cell %v", c)
		}
	}
}

func TestTrailingEdge(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Edge
	}{
		{DirDown, EdgeTop},
		{DirUp, EdgeBottom},
		{DirRight, EdgeLeft},
		{DirLeft, EdgeRight},
	}
	for _, tt := range tests {
		if got := TrailingEdge(tt.dir); got != tt.want {
			t.Errorf("TrailingEdge(%v) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}
