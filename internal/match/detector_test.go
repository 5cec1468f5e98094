package match

import (
	"testing"

	"github.com/ninakotova/gemgrid/internal/grid"
)

func TestFindFourInARow(t *testing.T) {
	b := grid.MustParseBoard(
		"gybgy",
		"byrgb",
		"rrrry",
		"ygbyg",
		"gybgy",
	)

	got := Find(b)
	if len(got) != 1 {
		t.Fatalf("Find returned %d groups, want 1: %v", len(got), got)
	}
	g := got[0]
	if g.Size() != 4 {
		t.Errorf("group size = %d, want 4", g.Size())
	}
	if g.Shape != ShapeLine {
		t.Errorf("shape = %v, want line", g.Shape)
	}
	if g.Color != grid.ColorRed {
		t.Errorf("color = %v, want red", g.Color)
	}
	for i, c := range g.Positions {
		if c != grid.C(i, 2) {
			t.Errorf("position %d = %v, want (%d,2)", i, c, i)
		}
	}
}

func TestFindNoMatches(t *testing.T) {
	b := grid.MustParseBoard(
		"rgb",
		"gbr",
		"brg",
	)
	if got := Find(b); len(got) != 0 {
		t.Errorf("Find = %v, want none", got)
	}
}

func TestBlockingBreaksRuns(t *testing.T) {
	b := grid.MustParseBoard(
		"rr#rr",
		"gybgy",
		"bgygb",
		"ygbyg",
		"gybgy",
	)
	if got := Find(b); len(got) != 0 {
		t.Errorf("blocking tile extended a run: %v", got)
	}
}

func TestOrbNeverMatches(t *testing.T) {
	b := grid.MustParseBoard(
		"rr.rr",
		"gybgy",
		"bgygb",
		"ygbyg",
		"gybgy",
	)
	b.Set(grid.C(2, 0), grid.PowerOrb(grid.ColorRed, grid.EdgeTop))

	if got := Find(b); len(got) != 0 {
		t.Errorf("orb extended a run: %v", got)
	}
}

func TestFindShapes(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		shape Shape
		size  int
	}{
		{
			name: "L corner at both endpoints",
			rows: []string{
				"rgbyg",
				"rybgy",
				"rrrgb",
				"gybyg",
				"ygbgy",
			},
			shape: ShapeL,
			size:  5,
		},
		{
			name: "T corner interior to one run",
			rows: []string{
				"rrrgb",
				"brygy",
				"grybg",
				"ybgyb",
				"bgygy",
			},
			shape: ShapeT,
			size:  5,
		},
		{
			name: "cross corner interior to both runs",
			rows: []string{
				"grbyg",
				"rrrgb",
				"brygy",
				"gybyb",
				"ybgyg",
			},
			shape: ShapeCross,
			size:  5,
		},
		{
			name: "five straight stays line",
			rows: []string{
				"rrrrr",
				"gybgy",
				"bgygb",
				"ygbyg",
				"gybgy",
			},
			shape: ShapeLine,
			size:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := grid.MustParseBoard(tt.rows...)
			got := Find(b)
			if len(got) != 1 {
				t.Fatalf("Find returned %d groups, want 1: %v", len(got), got)
			}
			if got[0].Shape != tt.shape {
				t.Errorf("shape = %v, want %v", got[0].Shape, tt.shape)
			}
			if got[0].Size() != tt.size {
				t.Errorf("size = %d, want %d (positions double-counted?)", got[0].Size(), tt.size)
			}
		})
	}
}

func TestFindAtRestrictsScan(t *testing.T) {
	b := grid.MustParseBoard(
		"rrrgb",
		"gybgy",
		"bgybb",
		"ygbyg",
		"bbbgy",
	)

	got := FindAt(b, []grid.Coord{grid.C(1, 0)})
	if len(got) != 1 {
		t.Fatalf("FindAt returned %d groups, want 1: %v", len(got), got)
	}
	if got[0].Color != grid.ColorRed {
		t.Errorf("FindAt found %v, want the red run in the dirty row", got[0])
	}

	// Full scan sees both.
	if got := Find(b); len(got) != 2 {
		t.Errorf("Find returned %d groups, want 2", len(got))
	}
}

func TestLegalSwaps(t *testing.T) {
	b := grid.MustParseBoard(
		"rby",
		"rby",
		"brg",
	)
	before := b.Clone()

	swaps := LegalSwaps(b)
	if len(swaps) == 0 {
		t.Fatal("LegalSwaps found none, want at least the bottom-row swap")
	}
	found := false
	for _, s := range swaps {
		if s.A == grid.C(0, 2) && s.B == grid.C(1, 2) {
			found = true
		}
	}
	if !found {
		t.Errorf("LegalSwaps = %v, missing (0,2)-(1,2)", swaps)
	}
	if !b.Equal(before) {
		t.Error("LegalSwaps mutated the board")
	}
	if !HasLegalSwap(b) {
		t.Error("HasLegalSwap = false, want true")
	}
}

func TestHasLegalSwapNone(t *testing.T) {
	// Checkerboard of two colors has no legal swaps.
	b := grid.MustParseBoard(
		"rgrg",
		"grgr",
		"rgrg",
		"grgr",
	)
	if HasLegalSwap(b) {
		t.Error("HasLegalSwap = true on checkerboard, want false")
	}
}

func TestSwappable(t *testing.T) {
	orb := grid.PowerOrb(grid.ColorRed, grid.EdgeTop)
	reg := grid.Regular(grid.ColorBlue)
	blk := grid.Blocking()

	if Swappable(orb, reg) || Swappable(reg, orb) {
		t.Error("orb reported swappable")
	}
	if !Swappable(reg, blk) {
		t.Error("regular-blocking pair not swappable")
	}
	if Swappable(blk, blk) {
		t.Error("two blocking tiles reported swappable")
	}
}
