package match

import "github.com/ninakotova/gemgrid/internal/grid"

// Swap is a candidate pair of adjacent cells.
type Swap struct {
	A, B grid.Coord
}

// Swappable reports whether the pair of tiles may be exchanged at all.
// Orbs are never swappable; at least one side must be a regular tile
// (a blocking obstacle may ride along if the swap produces a match).
func Swappable(a, b grid.Tile) bool {
	if a.Kind == grid.KindPowerOrb || b.Kind == grid.KindPowerOrb {
		return false
	}
	return a.Kind == grid.KindRegular || b.Kind == grid.KindRegular
}

// LegalSwaps returns every adjacent swap that would produce at least one
// match on the given board. The board is restored before returning.
// Precondition: the board is stable (no existing matches).
func LegalSwaps(b *grid.Board) []Swap {
	var out []Swap
	forEachCandidate(b, func(s Swap) bool {
		out = append(out, s)
		return true
	})
	return out
}

// HasLegalSwap reports whether at least one legal match-producing swap
// exists. Stops at the first hit.
func HasLegalSwap(b *grid.Board) bool {
	found := false
	forEachCandidate(b, func(Swap) bool {
		found = true
		return false
	})
	return found
}

func forEachCandidate(b *grid.Board, visit func(Swap) bool) {
	dirs := [2]grid.Direction{grid.DirRight, grid.DirDown}
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			a := grid.C(x, y)
			for _, d := range dirs {
				c := a.Add(d)
				if !b.InBounds(c) {
					continue
				}
				ta, tc := b.Get(a), b.Get(c)
				if !Swappable(ta, tc) {
					continue
				}
				if ta == tc {
					continue // exchanging identical tiles changes nothing
				}
				b.Swap(a, c)
				hit := len(FindAt(b, []grid.Coord{a, c})) > 0
				b.Swap(a, c)
				if hit && !visit(Swap{A: a, B: c}) {
					return
				}
			}
		}
	}
}
