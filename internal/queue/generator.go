// Package queue implements the look-ahead supply of upcoming tiles: a
// player-facing visible segment backed by a hidden reserve, refilled under
// anti-frustration constraints so the board never runs out of legal moves.
//
// The generator is single-writer: refills may run eagerly ahead of
// consumption, but callers must serialize Refill and Consume (the engine's
// turn loop does).
package queue

import (
	"math/rand"

	"github.com/ninakotova/gemgrid/internal/config"
	"github.com/ninakotova/gemgrid/internal/grid"
	"github.com/ninakotova/gemgrid/internal/match"
)

// Generator produces the ordered stream of upcoming tile colors.
type Generator struct {
	cfg     config.QueueConfig
	rng     *rand.Rand
	visible []grid.Color
	reserve []grid.Color
}

// New creates a generator and fills both segments against the given board.
func New(cfg config.QueueConfig, seed int64, b *grid.Board) *Generator {
	q := &Generator{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		visible: make([]grid.Color, 0, cfg.VisibleSize),
		reserve: make([]grid.Color, 0, cfg.ReserveSize),
	}
	q.Refill(b)
	return q
}

// PeekVisible returns up to n upcoming colors without consuming them.
func (q *Generator) PeekVisible(n int) []grid.Color {
	if n > len(q.visible) {
		n = len(q.visible)
	}
	out := make([]grid.Color, n)
	copy(out, q.visible[:n])
	return out
}

// Window returns the full look-ahead window: visible then reserve. This is
// the sequence the anti-frustration analysis sees.
func (q *Generator) Window() []grid.Color {
	out := make([]grid.Color, 0, len(q.visible)+len(q.reserve))
	out = append(out, q.visible...)
	out = append(out, q.reserve...)
	return out
}

// Len returns the total number of queued colors.
func (q *Generator) Len() int {
	return len(q.visible) + len(q.reserve)
}

// NeedsRefill reports whether the reserve has dropped below the configured
// threshold fraction of its capacity.
func (q *Generator) NeedsRefill() bool {
	return float64(len(q.reserve)) < q.cfg.RefillThreshold*float64(q.cfg.ReserveSize)
}

// Consume pops the next color off the front of the visible segment,
// promoting from the reserve. The board is consulted when the pop forces
// an inline top-up of an empty window.
func (q *Generator) Consume(b *grid.Board) grid.Color {
	if len(q.visible) == 0 && len(q.reserve) == 0 {
		// Queue drained faster than refills ran; generate in place.
		q.reserve = append(q.reserve, q.generate(b))
	}
	if len(q.visible) == 0 {
		q.promote()
	}
	c := q.visible[0]
	q.visible = q.visible[1:]
	q.promote()
	return c
}

// Refill tops the reserve up to capacity, then the visible segment, each
// new color chosen under the anti-frustration constraints against the
// given board.
func (q *Generator) Refill(b *grid.Board) {
	for len(q.reserve) < q.cfg.ReserveSize {
		q.reserve = append(q.reserve, q.generate(b))
	}
	q.promote()
}

// promote moves reserve colors into the visible segment up to its size.
func (q *Generator) promote() {
	for len(q.visible) < q.cfg.VisibleSize && len(q.reserve) > 0 {
		q.visible = append(q.visible, q.reserve[0])
		q.reserve = q.reserve[1:]
	}
}

// generate picks the next color. Colors are filtered by the
// anti-frustration constraints, then chosen with a soft bias toward colors
// under-represented in the recent window. If the constraints reject every
// color (a configuration error), a guaranteed-match color is forced rather
// than failing the turn.
func (q *Generator) generate(b *grid.Board) grid.Color {
	window := q.Window()

	var candidates []grid.Color
	for _, c := range grid.Palette {
		if q.violatesRun(window, c) {
			continue
		}
		if q.isolated(b, window, c) {
			continue
		}
		if !q.keepsBoardPlayable(b, c) {
			continue
		}
		candidates = append(candidates, c)
	}

	if len(candidates) == 0 {
		if rescue := rescueColors(b); len(rescue) > 0 {
			return rescue[q.rng.Intn(len(rescue))]
		}
		return grid.Palette[q.rng.Intn(len(grid.Palette))]
	}

	return q.weightedPick(window, candidates)
}

// violatesRun reports whether appending c to the window would exceed the
// maximum run of identical colors.
func (q *Generator) violatesRun(window []grid.Color, c grid.Color) bool {
	run := 1
	for i := len(window) - 1; i >= 0 && window[i] == c; i-- {
		run++
	}
	return run > q.cfg.MaxRun
}

// isolated reports whether c would enter with no same-color partner
// anywhere: none on the board and none queued ahead of it. Such a tile
// could never reach a same-color neighbor within one swap.
func (q *Generator) isolated(b *grid.Board, window []grid.Color, c grid.Color) bool {
	if b.CountColor(c) > 0 {
		return false
	}
	for _, w := range window {
		if w == c {
			return false
		}
	}
	return true
}

// keepsBoardPlayable enforces the zero-legal-moves guard: while the board
// still has a legal swap any color is fine; on a dead board only colors
// that can complete a match (a near pair exists) may be emitted.
func (q *Generator) keepsBoardPlayable(b *grid.Board, c grid.Color) bool {
	if match.HasLegalSwap(b) {
		return true
	}
	return hasNearPair(b, c)
}

// weightedPick favors candidates under-represented in the recent window.
// Soft bias, not a hard quota: every candidate keeps nonzero weight.
func (q *Generator) weightedPick(window []grid.Color, candidates []grid.Color) grid.Color {
	recent := window
	if len(recent) > q.cfg.RecentWindow {
		recent = recent[len(recent)-q.cfg.RecentWindow:]
	}
	counts := make(map[grid.Color]int)
	maxCount := 0
	for _, c := range recent {
		counts[c]++
		if counts[c] > maxCount {
			maxCount = counts[c]
		}
	}

	weights := make([]int, len(candidates))
	total := 0
	for i, c := range candidates {
		weights[i] = maxCount - counts[c] + 1
		total += weights[i]
	}

	pick := q.rng.Intn(total)
	for i, w := range weights {
		pick -= w
		if pick < 0 {
			return candidates[i]
		}
	}
	return candidates[len(candidates)-1]
}

// rescueColors returns the colors for which the board holds a near pair:
// introducing one more tile of that color somewhere could complete a
// match.
func rescueColors(b *grid.Board) []grid.Color {
	var out []grid.Color
	for _, c := range grid.Palette {
		if hasNearPair(b, c) {
			out = append(out, c)
		}
	}
	return out
}

// hasNearPair reports whether two regular tiles of color c sit in the same
// row or column at distance 1 or 2 apart ("cc" or "c_c"), the patterns one
// extra tile can extend into a run of three.
func hasNearPair(b *grid.Board, c grid.Color) bool {
	isC := func(pos grid.Coord) bool {
		t := b.Get(pos)
		return t.Kind == grid.KindRegular && t.Color == c
	}
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			p := grid.C(x, y)
			if !isC(p) {
				continue
			}
			for _, d := range [2]grid.Direction{grid.DirRight, grid.DirDown} {
				if isC(p.Add(d)) || isC(p.Add(d).Add(d)) {
					return true
				}
			}
		}
	}
	return false
}
