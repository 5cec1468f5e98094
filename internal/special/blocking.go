// Package special implements the autonomous lifecycles of the two
// non-matchable tile types: blocking obstacles and edge-seeking power orbs.
package special

import (
	"math/rand"

	"github.com/ninakotova/gemgrid/internal/config"
	"github.com/ninakotova/gemgrid/internal/grid"
	"github.com/ninakotova/gemgrid/internal/match"
)

// BlockingController runs the blocking-obstacle spawn curve. Obstacles are
// removed by gravity displacing them off the board edge, so removal is
// observed through gravity results rather than here.
type BlockingController struct {
	cfg config.BlockingConfig
	rng *rand.Rand
}

// NewBlockingController creates a controller using the given RNG for spawn
// rolls and placement choice.
func NewBlockingController(cfg config.BlockingConfig, rng *rand.Rand) *BlockingController {
	return &BlockingController{cfg: cfg, rng: rng}
}

// SpawnRate returns the spawn probability at the given turn: the base rate
// plus one ramp step per elapsed ramp interval, capped at the ceiling.
func (c *BlockingController) SpawnRate(turn int) float64 {
	rate := c.cfg.BaseRate + c.cfg.RampStep*float64(turn/c.cfg.RampInterval)
	if rate > c.cfg.Ceiling {
		rate = c.cfg.Ceiling
	}
	return rate
}

// Update runs the once-per-turn spawn logic: rolls the ramped probability,
// honors the simultaneous cap, and converts one eligible regular tile into
// an obstacle. Eligible cells are regular-occupied, off the reserved
// center, and verified not to leave an immediate match behind. Returns the
// spawn position, or ok=false when nothing spawned.
func (c *BlockingController) Update(b *grid.Board, turn int) (grid.Coord, bool) {
	if b.Count(grid.KindBlocking) >= c.cfg.MaxSimultaneous {
		return grid.Coord{}, false
	}
	if c.rng.Float64() >= c.SpawnRate(turn) {
		return grid.Coord{}, false
	}

	candidates := c.eligibleCells(b)
	if len(candidates) == 0 {
		return grid.Coord{}, false
	}
	pos := candidates[c.rng.Intn(len(candidates))]
	b.Set(pos, grid.Blocking())
	return pos, true
}

func (c *BlockingController) eligibleCells(b *grid.Board) []grid.Coord {
	reserved := make(map[grid.Coord]bool)
	for _, cc := range b.CenterCells() {
		reserved[cc] = true
	}

	var out []grid.Coord
	for _, pos := range b.AllCoords() {
		if reserved[pos] || b.Get(pos).Kind != grid.KindRegular {
			continue
		}
		// Placing an obstacle only removes match material, but the no-match
		// rule is part of the spawn contract; verify against the dirty cell.
		prev := b.Get(pos)
		b.Set(pos, grid.Blocking())
		clean := len(match.FindAt(b, []grid.Coord{pos})) == 0
		b.Set(pos, prev)
		if clean {
			out = append(out, pos)
		}
	}
	return out
}
