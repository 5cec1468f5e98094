package engine

import (
	"fmt"

	"github.com/ninakotova/gemgrid/internal/grid"
	"github.com/ninakotova/gemgrid/internal/match"
)

// resolveCascades repeatedly clears matches and resettles the board until
// a detection pass finds nothing. The first level's groups come from the
// caller's detection pass on the current board; later levels rescan the
// whole board because gravity touches cells far from the original swap.
// Each level is recorded for scoring, numbered after any levels already on
// the result. Groups are always cleared before the level's settle runs, so
// recorded positions never go stale. There is no artificial loop bound: a
// pass with zero matches is the only terminal condition.
func (e *Engine) resolveCascades(dir grid.Direction, first []match.Group, res *TurnResult) {
	groups := first
	for len(groups) > 0 {
		level := len(res.Levels) + 1
		cleared := e.clearGroups(groups, level, res)

		// Vacated reserved center cells may spawn orbs before gravity can
		// refill them.
		for _, sp := range e.orbs.OnCleared(e.board, e.turn, cleared) {
			res.Effects = append(res.Effects, Effect{
				Kind: EffectOrbSpawn, Phase: PhaseCascadeLoop, To: sp.At, Tile: sp.Tile, Cascade: level,
			})
		}

		e.phase = PhaseGravityApply
		e.settle(dir, level, res)
		e.phase = PhaseCascadeLoop

		res.Levels = append(res.Levels, LevelResult{Level: level, Groups: groups, Cleared: len(cleared)})
		res.ClearedTotal += len(cleared)
		res.CascadeLevel = level
		if level > e.maxCascade {
			e.maxCascade = level
		}

		groups = match.Find(e.board)
	}
}

// clearGroups removes every matched tile, emitting one clear effect per
// cell. Merged groups never overlap, so no cell is cleared twice.
func (e *Engine) clearGroups(groups []match.Group, level int, res *TurnResult) []grid.Coord {
	var cleared []grid.Coord
	for _, g := range groups {
		for _, pos := range g.Positions {
			t := e.board.Get(pos)
			if !t.Matchable() {
				// A non-regular tile inside a match group is a programming
				// error, not a game state; fail loudly.
				panic(fmt.Sprintf("engine: match group contains unmatchable tile %v at %v", t, pos))
			}
			e.board.Clear(pos)
			cleared = append(cleared, pos)
			res.Effects = append(res.Effects, Effect{
				Kind: EffectClear, Phase: PhaseCascadeLoop, From: pos, Tile: t, Cascade: level,
			})
		}
	}
	return cleared
}
