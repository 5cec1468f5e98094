// Package sim runs headless games against the rules engine. It is used to
// balance-test spawn curves and scoring without a terminal attached.
package sim

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ninakotova/gemgrid/internal/config"
	"github.com/ninakotova/gemgrid/internal/engine"
	"github.com/ninakotova/gemgrid/internal/grid"
	"github.com/ninakotova/gemgrid/internal/match"
)

// Stats aggregates everything a headless run produced.
type Stats struct {
	Seed         int64
	Turns        int
	Committed    int
	RolledBack   int
	Score        int
	TilesCleared int
	MaxCascade   int
	MaxHeat      float64
	OrbsSeen     int
	OrbsScored   int
	OrbPoints    int
	Obstacles    int
}

// Runner plays one engine with a greedy policy: every turn it evaluates all
// legal swaps on a board copy and commits the one clearing the most tiles.
type Runner struct {
	eng    *engine.Engine
	logger *log.Logger
	stats  Stats
}

// New creates a runner with a fresh engine for the given seed.
func New(cfg config.Config, seed int64, logger *log.Logger) (*Runner, error) {
	eng, err := engine.New(cfg, seed)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	return &Runner{eng: eng, logger: logger, stats: Stats{Seed: seed}}, nil
}

// Engine exposes the underlying engine, mainly for inspection in tests.
func (r *Runner) Engine() *engine.Engine { return r.eng }

// Stats returns the accumulated run statistics so far.
func (r *Runner) Stats() Stats { return r.stats }

// Run plays up to maxTurns turns and returns the final statistics. It stops
// early only if the board somehow offers no legal swap, which the queue
// generator is supposed to prevent.
func (r *Runner) Run(maxTurns int) (Stats, error) {
	for turn := 0; turn < maxTurns; turn++ {
		swap, ok := r.pickSwap()
		if !ok {
			r.logger.Error("board locked, no legal swaps", "turn", turn)
			return r.stats, fmt.Errorf("sim: no legal swap at turn %d", turn)
		}

		res, err := r.eng.SubmitSelection(swap.A, swap.B)
		if err != nil {
			return r.stats, fmt.Errorf("sim: submit %v-%v: %w", swap.A, swap.B, err)
		}
		r.record(res)

		if res.Committed {
			r.logger.Debug("turn committed",
				"turn", res.Turn,
				"cascade", res.CascadeLevel,
				"cleared", res.ClearedTotal,
				"points", res.ScoreDelta,
				"heat", res.HeatAfter,
			)
		}
	}

	snap := r.eng.Snapshot()
	r.logger.Info("run finished",
		"seed", r.stats.Seed,
		"turns", r.stats.Turns,
		"score", r.stats.Score,
		"maxCascade", r.stats.MaxCascade,
		"maxHeat", r.stats.MaxHeat,
		"orbsScored", r.stats.OrbsScored,
		"obstacles", snap.Obstacles,
	)
	return r.stats, nil
}

// pickSwap scores every legal swap by the tiles its immediate matches would
// clear, preferring compound shapes, and returns the best one. Evaluation
// runs on a board copy so the engine never sees speculative moves.
func (r *Runner) pickSwap() (match.Swap, bool) {
	board := r.eng.Board()
	swaps := match.LegalSwaps(board)
	if len(swaps) == 0 {
		return match.Swap{}, false
	}

	best := swaps[0]
	bestScore := -1
	for _, s := range swaps {
		board.Swap(s.A, s.B)
		score := 0
		for _, g := range match.FindAt(board, []grid.Coord{s.A, s.B}) {
			score += g.Size()
			if g.Shape != match.ShapeLine {
				score += 3
			}
		}
		board.Swap(s.A, s.B)
		if score > bestScore {
			best, bestScore = s, score
		}
	}
	return best, true
}

func (r *Runner) record(res *engine.TurnResult) {
	r.stats.Turns++
	if !res.Committed {
		r.stats.RolledBack++
		return
	}
	r.stats.Committed++
	r.stats.Score += res.ScoreDelta
	r.stats.TilesCleared += res.ClearedTotal
	r.stats.OrbPoints += res.OrbPoints
	if res.CascadeLevel > r.stats.MaxCascade {
		r.stats.MaxCascade = res.CascadeLevel
	}
	if res.HeatAfter > r.stats.MaxHeat {
		r.stats.MaxHeat = res.HeatAfter
	}
	for _, ef := range res.Effects {
		switch ef.Kind {
		case engine.EffectOrbSpawn:
			r.stats.OrbsSeen++
		case engine.EffectOrbExit:
			if ef.Scored {
				r.stats.OrbsScored++
			}
		case engine.EffectObstacleSpawn:
			r.stats.Obstacles++
		}
	}
}
