package engine

import (
	"github.com/ninakotova/gemgrid/internal/grid"
	"github.com/ninakotova/gemgrid/internal/match"
)

// Snapshot captures the observable session state for determinism testing,
// the status panel, and run persistence.
type Snapshot struct {
	Turn         int
	Score        int
	Heat         float64
	HeatLevel    int
	Multiplier   float64
	Queue        []grid.Color // visible segment
	Obstacles    int
	Orbs         int
	OrbsScored   int
	MaxCascade   int
	HasLegalSwap bool
}

// Snapshot returns the current session snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Turn:         e.turn,
		Score:        e.score,
		Heat:         e.meter.Heat(),
		HeatLevel:    e.meter.Level(),
		Multiplier:   e.meter.Multiplier(),
		Queue:        e.queue.PeekVisible(e.cfg.Queue.VisibleSize),
		Obstacles:    e.board.Count(grid.KindBlocking),
		Orbs:         e.board.Count(grid.KindPowerOrb),
		OrbsScored:   e.orbsScored,
		MaxCascade:   e.maxCascade,
		HasLegalSwap: match.HasLegalSwap(e.board),
	}
}
