// Package momentum implements the heat accumulator that drives the score
// multiplier, and the position/pattern scoring rules.
//
// Heat rises on large matches, cascade chains, and compound shapes, and
// decays a fixed amount once per completed turn. The multiplier
// interpolates linearly from 1.0 at zero heat to the configured maximum at
// full heat.
package momentum

import (
	"math"

	"github.com/ninakotova/gemgrid/internal/config"
	"github.com/ninakotova/gemgrid/internal/match"
)

// Transition records the heat meter crossing a level boundary. Consumers
// (UI, audio) key feedback off these rather than raw heat values.
type Transition struct {
	OldLevel, NewLevel int
}

// Meter is the momentum state: a single clamped heat scalar plus pending
// level-transition events.
type Meter struct {
	cfg     config.MomentumConfig
	heat    float64
	pending []Transition
}

// NewMeter creates a cold meter.
func NewMeter(cfg config.MomentumConfig) *Meter {
	return &Meter{cfg: cfg}
}

// Heat returns the current heat value in [0, MaxHeat].
func (m *Meter) Heat() float64 {
	return m.heat
}

// Level buckets the heat into [0, cfg.Levels].
func (m *Meter) Level() int {
	return m.levelOf(m.heat)
}

func (m *Meter) levelOf(heat float64) int {
	level := int(heat * float64(m.cfg.Levels) / m.cfg.MaxHeat)
	if level > m.cfg.Levels {
		level = m.cfg.Levels
	}
	return level
}

// Multiplier returns the score multiplier for the current heat:
// 1.0 when cold, cfg.MaxMultiplier at full heat, linear in between and
// monotonically non-decreasing.
func (m *Meter) Multiplier() float64 {
	return 1 + m.heat/m.cfg.MaxHeat*(m.cfg.MaxMultiplier-1)
}

// Accumulate consumes one turn's recorded cascade levels, raising heat per
// match size, compound shape, and cascade depth. Returns heat before and
// after.
func (m *Meter) Accumulate(levels [][]match.Group) (before, after float64) {
	before = m.heat
	gain := 0.0
	for _, groups := range levels {
		for _, g := range groups {
			gain += m.matchHeat(g.Size())
			if g.Shape != match.ShapeLine {
				gain += m.cfg.HeatPattern
			}
		}
	}
	if len(levels) > 1 {
		gain += float64(len(levels)-1) * m.cfg.HeatCascade
	}
	m.setHeat(m.heat + gain)
	return before, m.heat
}

// Decay cools the meter by the per-turn amount. Called exactly once per
// completed turn, after scoring.
func (m *Meter) Decay() {
	m.setHeat(m.heat - m.cfg.DecayPerTurn)
}

// TakeTransitions drains the pending level-transition events.
func (m *Meter) TakeTransitions() []Transition {
	out := m.pending
	m.pending = nil
	return out
}

func (m *Meter) matchHeat(size int) float64 {
	switch {
	case size >= 5:
		return m.cfg.HeatMatch5
	case size == 4:
		return m.cfg.HeatMatch4
	default:
		return m.cfg.HeatMatch3
	}
}

func (m *Meter) setHeat(h float64) {
	h = math.Max(0, math.Min(m.cfg.MaxHeat, h))
	oldLevel := m.levelOf(m.heat)
	newLevel := m.levelOf(h)
	m.heat = h
	if oldLevel != newLevel {
		m.pending = append(m.pending, Transition{OldLevel: oldLevel, NewLevel: newLevel})
	}
}
