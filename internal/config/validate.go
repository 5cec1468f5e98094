package config

import (
	"github.com/charmbracelet/log"
)

// Board size limits. Below 4 there is no room for a match plus a swap;
// above 64 the look-ahead analysis cost stops being negligible.
const (
	minBoardDim = 4
	maxBoardDim = 64
)

// Normalize clamps malformed values to the nearest valid ones, logging a
// diagnostic for each correction. Configuration mistakes are repaired at
// load time so they can never surface as a runtime fault mid-turn.
// A nil logger uses the package default.
func (c *Config) Normalize(logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}

	clampInt(logger, "board.width", &c.Board.Width, minBoardDim, maxBoardDim)
	clampInt(logger, "board.height", &c.Board.Height, minBoardDim, maxBoardDim)

	clampInt(logger, "queue.visible_size", &c.Queue.VisibleSize, 1, 32)
	clampInt(logger, "queue.reserve_size", &c.Queue.ReserveSize, c.Queue.VisibleSize, 256)
	clampFloat(logger, "queue.refill_threshold", &c.Queue.RefillThreshold, 0, 1)
	clampInt(logger, "queue.max_run", &c.Queue.MaxRun, 2, c.Queue.ReserveSize)
	clampInt(logger, "queue.recent_window", &c.Queue.RecentWindow, 1, c.Queue.VisibleSize+c.Queue.ReserveSize)

	normalizeSpawnCurve(logger, "blocking", &c.Blocking.BaseRate, &c.Blocking.Ceiling, &c.Blocking.RampInterval, &c.Blocking.RampStep)
	clampInt(logger, "blocking.max_simultaneous", &c.Blocking.MaxSimultaneous, 0, c.Board.Width*c.Board.Height/4)

	normalizeSpawnCurve(logger, "orb", &c.Orb.BaseRate, &c.Orb.Ceiling, &c.Orb.RampInterval, &c.Orb.RampStep)
	clampInt(logger, "orb.base_score", &c.Orb.BaseScore, 0, 1<<20)
	clampInt(logger, "orb.age_bonus", &c.Orb.AgeBonus, 0, 1<<20)

	clampFloat(logger, "momentum.max_heat", &c.Momentum.MaxHeat, 1, 1<<20)
	clampFloat(logger, "momentum.decay_per_turn", &c.Momentum.DecayPerTurn, 0, c.Momentum.MaxHeat)
	clampFloat(logger, "momentum.max_multiplier", &c.Momentum.MaxMultiplier, 1, 1<<20)
	clampFloat(logger, "momentum.heat_match3", &c.Momentum.HeatMatch3, 0, c.Momentum.MaxHeat)
	clampFloat(logger, "momentum.heat_match4", &c.Momentum.HeatMatch4, 0, c.Momentum.MaxHeat)
	clampFloat(logger, "momentum.heat_match5", &c.Momentum.HeatMatch5, 0, c.Momentum.MaxHeat)
	clampFloat(logger, "momentum.heat_cascade", &c.Momentum.HeatCascade, 0, c.Momentum.MaxHeat)
	clampFloat(logger, "momentum.heat_pattern", &c.Momentum.HeatPattern, 0, c.Momentum.MaxHeat)
	clampInt(logger, "momentum.levels", &c.Momentum.Levels, 1, 64)

	clampInt(logger, "scoring.tile_points", &c.Scoring.TilePoints, 1, 1<<20)
	for i := range c.Scoring.Rings {
		clampFloat(logger, "scoring.rings.multiplier", &c.Scoring.Rings[i].Multiplier, 1, 1<<10)
		clampInt(logger, "scoring.rings.radius", &c.Scoring.Rings[i].Radius, 0, maxBoardDim)
	}
	clampInt(logger, "scoring.pattern.l", &c.Scoring.Pattern.L, 0, 1<<20)
	clampInt(logger, "scoring.pattern.t", &c.Scoring.Pattern.T, 0, 1<<20)
	clampInt(logger, "scoring.pattern.cross", &c.Scoring.Pattern.Cross, 0, 1<<20)
}

// normalizeSpawnCurve repairs a probability ramp: rates in [0,1], a ceiling
// never below the base rate, and a positive ramp interval.
func normalizeSpawnCurve(logger *log.Logger, name string, base, ceiling *float64, interval *int, step *float64) {
	clampFloat(logger, name+".base_rate", base, 0, 1)
	clampFloat(logger, name+".ceiling", ceiling, 0, 1)
	if *ceiling < *base {
		logger.Warn("config: spawn ceiling below base rate, raising to base",
			"curve", name, "base", *base, "ceiling", *ceiling)
		*ceiling = *base
	}
	clampInt(logger, name+".ramp_interval", interval, 1, 1<<20)
	clampFloat(logger, name+".ramp_step", step, 0, 1)
}

func clampInt(logger *log.Logger, name string, v *int, lo, hi int) {
	switch {
	case *v < lo:
		logger.Warn("config: value below minimum, clamping", "key", name, "value", *v, "min", lo)
		*v = lo
	case *v > hi:
		logger.Warn("config: value above maximum, clamping", "key", name, "value", *v, "max", hi)
		*v = hi
	}
}

func clampFloat(logger *log.Logger, name string, v *float64, lo, hi float64) {
	switch {
	case *v < lo:
		logger.Warn("config: value below minimum, clamping", "key", name, "value", *v, "min", lo)
		*v = lo
	case *v > hi:
		logger.Warn("config: value above maximum, clamping", "key", name, "value", *v, "max", hi)
		*v = hi
	}
}
