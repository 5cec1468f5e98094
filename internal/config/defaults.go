package config

import (
	_ "embed"
)

//go:embed defaults/gemgrid.yaml
var defaultGemgridYAML []byte

// Default returns the built-in configuration used when no YAML file is
// found. Kept in sync with defaults/gemgrid.yaml.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
		},
		Queue: QueueConfig{
			VisibleSize:     5,
			ReserveSize:     20,
			RefillThreshold: 0.7,
			MaxRun:          4,
			RecentWindow:    12,
		},
		Blocking: BlockingConfig{
			BaseRate:        0.0,
			Ceiling:         0.25,
			RampInterval:    10,
			RampStep:        0.05,
			MaxSimultaneous: 3,
		},
		Orb: OrbConfig{
			BaseRate:     0.05,
			Ceiling:      0.35,
			RampInterval: 15,
			RampStep:     0.05,
			BaseScore:    100,
			AgeBonus:     25,
			Targets: map[string]string{
				"red":    "top",
				"yellow": "right",
				"green":  "bottom",
				"blue":   "left",
				"purple": "top",
				"orange": "bottom",
			},
		},
		Momentum: MomentumConfig{
			MaxHeat:       10,
			DecayPerTurn:  1,
			MaxMultiplier: 10,
			HeatMatch3:    1,
			HeatMatch4:    2,
			HeatMatch5:    4,
			HeatCascade:   1,
			HeatPattern:   2,
			Levels:        4,
		},
		Scoring: ScoringConfig{
			TilePoints: 10,
			Rings: []RingConfig{
				{Radius: 1, Multiplier: 2.0},
				{Radius: 2, Multiplier: 1.5},
			},
			Pattern: PatternBonus{
				L:     50,
				T:     75,
				Cross: 150,
			},
		},
	}
}
