// Package config provides YAML-based configuration loading and validation
// for the gemgrid engine.
package config

import (
	"fmt"

	"github.com/ninakotova/gemgrid/internal/grid"
)

// Config contains all tunable parameters for a gemgrid session.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Queue    QueueConfig    `yaml:"queue"`
	Blocking BlockingConfig `yaml:"blocking"`
	Orb      OrbConfig      `yaml:"orb"`
	Momentum MomentumConfig `yaml:"momentum"`
	Scoring  ScoringConfig  `yaml:"scoring"`
}

// BoardConfig defines the playing field dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// QueueConfig defines the upcoming-tile queue and its anti-frustration
// constraints.
type QueueConfig struct {
	VisibleSize int `yaml:"visible_size"` // player-facing segment length
	ReserveSize int `yaml:"reserve_size"` // hidden look-ahead segment capacity
	// RefillThreshold is the reserve fill fraction below which a refill
	// triggers.
	RefillThreshold float64 `yaml:"refill_threshold"`
	// MaxRun is the maximum allowed run of identical colors in the
	// look-ahead window.
	MaxRun int `yaml:"max_run"`
	// RecentWindow is how many recent window entries the
	// under-representation bias considers.
	RecentWindow int `yaml:"recent_window"`
}

// BlockingConfig defines the blocking-obstacle spawn curve.
type BlockingConfig struct {
	BaseRate        float64 `yaml:"base_rate"`        // spawn probability at turn 0
	Ceiling         float64 `yaml:"ceiling"`          // maximum spawn probability
	RampInterval    int     `yaml:"ramp_interval"`    // turns per probability step
	RampStep        float64 `yaml:"ramp_step"`        // probability added per step
	MaxSimultaneous int     `yaml:"max_simultaneous"` // obstacle count cap
}

// OrbConfig defines the power-orb spawn curve, scoring, and per-color
// target edges.
type OrbConfig struct {
	BaseRate     float64 `yaml:"base_rate"`
	Ceiling      float64 `yaml:"ceiling"`
	RampInterval int     `yaml:"ramp_interval"`
	RampStep     float64 `yaml:"ramp_step"`
	BaseScore    int     `yaml:"base_score"`
	AgeBonus     int     `yaml:"age_bonus"`
	// Targets maps a color name to the edge name an orb of that color must
	// reach to score.
	Targets map[string]string `yaml:"targets"`
}

// MomentumConfig defines the heat accumulator and its multiplier curve.
type MomentumConfig struct {
	MaxHeat       float64 `yaml:"max_heat"`
	DecayPerTurn  float64 `yaml:"decay_per_turn"`
	MaxMultiplier float64 `yaml:"max_multiplier"`
	HeatMatch3    float64 `yaml:"heat_match3"`
	HeatMatch4    float64 `yaml:"heat_match4"`
	HeatMatch5    float64 `yaml:"heat_match5"`  // matches of size 5 and above
	HeatCascade   float64 `yaml:"heat_cascade"` // per cascade level beyond the first
	HeatPattern   float64 `yaml:"heat_pattern"` // per compound-shape group
	// Levels is the number of heat buckets used for level-transition events.
	Levels int `yaml:"levels"`
}

// ScoringConfig defines base points and position/pattern bonuses.
type ScoringConfig struct {
	TilePoints int          `yaml:"tile_points"` // points per cleared tile before multipliers
	Rings      []RingConfig `yaml:"rings"`
	Pattern    PatternBonus `yaml:"pattern"`
}

// RingConfig is one concentric position-multiplier ring. Radius is the
// Chebyshev distance from the board center; the innermost ring containing
// a match wins.
type RingConfig struct {
	Radius     int     `yaml:"radius"`
	Multiplier float64 `yaml:"multiplier"`
}

// PatternBonus is the flat point bonus per compound match shape.
type PatternBonus struct {
	L     int `yaml:"l"`
	T     int `yaml:"t"`
	Cross int `yaml:"cross"`
}

// TargetEdges resolves the orb color→edge name mapping into typed values.
// Unknown color or edge names are an error rather than a clamp: a
// misassigned orb would be unwinnable.
func (o OrbConfig) TargetEdges() (map[grid.Color]grid.Edge, error) {
	out := make(map[grid.Color]grid.Edge, len(o.Targets))
	for colorName, edgeName := range o.Targets {
		color, ok := colorByName(colorName)
		if !ok {
			return nil, fmt.Errorf("config: unknown orb color %q", colorName)
		}
		edge, ok := edgeByName(edgeName)
		if !ok {
			return nil, fmt.Errorf("config: unknown orb target edge %q", edgeName)
		}
		out[color] = edge
	}
	return out, nil
}

func colorByName(name string) (grid.Color, bool) {
	for _, c := range grid.Palette {
		if c.String() == name {
			return c, true
		}
	}
	return grid.ColorNone, false
}

func edgeByName(name string) (grid.Edge, bool) {
	for _, e := range grid.Edges {
		if e.String() == name {
			return e, true
		}
	}
	return grid.EdgeTop, false
}
