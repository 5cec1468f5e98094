package momentum

import (
	"math"
	"testing"

	"github.com/ninakotova/gemgrid/internal/config"
	"github.com/ninakotova/gemgrid/internal/grid"
	"github.com/ninakotova/gemgrid/internal/match"
)

func testCfg() config.MomentumConfig {
	return config.Default().Momentum
}

func lineGroup(size int) match.Group {
	positions := make([]grid.Coord, size)
	for i := range positions {
		positions[i] = grid.C(i, 0)
	}
	return match.Group{Positions: positions, Color: grid.ColorRed, Shape: match.ShapeLine}
}

func TestHeatDecayBound(t *testing.T) {
	cfg := testCfg()
	m := NewMeter(cfg)
	m.Accumulate([][]match.Group{{lineGroup(5), lineGroup(5)}}) // warm it up

	initial := m.Heat()
	const n = 3
	for i := 0; i < n; i++ {
		m.Decay()
	}

	want := math.Max(0, initial-n*cfg.DecayPerTurn)
	if m.Heat() != want {
		t.Errorf("heat after %d decays = %v, want %v", n, m.Heat(), want)
	}

	// Decay far past zero clamps at zero.
	for i := 0; i < 100; i++ {
		m.Decay()
	}
	if m.Heat() != 0 {
		t.Errorf("heat = %v after exhaustive decay, want 0", m.Heat())
	}
}

func TestMultiplierDeterminism(t *testing.T) {
	cfg := testCfg()
	m := NewMeter(cfg)

	if got := m.Multiplier(); got != 1.0 {
		t.Errorf("multiplier at heat 0 = %v, want 1.0", got)
	}

	// Saturate the meter.
	for i := 0; i < 50; i++ {
		m.Accumulate([][]match.Group{{lineGroup(5)}})
	}
	if m.Heat() != cfg.MaxHeat {
		t.Fatalf("heat = %v, want saturated %v", m.Heat(), cfg.MaxHeat)
	}
	if got := m.Multiplier(); got != cfg.MaxMultiplier {
		t.Errorf("multiplier at max heat = %v, want %v", got, cfg.MaxMultiplier)
	}
}

func TestMultiplierMonotone(t *testing.T) {
	m := NewMeter(testCfg())
	prev := m.Multiplier()
	for i := 0; i < 20; i++ {
		m.Accumulate([][]match.Group{{lineGroup(3)}})
		cur := m.Multiplier()
		if cur < prev {
			t.Fatalf("multiplier decreased from %v to %v as heat rose", prev, cur)
		}
		prev = cur
	}
}

func TestAccumulateGains(t *testing.T) {
	cfg := testCfg()

	tests := []struct {
		name   string
		levels [][]match.Group
		want   float64
	}{
		{
			name:   "single match-4",
			levels: [][]match.Group{{lineGroup(4)}},
			want:   cfg.HeatMatch4,
		},
		{
			name:   "match-5 and above use the top rate",
			levels: [][]match.Group{{lineGroup(7)}},
			want:   cfg.HeatMatch5,
		},
		{
			name: "two cascade levels add cascade heat",
			levels: [][]match.Group{
				{lineGroup(3), lineGroup(3)},
				{lineGroup(3)},
			},
			want: 3*cfg.HeatMatch3 + cfg.HeatCascade,
		},
		{
			name: "compound shape adds pattern heat",
			levels: [][]match.Group{{
				{Positions: lineGroup(5).Positions, Color: grid.ColorRed, Shape: match.ShapeT},
			}},
			want: cfg.HeatMatch5 + cfg.HeatPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMeter(cfg)
			before, after := m.Accumulate(tt.levels)
			if before != 0 {
				t.Errorf("before = %v, want 0", before)
			}
			if after != tt.want {
				t.Errorf("after = %v, want %v", after, tt.want)
			}
		})
	}
}

func TestLevelTransitions(t *testing.T) {
	cfg := testCfg() // max_heat 10, 4 levels: boundaries at 2.5, 5, 7.5
	m := NewMeter(cfg)

	m.Accumulate([][]match.Group{{lineGroup(5), lineGroup(5)}}) // +8 heat

	trans := m.TakeTransitions()
	if len(trans) != 1 {
		t.Fatalf("transitions = %d, want 1", len(trans))
	}
	if trans[0].OldLevel != 0 || trans[0].NewLevel != 3 {
		t.Errorf("transition = %+v, want 0 -> 3", trans[0])
	}

	// Drained.
	if again := m.TakeTransitions(); len(again) != 0 {
		t.Errorf("TakeTransitions not drained: %v", again)
	}

	m.Decay() // 8 -> 7 crosses the 7.5 boundary
	trans = m.TakeTransitions()
	if len(trans) != 1 || trans[0].NewLevel != 2 {
		t.Errorf("decay transition = %+v, want level 2", trans)
	}
}

func TestScorerRings(t *testing.T) {
	cfg := config.Default().Scoring
	b := grid.NewBoard(8, 8)
	s := NewScorer(cfg, b)

	// A group touching the center block earns the innermost ring.
	center := []grid.Coord{grid.C(3, 3), grid.C(4, 3)}
	if got := s.RingMultiplier(center); got != 2.0 {
		t.Errorf("center ring multiplier = %v, want 2.0", got)
	}

	// Corner positions lie outside all rings.
	corner := []grid.Coord{grid.C(0, 0), grid.C(1, 0)}
	if got := s.RingMultiplier(corner); got != 1.0 {
		t.Errorf("corner ring multiplier = %v, want 1.0", got)
	}
}

func TestScorerGroupPoints(t *testing.T) {
	cfg := config.Default().Scoring
	b := grid.NewBoard(8, 8)
	s := NewScorer(cfg, b)

	// Corner 4-line at heat multiplier 1: 4 tiles × 10 points.
	g := match.Group{
		Positions: []grid.Coord{grid.C(0, 0), grid.C(1, 0), grid.C(2, 0), grid.C(3, 0)},
		Color:     grid.ColorRed,
		Shape:     match.ShapeLine,
	}
	if got := s.GroupPoints(g, 1.0); got != 40 {
		t.Errorf("corner line points = %d, want 40", got)
	}

	// Cross shapes add the flat pattern bonus.
	g.Shape = match.ShapeCross
	if got := s.GroupPoints(g, 1.0); got != 40+cfg.Pattern.Cross {
		t.Errorf("cross points = %d, want %d", got, 40+cfg.Pattern.Cross)
	}
}
