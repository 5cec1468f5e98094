package momentum

import (
	"math"
	"sort"

	"github.com/ninakotova/gemgrid/internal/config"
	"github.com/ninakotova/gemgrid/internal/grid"
	"github.com/ninakotova/gemgrid/internal/match"
)

// Scorer turns match groups into points: base points per cleared tile,
// scaled by the best position-ring multiplier the group touches and the
// heat multiplier, plus flat compound-pattern bonuses.
type Scorer struct {
	cfg     config.ScoringConfig
	centers []grid.Coord
}

// NewScorer creates a scorer for a board of the given dimensions. Rings
// are measured from the board's reserved center cells.
func NewScorer(cfg config.ScoringConfig, b *grid.Board) *Scorer {
	rings := make([]config.RingConfig, len(cfg.Rings))
	copy(rings, cfg.Rings)
	sort.Slice(rings, func(i, j int) bool { return rings[i].Radius < rings[j].Radius })
	cfg.Rings = rings
	return &Scorer{cfg: cfg, centers: b.CenterCells()}
}

// GroupPoints computes the score for one match group under the given heat
// multiplier: size × tile points × ring multiplier × heat multiplier,
// plus the pattern bonus for compound shapes.
func (s *Scorer) GroupPoints(g match.Group, heatMult float64) int {
	base := float64(g.Size() * s.cfg.TilePoints)
	pts := base * s.RingMultiplier(g.Positions) * heatMult
	return int(math.Round(pts)) + s.PatternBonus(g.Shape)
}

// RingMultiplier returns the best (innermost-ring) position multiplier any
// of the positions earns. Positions outside all rings score 1.0.
func (s *Scorer) RingMultiplier(positions []grid.Coord) float64 {
	best := 1.0
	for _, p := range positions {
		d := s.centerDistance(p)
		for _, ring := range s.cfg.Rings {
			if d <= ring.Radius {
				if ring.Multiplier > best {
					best = ring.Multiplier
				}
				break
			}
		}
	}
	return best
}

// PatternBonus returns the flat bonus for compound shapes; lines earn none.
func (s *Scorer) PatternBonus(shape match.Shape) int {
	switch shape {
	case match.ShapeL:
		return s.cfg.Pattern.L
	case match.ShapeT:
		return s.cfg.Pattern.T
	case match.ShapeCross:
		return s.cfg.Pattern.Cross
	default:
		return 0
	}
}

// centerDistance is the Chebyshev distance to the nearest reserved center
// cell, so even-sized boards measure from their 2×2 center block.
func (s *Scorer) centerDistance(p grid.Coord) int {
	best := math.MaxInt
	for _, c := range s.centers {
		dx := abs(p.X - c.X)
		dy := abs(p.Y - c.Y)
		d := dx
		if dy > d {
			d = dy
		}
		if d < best {
			best = d
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
