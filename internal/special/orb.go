package special

import (
	"math/rand"
	"sort"

	"github.com/ninakotova/gemgrid/internal/config"
	"github.com/ninakotova/gemgrid/internal/grid"
)

// OrbSpawn records a power orb appearing in a vacated center cell.
type OrbSpawn struct {
	At   grid.Coord
	Tile grid.Tile
}

// OrbMove records an orb stepping one cell toward its target edge. When
// the destination held a regular tile the two exchange places.
type OrbMove struct {
	From, To grid.Coord
	Tile     grid.Tile
}

// OrbExit records an orb leaving the board: scored on its target edge, or
// forfeited on any other edge.
type OrbExit struct {
	From   grid.Coord
	Tile   grid.Tile
	Scored bool
	Points int
}

// OrbResult is everything the orb controller did in one turn.
type OrbResult struct {
	Moves []OrbMove
	Exits []OrbExit
}

// OrbController runs the power-orb lifecycle: center-cell spawning after a
// match vacates the cell, one aging-and-movement step per committed turn,
// and age-based scoring on the target edge.
type OrbController struct {
	cfg     config.OrbConfig
	targets map[grid.Color]grid.Edge
	colors  []grid.Color // spawnable colors in fixed order
	rng     *rand.Rand
	centers map[grid.Coord]bool
}

// NewOrbController creates a controller for the given board geometry.
func NewOrbController(cfg config.OrbConfig, targets map[grid.Color]grid.Edge, b *grid.Board, rng *rand.Rand) *OrbController {
	colors := make([]grid.Color, 0, len(targets))
	for c := range targets {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })

	centers := make(map[grid.Coord]bool)
	for _, c := range b.CenterCells() {
		centers[c] = true
	}
	return &OrbController{cfg: cfg, targets: targets, colors: colors, rng: rng, centers: centers}
}

// SpawnRate returns the spawn probability at the given turn.
func (c *OrbController) SpawnRate(turn int) float64 {
	rate := c.cfg.BaseRate + c.cfg.RampStep*float64(turn/c.cfg.RampInterval)
	if rate > c.cfg.Ceiling {
		rate = c.cfg.Ceiling
	}
	return rate
}

// OnCleared is invoked during cascade resolution, after matched tiles are
// removed and before gravity runs. Each vacated reserved center cell rolls
// the spawn curve; successful rolls place an orb immediately so the cell
// is occupied when gravity fills the rest.
func (c *OrbController) OnCleared(b *grid.Board, turn int, cleared []grid.Coord) []OrbSpawn {
	if len(c.colors) == 0 {
		return nil
	}
	var spawns []OrbSpawn
	for _, pos := range cleared {
		if !c.centers[pos] || !b.IsEmpty(pos) {
			continue
		}
		if c.rng.Float64() >= c.SpawnRate(turn) {
			continue
		}
		color := c.colors[c.rng.Intn(len(c.colors))]
		orb := grid.PowerOrb(color, c.targets[color])
		b.Set(pos, orb)
		spawns = append(spawns, OrbSpawn{At: pos, Tile: orb})
	}
	return spawns
}

// Update ages every orb by one turn and attempts one step: along the
// turn's gravity direction when that also closes in on the orb's target
// edge, otherwise straight toward the target edge. An orb standing on its
// target edge after the step scores base + age×bonus and leaves the board;
// standing on any other edge forfeits the orb for zero.
func (c *OrbController) Update(b *grid.Board, gravityDir grid.Direction) OrbResult {
	var res OrbResult
	for _, pos := range orbPositions(b) {
		orb := b.Get(pos)
		orb.Age++

		// Ride the turn's gravity when it also closes distance to the
		// target edge; otherwise head straight for the target. With
		// cardinal gravity the two coincide whenever gravity helps, but
		// the distance test keeps the rule honest if gravity ever gains
		// diagonals.
		step := orb.TargetEdge.Outward()
		if gravDest := pos.Add(gravityDir); !gravityDir.IsZero() && b.InBounds(gravDest) &&
			b.EdgeDistance(gravDest, orb.TargetEdge) < b.EdgeDistance(pos, orb.TargetEdge) {
			step = gravityDir
		}

		dest := pos.Add(step)
		switch {
		case !b.InBounds(dest):
			// Already on the target edge row/column; the step carries the
			// orb off the board.
		case b.IsEmpty(dest):
			b.Clear(pos)
			b.Set(dest, orb)
			res.Moves = append(res.Moves, OrbMove{From: pos, To: dest, Tile: orb})
			pos = dest
		case b.Get(dest).Kind == grid.KindRegular:
			displaced := b.Get(dest)
			b.Set(dest, orb)
			b.Set(pos, displaced)
			res.Moves = append(res.Moves, OrbMove{From: pos, To: dest, Tile: orb})
			pos = dest
		default:
			// Blocked by an obstacle or another orb; stay put this turn.
		}

		if exit, ok := c.exitAt(b, pos, orb); ok {
			res.Exits = append(res.Exits, exit)
			continue
		}
		b.Set(pos, orb)
	}
	return res
}

// exitAt removes the orb if its post-step position sits on a board edge.
// The target edge scores; any other edge forfeits. Corner cells belong to
// both of their edges, so a corner on the target edge still scores.
func (c *OrbController) exitAt(b *grid.Board, pos grid.Coord, orb grid.Tile) (OrbExit, bool) {
	onAnyEdge := false
	for _, e := range grid.Edges {
		if b.OnEdge(pos, e) {
			onAnyEdge = true
			break
		}
	}
	if !onAnyEdge {
		return OrbExit{}, false
	}

	b.Clear(pos)
	if b.OnEdge(pos, orb.TargetEdge) {
		return OrbExit{
			From:   pos,
			Tile:   orb,
			Scored: true,
			Points: c.cfg.BaseScore + orb.Age*c.cfg.AgeBonus,
		}, true
	}
	return OrbExit{From: pos, Tile: orb, Scored: false}, true
}

func orbPositions(b *grid.Board) []grid.Coord {
	var out []grid.Coord
	for _, pos := range b.AllCoords() {
		if b.Get(pos).Kind == grid.KindPowerOrb {
			out = append(out, pos)
		}
	}
	return out
}
