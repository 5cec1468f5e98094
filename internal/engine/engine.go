// Package engine composes the gemgrid components into the per-turn state
// machine: selection validation, tentative swap, match check with rollback,
// player-directed gravity, cascade resolution, momentum scoring, special
// tile updates, and queue refill.
//
// The engine is single-threaded and turn-synchronous: SubmitSelection runs
// one full turn to completion and no component mutates the board outside
// that sequence. Callers sharing an engine across goroutines must
// serialize turns externally.
package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ninakotova/gemgrid/internal/config"
	"github.com/ninakotova/gemgrid/internal/gravity"
	"github.com/ninakotova/gemgrid/internal/grid"
	"github.com/ninakotova/gemgrid/internal/match"
	"github.com/ninakotova/gemgrid/internal/momentum"
	"github.com/ninakotova/gemgrid/internal/queue"
	"github.com/ninakotova/gemgrid/internal/special"
)

// Selection rejection reasons. These are rejections, not faults: the board
// is untouched when any of them is returned.
var (
	ErrOutOfBounds  = errors.New("engine: selection out of bounds")
	ErrNotAdjacent  = errors.New("engine: selection cells not adjacent")
	ErrNotSwappable = errors.New("engine: tile cannot be swapped")
)

// Engine owns the board and orchestrates turns. Construct with New; all
// collaborators are injected at construction time and there is no global
// state.
type Engine struct {
	cfg      config.Config
	board    *grid.Board
	queue    *queue.Generator
	meter    *momentum.Meter
	scorer   *momentum.Scorer
	blocking *special.BlockingController
	orbs     *special.OrbController
	rng      *rand.Rand

	phase      Phase
	turn       int // committed turns; the engine's virtual clock
	score      int
	orbsScored int
	maxCascade int
}

// New creates an engine with a freshly generated board. The seed drives
// every random decision (initial fill, queue, spawn rolls), so equal seeds
// replay identical sessions.
func New(cfg config.Config, seed int64) (*Engine, error) {
	rng := rand.New(rand.NewSource(seed))
	board, err := generateBoard(cfg.Board, rng)
	if err != nil {
		return nil, err
	}
	return assemble(cfg, board, rng)
}

// NewWithBoard creates an engine around an explicit starting board, so
// tests and replays never need to bypass encapsulation.
func NewWithBoard(cfg config.Config, seed int64, board *grid.Board) (*Engine, error) {
	if board.W != cfg.Board.Width || board.H != cfg.Board.Height {
		return nil, fmt.Errorf("engine: board %dx%d does not match config %dx%d",
			board.W, board.H, cfg.Board.Width, cfg.Board.Height)
	}
	return assemble(cfg, board, rand.New(rand.NewSource(seed)))
}

func assemble(cfg config.Config, board *grid.Board, rng *rand.Rand) (*Engine, error) {
	targets, err := cfg.Orb.TargetEdges()
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:      cfg,
		board:    board,
		queue:    queue.New(cfg.Queue, rng.Int63(), board),
		meter:    momentum.NewMeter(cfg.Momentum),
		scorer:   momentum.NewScorer(cfg.Scoring, board),
		blocking: special.NewBlockingController(cfg.Blocking, rng),
		orbs:     special.NewOrbController(cfg.Orb, targets, board, rng),
		rng:      rng,
		phase:    PhaseIdle,
	}, nil
}

// Board returns a copy of the current board for rendering and inspection.
func (e *Engine) Board() *grid.Board {
	return e.board.Clone()
}

// Score returns the accumulated score.
func (e *Engine) Score() int {
	return e.score
}

// Turn returns the number of committed turns.
func (e *Engine) Turn() int {
	return e.turn
}

// Queue exposes the upcoming visible colors.
func (e *Engine) Queue(n int) []grid.Color {
	return e.queue.PeekVisible(n)
}

// Heat returns the current momentum heat and multiplier.
func (e *Engine) Heat() (heat, multiplier float64) {
	return e.meter.Heat(), e.meter.Multiplier()
}

// LevelResult records one cascade level's matches for scoring and display.
type LevelResult struct {
	Level   int
	Groups  []match.Group
	Cleared int
}

// TurnResult is everything one SubmitSelection call produced.
type TurnResult struct {
	Committed  bool
	RolledBack bool
	Turn       int
	GravityDir grid.Direction

	Levels       []LevelResult
	ClearedTotal int
	CascadeLevel int // deepest cascade level reached this turn

	ScoreDelta  int // match points plus orb points
	OrbPoints   int
	HeatBefore  float64
	HeatAfter   float64
	Multiplier  float64
	Transitions []momentum.Transition

	Effects []Effect
}

// SubmitSelection runs one full turn for a committed selection of two
// adjacent cells. Invalid selections are rejected with an error before any
// mutation. A swap that produces no match is rolled back and reported in
// the result; it is not an error and costs no gravity or scoring work.
func (e *Engine) SubmitSelection(a, b grid.Coord) (*TurnResult, error) {
	if !e.board.InBounds(a) || !e.board.InBounds(b) {
		return nil, ErrOutOfBounds
	}
	if !a.Adjacent(b) {
		return nil, ErrNotAdjacent
	}
	if !match.Swappable(e.board.Get(a), e.board.Get(b)) {
		return nil, ErrNotSwappable
	}

	// The gravity direction is derived from the cached selection vector
	// (first cell toward second), not recomputed after the swap.
	dir := grid.DirectionBetween(a, b)
	res := &TurnResult{GravityDir: dir}

	e.phase = PhaseSwapTentative
	e.board.Swap(a, b)
	res.Effects = append(res.Effects, Effect{Kind: EffectSwap, Phase: PhaseSwapTentative, From: a, To: b})

	e.phase = PhaseMatchCheck
	groups := match.FindAt(e.board, []grid.Coord{a, b})
	if len(groups) == 0 {
		// Rollback: restore the board exactly, no gravity computed.
		e.phase = PhaseRollback
		e.board.Swap(a, b)
		res.Effects = append(res.Effects, Effect{Kind: EffectRollback, Phase: PhaseRollback, From: b, To: a})
		res.RolledBack = true
		e.phase = PhaseIdle
		return res, nil
	}

	e.phase = PhaseCommit
	e.turn++
	res.Committed = true
	res.Turn = e.turn

	// The swap's matches clear before any gravity runs: a settle can eject
	// leading-edge obstacles and shift whole columns, which would invalidate
	// the positions recorded at match check. Each cascade level applies
	// gravity right after its clear, so the commit needs no settle of its
	// own.
	e.phase = PhaseCascadeLoop
	e.resolveCascades(dir, groups, res)

	e.phase = PhaseScoreApply
	e.scoreLevels(res, 0)

	e.phase = PhaseSpecialUpdate
	e.updateSpecials(dir, res)

	// Orb displacement and the refills behind orb and obstacle exits can
	// line up fresh runs. Resolve and score them as further cascade levels
	// of the same turn so an idle board is always a stable board.
	if extra := match.Find(e.board); len(extra) > 0 {
		from := len(res.Levels)
		e.phase = PhaseCascadeLoop
		e.resolveCascades(dir, extra, res)
		e.phase = PhaseScoreApply
		e.scoreLevels(res, from)
	}

	// Heat decays exactly once per committed turn, after all scoring.
	e.meter.Decay()
	res.Transitions = e.meter.TakeTransitions()

	e.phase = PhaseQueueRefill
	if e.queue.NeedsRefill() {
		e.queue.Refill(e.board)
	}

	e.phase = PhaseIdle
	return res, nil
}

// settle runs one gravity pass and translates its records into effects.
func (e *Engine) settle(dir grid.Direction, cascade int, res *TurnResult) {
	phase := e.phase
	result := gravity.Settle(e.board, dir, e.supply())
	for _, mv := range result.Moves {
		res.Effects = append(res.Effects, Effect{
			Kind: EffectMove, Phase: phase, From: mv.From, To: mv.To, Tile: mv.Tile, Cascade: cascade,
		})
	}
	for _, sp := range result.Spawns {
		res.Effects = append(res.Effects, Effect{
			Kind: EffectSpawn, Phase: phase, To: sp.At, Tile: sp.Tile, Cascade: cascade,
		})
	}
	for _, ex := range result.Exits {
		res.Effects = append(res.Effects, Effect{
			Kind: EffectObstacleExit, Phase: phase, From: ex.From, Tile: ex.Tile, Cascade: cascade,
		})
	}
}

// supply adapts the tile queue into a gravity fill callback.
func (e *Engine) supply() gravity.Supply {
	return func(grid.Coord) (grid.Tile, bool) {
		return grid.Regular(e.queue.Consume(e.board)), true
	}
}

// scoreLevels consumes the turn's recorded match groups from the given
// level index onward: heat gains first, then every group is scored under
// the resulting multiplier. Levels scored earlier in the same turn keep
// their points; the multiplier and heat-after reported on the result track
// the latest pass. Decay is the caller's responsibility.
func (e *Engine) scoreLevels(res *TurnResult, from int) {
	levels := make([][]match.Group, 0, len(res.Levels)-from)
	for _, lv := range res.Levels[from:] {
		levels = append(levels, lv.Groups)
	}
	before, after := e.meter.Accumulate(levels)
	if from == 0 {
		res.HeatBefore = before
	}
	res.HeatAfter = after
	res.Multiplier = e.meter.Multiplier()

	points := 0
	for _, lv := range res.Levels[from:] {
		for _, g := range lv.Groups {
			points += e.scorer.GroupPoints(g, res.Multiplier)
		}
	}
	e.score += points
	res.ScoreDelta += points
}

// updateSpecials runs the one-step-per-turn orb and obstacle lifecycles.
// Orbs move before the obstacle spawn roll so a newly placed obstacle
// cannot block an orb in the same turn it appears.
func (e *Engine) updateSpecials(dir grid.Direction, res *TurnResult) {
	orbRes := e.orbs.Update(e.board, dir)
	for _, mv := range orbRes.Moves {
		res.Effects = append(res.Effects, Effect{
			Kind: EffectMove, Phase: PhaseSpecialUpdate, From: mv.From, To: mv.To, Tile: mv.Tile,
		})
	}
	for _, ex := range orbRes.Exits {
		res.Effects = append(res.Effects, Effect{
			Kind: EffectOrbExit, Phase: PhaseSpecialUpdate, From: ex.From, Tile: ex.Tile,
			Scored: ex.Scored, Points: ex.Points,
		})
		e.score += ex.Points
		res.ScoreDelta += ex.Points
		res.OrbPoints += ex.Points
		if ex.Scored {
			e.orbsScored++
		}
	}

	if pos, ok := e.blocking.Update(e.board, e.turn); ok {
		res.Effects = append(res.Effects, Effect{
			Kind: EffectObstacleSpawn, Phase: PhaseSpecialUpdate, To: pos, Tile: grid.Blocking(),
		})
	}

	// Orb exits and displacement leave holes and may shuffle tiles; settle
	// them along the turn's direction so the board is full again.
	e.settle(dir, 0, res)
}

// generateBoard fills a fresh board with regular tiles, avoiding any
// initial three-in-a-row runs and retrying until at least one legal swap
// exists.
func generateBoard(cfg config.BoardConfig, rng *rand.Rand) (*grid.Board, error) {
	const attempts = 100
	for try := 0; try < attempts; try++ {
		b := grid.NewBoard(cfg.Width, cfg.Height)
		for _, pos := range b.AllCoords() {
			b.Set(pos, grid.Regular(pickColor(b, pos, rng)))
		}
		if match.HasLegalSwap(b) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("engine: could not generate a playable %dx%d board", cfg.Width, cfg.Height)
}

// pickColor chooses a color that does not complete a run of three with the
// two cells to the left or above.
func pickColor(b *grid.Board, pos grid.Coord, rng *rand.Rand) grid.Color {
	banned := make(map[grid.Color]bool, 2)
	left1 := b.Get(pos.Add(grid.DirLeft))
	left2 := b.Get(pos.Add(grid.DirLeft).Add(grid.DirLeft))
	if left1.Matchable() && left2.Matchable() && left1.Color == left2.Color {
		banned[left1.Color] = true
	}
	up1 := b.Get(pos.Add(grid.DirUp))
	up2 := b.Get(pos.Add(grid.DirUp).Add(grid.DirUp))
	if up1.Matchable() && up2.Matchable() && up1.Color == up2.Color {
		banned[up1.Color] = true
	}

	for {
		c := grid.Palette[rng.Intn(len(grid.Palette))]
		if !banned[c] {
			return c
		}
	}
}
