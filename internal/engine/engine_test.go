package engine

import (
	"testing"

	"github.com/ninakotova/gemgrid/internal/config"
	"github.com/ninakotova/gemgrid/internal/grid"
	"github.com/ninakotova/gemgrid/internal/match"
	"github.com/ninakotova/gemgrid/internal/momentum"
)

// fixtureBoard is a stable 8x8 board where swapping (4,2) and (4,3)
// creates exactly one horizontal red 4-line across row 3 touching the
// center ring.
func fixtureBoard() *grid.Board {
	return grid.MustParseBoard(
		"gybgybgy",
		"ybgybgyb",
		"bgybrgbg",
		"gyrrbryb",
		"ybgygbgy",
		"bgybygbg",
		"gybgbygy",
		"ybgygbyb",
	)
}

func newFixtureEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewWithBoard(quietConfig(), 1, fixtureBoard())
	if err != nil {
		t.Fatalf("NewWithBoard: %v", err)
	}
	return e
}

func TestFixtureBoardIsStable(t *testing.T) {
	if groups := match.Find(fixtureBoard()); len(groups) != 0 {
		t.Fatalf("fixture board has pre-existing matches: %v", groups)
	}
}

func TestSelectionRejections(t *testing.T) {
	tests := []struct {
		name    string
		a, b    grid.Coord
		wantErr error
	}{
		{"out of bounds", grid.C(-1, 0), grid.C(0, 0), ErrOutOfBounds},
		{"beyond board", grid.C(7, 7), grid.C(8, 7), ErrOutOfBounds},
		{"diagonal", grid.C(2, 2), grid.C(3, 3), ErrNotAdjacent},
		{"distant", grid.C(0, 0), grid.C(0, 2), ErrNotAdjacent},
		{"same cell", grid.C(3, 3), grid.C(3, 3), ErrNotAdjacent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newFixtureEngine(t)
			before := e.Board()

			_, err := e.SubmitSelection(tt.a, tt.b)
			if err != tt.wantErr {
				t.Errorf("SubmitSelection error = %v, want %v", err, tt.wantErr)
			}
			if !e.Board().Equal(before) {
				t.Error("rejected selection mutated the board")
			}
			if e.Turn() != 0 {
				t.Error("rejected selection advanced the turn counter")
			}
		})
	}
}

func TestOrbNotSwappable(t *testing.T) {
	b := fixtureBoard()
	b.Set(grid.C(2, 2), grid.PowerOrb(grid.ColorRed, grid.EdgeTop))
	e, err := NewWithBoard(config.Default(), 1, b)
	if err != nil {
		t.Fatalf("NewWithBoard: %v", err)
	}

	if _, err := e.SubmitSelection(grid.C(2, 2), grid.C(3, 2)); err != ErrNotSwappable {
		t.Errorf("swap with orb error = %v, want ErrNotSwappable", err)
	}
}

func TestRollbackRestoresBoardExactly(t *testing.T) {
	e := newFixtureEngine(t)
	before := e.Board()
	heatBefore, _ := e.Heat()

	// Swapping the two top-left tiles produces no match.
	res, err := e.SubmitSelection(grid.C(0, 0), grid.C(1, 0))
	if err != nil {
		t.Fatalf("SubmitSelection: %v", err)
	}

	if !res.RolledBack || res.Committed {
		t.Errorf("result = %+v, want rolled back and not committed", res)
	}
	if !e.Board().Equal(before) {
		t.Error("board differs after rollback")
	}
	if e.Turn() != 0 {
		t.Error("rollback advanced the turn counter")
	}
	if e.Score() != 0 {
		t.Error("rollback scored points")
	}
	if heatAfter, _ := e.Heat(); heatAfter != heatBefore {
		t.Error("rollback changed heat; decay applies to completed turns only")
	}

	// Effects: the speculative swap and its undo, nothing else.
	if len(res.Effects) != 2 || res.Effects[0].Kind != EffectSwap || res.Effects[1].Kind != EffectRollback {
		t.Errorf("rollback effects = %+v, want [swap, rollback]", res.Effects)
	}
}

func TestCommitFourLineEndToEnd(t *testing.T) {
	cfg := quietConfig()
	e := newFixtureEngine(t)

	res, err := e.SubmitSelection(grid.C(4, 2), grid.C(4, 3))
	if err != nil {
		t.Fatalf("SubmitSelection: %v", err)
	}

	if !res.Committed || res.RolledBack {
		t.Fatalf("result = %+v, want committed", res)
	}
	if res.GravityDir != grid.DirDown {
		t.Errorf("gravity direction = %v, want down (swap displacement)", res.GravityDir)
	}
	if res.Turn != 1 || e.Turn() != 1 {
		t.Errorf("turn = %d/%d, want 1", res.Turn, e.Turn())
	}

	// First cascade level: exactly the engineered red 4-line in row 3.
	if len(res.Levels) == 0 {
		t.Fatal("no cascade levels recorded")
	}
	first := res.Levels[0]
	if len(first.Groups) != 1 {
		t.Fatalf("first level groups = %d, want 1: %v", len(first.Groups), first.Groups)
	}
	g := first.Groups[0]
	if g.Size() != 4 || g.Shape != match.ShapeLine || g.Color != grid.ColorRed {
		t.Errorf("group = %v, want red 4-line", g)
	}
	for i, pos := range g.Positions {
		if want := grid.C(2+i, 3); pos != want {
			t.Errorf("position %d = %v, want %v", i, pos, want)
		}
	}

	// Heat: gains computed from the recorded levels, applied before the
	// multiplier, decayed after.
	if res.HeatBefore != 0 {
		t.Errorf("heat before = %v, want 0", res.HeatBefore)
	}
	wantGain := expectedHeatGain(cfg.Momentum, res.Levels)
	if wantGain > cfg.Momentum.MaxHeat {
		wantGain = cfg.Momentum.MaxHeat
	}
	if res.HeatAfter != wantGain {
		t.Errorf("heat after = %v, want %v", res.HeatAfter, wantGain)
	}
	wantMult := 1 + res.HeatAfter/cfg.Momentum.MaxHeat*(cfg.Momentum.MaxMultiplier-1)
	if res.Multiplier != wantMult {
		t.Errorf("multiplier = %v, want %v", res.Multiplier, wantMult)
	}
	heatNow, _ := e.Heat()
	wantHeat := res.HeatAfter - cfg.Momentum.DecayPerTurn
	if wantHeat < 0 {
		wantHeat = 0
	}
	if heatNow != wantHeat {
		t.Errorf("engine heat = %v, want %v after per-turn decay", heatNow, wantHeat)
	}

	// Score: every recorded group under the turn multiplier. Orb spawns
	// are disabled by the quiet config, so no orb points to separate out.
	scorer := momentum.NewScorer(cfg.Scoring, fixtureBoard())
	wantPoints := 0
	for _, lv := range res.Levels {
		for _, gr := range lv.Groups {
			wantPoints += scorer.GroupPoints(gr, res.Multiplier)
		}
	}
	if got := res.ScoreDelta - res.OrbPoints; got != wantPoints {
		t.Errorf("match points = %d, want %d", got, wantPoints)
	}
	if e.Score() != res.ScoreDelta {
		t.Errorf("engine score = %d, want %d", e.Score(), res.ScoreDelta)
	}

	// The engineered line touches the center block, so the innermost ring
	// multiplier applies to it.
	if rm := scorer.RingMultiplier(g.Positions); rm != 2.0 {
		t.Errorf("ring multiplier = %v, want 2.0 for a center-ring match", rm)
	}

	// Gravity moved tiles along the swap direction during the cascade.
	sawDownMove := false
	for _, ef := range res.Effects {
		if ef.Kind == EffectMove && ef.Phase == PhaseGravityApply && ef.To == ef.From.Add(grid.DirDown) {
			sawDownMove = true
			break
		}
	}
	if !sawDownMove {
		t.Error("no downward gravity moves recorded in the cascade")
	}

	// The board is full again after the turn.
	board := e.Board()
	for _, pos := range board.AllCoords() {
		if board.IsEmpty(pos) {
			t.Fatalf("cell %v left empty after turn", pos)
		}
	}
}

// expectedHeatGain mirrors the configured heat rules over recorded levels.
func expectedHeatGain(cfg config.MomentumConfig, levels []LevelResult) float64 {
	gain := 0.0
	for _, lv := range levels {
		for _, g := range lv.Groups {
			switch {
			case g.Size() >= 5:
				gain += cfg.HeatMatch5
			case g.Size() == 4:
				gain += cfg.HeatMatch4
			default:
				gain += cfg.HeatMatch3
			}
			if g.Shape != match.ShapeLine {
				gain += cfg.HeatPattern
			}
		}
	}
	if len(levels) > 1 {
		gain += float64(len(levels)-1) * cfg.HeatCascade
	}
	return gain
}

func TestCascadeAccounting(t *testing.T) {
	e := newFixtureEngine(t)

	res, err := e.SubmitSelection(grid.C(4, 2), grid.C(4, 3))
	if err != nil {
		t.Fatalf("SubmitSelection: %v", err)
	}

	if res.CascadeLevel != len(res.Levels) {
		t.Errorf("cascade level = %d, want %d recorded levels", res.CascadeLevel, len(res.Levels))
	}
	total := 0
	for i, lv := range res.Levels {
		if lv.Level != i+1 {
			t.Errorf("level %d numbered %d", i, lv.Level)
		}
		if len(lv.Groups) == 0 {
			t.Errorf("level %d recorded no groups", lv.Level)
		}
		sum := 0
		for _, g := range lv.Groups {
			sum += g.Size()
		}
		if lv.Cleared != sum {
			t.Errorf("level %d cleared = %d, want %d (group sizes)", lv.Level, lv.Cleared, sum)
		}
		total += lv.Cleared
	}
	if res.ClearedTotal != total {
		t.Errorf("cleared total = %d, want %d summed across levels", res.ClearedTotal, total)
	}
}

func TestDeterministicReplay(t *testing.T) {
	cfg := config.Default()
	const seed = 42

	e1, err := New(cfg, seed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e2, err := New(cfg, seed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if !e1.Board().Equal(e2.Board()) {
		t.Fatal("same seed produced different initial boards")
	}

	for turn := 0; turn < 5; turn++ {
		swaps := match.LegalSwaps(e1.Board())
		if len(swaps) == 0 {
			t.Fatalf("no legal swaps at turn %d; anti-frustration failed", turn)
		}
		s := swaps[0]

		r1, err1 := e1.SubmitSelection(s.A, s.B)
		r2, err2 := e2.SubmitSelection(s.A, s.B)
		if err1 != nil || err2 != nil {
			t.Fatalf("submit: %v / %v", err1, err2)
		}
		if r1.ScoreDelta != r2.ScoreDelta || r1.CascadeLevel != r2.CascadeLevel {
			t.Fatalf("turn %d diverged: %+v vs %+v", turn, r1, r2)
		}
		if !e1.Board().Equal(e2.Board()) {
			t.Fatalf("boards diverged at turn %d", turn)
		}
	}

	s1, s2 := e1.Snapshot(), e2.Snapshot()
	if s1.Score != s2.Score || s1.Heat != s2.Heat || s1.Turn != s2.Turn {
		t.Errorf("snapshots diverged: %+v vs %+v", s1, s2)
	}
}

func TestGeneratedBoardPlayable(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99} {
		e, err := New(config.Default(), seed)
		if err != nil {
			t.Fatalf("New(seed=%d): %v", seed, err)
		}
		b := e.Board()
		if groups := match.Find(b); len(groups) != 0 {
			t.Errorf("seed %d: generated board has matches: %v", seed, groups)
		}
		if !match.HasLegalSwap(b) {
			t.Errorf("seed %d: generated board has no legal swap", seed)
		}
	}
}

func TestAntiFrustrationAcrossTurns(t *testing.T) {
	e, err := New(config.Default(), 7)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Play greedily for a while; the board must always keep a legal move.
	for turn := 0; turn < 30; turn++ {
		snap := e.Snapshot()
		if !snap.HasLegalSwap {
			t.Fatalf("turn %d: board has zero legal moves", turn)
		}
		swaps := match.LegalSwaps(e.Board())
		if _, err := e.SubmitSelection(swaps[0].A, swaps[0].B); err != nil {
			t.Fatalf("turn %d: %v", turn, err)
		}
	}
}

// Every committed turn must end on a full board with no remaining runs,
// even when orb displacement and obstacle ejection churn the columns
// between scoring and idle. Spawn rates are forced to their extremes to
// keep specials in play the whole game.
func TestTurnsEndOnStableBoard(t *testing.T) {
	cfg := config.Default()
	cfg.Orb.BaseRate = 1
	cfg.Orb.Ceiling = 1
	cfg.Blocking.BaseRate = 0.25

	for _, seed := range []int64{1, 14, 42} {
		e, err := New(cfg, seed)
		if err != nil {
			t.Fatalf("New(seed=%d): %v", seed, err)
		}
		for turn := 0; turn < 40; turn++ {
			swaps := match.LegalSwaps(e.Board())
			if len(swaps) == 0 {
				break
			}
			if _, err := e.SubmitSelection(swaps[0].A, swaps[0].B); err != nil {
				t.Fatalf("seed %d turn %d: %v", seed, turn, err)
			}
			board := e.Board()
			if groups := match.Find(board); len(groups) != 0 {
				t.Fatalf("seed %d turn %d: unresolved matches at idle: %v", seed, turn, groups)
			}
			for _, pos := range board.AllCoords() {
				if board.IsEmpty(pos) {
					t.Fatalf("seed %d turn %d: cell %v left empty", seed, turn, pos)
				}
			}
		}
	}
}
