package config

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ninakotova/gemgrid/internal/grid"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestNormalizeClampsBoard(t *testing.T) {
	cfg := Default()
	cfg.Board.Width = 2
	cfg.Board.Height = 1000

	cfg.Normalize(quietLogger())

	if cfg.Board.Width != minBoardDim {
		t.Errorf("width = %d, want %d", cfg.Board.Width, minBoardDim)
	}
	if cfg.Board.Height != maxBoardDim {
		t.Errorf("height = %d, want %d", cfg.Board.Height, maxBoardDim)
	}
}

func TestNormalizeRaisesCeilingToBase(t *testing.T) {
	cfg := Default()
	cfg.Blocking.BaseRate = 0.5
	cfg.Blocking.Ceiling = 0.1

	cfg.Normalize(quietLogger())

	if cfg.Blocking.Ceiling != 0.5 {
		t.Errorf("ceiling = %v, want 0.5", cfg.Blocking.Ceiling)
	}
}

func TestNormalizeNegativeCounts(t *testing.T) {
	cfg := Default()
	cfg.Blocking.MaxSimultaneous = -3
	cfg.Orb.AgeBonus = -1
	cfg.Momentum.DecayPerTurn = -2

	cfg.Normalize(quietLogger())

	if cfg.Blocking.MaxSimultaneous != 0 {
		t.Errorf("max_simultaneous = %d, want 0", cfg.Blocking.MaxSimultaneous)
	}
	if cfg.Orb.AgeBonus != 0 {
		t.Errorf("age_bonus = %d, want 0", cfg.Orb.AgeBonus)
	}
	if cfg.Momentum.DecayPerTurn != 0 {
		t.Errorf("decay_per_turn = %v, want 0", cfg.Momentum.DecayPerTurn)
	}
}

func TestDefaultIsAlreadyValid(t *testing.T) {
	cfg := Default()
	before := cfg

	cfg.Normalize(quietLogger())

	if cfg.Board != before.Board || cfg.Queue != before.Queue ||
		cfg.Blocking != before.Blocking || cfg.Momentum != before.Momentum {
		t.Error("Normalize changed the default config; defaults should be valid as-is")
	}
}

func TestTargetEdges(t *testing.T) {
	cfg := Default()

	targets, err := cfg.Orb.TargetEdges()
	if err != nil {
		t.Fatalf("TargetEdges: %v", err)
	}
	if targets[grid.ColorRed] != grid.EdgeTop {
		t.Errorf("red target = %v, want top", targets[grid.ColorRed])
	}
	if targets[grid.ColorBlue] != grid.EdgeLeft {
		t.Errorf("blue target = %v, want left", targets[grid.ColorBlue])
	}
}

func TestTargetEdgesRejectsUnknownNames(t *testing.T) {
	cfg := Default()
	cfg.Orb.Targets = map[string]string{"chartreuse": "top"}
	if _, err := cfg.Orb.TargetEdges(); err == nil {
		t.Error("expected error for unknown color name")
	}

	cfg.Orb.Targets = map[string]string{"red": "diagonal"}
	if _, err := cfg.Orb.TargetEdges(); err == nil {
		t.Error("expected error for unknown edge name")
	}
}

func TestLoadEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := Default()
	if cfg.Board != def.Board {
		t.Errorf("embedded board config %+v differs from Default %+v", cfg.Board, def.Board)
	}
	if cfg.Momentum != def.Momentum {
		t.Errorf("embedded momentum config %+v differs from Default %+v", cfg.Momentum, def.Momentum)
	}
}
