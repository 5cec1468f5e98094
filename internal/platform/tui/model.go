// Package tui provides the Bubble Tea front end for the puzzle engine,
// including SSH serving via Wish.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ninakotova/gemgrid/internal/config"
	"github.com/ninakotova/gemgrid/internal/engine"
	"github.com/ninakotova/gemgrid/internal/grid"
	"github.com/ninakotova/gemgrid/internal/storage"
)

// selectionTTL is how long a first selected tile stays armed before it is
// dropped again.
const selectionTTL = 10 * time.Second

// expireMsg asks the model to drop a stale selection. Seq ties the message
// to the selection that scheduled it.
type expireMsg struct{ Seq int }

func expireCmd(seq int) tea.Cmd {
	return tea.Tick(selectionTTL, func(time.Time) tea.Msg {
		return expireMsg{Seq: seq}
	})
}

// Model is the Bubble Tea model for one interactive game.
type Model struct {
	eng    *engine.Engine
	store  *storage.Store
	cfg    config.Config
	seed   int64
	player string

	keys KeyMap
	help help.Model

	cursor   grid.Coord
	selected *grid.Coord
	selSeq   int

	last    *engine.TurnResult
	status  string
	maxHeat float64

	width, height int
	quitting      bool
	saved         bool
}

// NewModel creates a model with a fresh engine for the given seed.
func NewModel(cfg config.Config, seed int64, store *storage.Store, player string) (Model, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	eng, err := engine.New(cfg, seed)
	if err != nil {
		return Model{}, err
	}
	return Model{
		eng:    eng,
		store:  store,
		cfg:    cfg,
		seed:   seed,
		player: player,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		status: "select a tile, then an adjacent one to swap",
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case expireMsg:
		if m.selected != nil && msg.Seq == m.selSeq {
			m.selected = nil
			m.status = "selection expired"
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.selected = nil
		m.status = "selection cancelled"
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(grid.DirUp), nil
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(grid.DirDown), nil
	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(grid.DirLeft), nil
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(grid.DirRight), nil

	case key.Matches(msg, m.keys.Select):
		return m.handleSelect()
	}

	return m, nil
}

func (m Model) moveCursor(d grid.Direction) Model {
	next := m.cursor.Add(d)
	if m.eng.Board().InBounds(next) {
		m.cursor = next
	}
	return m
}

// handleSelect implements the two-tap selection flow: the first tap arms a
// tile, the second tap on an adjacent cell commits the swap. A second tap
// elsewhere re-arms on the new cell instead of failing.
func (m Model) handleSelect() (tea.Model, tea.Cmd) {
	if m.selected == nil {
		sel := m.cursor
		m.selected = &sel
		m.selSeq++
		m.status = "now pick an adjacent tile"
		return m, expireCmd(m.selSeq)
	}

	first := *m.selected
	if first == m.cursor {
		m.selected = nil
		m.status = "selection cancelled"
		return m, nil
	}
	if !first.Adjacent(m.cursor) {
		sel := m.cursor
		m.selected = &sel
		m.selSeq++
		m.status = "now pick an adjacent tile"
		return m, expireCmd(m.selSeq)
	}

	m.selected = nil
	res, err := m.eng.SubmitSelection(first, m.cursor)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	m.last = res
	if res.RolledBack {
		m.status = "no match, swap undone"
		return m, nil
	}

	if res.HeatAfter > m.maxHeat {
		m.maxHeat = res.HeatAfter
	}
	m.status = fmt.Sprintf("+%d points", res.ScoreDelta)
	if res.CascadeLevel > 1 {
		m.status += fmt.Sprintf(", cascade x%d", res.CascadeLevel)
	}
	if res.OrbPoints > 0 {
		m.status += fmt.Sprintf(", orb +%d", res.OrbPoints)
	}
	return m, nil
}

// saveRun persists the finished run, once.
func (m *Model) saveRun() {
	if m.saved || m.store == nil {
		return
	}
	snap := m.eng.Snapshot()
	if snap.Turn == 0 {
		return
	}
	//nolint:errcheck // Best-effort save on exit
	m.store.SaveRun(storage.RunRecord{
		Player:     m.player,
		Seed:       m.seed,
		Score:      snap.Score,
		Turns:      snap.Turn,
		MaxCascade: snap.MaxCascade,
		MaxHeat:    m.maxHeat,
		OrbsScored: snap.OrbsScored,
	})
	m.saved = true
}

// View renders the board and side panels.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderGame(m)
}

// Run starts an interactive game in the local terminal.
func Run(cfg config.Config, seed int64, store *storage.Store, player string) error {
	model, err := NewModel(cfg, seed, store, player)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
