package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ninakotova/gemgrid/internal/grid"
)

// tileStyles maps tile colors to lipgloss styles.
var tileStyles = map[grid.Color]lipgloss.Style{
	grid.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	grid.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	grid.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	grid.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	grid.ColorPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	grid.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

var (
	obstacleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hotStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// heatGaugeWidth is the character width of the heat bar.
const heatGaugeWidth = 20

func tileGlyph(t grid.Tile) string {
	switch t.Kind {
	case grid.KindBlocking:
		return obstacleStyle.Render("▓")
	case grid.KindPowerOrb:
		return tileStyles[t.Color].Render("◉")
	case grid.KindRegular:
		return tileStyles[t.Color].Render("●")
	}
	return " "
}

// renderBoard draws the grid with the cursor and armed selection marked.
func renderBoard(m Model) string {
	board := m.eng.Board()
	var sb strings.Builder

	for y := 0; y < board.H; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < board.W; x++ {
			pos := grid.C(x, y)
			glyph := tileGlyph(board.Get(pos))

			switch {
			case m.selected != nil && *m.selected == pos:
				sb.WriteString(selectedStyle.Render("[" + glyph + "]"))
			case pos == m.cursor:
				sb.WriteString(cursorStyle.Render("[") + glyph + cursorStyle.Render("]"))
			default:
				sb.WriteString(" " + glyph + " ")
			}
		}
	}

	return panelStyle.Render(sb.String())
}

// renderQueue shows the upcoming tile colors, next first.
func renderQueue(m Model) string {
	colors := m.eng.Queue(m.cfg.Queue.VisibleSize)
	parts := make([]string, 0, len(colors))
	for _, c := range colors {
		parts = append(parts, tileStyles[c].Render("●"))
	}
	return labelStyle.Render("next ") + strings.Join(parts, " ")
}

// renderHeat draws the momentum gauge with the current multiplier.
func renderHeat(m Model) string {
	heat, mult := m.eng.Heat()
	filled := int(heat / m.cfg.Momentum.MaxHeat * heatGaugeWidth)
	if filled > heatGaugeWidth {
		filled = heatGaugeWidth
	}

	bar := hotStyle.Render(strings.Repeat("█", filled)) +
		labelStyle.Render(strings.Repeat("░", heatGaugeWidth-filled))
	return fmt.Sprintf("%s%s %s", labelStyle.Render("heat "), bar,
		hotStyle.Render(fmt.Sprintf("x%.1f", mult)))
}

func renderHeader(m Model) string {
	return fmt.Sprintf("%s %d   %s %d",
		labelStyle.Render("score"), m.eng.Score(),
		labelStyle.Render("turn"), m.eng.Turn(),
	)
}

// renderGame assembles the full frame.
func renderGame(m Model) string {
	sections := []string{
		renderHeader(m),
		renderBoard(m),
		renderQueue(m),
		renderHeat(m),
		statusStyle.Render(m.status),
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
