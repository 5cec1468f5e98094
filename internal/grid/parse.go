package grid

import "fmt"

// ParseBoard builds a board from a compact string form, one string per row.
// Cell characters: r/y/g/b/p/o for regular colors, '#' for a blocking
// obstacle, '.' for an empty cell. Orbs carry per-instance state and are
// placed with Set by the caller. Used by tests and the simulator fixtures.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid: no rows")
	}
	w := len(rows[0])
	b := NewBoard(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("grid: row %d has width %d, want %d", y, len(row), w)
		}
		for x, ch := range row {
			t, err := parseCell(ch)
			if err != nil {
				return nil, fmt.Errorf("grid: row %d col %d: %w", y, x, err)
			}
			b.Set(C(x, y), t)
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard that panics on malformed input.
func MustParseBoard(rows ...string) *Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

func parseCell(ch rune) (Tile, error) {
	switch ch {
	case '.':
		return Empty(), nil
	case '#':
		return Blocking(), nil
	case 'r':
		return Regular(ColorRed), nil
	case 'y':
		return Regular(ColorYellow), nil
	case 'g':
		return Regular(ColorGreen), nil
	case 'b':
		return Regular(ColorBlue), nil
	case 'p':
		return Regular(ColorPurple), nil
	case 'o':
		return Regular(ColorOrange), nil
	}
	return Tile{}, fmt.Errorf("unknown cell %q", ch)
}
