package grid

import "fmt"

// Color identifies a regular tile color. ColorNone marks tiles that have
// no color (blocking obstacles) and empty cells.
type Color int

const (
	ColorNone Color = iota
	ColorRed
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorOrange
)

// Palette lists the playable colors in a fixed order.
var Palette = [6]Color{ColorRed, ColorYellow, ColorGreen, ColorBlue, ColorPurple, ColorOrange}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	}
	return "none"
}

// Kind distinguishes the closed set of tile variants.
type Kind int

const (
	KindNone Kind = iota // empty cell
	KindRegular
	KindBlocking
	KindPowerOrb
)

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindBlocking:
		return "blocking"
	case KindPowerOrb:
		return "orb"
	}
	return "none"
}

// Tile is a tagged variant occupying one board cell. The zero value is the
// empty cell. Only KindRegular tiles participate in match detection;
// KindBlocking and KindPowerOrb are never matchable.
type Tile struct {
	Kind       Kind
	Color      Color // regular and orb tiles
	TargetEdge Edge  // orb only: the edge that scores
	Age        int   // orb only: committed turns survived
}

// Empty returns the empty cell value.
func Empty() Tile {
	return Tile{}
}

// Regular returns a regular tile of the given color.
func Regular(c Color) Tile {
	return Tile{Kind: KindRegular, Color: c}
}

// Blocking returns a blocking obstacle tile.
func Blocking() Tile {
	return Tile{Kind: KindBlocking}
}

// PowerOrb returns a newborn power orb of the given color heading for the
// given target edge.
func PowerOrb(c Color, target Edge) Tile {
	return Tile{Kind: KindPowerOrb, Color: c, TargetEdge: target}
}

// IsEmpty reports whether the tile is the empty cell value.
func (t Tile) IsEmpty() bool {
	return t.Kind == KindNone
}

// Matchable reports whether the tile can start or extend a match run.
func (t Tile) Matchable() bool {
	return t.Kind == KindRegular
}

func (t Tile) String() string {
	switch t.Kind {
	case KindRegular:
		return t.Color.String()
	case KindBlocking:
		return "blocking"
	case KindPowerOrb:
		return fmt.Sprintf("orb(%s->%s age=%d)", t.Color, t.TargetEdge, t.Age)
	}
	return "empty"
}
