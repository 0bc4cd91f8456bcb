// Package layout holds the letter list arrangement toggle.
package layout

// Mode is the arrangement of the letter list.
type Mode int

const (
	Linear Mode = iota
	Grid
)

// DefaultGridColumns matches the column count of the grid arrangement when
// no configuration overrides it.
const DefaultGridColumns = 4

func (m Mode) String() string {
	switch m {
	case Linear:
		return "Linear"
	case Grid:
		return "Grid"
	default:
		return "Unknown"
	}
}

// Icon is the indicator shown next to the layout switch.
type Icon struct {
	Glyph string
	Label string
}

var (
	GridIcon   = Icon{Glyph: "▦", Label: "grid"}
	LinearIcon = Icon{Glyph: "☰", Label: "list"}
)

// Toggle tracks the current Mode. The zero value starts in Linear.
type Toggle struct {
	mode Mode
}

// Toggle flips between Linear and Grid.
func (t *Toggle) Toggle() {
	if t.mode == Linear {
		t.mode = Grid
		return
	}
	t.mode = Linear
}

// Mode returns the current arrangement.
func (t Toggle) Mode() Mode {
	return t.mode
}

// Icon returns the indicator for the mode a toggle would switch to.
func (t Toggle) Icon() Icon {
	if t.mode == Linear {
		return GridIcon
	}
	return LinearIcon
}

// Columns returns how many letters share a row in the current mode.
func (t Toggle) Columns(gridColumns int) int {
	if t.mode == Linear {
		return 1
	}
	if gridColumns < 1 {
		return DefaultGridColumns
	}
	return gridColumns
}
