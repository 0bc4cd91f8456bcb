package ui

// Screen regions.
const (
	// HeaderHeight is the number of lines above the content area.
	HeaderHeight = 1

	// FooterHeight is the number of lines below the content area.
	FooterHeight = 2

	// MinCellWidth keeps grid cells wide enough for a letter and its count.
	MinCellWidth = 9

	// MaxCellWidth stops cells from stretching across wide terminals.
	MaxCellWidth = 24

	// HelpWidth is the width of the help overlay.
	HelpWidth = 44
)

// contentHeight returns the rows available between header and footer.
func contentHeight(total int) int {
	h := total - HeaderHeight - FooterHeight
	if h < 1 {
		return 1
	}
	return h
}

// cellWidth returns the width of one letter cell for the given column count.
func cellWidth(total, cols int) int {
	if cols < 1 {
		cols = 1
	}
	w := total / cols
	if cols == 1 {
		w = total
	}
	if w < MinCellWidth {
		w = MinCellWidth
	}
	if cols > 1 && w > MaxCellWidth {
		w = MaxCellWidth
	}
	return w
}
