package tui

// minLapsHeight keeps at least a few laps visible on short terminals.
const minLapsHeight = 3

// LayoutManager calculates the lap list size from the terminal size.
type LayoutManager struct {
	// totalWidth is the terminal width.
	totalWidth int
	// totalHeight is the terminal height.
	totalHeight int
	// fixedHeight is the height used by header, display and footer.
	fixedHeight int
}

// NewLayoutManager creates a new LayoutManager with the given terminal dimensions.
func NewLayoutManager(width, height int) *LayoutManager {
	return &LayoutManager{
		totalWidth:  width,
		totalHeight: height,
	}
}

// SetSize updates the terminal dimensions.
func (l *LayoutManager) SetSize(width, height int) {
	l.totalWidth = width
	l.totalHeight = height
}

// SetFixedHeight sets the height taken by everything except the lap list.
func (l *LayoutManager) SetFixedHeight(height int) {
	l.fixedHeight = height
}

// Width returns the terminal width.
func (l *LayoutManager) Width() int {
	return l.totalWidth
}

// LapsHeight returns the number of lines available for the lap list,
// including its border.
func (l *LayoutManager) LapsHeight() int {
	h := l.totalHeight - l.fixedHeight
	if h < minLapsHeight {
		return minLapsHeight
	}
	return h
}
