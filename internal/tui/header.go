package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// headerColors is cycled across the title characters.
var headerColors = []string{"#FF6B6B", "#FF8E53", "#FFC857", "#4ECDC4", "#45B7D1", "#96E6A1"}

// Header renders the title bar.
type Header struct {
	title string
	width int
}

// NewHeader creates a new Header.
func NewHeader(title string) *Header {
	return &Header{
		title: title,
		width: 80,
	}
}

// SetWidth sets the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// Title returns the title text.
func (h *Header) Title() string {
	return h.title
}

// View renders the header. An empty title renders nothing.
func (h *Header) View() string {
	if h.title == "" {
		return ""
	}

	var styled string
	for i, r := range []rune(h.title) {
		color := headerColors[i%len(headerColors)]
		styled += lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Bold(true).
			Render(string(r))
	}

	return lipgloss.NewStyle().
		Width(h.width).
		Align(lipgloss.Center).
		MarginTop(1).
		PaddingBottom(1).
		Render(styled)
}

// Height returns the header height in lines.
func (h *Header) Height() int {
	if h.title == "" {
		return 0
	}
	return 3 // 1 margin + title + 1 padding
}
