package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Footer renders the status message and key hints.
type Footer struct {
	message string
	help    help.Model
	width   int

	messageStyle   lipgloss.Style
	separatorStyle lipgloss.Style
}

// NewFooter creates a new Footer instance.
func NewFooter() *Footer {
	return &Footer{
		help: help.New(),

		messageStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")).
			Bold(true),

		separatorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("236")),
	}
}

// SetMessage sets the status message.
func (f *Footer) SetMessage(message string) {
	f.message = message
}

// Message returns the current status message.
func (f *Footer) Message() string {
	return f.message
}

// SetWidth sets the footer width.
func (f *Footer) SetWidth(width int) {
	f.width = width
	f.help.Width = width
}

// SetShowAll switches between short and full help.
func (f *Footer) SetShowAll(show bool) {
	f.help.ShowAll = show
}

// ShowAll reports whether the full help is shown.
func (f *Footer) ShowAll() bool {
	return f.help.ShowAll
}

// View renders the footer.
func (f *Footer) View(keys KeyMap) string {
	hints := f.help.View(keys)
	if f.message == "" {
		return hints
	}
	return f.messageStyle.Render(f.message) + f.separatorStyle.Render(" │ ") + hints
}

// Height returns the footer height in lines.
func (f *Footer) Height() int {
	if f.help.ShowAll {
		return 3
	}
	return 1
}
