package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/lapwatch/internal/stopwatch"
)

// LapsPanel displays the recorded laps in a scrollable viewport.
type LapsPanel struct {
	viewport viewport.Model
	laps     []int
	width    int
	height   int

	// Styles
	borderStyle lipgloss.Style
	lapStyle    lipgloss.Style
	emptyStyle  lipgloss.Style
}

// NewLapsPanel creates an empty LapsPanel.
func NewLapsPanel() *LapsPanel {
	p := &LapsPanel{
		viewport: viewport.New(40, 8),
		width:    42,
		height:   10,

		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),

		lapStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		emptyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true),
	}
	p.refresh()
	return p
}

// SetSize sets the outer size of the panel, border included.
func (p *LapsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = max(width-2, 1)
	p.viewport.Height = max(height-2, 1)
	p.refresh()
}

// SetLaps replaces the laps shown. When a lap is added the view follows
// the newest one.
func (p *LapsPanel) SetLaps(laps []int) {
	grew := len(laps) > len(p.laps)
	p.laps = laps
	p.refresh()
	if grew {
		p.viewport.GotoBottom()
	}
}

// Lines returns the rendered lap lines without styling.
func (p *LapsPanel) Lines() []string {
	lines := make([]string, len(p.laps))
	for i, secs := range p.laps {
		lines[i] = stopwatch.LapLine(i, secs)
	}
	return lines
}

func (p *LapsPanel) refresh() {
	if len(p.laps) == 0 {
		p.viewport.SetContent(p.emptyStyle.Render("No laps yet"))
		p.viewport.GotoTop()
		return
	}
	p.viewport.SetContent(p.lapStyle.Render(strings.Join(p.Lines(), "\n")))
}

// Update forwards scroll keys to the viewport.
func (p *LapsPanel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// AtBottom reports whether the newest lap is visible.
func (p *LapsPanel) AtBottom() bool {
	return p.viewport.AtBottom()
}

// View renders the panel.
func (p *LapsPanel) View() string {
	return p.borderStyle.Width(p.viewport.Width).Render(p.viewport.View())
}
