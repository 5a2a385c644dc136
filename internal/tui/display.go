package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/lapwatch/internal/stopwatch"
)

// Labels holds the text of the two controls.
type Labels struct {
	Start string
	Pause string
	Lap   string
	Reset string
}

// DefaultLabels returns the English labels.
func DefaultLabels() Labels {
	return Labels{Start: "Start", Pause: "Pause", Lap: "Lap", Reset: "Reset"}
}

// withDefaults fills empty labels from DefaultLabels.
func (l Labels) withDefaults() Labels {
	d := DefaultLabels()
	if l.Start == "" {
		l.Start = d.Start
	}
	if l.Pause == "" {
		l.Pause = d.Pause
	}
	if l.Lap == "" {
		l.Lap = d.Lap
	}
	if l.Reset == "" {
		l.Reset = d.Reset
	}
	return l
}

// ControlLabels returns the labels of the start-stop control and the
// reset-or-lap control for the given state.
func ControlLabels(l Labels, running bool) (startStop, resetOrLap string) {
	if running {
		return l.Pause, l.Lap
	}
	return l.Start, l.Reset
}

// Display renders the elapsed time and the two controls.
type Display struct {
	labels Labels
	width  int

	runningStyle lipgloss.Style
	stoppedStyle lipgloss.Style
	buttonStyle  lipgloss.Style
	activeStyle  lipgloss.Style
}

// NewDisplay creates a Display with the given labels.
func NewDisplay(labels Labels) *Display {
	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 2).
		Width(12).
		Align(lipgloss.Center)

	return &Display{
		labels: labels,
		width:  80,

		runningStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")),

		stoppedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")),

		buttonStyle: button,

		activeStyle: button.
			BorderForeground(lipgloss.Color("205")).
			Foreground(lipgloss.Color("205")),
	}
}

// SetWidth sets the display width.
func (d *Display) SetWidth(width int) {
	d.width = width
}

// View renders the display for a snapshot.
func (d *Display) View(s stopwatch.State) string {
	center := lipgloss.NewStyle().Width(d.width).Align(lipgloss.Center)

	timeStyle := d.stoppedStyle
	if s.Running {
		timeStyle = d.runningStyle
	}
	clock := center.PaddingBottom(1).Render(timeStyle.Render(stopwatch.FormatTime(s.ElapsedSeconds)))

	a, b := ControlLabels(d.labels, s.Running)
	aStyle := d.buttonStyle
	if s.Running {
		aStyle = d.activeStyle
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		aStyle.Render(a),
		"    ",
		d.buttonStyle.Render(b),
	)

	return lipgloss.JoinVertical(lipgloss.Left, clock, center.Render(buttons))
}

// Height returns the display height in lines.
func (d *Display) Height() int {
	return 5 // time + padding + 3-line buttons
}
