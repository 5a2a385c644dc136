package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ShayCichocki/lapwatch/internal/stopwatch"
)

// ActionMsg requests a stopwatch action. Key presses are turned into
// ActionMsg by ControlHandler; other sources send it through the program.
type ActionMsg struct {
	Action stopwatch.Action
}

// ShowHelpMsg toggles the full key help.
type ShowHelpMsg struct {
	Show bool
}

// KeyMap holds the key bindings. It implements help.KeyMap.
type KeyMap struct {
	StartStop  key.Binding
	ResetOrLap key.Binding
	Scroll     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the bindings with the given control labels as help
// text. The labels are updated as the watch starts and stops.
func DefaultKeyMap(labels Labels) KeyMap {
	return KeyMap{
		StartStop: key.NewBinding(
			key.WithKeys(" ", "s"),
			key.WithHelp("space", labels.Start),
		),
		ResetOrLap: key.NewBinding(
			key.WithKeys("enter", "l", "r"),
			key.WithHelp("enter", labels.Reset),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown", "home", "end"),
			key.WithHelp("↑/↓", "scroll laps"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartStop, k.ResetOrLap, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartStop, k.ResetOrLap},
		{k.Scroll},
		{k.Help, k.Quit},
	}
}

// syncLabels points the help text of the two controls at the labels for
// the current state.
func (k *KeyMap) syncLabels(labels Labels, running bool) {
	a, b := ControlLabels(labels, running)
	k.StartStop.SetHelp("space", a)
	k.ResetOrLap.SetHelp("enter", b)
}

// AppState provides the state ControlHandler needs.
type AppState interface {
	// IsHelpVisible returns whether the full help is shown.
	IsHelpVisible() bool
}

// ControlHandler maps key presses to control messages.
type ControlHandler struct {
	app  AppState
	keys *KeyMap
}

// NewControlHandler creates a ControlHandler over the given bindings.
func NewControlHandler(app AppState, keys *KeyMap) *ControlHandler {
	return &ControlHandler{app: app, keys: keys}
}

// HandleKey returns the command for a key press, or nil if the key is not
// a control.
func (h *ControlHandler) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, h.keys.StartStop):
		return h.Dispatch(stopwatch.ActionStartStop)

	case key.Matches(msg, h.keys.ResetOrLap):
		return h.Dispatch(stopwatch.ActionResetOrLap)

	case key.Matches(msg, h.keys.Help):
		return h.toggleHelp()
	}

	return nil
}

// Dispatch returns a command that requests the given action.
func (h *ControlHandler) Dispatch(action stopwatch.Action) tea.Cmd {
	return func() tea.Msg {
		return ActionMsg{Action: action}
	}
}

func (h *ControlHandler) toggleHelp() tea.Cmd {
	show := !h.app.IsHelpVisible()
	return func() tea.Msg {
		return ShowHelpMsg{Show: show}
	}
}
