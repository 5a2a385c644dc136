package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/lapwatch/internal/logger"
	"github.com/ShayCichocki/lapwatch/internal/stopwatch"
)

// TickMsg is produced when the timer handle of the given generation fires.
type TickMsg struct {
	Generation uint64
}

// Options configures an App.
type Options struct {
	// Title is shown above the time. Empty hides the header.
	Title string
	// Labels are the control labels. Empty fields use DefaultLabels.
	Labels Labels
	// Clock drives the timer. Nil uses stopwatch.SystemClock.
	Clock stopwatch.Clock
}

// App is the bubbletea model for the stopwatch screen.
type App struct {
	ctx context.Context
	sw  *stopwatch.Stopwatch

	header  *Header
	display *Display
	laps    *LapsPanel
	footer  *Footer
	layout  *LayoutManager

	keys     KeyMap
	controls *ControlHandler
	labels   Labels

	width    int
	height   int
	quitting bool
}

// NewApp creates a stopped App.
func NewApp(ctx context.Context, opts Options) *App {
	labels := opts.Labels.withDefaults()

	a := &App{
		ctx:     logger.WithName(ctx, "tui"),
		sw:      stopwatch.New(stopwatch.WithClock(opts.Clock)),
		header:  NewHeader(opts.Title),
		display: NewDisplay(labels),
		laps:    NewLapsPanel(),
		footer:  NewFooter(),
		layout:  NewLayoutManager(80, 24),
		keys:    DefaultKeyMap(labels),
		labels:  labels,
	}
	a.controls = NewControlHandler(a, &a.keys)
	a.updateSizes()
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	if a.header.Title() == "" {
		return nil
	}
	return tea.SetWindowTitle(a.header.Title())
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			a.quitting = true
			a.Close()
			return a, tea.Quit
		}
		if cmd := a.controls.HandleKey(msg); cmd != nil {
			return a, cmd
		}
		return a, a.laps.Update(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateSizes()
		return a, nil

	case ActionMsg:
		return a, a.dispatch(msg.Action)

	case TickMsg:
		if !a.sw.HandleTick(msg.Generation) {
			logger.DebugKV(a.ctx, "dropped stale tick", "generation", msg.Generation)
			return a, nil
		}
		return a, waitForTick(a.sw.Ticker())

	case ShowHelpMsg:
		a.footer.SetShowAll(msg.Show)
		a.updateSizes()
		return a, nil
	}

	return a, nil
}

// dispatch applies a user action and returns the command that waits for
// the first tick when the watch has just started.
func (a *App) dispatch(action stopwatch.Action) tea.Cmd {
	if action == stopwatch.ActionTick {
		// Ticks only come from the timer handle.
		return nil
	}

	wasRunning := a.sw.Running()
	a.sw.Dispatch(action)
	running := a.sw.Running()

	a.keys.syncLabels(a.labels, running)
	a.laps.SetLaps(a.sw.Laps())

	switch {
	case action == stopwatch.ActionStartStop && running:
		a.footer.SetMessage("")
		logger.DebugKV(a.ctx, "started", "elapsed", a.sw.Elapsed(), "generation", a.sw.Generation())
	case action == stopwatch.ActionStartStop:
		a.footer.SetMessage("Paused at " + stopwatch.FormatTime(a.sw.Elapsed()))
		logger.DebugKV(a.ctx, "stopped", "elapsed", a.sw.Elapsed())
	case running:
		laps := a.sw.Laps()
		a.footer.SetMessage(stopwatch.LapLine(len(laps)-1, laps[len(laps)-1]))
		logger.InfoKV(a.ctx, "lap recorded", "lap", len(laps), "elapsed", a.sw.Elapsed())
	default:
		a.footer.SetMessage("")
		logger.DebugKV(a.ctx, "reset")
	}

	if running && !wasRunning {
		return waitForTick(a.sw.Ticker())
	}
	return nil
}

// waitForTick returns a command that blocks until h fires or is cancelled.
// A cancelled handle yields no message.
func waitForTick(h *stopwatch.Handle) tea.Cmd {
	if h == nil {
		return nil
	}
	return func() tea.Msg {
		if !h.Wait() {
			return nil
		}
		return TickMsg{Generation: h.Generation()}
	}
}

// updateSizes updates the sizes of child components based on terminal size.
func (a *App) updateSizes() {
	if a.width > 0 {
		a.layout.SetSize(a.width, a.height)
	}
	a.layout.SetFixedHeight(a.header.Height() + a.display.Height() + a.footer.Height() + 1)

	width := a.layout.Width()
	a.header.SetWidth(width)
	a.display.SetWidth(width)
	a.footer.SetWidth(width)
	a.laps.SetSize(min(width, 48), a.layout.LapsHeight())
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	center := lipgloss.NewStyle().Width(a.layout.Width()).Align(lipgloss.Center)
	sections := []string{}
	if h := a.header.View(); h != "" {
		sections = append(sections, h)
	}
	sections = append(sections,
		a.display.View(a.sw.Snapshot()),
		center.Render(a.laps.View()),
		a.footer.View(a.keys),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// IsHelpVisible implements AppState.
func (a *App) IsHelpVisible() bool {
	return a.footer.ShowAll()
}

// Snapshot returns the current stopwatch state.
func (a *App) Snapshot() stopwatch.State {
	return a.sw.Snapshot()
}

// ActiveTimers returns the number of live timer handles.
func (a *App) ActiveTimers() int {
	return a.sw.ActiveTimers()
}

// Close stops the stopwatch and releases its timer.
func (a *App) Close() {
	a.sw.Close()
}

// NewProgram creates a new bubbletea program for the stopwatch screen.
func NewProgram(ctx context.Context, opts Options) (*tea.Program, *App) {
	app := NewApp(ctx, opts)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	return p, app
}
