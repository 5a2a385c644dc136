package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ShayCichocki/lapwatch/internal/stopwatch"
)

func newTestApp(t *testing.T) (*App, *manualClock) {
	t.Helper()

	clock := &manualClock{}
	app := NewApp(context.Background(), Options{Title: "Stopwatch", Clock: clock})
	t.Cleanup(app.Close)
	return app, clock
}

// press runs a key through Update and applies the resulting control message,
// the way the bubbletea loop would. It returns the command produced by the
// control message, if any.
func press(t *testing.T, app *App, msg tea.KeyMsg) tea.Cmd {
	t.Helper()

	_, cmd := app.Update(msg)
	if cmd == nil {
		return nil
	}
	follow, ok := cmd().(ActionMsg)
	if !ok {
		t.Fatalf("key %q did not produce an ActionMsg", msg.String())
	}
	_, next := app.Update(follow)
	return next
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	lapKey   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}
	helpKey  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}
	quitKey  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestNewApp(t *testing.T) {
	app, _ := newTestApp(t)

	snap := app.Snapshot()
	if snap.Running || snap.ElapsedSeconds != 0 || len(snap.Laps) != 0 {
		t.Errorf("unexpected initial snapshot: %+v", snap)
	}
	if app.ActiveTimers() != 0 {
		t.Errorf("ActiveTimers = %d, want 0", app.ActiveTimers())
	}
	if app.labels != DefaultLabels() {
		t.Errorf("labels = %+v, want defaults", app.labels)
	}
}

func TestApp_Init(t *testing.T) {
	app, _ := newTestApp(t)
	if app.Init() == nil {
		t.Error("Init should set the window title")
	}

	untitled := NewApp(context.Background(), Options{Clock: &manualClock{}})
	defer untitled.Close()
	if untitled.Init() != nil {
		t.Error("Init without title should return nil")
	}
}

func TestApp_StartReturnsTickWaiter(t *testing.T) {
	app, clock := newTestApp(t)

	cmd := press(t, app, spaceKey)
	if cmd == nil {
		t.Fatal("starting should return a command waiting for the first tick")
	}
	if !app.Snapshot().Running {
		t.Error("expected running after space")
	}
	if app.ActiveTimers() != 1 || clock.live() != 1 {
		t.Errorf("timers: app=%d clock=%d, want 1", app.ActiveTimers(), clock.live())
	}

	clock.last().fire()
	msg := cmd()
	tick, ok := msg.(TickMsg)
	if !ok {
		t.Fatalf("expected TickMsg, got %T", msg)
	}

	_, next := app.Update(tick)
	if app.Snapshot().ElapsedSeconds != 1 {
		t.Errorf("elapsed = %d, want 1", app.Snapshot().ElapsedSeconds)
	}
	if next == nil {
		t.Error("a tick should re-arm the waiter")
	}
}

func TestApp_StopReleasesWaiter(t *testing.T) {
	app, clock := newTestApp(t)

	waiter := press(t, app, spaceKey)
	if next := press(t, app, spaceKey); next != nil {
		t.Error("stopping should not return a command")
	}

	if msg := waiter(); msg != nil {
		t.Errorf("waiter of a stopped watch returned %T, want nil", msg)
	}
	if app.ActiveTimers() != 0 || clock.live() != 0 {
		t.Errorf("timers: app=%d clock=%d, want 0", app.ActiveTimers(), clock.live())
	}
}

func TestApp_StaleTickIsDropped(t *testing.T) {
	app, _ := newTestApp(t)

	press(t, app, spaceKey)
	stale := TickMsg{Generation: app.sw.Generation()}
	press(t, app, spaceKey)

	_, cmd := app.Update(stale)
	if cmd != nil {
		t.Error("stale tick should not re-arm")
	}
	if app.Snapshot().ElapsedSeconds != 0 {
		t.Errorf("stale tick changed elapsed to %d", app.Snapshot().ElapsedSeconds)
	}
}

func TestApp_EndToEnd(t *testing.T) {
	app, _ := newTestApp(t)

	tick := func() {
		t.Helper()
		app.Update(TickMsg{Generation: app.sw.Generation()})
	}

	press(t, app, spaceKey)
	tick()
	tick()
	tick()
	press(t, app, lapKey)
	if got := app.Snapshot().Laps; len(got) != 1 || got[0] != 3 {
		t.Fatalf("laps = %v, want [3]", got)
	}
	if app.footer.Message() != "Lap 1: 0:03" {
		t.Errorf("footer message = %q", app.footer.Message())
	}

	tick()
	tick()
	press(t, app, spaceKey)
	snap := app.Snapshot()
	if snap.Running || snap.ElapsedSeconds != 5 || len(snap.Laps) != 1 {
		t.Fatalf("after stop: %+v", snap)
	}

	press(t, app, enterKey)
	snap = app.Snapshot()
	if snap.ElapsedSeconds != 0 || len(snap.Laps) != 0 {
		t.Errorf("after reset: %+v", snap)
	}
}

func TestApp_ActionMsgFromOutside(t *testing.T) {
	app, _ := newTestApp(t)

	_, cmd := app.Update(ActionMsg{Action: stopwatch.ActionStartStop})
	if cmd == nil {
		t.Error("external start should return a tick waiter")
	}

	_, cmd = app.Update(ActionMsg{Action: stopwatch.ActionTick})
	if cmd != nil || app.Snapshot().ElapsedSeconds != 0 {
		t.Error("tick actions must only come from the timer")
	}
}

func TestApp_LabelsFollowState(t *testing.T) {
	app, _ := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := app.View()
	if !strings.Contains(view, "Start") || !strings.Contains(view, "Reset") {
		t.Errorf("stopped view should show Start and Reset:\n%s", view)
	}
	if app.keys.StartStop.Help().Desc != "Start" {
		t.Errorf("help desc = %q, want Start", app.keys.StartStop.Help().Desc)
	}

	press(t, app, spaceKey)
	view = app.View()
	if !strings.Contains(view, "Pause") || !strings.Contains(view, "Lap") {
		t.Errorf("running view should show Pause and Lap:\n%s", view)
	}
	if app.keys.ResetOrLap.Help().Desc != "Lap" {
		t.Errorf("help desc = %q, want Lap", app.keys.ResetOrLap.Help().Desc)
	}
}

func TestApp_CustomLabels(t *testing.T) {
	app := NewApp(context.Background(), Options{
		Clock:  &manualClock{},
		Labels: Labels{Start: "Iniciar", Pause: "Pausar", Lap: "Volta", Reset: "Resetar"},
	})
	defer app.Close()

	if !strings.Contains(app.View(), "Iniciar") {
		t.Error("view should use the configured start label")
	}
}

func TestApp_ViewShowsTimeAndLaps(t *testing.T) {
	app, _ := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	press(t, app, spaceKey)
	for i := 0; i < 65; i++ {
		app.Update(TickMsg{Generation: app.sw.Generation()})
	}
	press(t, app, lapKey)

	view := app.View()
	if !strings.Contains(view, "1:05") {
		t.Errorf("view should contain 1:05:\n%s", view)
	}
	if !strings.Contains(view, "Lap 1: 1:05") {
		t.Errorf("view should contain the lap line:\n%s", view)
	}
}

func TestApp_HelpToggle(t *testing.T) {
	app, _ := newTestApp(t)

	_, cmd := app.Update(helpKey)
	if cmd == nil {
		t.Fatal("? should return a command")
	}
	msg, ok := cmd().(ShowHelpMsg)
	if !ok || !msg.Show {
		t.Fatalf("expected ShowHelpMsg{Show: true}, got %#v", msg)
	}

	app.Update(msg)
	if !app.IsHelpVisible() {
		t.Error("help should be visible")
	}
}

func TestApp_QuitClosesStopwatch(t *testing.T) {
	app, clock := newTestApp(t)
	press(t, app, spaceKey)

	_, cmd := app.Update(quitKey)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if !app.quitting {
		t.Error("quitting should be true after q")
	}
	if clock.live() != 0 {
		t.Errorf("live timers after quit = %d, want 0", clock.live())
	}
	if app.View() != "" {
		t.Error("view should be empty while quitting")
	}
}

func TestApp_WindowSize(t *testing.T) {
	app, _ := newTestApp(t)

	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if app.width != 120 || app.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", app.width, app.height)
	}
	if app.laps.width != 48 {
		t.Errorf("laps width = %d, want 48", app.laps.width)
	}
}
