package main

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ShayCichocki/lapwatch/internal/control"
	"github.com/ShayCichocki/lapwatch/internal/stopwatch"
	"github.com/ShayCichocki/lapwatch/internal/tui"
)

// TestWatchControl_LeftoverSignalBeforeRun follows runStopwatch's order:
// the watcher is started before program.Run while a signal file from an
// earlier session is still in the directory.
func TestWatchControl_LeftoverSignalBeforeRun(t *testing.T) {
	dir := t.TempDir()
	if err := control.Send(dir, stopwatch.ActionStartStop); err != nil {
		t.Fatalf("Send: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := tui.NewApp(ctx, tui.Options{})
	defer app.Close()
	program := tea.NewProgram(app,
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	sent := make(chan struct{}, 1)
	send := func(msg tea.Msg) {
		program.Send(msg)
		sent <- struct{}{}
	}

	started := make(chan *control.Watcher, 1)
	errs := make(chan error, 1)
	go func() {
		w, err := watchControl(ctx, dir, send)
		if err != nil {
			errs <- err
			return
		}
		started <- w
	}()

	var watcher *control.Watcher
	select {
	case watcher = <-started:
	case err := <-errs:
		t.Fatalf("watchControl: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("watchControl blocked before the program started")
	}
	defer watcher.Close()

	done := make(chan error, 1)
	go func() {
		_, err := program.Run()
		done <- err
	}()

	select {
	case <-sent:
	case <-time.After(5 * time.Second):
		t.Fatal("leftover signal was never delivered")
	}

	program.Quit()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("program did not quit")
	}

	if !app.Snapshot().Running {
		t.Error("leftover start_stop should have started the watch")
	}
	app.Close()
	if app.ActiveTimers() != 0 {
		t.Errorf("ActiveTimers after Close = %d, want 0", app.ActiveTimers())
	}
}
