// Package tui provides the terminal user interface for lapwatch.
//
// The screen shows:
//   - the configured title
//   - the elapsed time as m:ss
//   - two controls whose labels follow the running state
//     (Start/Pause and Reset/Lap by default)
//   - a scrollable list of laps, newest at the bottom
//   - key hints
//
// App owns a stopwatch.Stopwatch. Every key press, control signal and tick
// is applied inside Update, so actions and ticks never overlap. While
// running, App keeps exactly one pending command waiting on the current
// timer handle; a stop cancels the handle, which releases that command
// without producing a tick.
//
// Usage:
//
//	program, app := tui.NewProgram(ctx, tui.Options{Title: "Stopwatch"})
//	defer app.Close()
//
//	// Forward actions from other sources
//	program.Send(tui.ActionMsg{Action: stopwatch.ActionStartStop})
//
//	if _, err := program.Run(); err != nil {
//	    return err
//	}
//	final := app.Snapshot()
package tui
