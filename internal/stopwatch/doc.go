// Package stopwatch implements the lapwatch state machine.
//
// A Stopwatch has two states, stopped and running. Two actions drive it:
//   - ActionStartStop flips between the states. Entering running arms a
//     repeating one-second timer, entering stopped cancels it.
//   - ActionResetOrLap records a lap while running and resets the elapsed
//     time and laps while stopped.
//
// Every tick of the timer adds exactly one second of elapsed time.
//
// The transition logic lives in Reduce, a pure function over State. The
// Stopwatch type wraps it and owns the timer handle, so at most one handle
// is ever live and none survives a stop:
//
//	sw := stopwatch.New()
//	defer sw.Close()
//
//	sw.ToggleRunning()
//	for sw.Ticker().Wait() {
//	    sw.OnTick()
//	}
//
// Stopwatch is not safe for concurrent use. Callers serialize actions and
// ticks on a single event loop (the bubbletea Update loop in lapwatch).
package stopwatch
