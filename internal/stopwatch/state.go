package stopwatch

import (
	"fmt"
	"slices"
)

// Action is a discrete input to the state machine.
type Action int

const (
	// ActionStartStop toggles between running and stopped.
	ActionStartStop Action = iota
	// ActionResetOrLap records a lap while running, resets while stopped.
	ActionResetOrLap
	// ActionTick advances the elapsed time by one second while running.
	ActionTick
)

// String returns the wire name of the action.
func (a Action) String() string {
	switch a {
	case ActionStartStop:
		return "start_stop"
	case ActionResetOrLap:
		return "reset_or_lap"
	case ActionTick:
		return "tick"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseAction converts a wire name back into an Action.
// Only the two user actions are accepted; ticks come from the timer.
func ParseAction(s string) (Action, bool) {
	switch s {
	case "start_stop":
		return ActionStartStop, true
	case "reset_or_lap":
		return ActionResetOrLap, true
	default:
		return 0, false
	}
}

// State is a snapshot of the stopwatch.
type State struct {
	// Running reports whether the timer is active.
	Running bool
	// ElapsedSeconds is the number of whole seconds since the last reset.
	ElapsedSeconds int
	// Laps holds the elapsed seconds recorded by each lap, oldest first.
	Laps []int
}

// InitialState returns a stopped watch with no elapsed time and no laps.
func InitialState() State {
	return State{Laps: []int{}}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := s
	c.Laps = slices.Clone(s.Laps)
	if c.Laps == nil {
		c.Laps = []int{}
	}
	return c
}

// Reduce returns the state that follows s after applying a.
// It never modifies s, so callers may keep the previous value around.
func Reduce(s State, a Action) State {
	next := s.Clone()

	switch a {
	case ActionStartStop:
		next.Running = !s.Running

	case ActionResetOrLap:
		if s.Running {
			next.Laps = append(next.Laps, s.ElapsedSeconds)
		} else {
			next.ElapsedSeconds = 0
			next.Laps = []int{}
		}

	case ActionTick:
		// A tick queued before a stop may still be delivered; drop it.
		if s.Running {
			next.ElapsedSeconds++
		}
	}

	return next
}
