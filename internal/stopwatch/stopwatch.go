package stopwatch

// Stopwatch owns a State and the timer handle that drives it.
type Stopwatch struct {
	clock  Clock
	state  State
	handle *Handle
	// generation counts handles created so far.
	generation uint64
}

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithClock replaces the system clock, typically with a fake in tests.
func WithClock(c Clock) Option {
	return func(s *Stopwatch) {
		if c != nil {
			s.clock = c
		}
	}
}

// New creates a stopped Stopwatch with no elapsed time and no laps.
func New(opts ...Option) *Stopwatch {
	s := &Stopwatch{
		clock: SystemClock,
		state: InitialState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ToggleRunning starts a stopped watch or stops a running one.
func (s *Stopwatch) ToggleRunning() {
	s.apply(ActionStartStop)
}

// OnLapOrReset records a lap while running, or clears elapsed time and
// laps while stopped.
func (s *Stopwatch) OnLapOrReset() {
	s.apply(ActionResetOrLap)
}

// OnTick advances elapsed time by one second. It has no effect while
// stopped.
func (s *Stopwatch) OnTick() {
	s.apply(ActionTick)
}

// Dispatch applies any action.
func (s *Stopwatch) Dispatch(a Action) {
	s.apply(a)
}

// HandleTick applies a tick produced by the handle of the given generation.
// Ticks from a cancelled handle are dropped; the return value reports
// whether the tick was applied.
func (s *Stopwatch) HandleTick(generation uint64) bool {
	if !s.state.Running || s.handle == nil || s.handle.Generation() != generation {
		return false
	}
	s.OnTick()
	return true
}

func (s *Stopwatch) apply(a Action) {
	wasRunning := s.state.Running
	s.state = Reduce(s.state, a)

	switch {
	case s.state.Running && !wasRunning:
		s.arm()
	case !s.state.Running && wasRunning:
		s.disarm()
	}
}

// arm replaces any live handle with a fresh one.
func (s *Stopwatch) arm() {
	s.disarm()
	s.generation++
	s.handle = newHandle(s.generation, s.clock.NewTicker(TickInterval))
}

func (s *Stopwatch) disarm() {
	if s.handle != nil {
		s.handle.Cancel()
		s.handle = nil
	}
}

// Snapshot returns a copy of the current state.
func (s *Stopwatch) Snapshot() State {
	return s.state.Clone()
}

// Running reports whether the watch is running.
func (s *Stopwatch) Running() bool {
	return s.state.Running
}

// Elapsed returns the elapsed whole seconds.
func (s *Stopwatch) Elapsed() int {
	return s.state.ElapsedSeconds
}

// Laps returns a copy of the recorded laps.
func (s *Stopwatch) Laps() []int {
	return s.Snapshot().Laps
}

// Ticker returns the live timer handle, or nil while stopped.
func (s *Stopwatch) Ticker() *Handle {
	return s.handle
}

// Generation returns the generation of the most recent handle.
func (s *Stopwatch) Generation() uint64 {
	return s.generation
}

// ActiveTimers returns the number of live timer handles: 1 while running,
// 0 otherwise.
func (s *Stopwatch) ActiveTimers() int {
	if s.handle == nil || s.handle.Cancelled() {
		return 0
	}
	return 1
}

// Close stops the watch and cancels its timer. Elapsed time and laps are
// kept so they can still be reported.
func (s *Stopwatch) Close() {
	s.state.Running = false
	s.disarm()
}
