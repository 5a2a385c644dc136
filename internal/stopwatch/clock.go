package stopwatch

import (
	"sync"
	"time"
)

// TickInterval is the period of the repeating timer.
const TickInterval = time.Second

// Ticker is a repeating timer. It allows fake implementations in tests.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// SystemClock is the default Clock backed by time.NewTicker.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct {
	t *time.Ticker
}

func (s *systemTicker) C() <-chan time.Time { return s.t.C }
func (s *systemTicker) Stop()               { s.t.Stop() }

// Handle is the owned, cancellable timer of one running period.
// A new Handle is created every time the watch starts and cancelled when it
// stops, so waiters blocked on an old Handle are released.
type Handle struct {
	generation uint64
	ticker     Ticker
	done       chan struct{}
	once       sync.Once
}

func newHandle(generation uint64, ticker Ticker) *Handle {
	return &Handle{
		generation: generation,
		ticker:     ticker,
		done:       make(chan struct{}),
	}
}

// Generation identifies the running period this handle belongs to.
func (h *Handle) Generation() uint64 {
	if h == nil {
		return 0
	}
	return h.generation
}

// Done is closed when the handle is cancelled.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Cancelled reports whether Cancel has been called.
func (h *Handle) Cancelled() bool {
	select {
	case <-h.Done():
		return true
	default:
		return false
	}
}

// Wait blocks until the next tick or until the handle is cancelled.
// It returns true for a tick. A nil handle returns false immediately.
func (h *Handle) Wait() bool {
	if h == nil {
		return false
	}
	select {
	case <-h.Done():
		return false
	case <-h.ticker.C():
		// Cancel wins a race with a tick that was already buffered.
		return !h.Cancelled()
	}
}

// Cancel stops the underlying ticker and releases waiters. Safe to call
// more than once.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		h.ticker.Stop()
		close(h.done)
	})
}
