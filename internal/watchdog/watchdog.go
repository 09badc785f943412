// Package watchdog flags a feed as stale after a quiet period with no events.
package watchdog

import (
	"sync"
	"time"
)

// DefaultQuietWindow is how long the feed may stay silent before it is
// considered stale.
const DefaultQuietWindow = 5 * time.Second

type Option func(*Watchdog)

func WithQuietWindow(d time.Duration) Option {
	return func(w *Watchdog) {
		w.quiet = d
	}
}

// WithOnStale registers a callback run on the timer goroutine when the
// watchdog turns stale.
func WithOnStale(fn func()) Option {
	return func(w *Watchdog) {
		w.onStale = fn
	}
}

// Watchdog starts FRESH and without a pending timer; the countdown begins at
// the first Touch.
type Watchdog struct {
	quiet   time.Duration
	onStale func()

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	stale      bool
	stopped    bool
}

func New(opts ...Option) *Watchdog {
	w := &Watchdog{quiet: DefaultQuietWindow}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Touch records an event: the watchdog is FRESH again and the countdown
// restarts from zero.
func (w *Watchdog) Touch() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}

	if w.timer != nil {
		w.timer.Stop()
	}

	w.stale = false
	w.generation++
	gen := w.generation
	w.timer = time.AfterFunc(w.quiet, func() {
		w.expire(gen)
	})
}

func (w *Watchdog) expire(gen uint64) {
	w.mu.Lock()
	// a Touch that raced with this timer already moved the generation on
	if w.stopped || gen != w.generation {
		w.mu.Unlock()
		return
	}
	w.stale = true
	w.timer = nil
	onStale := w.onStale
	w.mu.Unlock()

	if onStale != nil {
		onStale()
	}
}

func (w *Watchdog) Stale() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stale
}

// Stop cancels any pending timer. The watchdog never turns stale after Stop
// returns, and later Touch calls are ignored.
func (w *Watchdog) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopped = true
	w.generation++
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
