package watchdog

import (
	"sync/atomic"
	"testing"
	"time"
)

const quiet = 40 * time.Millisecond

func TestStartsFresh(t *testing.T) {
	w := New(WithQuietWindow(quiet))
	defer w.Stop()

	time.Sleep(2 * quiet)
	if w.Stale() {
		t.Error("no timer should run before the first event")
	}
}

func TestTurnsStaleAfterQuietWindow(t *testing.T) {
	fired := make(chan struct{}, 1)
	w := New(WithQuietWindow(quiet), WithOnStale(func() { fired <- struct{}{} }))
	defer w.Stop()

	w.Touch()
	if w.Stale() {
		t.Fatal("fresh right after touch")
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("stale callback never fired")
	}
	if !w.Stale() {
		t.Error("expected stale")
	}
}

func TestTouchResetsCountdown(t *testing.T) {
	w := New(WithQuietWindow(4 * quiet))
	defer w.Stop()

	w.Touch()
	for i := 0; i < 6; i++ {
		time.Sleep(quiet)
		w.Touch()
		if w.Stale() {
			t.Fatalf("stale after %d touches", i+1)
		}
	}
}

func TestTouchClearsStaleImmediately(t *testing.T) {
	w := New(WithQuietWindow(quiet))
	defer w.Stop()

	w.Touch()
	time.Sleep(3 * quiet)
	if !w.Stale() {
		t.Fatal("expected stale")
	}

	w.Touch()
	if w.Stale() {
		t.Error("touch must clear stale within the same call")
	}
}

func TestStopPreventsStale(t *testing.T) {
	var calls atomic.Int32
	w := New(WithQuietWindow(quiet), WithOnStale(func() { calls.Add(1) }))

	w.Touch()
	w.Stop()
	time.Sleep(3 * quiet)

	if w.Stale() || calls.Load() != 0 {
		t.Error("stopped watchdog must not fire")
	}

	w.Touch()
	time.Sleep(3 * quiet)
	if w.Stale() {
		t.Error("touch after stop must be ignored")
	}
}

func TestStaleTimerFromOldGenerationIgnored(t *testing.T) {
	w := New(WithQuietWindow(time.Hour))
	defer w.Stop()

	w.Touch()
	w.mu.Lock()
	old := w.generation
	w.mu.Unlock()

	w.Touch()
	w.expire(old)

	if w.Stale() {
		t.Error("an expired earlier timer must not mark the watchdog stale")
	}
}
