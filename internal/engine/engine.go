// Package engine owns the overlay state. Feed pushes, settings changes and
// watchdog expiry are queued on one channel and folded in delivery order by a
// single goroutine, which re-derives the render state after every change and
// hands it to subscribers.
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"karolbroda.com/lyroverlay/internal/host"
	"karolbroda.com/lyroverlay/internal/logger"
	"karolbroda.com/lyroverlay/internal/lyrics"
	"karolbroda.com/lyroverlay/internal/render"
	"karolbroda.com/lyroverlay/internal/settings"
	"karolbroda.com/lyroverlay/internal/track"
	"karolbroda.com/lyroverlay/internal/watchdog"
)

const (
	inboundBuffer    = 64
	subscriberBuffer = 1
)

var ErrStopped = errors.New("engine stopped")

type Option func(*Engine)

func WithShell(shell host.Shell) Option {
	return func(e *Engine) {
		e.shell = shell
	}
}

// WithDataTimeout sets how long the feeds may stay quiet before the overlay
// hides.
func WithDataTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.dataTimeout = d
	}
}

type Engine struct {
	store       *settings.Store
	shell       host.Shell
	dataTimeout time.Duration
	watchdog    *watchdog.Watchdog

	inbound chan Event
	done    chan struct{}
	runOnce sync.Once

	// owned by the Run goroutine
	state State

	mu          sync.RWMutex
	latest      render.State
	subscribers map[string]chan render.State
}

func New(store *settings.Store, opts ...Option) *Engine {
	e := &Engine{
		store:       store,
		shell:       host.LogShell{},
		dataTimeout: watchdog.DefaultQuietWindow,
		inbound:     make(chan Event, inboundBuffer),
		done:        make(chan struct{}),
		subscribers: make(map[string]chan render.State),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.watchdog = watchdog.New(
		watchdog.WithQuietWindow(e.dataTimeout),
		watchdog.WithOnStale(func() {
			_ = e.send(staleEvent{})
		}),
	)

	e.state = NewState(store.Get())
	e.latest = render.Derive(e.state.Snapshot)

	return e
}

// Run processes events until ctx is cancelled. It may only be called once.
func (e *Engine) Run(ctx context.Context) error {
	started := false
	e.runOnce.Do(func() { started = true })
	if !started {
		return errors.New("engine already running")
	}

	defer close(e.done)
	defer e.watchdog.Stop()

	settingsID, settingsCh := e.store.Subscribe()
	defer e.store.Unsubscribe(settingsID)

	e.state.Apply(SettingsEvent{Settings: e.store.Get()})
	host.Sync(e.shell, nil, e.state.Settings)
	e.publish()

	for {
		select {
		case <-ctx.Done():
			return nil

		case next, ok := <-settingsCh:
			if !ok {
				return nil
			}
			e.handle(SettingsEvent{Settings: next})

		case ev := <-e.inbound:
			e.handle(ev)
		}
	}
}

func (e *Engine) handle(ev Event) {
	prevSettings := e.state.Settings

	switch typed := ev.(type) {
	case LyricsEvent, ProgressEvent:
		e.watchdog.Touch()

	case staleEvent:
		// the watchdog is authoritative; a feed event queued ahead of this one
		// may already have refreshed it
		ev = staleEvent{stale: e.watchdog.Stale()}

	case LockEvent:
		if _, err := e.store.Update(func(o *settings.Overlay) { o.IsLocked = typed.Locked }); err != nil {
			logger.Warn("failed to persist lock state", logger.ErrorField(err))
		}

	case DragEvent:
		if !e.state.Settings.IsLocked {
			e.shell.StartDrag()
		}
		return
	}

	if !e.state.Apply(ev) {
		return
	}

	if !prevSettings.Equal(e.state.Settings) {
		host.Sync(e.shell, &prevSettings, e.state.Settings)
	}

	e.publish()
}

func (e *Engine) publish() {
	state := render.Derive(e.state.Snapshot)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.latest = state
	for _, ch := range e.subscribers {
		// keep only the newest state for slow readers
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- state:
		default:
		}
	}
}

// Latest returns the most recently derived render state.
func (e *Engine) Latest() render.State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.latest
}

// Subscribe returns a channel that always holds the newest render state.
// The current state is delivered immediately.
func (e *Engine) Subscribe() (string, <-chan render.State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan render.State, subscriberBuffer)
	ch <- e.latest
	e.subscribers[id] = ch

	return id, ch
}

func (e *Engine) Unsubscribe(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if ch, ok := e.subscribers[id]; ok {
		delete(e.subscribers, id)
		close(ch)
	}
}

func (e *Engine) send(ev Event) error {
	select {
	case e.inbound <- ev:
		return nil
	case <-e.done:
		return ErrStopped
	}
}

func (e *Engine) PushLyrics(data lyrics.Data) error {
	return e.send(LyricsEvent{Data: data})
}

func (e *Engine) PushProgress(ev ProgressEvent) error {
	return e.send(ev)
}

func (e *Engine) PushHover(hovering bool) error {
	return e.send(HoverEvent{Hovering: hovering})
}

func (e *Engine) PushLock(locked bool) error {
	return e.send(LockEvent{Locked: locked})
}

func (e *Engine) PushUnlockProgress(progress float64) error {
	return e.send(UnlockProgressEvent{Progress: progress})
}

func (e *Engine) PointerDown() error {
	return e.send(DragEvent{})
}

// Progress is a convenience for feeds that always know every field.
func Progress(position float64, playing bool, remaining float64, next *track.Next) ProgressEvent {
	return ProgressEvent{
		Position:  position,
		IsPlaying: playing,
		Remaining: remaining,
		NextTrack: next,
	}
}
