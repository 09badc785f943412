package engine

import (
	"math"

	"karolbroda.com/lyroverlay/internal/lyrics"
	"karolbroda.com/lyroverlay/internal/render"
	"karolbroda.com/lyroverlay/internal/settings"
	"karolbroda.com/lyroverlay/internal/track"
)

type Event interface {
	isEvent()
}

// LyricsEvent replaces the current track and its lines.
type LyricsEvent struct {
	Data lyrics.Data
}

// ProgressEvent carries one playback progress push. Every push replaces the
// previous remaining time and next track: +Inf means the remaining time is
// unknown and a nil NextTrack clears the preview.
type ProgressEvent struct {
	Position  float64
	IsPlaying bool
	Remaining float64
	NextTrack *track.Next
}

type HoverEvent struct {
	Hovering bool
}

// LockEvent is a lock toggle made outside the overlay, such as a tray menu.
type LockEvent struct {
	Locked bool
}

type SettingsEvent struct {
	Settings settings.Overlay
}

// UnlockProgressEvent reports the host's hold-to-unlock gauge.
type UnlockProgressEvent struct {
	Progress float64
}

// DragEvent is a pointer press on the overlay.
type DragEvent struct{}

type staleEvent struct {
	stale bool
}

func (LyricsEvent) isEvent()         {}
func (ProgressEvent) isEvent()       {}
func (HoverEvent) isEvent()          {}
func (LockEvent) isEvent()           {}
func (SettingsEvent) isEvent()       {}
func (UnlockProgressEvent) isEvent() {}
func (DragEvent) isEvent()           {}
func (staleEvent) isEvent()          {}

// State is the engine's single source of truth.
type State struct {
	render.Snapshot
}

func NewState(s settings.Overlay) State {
	return State{render.Snapshot{
		Remaining: math.Inf(1),
		Settings:  s.Clone(),
	}}
}

// Apply folds ev into the state and reports whether anything that feeds
// rendering changed. It performs no I/O.
func (s *State) Apply(ev Event) bool {
	switch ev := ev.(type) {
	case LyricsEvent:
		info := ev.Data.Track
		s.Track = &info
		s.Lines = lyrics.Normalize(ev.Data)
		s.Stale = false
		return true

	case ProgressEvent:
		changed := s.Position != ev.Position || s.IsPlaying != ev.IsPlaying || s.Stale
		s.Position = ev.Position
		s.IsPlaying = ev.IsPlaying
		s.Stale = false

		if ev.Remaining != s.Remaining {
			s.Remaining = ev.Remaining
			changed = true
		}

		if !sameNext(s.NextTrack, ev.NextTrack) {
			if ev.NextTrack == nil {
				s.NextTrack = nil
			} else {
				next := *ev.NextTrack
				s.NextTrack = &next
			}
			changed = true
		}
		return changed

	case HoverEvent:
		if s.Hovering == ev.Hovering {
			return false
		}
		s.Hovering = ev.Hovering
		return true

	case LockEvent:
		if s.Settings.IsLocked == ev.Locked {
			return false
		}
		s.Settings.IsLocked = ev.Locked
		return true

	case SettingsEvent:
		if s.Settings.Equal(ev.Settings) {
			return false
		}
		s.Settings = ev.Settings.Clone()
		return true

	case UnlockProgressEvent:
		progress := min(max(ev.Progress, 0), 1)
		if s.UnlockProgress == progress {
			return false
		}
		s.UnlockProgress = progress
		return true

	case staleEvent:
		if s.Stale == ev.stale {
			return false
		}
		s.Stale = ev.stale
		return true
	}

	return false
}

func sameNext(a, b *track.Next) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
