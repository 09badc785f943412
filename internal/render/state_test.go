package render

import (
	"math"
	"testing"

	"karolbroda.com/lyroverlay/internal/settings"
	"karolbroda.com/lyroverlay/internal/track"
)

func playing() Snapshot {
	return Snapshot{
		Track:     &track.Info{Title: "Song", Artist: "Band", AlbumArt: "http://art/1.jpg"},
		Lines:     abc(),
		Position:  15,
		IsPlaying: true,
		Remaining: math.Inf(1),
		Settings:  settings.Defaults(),
	}
}

func TestDerivePlaying(t *testing.T) {
	state := Derive(playing())

	if state.Opacity != 1 {
		t.Errorf("expected opacity 1, got %v", state.Opacity)
	}
	if state.ActiveIndex != 1 {
		t.Errorf("expected active 1, got %d", state.ActiveIndex)
	}
	if len(state.Sets) != 1 || state.Sets[0].Elements[0].Text != "b" {
		t.Errorf("default window is only the active line: %+v", state.Sets)
	}
	if state.TrackInfo == nil || state.TrackInfo.Label != "Band - Song" || state.TrackInfo.IsNext {
		t.Errorf("unexpected track info: %+v", state.TrackInfo)
	}
	if state.TrackInfo.AlbumArt != "http://art/1.jpg" {
		t.Error("album art should be shown by default")
	}
	if !state.TrackInfoFirst {
		t.Error("default order puts track info first")
	}
	if state.Waiting {
		t.Error("not waiting while a track plays")
	}
	if state.Remaining != -1 {
		t.Errorf("unknown remaining should encode as -1, got %v", state.Remaining)
	}
}

func TestDerivePausedHidden(t *testing.T) {
	snap := playing()
	snap.IsPlaying = false
	snap.Settings.HideWhenPaused = true
	snap.Hovering = true

	if got := Derive(snap).Opacity; got != 0 {
		t.Errorf("expected hidden, got %v", got)
	}
}

func TestDeriveStale(t *testing.T) {
	snap := playing()
	snap.Stale = true

	if got := Derive(snap).Opacity; got != 0 {
		t.Errorf("expected hidden, got %v", got)
	}
}

func TestDeriveNextTrackPreview(t *testing.T) {
	snap := playing()
	snap.Remaining = 10
	snap.NextTrack = &track.Next{Title: "Later", Artist: "Other", AlbumArt: "http://art/2.jpg"}

	state := Derive(snap)
	if state.TrackInfo == nil || !state.TrackInfo.IsNext || state.TrackInfo.Title != "Later" {
		t.Fatalf("expected next track preview, got %+v", state.TrackInfo)
	}
	if state.TrackInfo.AlbumArt != "http://art/2.jpg" {
		t.Error("expected next track art")
	}
	if state.ActiveIndex != 1 || state.Sets[0].Elements[0].Text != "b" {
		t.Error("lyrics must keep following the current track")
	}

	snap.Settings.ShowAlbumArt = false
	if Derive(snap).TrackInfo.AlbumArt != "" {
		t.Error("album art hidden by setting")
	}
}

func TestDeriveTrackInfoHidden(t *testing.T) {
	snap := playing()
	snap.Settings.ShowTrackInfo = false

	if Derive(snap).TrackInfo != nil {
		t.Error("track info disabled")
	}
}

func TestDeriveTrackInfoPosition(t *testing.T) {
	snap := playing()
	snap.Settings.ElementOrder = []string{settings.ElementOriginal, settings.ElementTrackInfo}

	if Derive(snap).TrackInfoFirst {
		t.Error("track info should follow lyrics when not first")
	}
}

func TestDeriveWaiting(t *testing.T) {
	snap := Snapshot{Settings: settings.Defaults(), Remaining: math.Inf(1)}

	snap.Settings.IsLocked = true
	if Derive(snap).Waiting {
		t.Error("locked overlay never shows the waiting indicator")
	}

	snap.Settings.IsLocked = false
	state := Derive(snap)
	if !state.Waiting {
		t.Error("expected waiting indicator")
	}
	if state.ActiveIndex != -1 || state.Sets != nil || state.TrackInfo != nil {
		t.Errorf("nothing to render: %+v", state)
	}
}

func TestDeriveBeforeFirstLine(t *testing.T) {
	snap := playing()
	snap.Lines[0].StartTime = 3
	snap.Position = 1

	state := Derive(snap)
	if state.ActiveIndex != -1 || state.Sets != nil {
		t.Errorf("no line is active yet: %+v", state)
	}
	if state.Waiting {
		t.Error("a known track is not waiting")
	}
}

func TestDeriveUnlockProgress(t *testing.T) {
	snap := playing()
	snap.UnlockProgress = 0.5

	if got := Derive(snap).UnlockProgress; got != 0.5 {
		t.Errorf("expected gauge 0.5, got %v", got)
	}

	snap.Settings.IsLocked = false
	if got := Derive(snap).UnlockProgress; got != 0 {
		t.Errorf("unlocked overlay shows no gauge, got %v", got)
	}
}
