// Package render turns the engine's snapshot of track, lyrics, progress and
// settings into the instructions a render surface draws: which lines, which
// sub-texts, at what opacity.
package render

import (
	"math"

	"karolbroda.com/lyroverlay/internal/lyrics"
	"karolbroda.com/lyroverlay/internal/settings"
	"karolbroda.com/lyroverlay/internal/track"
)

// Snapshot is everything the derivation reads.
type Snapshot struct {
	Track     *track.Info
	Lines     []lyrics.Line
	Position  float64
	IsPlaying bool
	Remaining float64
	NextTrack *track.Next
	Settings  settings.Overlay
	Hovering  bool
	Stale     bool

	// UnlockProgress is the host's hold-to-unlock gauge in [0, 1].
	UnlockProgress float64
}

// TrackInfo is the identity shown in the track info block.
type TrackInfo struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Label    string `json:"label"`
	AlbumArt string `json:"albumArt,omitempty"`
	IsNext   bool   `json:"isNext"`
}

type State struct {
	Opacity        float64    `json:"opacity"`
	IsLocked       bool       `json:"isLocked"`
	IsPlaying      bool       `json:"isPlaying"`
	ActiveIndex    int        `json:"activeIndex"`
	TrackInfo      *TrackInfo `json:"trackInfo,omitempty"`
	TrackInfoFirst bool       `json:"trackInfoFirst"`
	Sets           []LineSet  `json:"sets"`
	Waiting        bool       `json:"waiting"`
	UnlockProgress float64    `json:"unlockProgress"`
	Position       float64    `json:"position"`
	// Remaining is -1 when unknown.
	Remaining float64 `json:"remaining"`
}

// Derive computes the render state for s. It is a pure function of s.
func Derive(s Snapshot) State {
	cfg := s.Settings

	active, ok := lyrics.ResolveActive(s.Lines, s.Position)
	if !ok {
		active = -1
	}

	state := State{
		Opacity: Opacity(VisibilityInput{
			HideWhenPaused: cfg.HideWhenPaused,
			IsPlaying:      s.IsPlaying,
			HasTrack:       s.Track != nil,
			Stale:          s.Stale,
			IsLocked:       cfg.IsLocked,
			Hovering:       s.Hovering,
		}),
		IsLocked:       cfg.IsLocked,
		IsPlaying:      s.IsPlaying,
		ActiveIndex:    active,
		TrackInfo:      deriveTrackInfo(s),
		TrackInfoFirst: cfg.TrackInfoFirst(),
		Sets:           BuildSets(s.Lines, active, cfg),
		Waiting:        !ok && s.Track == nil && !cfg.IsLocked,
		Position:       s.Position,
		Remaining:      s.Remaining,
	}

	if math.IsInf(s.Remaining, 0) || math.IsNaN(s.Remaining) {
		state.Remaining = -1
	}
	if cfg.IsLocked && s.UnlockProgress > 0 {
		state.UnlockProgress = s.UnlockProgress
	}

	return state
}

func deriveTrackInfo(s Snapshot) *TrackInfo {
	cfg := s.Settings
	if !cfg.ShowTrackInfo {
		return nil
	}

	if PreviewNextTrack(cfg, s.NextTrack, s.Remaining) {
		info := &TrackInfo{
			Title:  s.NextTrack.Title,
			Artist: s.NextTrack.Artist,
			Label:  track.Label(s.NextTrack.Artist, s.NextTrack.Title),
			IsNext: true,
		}
		if cfg.ShowAlbumArt {
			info.AlbumArt = s.NextTrack.AlbumArt
		}
		return info
	}

	if s.Track == nil {
		return nil
	}

	info := &TrackInfo{
		Title:  s.Track.Title,
		Artist: s.Track.Artist,
		Label:  track.Label(s.Track.Artist, s.Track.Title),
	}
	if cfg.ShowAlbumArt {
		info.AlbumArt = s.Track.AlbumArt
	}
	return info
}
