package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"karolbroda.com/lyroverlay/internal/engine"
	"karolbroda.com/lyroverlay/internal/lyrics"
	"karolbroda.com/lyroverlay/internal/track"
)

var ErrMissingField = errors.New("missing required field")

// The wire structs use pointers for required fields so an absent key can be
// told apart from a zero value.

type trackPayload struct {
	Title    *string  `json:"title"`
	Artist   *string  `json:"artist"`
	Album    *string  `json:"album"`
	AlbumArt string   `json:"albumArt"`
	Duration *float64 `json:"duration"`
}

type linePayload struct {
	StartTime *float64 `json:"startTime"`
	EndTime   *float64 `json:"endTime"`
	Text      *string  `json:"text"`
	PronText  string   `json:"pronText"`
	TransText string   `json:"transText"`
}

type lyricsPayload struct {
	Track    *trackPayload  `json:"track"`
	Lyrics   *[]linePayload `json:"lyrics"`
	IsSynced *bool          `json:"isSynced"`
}

type nextTrackPayload struct {
	Title    *string `json:"title"`
	Artist   *string `json:"artist"`
	AlbumArt string  `json:"albumArt"`
}

type progressPayload struct {
	Position  *float64        `json:"position"`
	IsPlaying *bool           `json:"isPlaying"`
	Duration  *float64        `json:"duration"`
	Remaining *float64        `json:"remaining"`
	NextTrack json.RawMessage `json:"nextTrack"`
}

type hoverPayload struct {
	Hovering *bool `json:"hovering"`
}

type lockPayload struct {
	Locked *bool `json:"locked"`
}

type unlockProgressPayload struct {
	Progress *float64 `json:"progress"`
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}

func decodeLyrics(raw []byte) (lyrics.Data, error) {
	var p lyricsPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return lyrics.Data{}, err
	}

	switch {
	case p.Track == nil:
		return lyrics.Data{}, missing("track")
	case p.Track.Title == nil:
		return lyrics.Data{}, missing("track.title")
	case p.Track.Artist == nil:
		return lyrics.Data{}, missing("track.artist")
	case p.Track.Album == nil:
		return lyrics.Data{}, missing("track.album")
	case p.Track.Duration == nil:
		return lyrics.Data{}, missing("track.duration")
	case p.Lyrics == nil:
		return lyrics.Data{}, missing("lyrics")
	case p.IsSynced == nil:
		return lyrics.Data{}, missing("isSynced")
	}

	lines := make([]lyrics.Line, 0, len(*p.Lyrics))
	for i, l := range *p.Lyrics {
		if l.StartTime == nil {
			return lyrics.Data{}, missing(fmt.Sprintf("lyrics[%d].startTime", i))
		}
		if l.Text == nil {
			return lyrics.Data{}, missing(fmt.Sprintf("lyrics[%d].text", i))
		}
		lines = append(lines, lyrics.Line{
			StartTime: *l.StartTime,
			EndTime:   l.EndTime,
			Text:      *l.Text,
			PronText:  l.PronText,
			TransText: l.TransText,
		})
	}

	return lyrics.Data{
		Track: track.Info{
			Title:    *p.Track.Title,
			Artist:   *p.Track.Artist,
			Album:    *p.Track.Album,
			AlbumArt: p.Track.AlbumArt,
			Duration: *p.Track.Duration,
		},
		Lines:    lines,
		IsSynced: *p.IsSynced,
	}, nil
}

func decodeProgress(raw []byte) (engine.ProgressEvent, error) {
	var p progressPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return engine.ProgressEvent{}, err
	}

	if p.Position == nil {
		return engine.ProgressEvent{}, missing("position")
	}
	if p.IsPlaying == nil {
		return engine.ProgressEvent{}, missing("isPlaying")
	}

	// absent or null optional fields mean unknown
	ev := engine.ProgressEvent{
		Position:  *p.Position,
		IsPlaying: *p.IsPlaying,
		Remaining: math.Inf(1),
	}
	if p.Remaining != nil {
		ev.Remaining = *p.Remaining
	}

	next := bytes.TrimSpace(p.NextTrack)
	switch {
	case len(next) == 0, bytes.Equal(next, []byte("null")):
	default:
		var n nextTrackPayload
		if err := json.Unmarshal(next, &n); err != nil {
			return engine.ProgressEvent{}, fmt.Errorf("invalid nextTrack: %w", err)
		}
		if n.Title == nil || n.Artist == nil {
			return engine.ProgressEvent{}, missing("nextTrack.title/artist")
		}
		ev.NextTrack = &track.Next{Title: *n.Title, Artist: *n.Artist, AlbumArt: n.AlbumArt}
	}

	return ev, nil
}
