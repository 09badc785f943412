package lyrics

import (
	"sort"

	"karolbroda.com/lyroverlay/internal/track"
)

// Line is one timed lyric line. Times are in seconds.
type Line struct {
	StartTime float64  `json:"startTime"`
	EndTime   *float64 `json:"endTime,omitempty"`
	Text      string   `json:"text"`
	PronText  string   `json:"pronText,omitempty"`
	TransText string   `json:"transText,omitempty"`
}

// Data is one lyrics feed payload.
type Data struct {
	Track    track.Info `json:"track"`
	Lines    []Line     `json:"lyrics"`
	IsSynced bool       `json:"isSynced"`
}

// Normalize returns the line sequence the engine should time-render.
// Unsynced lyrics are never rendered, so they yield nil. Synced lines are
// copied and stably sorted by start time; lines sharing a start time keep
// feed order, which makes the later one win during resolution.
func Normalize(data Data) []Line {
	if !data.IsSynced || len(data.Lines) == 0 {
		return nil
	}

	lines := make([]Line, len(data.Lines))
	copy(lines, data.Lines)

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].StartTime < lines[j].StartTime
	})

	return lines
}

// ResolveActive returns the index of the last line whose start time is at or
// before position. The boolean is false when there are no lines or position
// precedes the first line.
func ResolveActive(lines []Line, position float64) (int, bool) {
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i].StartTime <= position {
			return i, true
		}
	}
	return -1, false
}
