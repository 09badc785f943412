package render

import (
	"karolbroda.com/lyroverlay/internal/settings"
	"karolbroda.com/lyroverlay/internal/track"
)

// PreviewNextTrack reports whether track info should announce the upcoming
// track. An unknown remaining time (+Inf) never triggers it.
func PreviewNextTrack(s settings.Overlay, next *track.Next, remaining float64) bool {
	return s.ShowNextTrack &&
		next != nil &&
		remaining > 0 &&
		remaining <= s.NextTrackSeconds
}
