package track

// Info is the identity of the track currently playing. A new Info replaces
// the previous one wholesale on every lyrics feed event.
type Info struct {
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Album    string  `json:"album"`
	AlbumArt string  `json:"albumArt,omitempty"`
	Duration float64 `json:"duration"`
}

// Next is the preview identity of the upcoming track.
type Next struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	AlbumArt string `json:"albumArt,omitempty"`
}

func (t *Info) IsValid() bool {
	if t == nil {
		return false
	}
	return t.Title != "" || t.Artist != ""
}

func (t *Info) IsSameTrack(other *Info) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Title == other.Title && t.Artist == other.Artist && t.Album == other.Album
}

// Label renders the "artist - title" form used by track info blocks.
func Label(artist, title string) string {
	switch {
	case artist == "":
		return title
	case title == "":
		return artist
	}
	return artist + " - " + title
}
