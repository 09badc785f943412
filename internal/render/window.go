package render

import (
	"karolbroda.com/lyroverlay/internal/lyrics"
	"karolbroda.com/lyroverlay/internal/settings"
)

type Element struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// LineSet is one lyric line in the window with the sub-texts that render
// for it.
type LineSet struct {
	Index    int       `json:"index"`
	IsActive bool      `json:"isActive"`
	Dimmed   bool      `json:"dimmed"`
	Opacity  float64   `json:"opacity"`
	Elements []Element `json:"elements"`
}

// ClampLines bounds a look-back or look-ahead count to [0, 5].
func ClampLines(n int) int {
	return settings.ClampLines(n)
}

// BuildWindow returns the inclusive index range around active. ok is false
// when there is no active line to centre on.
func BuildWindow(lines []lyrics.Line, active, prev, next int) (start, end int, ok bool) {
	if len(lines) == 0 || active < 0 || active >= len(lines) {
		return 0, 0, false
	}

	start = max(0, active-ClampLines(prev))
	end = min(len(lines)-1, active+ClampLines(next))
	return start, end, true
}

// BuildSets renders the window around active into line sets. Elements
// follow the configured order and sets with nothing to show are left out.
func BuildSets(lines []lyrics.Line, active int, s settings.Overlay) []LineSet {
	start, end, ok := BuildWindow(lines, active, s.LyricsPrevLines, s.LyricsNextLines)
	if !ok {
		return nil
	}

	order := s.LyricsOrder()
	toggles := lyrics.Toggles{
		Original:    s.ShowOriginal,
		Phonetic:    s.ShowPhonetic,
		Translation: s.ShowTranslation,
	}
	inactive := float64(s.InactiveLyricsOpacity) / 100

	sets := make([]LineSet, 0, end-start+1)
	for i := start; i <= end; i++ {
		display := lyrics.DeriveDisplay(lines[i], toggles)
		elements := orderElements(display, order)
		if len(elements) == 0 {
			continue
		}

		set := LineSet{
			Index:    i,
			IsActive: i == active,
			Opacity:  1,
			Elements: elements,
		}
		if s.FadeNonActiveLyrics && !set.IsActive {
			set.Dimmed = true
			set.Opacity = inactive
		}
		sets = append(sets, set)
	}

	if len(sets) == 0 {
		return nil
	}
	return sets
}

func orderElements(d lyrics.Display, order []string) []Element {
	var elements []Element
	for _, kind := range order {
		var text string
		switch kind {
		case settings.ElementOriginal:
			text = d.Main
		case settings.ElementPhonetic:
			text = d.Phonetic
		case settings.ElementTranslation:
			text = d.Translation
		}
		if text == "" {
			continue
		}
		elements = append(elements, Element{Kind: kind, Text: text})
	}
	return elements
}
