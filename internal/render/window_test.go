package render

import (
	"testing"

	"karolbroda.com/lyroverlay/internal/lyrics"
	"karolbroda.com/lyroverlay/internal/settings"
)

func abc() []lyrics.Line {
	return []lyrics.Line{
		{StartTime: 0, Text: "a"},
		{StartTime: 10, Text: "b"},
		{StartTime: 20, Text: "c"},
	}
}

func TestWindowScenario(t *testing.T) {
	lines := abc()

	active, ok := lyrics.ResolveActive(lines, 15)
	if !ok || active != 1 {
		t.Fatalf("expected active 1, got %d (%v)", active, ok)
	}

	start, end, ok := BuildWindow(lines, active, 1, 1)
	if !ok || start != 0 || end != 2 {
		t.Fatalf("expected window [0,2], got [%d,%d]", start, end)
	}

	s := settings.Defaults()
	s.LyricsPrevLines = 1
	s.LyricsNextLines = 1

	sets := BuildSets(lines, active, s)
	if len(sets) != 3 {
		t.Fatalf("expected 3 sets, got %d", len(sets))
	}
	for i, want := range []string{"a", "b", "c"} {
		if sets[i].Elements[0].Text != want {
			t.Errorf("set %d: got %q, want %q", i, sets[i].Elements[0].Text, want)
		}
		if sets[i].IsActive != (i == 1) {
			t.Errorf("set %d: isActive = %v", i, sets[i].IsActive)
		}
	}
}

func TestBuildWindowBounds(t *testing.T) {
	lines := make([]lyrics.Line, 10)
	for i := range lines {
		lines[i] = lyrics.Line{StartTime: float64(i), Text: "x"}
	}

	tests := []struct {
		name       string
		active     int
		prev, next int
		start, end int
	}{
		{"first line", 0, 3, 3, 0, 3},
		{"last line", 9, 2, 4, 7, 9},
		{"negative counts", 5, -1, -7, 5, 5},
		{"counts above five", 5, 9, 9, 0, 9},
		{"middle", 5, 2, 1, 3, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := BuildWindow(lines, tt.active, tt.prev, tt.next)
			if !ok {
				t.Fatal("expected a window")
			}
			if start != tt.start || end != tt.end {
				t.Errorf("got [%d,%d], want [%d,%d]", start, end, tt.start, tt.end)
			}
			if !(0 <= start && start <= tt.active && tt.active <= end && end <= len(lines)-1) {
				t.Errorf("window [%d,%d] breaks bounds around %d", start, end, tt.active)
			}
		})
	}
}

func TestBuildWindowNoActive(t *testing.T) {
	if _, _, ok := BuildWindow(abc(), -1, 1, 1); ok {
		t.Error("no active line must give no window")
	}
	if _, _, ok := BuildWindow(nil, 0, 1, 1); ok {
		t.Error("empty lines must give no window")
	}
	if BuildSets(abc(), -1, settings.Defaults()) != nil {
		t.Error("expected no sets")
	}
}

func TestBuildSetsOrderAndFiltering(t *testing.T) {
	lines := []lyrics.Line{
		{StartTime: 0, Text: "hello", PronText: "heh-lo", TransText: "안녕"},
		{StartTime: 5, Text: "", PronText: "  ", TransText: ""},
		{StartTime: 9, Text: "bye", TransText: "bye"},
	}

	s := settings.Defaults()
	s.LyricsNextLines = 2
	s.ElementOrder = []string{settings.ElementTranslation, settings.ElementTrackInfo, settings.ElementOriginal, settings.ElementPhonetic}

	sets := BuildSets(lines, 0, s)
	if len(sets) != 2 {
		t.Fatalf("empty set should be omitted, got %d sets", len(sets))
	}

	first := sets[0]
	kinds := []string{first.Elements[0].Kind, first.Elements[1].Kind, first.Elements[2].Kind}
	want := []string{settings.ElementTranslation, settings.ElementOriginal, settings.ElementPhonetic}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("element %d: got %s, want %s", i, kinds[i], want[i])
		}
	}

	if sets[1].Index != 2 || len(sets[1].Elements) != 1 {
		t.Errorf("duplicate translation should be dropped: %+v", sets[1])
	}
}

func TestBuildSetsTogglesOff(t *testing.T) {
	s := settings.Defaults()
	s.ShowOriginal = false
	s.ShowPhonetic = false
	s.ShowTranslation = false

	if sets := BuildSets(abc(), 1, s); sets != nil {
		t.Errorf("expected nothing to render, got %+v", sets)
	}
}

func TestBuildSetsFade(t *testing.T) {
	s := settings.Defaults()
	s.LyricsPrevLines = 1
	s.LyricsNextLines = 1
	s.InactiveLyricsOpacity = 40

	s.FadeNonActiveLyrics = true
	sets := BuildSets(abc(), 1, s)
	if !sets[0].Dimmed || sets[0].Opacity != 0.4 {
		t.Errorf("inactive set should be dimmed to 0.4: %+v", sets[0])
	}
	if sets[1].Dimmed || sets[1].Opacity != 1 {
		t.Errorf("active set must be full opacity: %+v", sets[1])
	}

	s.FadeNonActiveLyrics = false
	for _, set := range BuildSets(abc(), 1, s) {
		if set.Dimmed || set.Opacity != 1 {
			t.Errorf("fade disabled, set %d should be full opacity", set.Index)
		}
	}
}
