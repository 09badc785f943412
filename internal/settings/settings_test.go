package settings

import (
	"encoding/json"
	"testing"
)

func TestDefaultsAreFreshCopies(t *testing.T) {
	a := Defaults()
	a.ElementOrder[0] = "mutated"
	a.OriginalFontSize = 99

	b := Defaults()
	if b.ElementOrder[0] != ElementTrackInfo {
		t.Errorf("defaults share element order slice: %v", b.ElementOrder)
	}
	if b.OriginalFontSize != 24 {
		t.Errorf("expected default font size 24, got %d", b.OriginalFontSize)
	}
}

func TestJSONShapeIsFlat(t *testing.T) {
	data, err := json.Marshal(Defaults())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{
		"showOriginal", "language", "isLocked", "originalFontSize",
		"activeColor", "textStroke", "trackInfoFontSize", "backgroundMode",
		"hideWhenPaused", "unlockWaitTime", "showAlbumArt", "lyricsPrevLines",
		"textAlign", "animationDuration", "customCSS", "elementOrder",
	} {
		if _, ok := flat[key]; !ok {
			t.Errorf("expected top-level key %q", key)
		}
	}

	for _, group := range []string{"Elements", "Typography", "Layout"} {
		if _, ok := flat[group]; ok {
			t.Errorf("embedded group %q leaked into json", group)
		}
	}

	if len(flat) < 70 {
		t.Errorf("expected the full settings record, got %d keys", len(flat))
	}
}

func TestDecodeMergesOverDefaults(t *testing.T) {
	got, err := Decode([]byte(`{"originalFontSize": 40, "language": "en", "elementOrder": ["original","trackInfo"]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.OriginalFontSize != 40 {
		t.Errorf("expected font size 40, got %d", got.OriginalFontSize)
	}
	if got.Language != LanguageEnglish {
		t.Errorf("expected language en, got %q", got.Language)
	}
	if got.TranslationFontSize != 16 {
		t.Errorf("absent field should keep default 16, got %d", got.TranslationFontSize)
	}
	if got.TrackInfoFirst() {
		t.Error("track info should render after lyrics")
	}
}

func TestDecodeOverDoesNotTouchBase(t *testing.T) {
	base := Defaults()
	before := base.Clone()

	if _, err := DecodeOver(base, []byte(`{"elementOrder": ["translation","original","phonetic","trackInfo"]}`)); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !base.Equal(before) {
		t.Errorf("base modified: %v", base.ElementOrder)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	base := Defaults()
	base.Padding = 3

	got, err := DecodeOver(base, []byte(`{"padding": "wide"`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !got.Equal(base) {
		t.Error("expected base back on error")
	}
}

func TestLyricsOrder(t *testing.T) {
	s := Defaults()
	s.ElementOrder = []string{ElementTranslation, ElementTrackInfo, "bogus", ElementOriginal, ElementPhonetic}

	got := s.LyricsOrder()
	want := []string{ElementTranslation, ElementOriginal, ElementPhonetic}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTrackInfoFirst(t *testing.T) {
	tests := []struct {
		order []string
		want  bool
	}{
		{DefaultElementOrder(), true},
		{[]string{ElementOriginal, ElementTrackInfo}, false},
		{nil, false},
	}

	for _, tt := range tests {
		s := Defaults()
		s.ElementOrder = tt.order
		if got := s.TrackInfoFirst(); got != tt.want {
			t.Errorf("order %v: got %v, want %v", tt.order, got, tt.want)
		}
	}
}

func TestClampLines(t *testing.T) {
	tests := map[int]int{-3: 0, 0: 0, 2: 2, 5: 5, 9: 5}
	for in, want := range tests {
		if got := ClampLines(in); got != want {
			t.Errorf("ClampLines(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := map[string]string{
		"ko_KR.UTF-8": LanguageKorean,
		"ko":          LanguageKorean,
		"KO-kr":       LanguageKorean,
		"en_US.UTF-8": LanguageEnglish,
		"":            LanguageEnglish,
		"de_DE":       LanguageEnglish,
	}
	for locale, want := range tests {
		if got := DetectLanguage(locale); got != want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", locale, got, want)
		}
	}
}
