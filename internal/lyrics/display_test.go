package lyrics

import "testing"

var allOn = Toggles{Original: true, Phonetic: true, Translation: true}

func TestDeriveDisplayDuplicatePhoneticAndTranslation(t *testing.T) {
	line := Line{Text: "love", PronText: "사랑", TransText: "사랑"}

	d := DeriveDisplay(line, allOn)

	if d.Main != "love" {
		t.Errorf("main = %q, want love", d.Main)
	}
	if d.Phonetic != "사랑" {
		t.Errorf("phonetic = %q, want 사랑", d.Phonetic)
	}
	if d.Translation != "" {
		t.Errorf("translation should be suppressed as duplicate of phonetic, got %q", d.Translation)
	}
}

func TestDeriveDisplayRules(t *testing.T) {
	cases := []struct {
		name    string
		line    Line
		toggles Toggles
		want    Display
	}{
		{
			name:    "all distinct",
			line:    Line{Text: "a", PronText: "b", TransText: "c"},
			toggles: allOn,
			want:    Display{Main: "a", Phonetic: "b", Translation: "c"},
		},
		{
			name:    "phonetic equals text",
			line:    Line{Text: "a", PronText: "a", TransText: "c"},
			toggles: allOn,
			want:    Display{Main: "a", Translation: "c"},
		},
		{
			name:    "translation equals text",
			line:    Line{Text: "a", PronText: "b", TransText: "a"},
			toggles: allOn,
			want:    Display{Main: "a", Phonetic: "b"},
		},
		{
			name:    "whitespace only",
			line:    Line{Text: "a", PronText: "   ", TransText: "\t"},
			toggles: allOn,
			want:    Display{Main: "a"},
		},
		{
			name:    "toggles off",
			line:    Line{Text: "a", PronText: "b", TransText: "c"},
			toggles: Toggles{},
			want:    Display{},
		},
		{
			name:    "translation still deduplicated when phonetic hidden",
			line:    Line{Text: "a", PronText: "b", TransText: "b"},
			toggles: Toggles{Original: true, Translation: true},
			want:    Display{Main: "a"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveDisplay(tc.line, tc.toggles)
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestDeriveDisplayNeverDuplicates(t *testing.T) {
	texts := []string{"", " ", "x", "y", "사랑"}

	for _, text := range texts {
		for _, pron := range texts {
			for _, trans := range texts {
				d := DeriveDisplay(Line{Text: text, PronText: pron, TransText: trans}, allOn)
				if d.Phonetic != "" && (d.Phonetic == d.Main || d.Phonetic == d.Translation) {
					t.Errorf("phonetic duplicated for %q/%q/%q: %+v", text, pron, trans, d)
				}
				if d.Translation != "" && d.Translation == d.Main {
					t.Errorf("translation duplicated for %q/%q/%q: %+v", text, pron, trans, d)
				}
			}
		}
	}
}
