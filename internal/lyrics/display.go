package lyrics

import "strings"

// Toggles selects which sub-texts of a line may render.
type Toggles struct {
	Original    bool
	Phonetic    bool
	Translation bool
}

// Display holds the sub-texts of a line that should render. An empty field
// means that element is not shown.
type Display struct {
	Main        string
	Phonetic    string
	Translation string
}

// IsEmpty reports whether nothing would render for the line.
func (d Display) IsEmpty() bool {
	return d.Main == "" && d.Phonetic == "" && d.Translation == ""
}

// DeriveDisplay decides which sub-texts of line are meaningfully distinct.
// Translation is also suppressed when it equals the phonetic text, since
// some providers fill both fields with the same string.
func DeriveDisplay(line Line, toggles Toggles) Display {
	var d Display

	if toggles.Original {
		d.Main = line.Text
	}

	if toggles.Phonetic && hasContent(line.PronText) && line.PronText != line.Text {
		d.Phonetic = line.PronText
	}

	if toggles.Translation &&
		hasContent(line.TransText) &&
		line.TransText != line.Text &&
		line.TransText != line.PronText {
		d.Translation = line.TransText
	}

	return d
}

func hasContent(s string) bool {
	return strings.TrimSpace(s) != ""
}
