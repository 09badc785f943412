// Package preset holds the built-in style presets and the merge that applies
// one to the current settings.
package preset

import (
	"encoding/json"
	"slices"

	"karolbroda.com/lyroverlay/internal/logger"
	"karolbroda.com/lyroverlay/internal/settings"
)

type Category string

const (
	Minimal       Category = "minimal"
	Classic       Category = "classic"
	Modern        Category = "modern"
	Creative      Category = "creative"
	Accessibility Category = "accessibility"
)

// DefaultID is the preset the first-run setup applies.
const DefaultID = "spotify-native"

type Text struct {
	Ko string `json:"ko"`
	En string `json:"en"`
}

// In picks the localized string, falling back to English.
func (t Text) In(language string) string {
	if language == settings.LanguageKorean && t.Ko != "" {
		return t.Ko
	}
	return t.En
}

// Patch is a partial settings object keyed by the settings JSON field names.
type Patch map[string]any

// ApplyTo overlays the patch onto s. Keys not in the settings shape are
// ignored.
func (p Patch) ApplyTo(s settings.Overlay) (settings.Overlay, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return s, err
	}
	return settings.DecodeOver(s, raw)
}

type Preset struct {
	ID          string   `json:"id"`
	Name        Text     `json:"name"`
	Description Text     `json:"description"`
	Category    Category `json:"category"`
	Settings    Patch    `json:"settings"`
}

var categoryOrder = []Category{Minimal, Classic, Modern, Creative, Accessibility}

var categoryLabels = map[Category]Text{
	Minimal:       {Ko: "미니멀", En: "Minimal"},
	Classic:       {Ko: "클래식", En: "Classic"},
	Modern:        {Ko: "모던", En: "Modern"},
	Creative:      {Ko: "크리에이티브", En: "Creative"},
	Accessibility: {Ko: "접근성", En: "Accessibility"},
}

// Recommended lists the presets the setup flow offers first.
var Recommended = []string{"spotify-native", "clean-text", "karaoke-box", "glassmorphism"}

// Categories returns the categories in display order.
func Categories() []Category {
	return slices.Clone(categoryOrder)
}

func (c Category) Label() Text {
	return categoryLabels[c]
}

// All returns every preset in catalogue order.
func All() []Preset {
	return slices.Clone(catalogue)
}

func ByID(id string) (Preset, bool) {
	for _, p := range catalogue {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

func ByCategory(category Category) []Preset {
	var out []Preset
	for _, p := range catalogue {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// preserve copies the user and session fields that survive a preset switch.
func preserve(dst *settings.Overlay, current settings.Overlay) {
	dst.Language = current.Language
	dst.IsLocked = current.IsLocked

	dst.OriginalFontFamily = current.OriginalFontFamily
	dst.PhoneticFontFamily = current.PhoneticFontFamily
	dst.TranslationFontFamily = current.TranslationFontFamily

	dst.CustomCSS = current.CustomCSS

	dst.LockTiming = current.LockTiming

	dst.HideWhenPaused = current.HideWhenPaused
	dst.ShowNextTrack = current.ShowNextTrack
	dst.NextTrackSeconds = current.NextTrackSeconds

	dst.ElementOrder = slices.Clone(current.ElementOrder)

	dst.LyricsPrevLines = current.LyricsPrevLines
	dst.LyricsNextLines = current.LyricsNextLines
}

// Apply resets every style field to its default, carries over the preserved
// user fields from current, then overlays the preset. Neither input is
// modified.
func Apply(current settings.Overlay, p Preset) settings.Overlay {
	next := settings.Defaults()
	preserve(&next, current)

	patched, err := p.Settings.ApplyTo(next)
	if err != nil {
		logger.Warn("preset patch did not apply cleanly",
			logger.String("preset", p.ID), logger.ErrorField(err))
		return next
	}
	return patched
}
