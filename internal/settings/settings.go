// Package settings holds the overlay configuration record, its built-in
// defaults and the store that persists and broadcasts it.
//
// Overlay is composed of small embedded groups. encoding/json promotes the
// fields of embedded structs, so the serialized form stays the flat
// camelCase object that theme files and the settings file use.
package settings

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

const (
	ElementTrackInfo   = "trackInfo"
	ElementOriginal    = "original"
	ElementPhonetic    = "phonetic"
	ElementTranslation = "translation"
)

const (
	LanguageKorean  = "ko"
	LanguageEnglish = "en"
)

// MaxContextLines bounds lyricsPrevLines and lyricsNextLines.
const MaxContextLines = 5

type Elements struct {
	ShowOriginal    bool     `json:"showOriginal"`
	ShowPhonetic    bool     `json:"showPhonetic"`
	ShowTranslation bool     `json:"showTranslation"`
	ShowTrackInfo   bool     `json:"showTrackInfo"`
	ElementOrder    []string `json:"elementOrder"`
}

type Session struct {
	Language       string `json:"language"`
	IsLocked       bool   `json:"isLocked"`
	StartMinimized bool   `json:"startMinimized"`
}

type Typography struct {
	OriginalFontSize         int     `json:"originalFontSize"`
	PhoneticFontSize         int     `json:"phoneticFontSize"`
	TranslationFontSize      int     `json:"translationFontSize"`
	OriginalFontWeight       string  `json:"originalFontWeight"`
	PhoneticFontWeight       string  `json:"phoneticFontWeight"`
	TranslationFontWeight    string  `json:"translationFontWeight"`
	OriginalLetterSpacing    float64 `json:"originalLetterSpacing"`
	PhoneticLetterSpacing    float64 `json:"phoneticLetterSpacing"`
	TranslationLetterSpacing float64 `json:"translationLetterSpacing"`
	OriginalLineHeight       float64 `json:"originalLineHeight"`
	PhoneticLineHeight       float64 `json:"phoneticLineHeight"`
	TranslationLineHeight    float64 `json:"translationLineHeight"`
	OriginalFontFamily       string  `json:"originalFontFamily"`
	PhoneticFontFamily       string  `json:"phoneticFontFamily"`
	TranslationFontFamily    string  `json:"translationFontFamily"`
}

type Colors struct {
	TextColor             string `json:"textColor"`
	ActiveColor           string `json:"activeColor"`
	PhoneticColor         string `json:"phoneticColor"`
	TranslationColor      string `json:"translationColor"`
	BackgroundColor       string `json:"backgroundColor"`
	LineBackgroundOpacity int    `json:"lineBackgroundOpacity"`
}

type Effects struct {
	TextStroke       bool   `json:"textStroke"`
	TextStrokeSize   int    `json:"textStrokeSize"`
	TextStrokeMode   string `json:"textStrokeMode"`
	TextStrokeColor  string `json:"textStrokeColor"`
	TextShadow       string `json:"textShadow"`
	TextShadowColor  string `json:"textShadowColor"`
	LineBlurStrength int    `json:"lineBlurStrength"`
}

type TrackInfoStyle struct {
	TrackInfoFontSize     int    `json:"trackInfoFontSize"`
	TrackInfoFontWeight   string `json:"trackInfoFontWeight"`
	TrackInfoColor        string `json:"trackInfoColor"`
	TrackInfoBgColor      string `json:"trackInfoBgColor"`
	TrackInfoBgOpacity    int    `json:"trackInfoBgOpacity"`
	TrackInfoBorderRadius int    `json:"trackInfoBorderRadius"`
	TrackInfoPaddingH     int    `json:"trackInfoPaddingH"`
	TrackInfoPaddingV     int    `json:"trackInfoPaddingV"`
	TrackInfoBlur         int    `json:"trackInfoBlur"`
}

type Background struct {
	BackgroundMode         string `json:"backgroundMode"`
	SolidBackgroundColor   string `json:"solidBackgroundColor"`
	SolidBackgroundOpacity int    `json:"solidBackgroundOpacity"`
}

type Behavior struct {
	HideWhenPaused   bool    `json:"hideWhenPaused"`
	ShowNextTrack    bool    `json:"showNextTrack"`
	NextTrackSeconds float64 `json:"nextTrackSeconds"`
}

// LockTiming configures the host-side hover/hold unlock state machine.
type LockTiming struct {
	EnableHoverUnlock bool    `json:"enableHoverUnlock"`
	UnlockWaitTime    float64 `json:"unlockWaitTime"`
	UnlockHoldTime    float64 `json:"unlockHoldTime"`
	EnableAutoLock    bool    `json:"enableAutoLock"`
	AutoLockDelay     float64 `json:"autoLockDelay"`
}

type AlbumArt struct {
	ShowAlbumArt         bool `json:"showAlbumArt"`
	AlbumArtSize         int  `json:"albumArtSize"`
	AlbumArtBorderRadius int  `json:"albumArtBorderRadius"`
}

type LyricsWindow struct {
	LyricsPrevLines       int  `json:"lyricsPrevLines"`
	LyricsNextLines       int  `json:"lyricsNextLines"`
	LyricsSetGap          int  `json:"lyricsSetGap"`
	FadeNonActiveLyrics   bool `json:"fadeNonActiveLyrics"`
	InactiveLyricsOpacity int  `json:"inactiveLyricsOpacity"`
}

type Layout struct {
	TextAlign       string `json:"textAlign"`
	Padding         int    `json:"padding"`
	BorderRadius    int    `json:"borderRadius"`
	LineGap         int    `json:"lineGap"`
	LinePaddingH    int    `json:"linePaddingH"`
	LinePaddingV    int    `json:"linePaddingV"`
	OverlayMaxWidth int    `json:"overlayMaxWidth"`
	SectionGap      int    `json:"sectionGap"`
}

type Animation struct {
	AnimationType     string `json:"animationType"`
	AnimationDuration int    `json:"animationDuration"`
}

// Overlay is the full overlay configuration.
type Overlay struct {
	Elements
	Session
	Typography
	Colors
	Effects
	TrackInfoStyle
	Background
	Behavior
	LockTiming
	AlbumArt
	LyricsWindow
	Layout
	Animation

	CustomCSS string `json:"customCSS"`
}

// Defaults returns a fresh copy of the built-in settings.
func Defaults() Overlay {
	return Overlay{
		Elements: Elements{
			ShowOriginal:    true,
			ShowPhonetic:    true,
			ShowTranslation: true,
			ShowTrackInfo:   true,
			ElementOrder:    DefaultElementOrder(),
		},
		Session: Session{
			Language: LanguageKorean,
			IsLocked: true,
		},
		Typography: Typography{
			OriginalFontSize:      24,
			PhoneticFontSize:      14,
			TranslationFontSize:   16,
			OriginalFontWeight:    "700",
			PhoneticFontWeight:    "500",
			TranslationFontWeight: "500",
			OriginalLineHeight:    1.2,
			PhoneticLineHeight:    1.3,
			TranslationLineHeight: 1.3,
		},
		Colors: Colors{
			TextColor:             "#ffffff",
			ActiveColor:           "#1db954",
			PhoneticColor:         "#cccccc",
			TranslationColor:      "#aaaaaa",
			BackgroundColor:       "#000000",
			LineBackgroundOpacity: 60,
		},
		Effects: Effects{
			TextStrokeSize:   1,
			TextStrokeMode:   "outer",
			TextStrokeColor:  "#000000",
			TextShadow:       "none",
			TextShadowColor:  "#000000",
			LineBlurStrength: 4,
		},
		TrackInfoStyle: TrackInfoStyle{
			TrackInfoFontSize:     13,
			TrackInfoFontWeight:   "600",
			TrackInfoColor:        "#ffffff",
			TrackInfoBgColor:      "#000000",
			TrackInfoBgOpacity:    60,
			TrackInfoBorderRadius: 12,
			TrackInfoPaddingH:     12,
			TrackInfoPaddingV:     6,
			TrackInfoBlur:         12,
		},
		Background: Background{
			BackgroundMode:         "transparent",
			SolidBackgroundColor:   "#000000",
			SolidBackgroundOpacity: 50,
		},
		Behavior: Behavior{
			ShowNextTrack:    true,
			NextTrackSeconds: 15,
		},
		LockTiming: LockTiming{
			EnableHoverUnlock: true,
			UnlockWaitTime:    1.2,
			UnlockHoldTime:    3.0,
			EnableAutoLock:    true,
			AutoLockDelay:     3.0,
		},
		AlbumArt: AlbumArt{
			ShowAlbumArt:         true,
			AlbumArtSize:         36,
			AlbumArtBorderRadius: 8,
		},
		LyricsWindow: LyricsWindow{
			LyricsSetGap:          12,
			FadeNonActiveLyrics:   true,
			InactiveLyricsOpacity: 50,
		},
		Layout: Layout{
			TextAlign:       "center",
			Padding:         12,
			BorderRadius:    12,
			LineGap:         6,
			LinePaddingH:    12,
			LinePaddingV:    4,
			OverlayMaxWidth: 500,
			SectionGap:      8,
		},
		Animation: Animation{
			AnimationType:     "slide",
			AnimationDuration: 300,
		},
	}
}

func DefaultElementOrder() []string {
	return []string{ElementTrackInfo, ElementOriginal, ElementPhonetic, ElementTranslation}
}

// Clone returns a deep copy; the element order slice is not shared.
func (o Overlay) Clone() Overlay {
	o.ElementOrder = slices.Clone(o.ElementOrder)
	return o
}

func (o Overlay) Equal(other Overlay) bool {
	return reflect.DeepEqual(o, other)
}

// Decode merges a full or partial JSON settings object over the defaults.
func Decode(raw []byte) (Overlay, error) {
	return DecodeOver(Defaults(), raw)
}

// DecodeOver merges a JSON settings object over base. Fields absent from raw
// keep base's value. base is not modified.
func DecodeOver(base Overlay, raw []byte) (Overlay, error) {
	// json.Unmarshal appends into an existing slice's backing array, so the
	// clone is what keeps base untouched when raw carries elementOrder.
	next := base.Clone()
	if err := json.Unmarshal(raw, &next); err != nil {
		return base, fmt.Errorf("failed to decode settings: %w", err)
	}
	return next, nil
}

// LyricsOrder returns the configured element order without the track info
// entry. Unknown entries are dropped.
func (o Overlay) LyricsOrder() []string {
	order := make([]string, 0, 3)
	for _, element := range o.ElementOrder {
		switch element {
		case ElementOriginal, ElementPhonetic, ElementTranslation:
			order = append(order, element)
		}
	}
	return order
}

// TrackInfoFirst reports whether track info renders before the lyrics.
func (o Overlay) TrackInfoFirst() bool {
	return len(o.ElementOrder) > 0 && o.ElementOrder[0] == ElementTrackInfo
}

// ClampLines bounds a context line count to [0, MaxContextLines].
func ClampLines(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxContextLines {
		return MaxContextLines
	}
	return n
}

// DetectLanguage maps a locale string such as "ko_KR.UTF-8" to a supported
// language.
func DetectLanguage(locale string) string {
	if strings.HasPrefix(strings.ToLower(locale), LanguageKorean) {
		return LanguageKorean
	}
	return LanguageEnglish
}
