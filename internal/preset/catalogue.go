package preset

var catalogue = []Preset{
	{
		ID:          "clean-text",
		Name:        Text{Ko: "클린 텍스트", En: "Clean Text"},
		Description: Text{Ko: "배경 없이 텍스트만 표시. 그림자로 가독성 확보", En: "Text only without background. Shadow for readability"},
		Category:    Minimal,
		Settings: Patch{
			"showOriginal":          true,
			"showPhonetic":          false,
			"showTranslation":       true,
			"showTrackInfo":         false,
			"showAlbumArt":          false,
			"lineBackgroundOpacity": 0,
			"textShadow":            "hard",
			"textStroke":            true,
			"textStrokeSize":        2,
			"originalFontSize":      28,
			"translationFontSize":   16,
			"backgroundMode":        "transparent",
			"borderRadius":          0,
		},
	},
	{
		ID:          "floating-text",
		Name:        Text{Ko: "플로팅 텍스트", En: "Floating Text"},
		Description: Text{Ko: "투명 배경에 부드러운 그림자", En: "Transparent background with soft shadow"},
		Category:    Minimal,
		Settings: Patch{
			"showOriginal":          true,
			"showPhonetic":          false,
			"showTranslation":       true,
			"showTrackInfo":         false,
			"lineBackgroundOpacity": 0,
			"textShadow":            "soft",
			"originalFontSize":      32,
			"translationFontSize":   18,
			"backgroundMode":        "transparent",
			"lineGap":               8,
		},
	},
	{
		ID:          "subtitle-style",
		Name:        Text{Ko: "자막 스타일", En: "Subtitle Style"},
		Description: Text{Ko: "영상 자막처럼 하단에 표시되는 스타일", En: "Video subtitle-like style at the bottom"},
		Category:    Minimal,
		Settings: Patch{
			"showOriginal":          true,
			"showPhonetic":          false,
			"showTranslation":       true,
			"showTrackInfo":         false,
			"lineBackgroundOpacity": 70,
			"backgroundColor":       "#000000",
			"textShadow":            "none",
			"originalFontSize":      24,
			"translationFontSize":   14,
			"borderRadius":          4,
			"textAlign":             "center",
			"padding":               8,
		},
	},

	{
		ID:          "karaoke-box",
		Name:        Text{Ko: "노래방 박스", En: "Karaoke Box"},
		Description: Text{Ko: "노래방 스타일의 가사 표시", En: "Karaoke-style lyrics display"},
		Category:    Classic,
		Settings: Patch{
			"showOriginal":          true,
			"showPhonetic":          true,
			"showTranslation":       true,
			"showTrackInfo":         true,
			"showAlbumArt":          true,
			"lineBackgroundOpacity": 80,
			"backgroundColor":       "#1a1a2e",
			"activeColor":           "#00d4ff",
			"phoneticColor":         "#ffcc00",
			"translationColor":      "#ffffff",
			"originalFontSize":      26,
			"phoneticFontSize":      14,
			"translationFontSize":   16,
			"borderRadius":          12,
			"textAlign":             "center",
		},
	},
	{
		ID:          DefaultID,
		Name:        Text{Ko: "Spotify 네이티브", En: "Spotify Native"},
		Description: Text{Ko: "Spotify 기본 가사와 유사한 스타일", En: "Similar to Spotify's native lyrics"},
		Category:    Classic,
		Settings: Patch{
			"showOriginal":          true,
			"showPhonetic":          false,
			"showTranslation":       true,
			"showTrackInfo":         true,
			"showAlbumArt":          true,
			"lineBackgroundOpacity": 60,
			"backgroundColor":       "#000000",
			"activeColor":           "#1db954",
			"translationColor":      "#b3b3b3",
			"originalFontSize":      24,
			"translationFontSize":   14,
			"borderRadius":          8,
			"albumArtSize":          32,
			"albumArtBorderRadius":  4,
		},
	},
	{
		ID:          "compact-info",
		Name:        Text{Ko: "컴팩트 정보", En: "Compact Info"},
		Description: Text{Ko: "곡 정보와 가사를 컴팩트하게 표시", En: "Compact display of track info and lyrics"},
		Category:    Classic,
		Settings: Patch{
			"showOriginal":          true,
			"showPhonetic":          false,
			"showTranslation":       false,
			"showTrackInfo":         true,
			"showAlbumArt":          true,
			"lineBackgroundOpacity": 70,
			"originalFontSize":      20,
			"trackInfoFontSize":     11,
			"albumArtSize":          28,
			"borderRadius":          8,
			"sectionGap":            6,
			"lineGap":               4,
		},
	},

	{
		ID:          "glassmorphism",
		Name:        Text{Ko: "글래스모피즘", En: "Glassmorphism"},
		Description: Text{Ko: "유리 같은 반투명 효과", En: "Glass-like translucent effect"},
		Category:    Modern,
		Settings: Patch{
			"showOriginal":          true,
			"showPhonetic":          true,
			"showTranslation":       true,
			"showTrackInfo":         true,
			"showAlbumArt":          true,
			"lineBackgroundOpacity": 40,
			"backgroundColor":       "#ffffff",
			"activeColor":           "#0066ff",
			"phoneticColor":         "#666666",
			"translationColor":      "#444444",
			"textColor":             "#ffffff",
			"originalFontSize":      24,
			"borderRadius":          16,
			"textShadow":            "none",
		},
	},
	{
		ID:          "neon-glow",
		Name:        Text{Ko: "네온 글로우", En: "Neon Glow"},
		Description: Text{Ko: "네온 조명 효과의 화려한 스타일", En: "Flashy neon lighting effect"},
		Category:    Modern,
		Settings: Patch{
			"showOriginal":          true,
			"showPhonetic":          false,
			"showTranslation":       true,
			"showTrackInfo":         true,
			"lineBackgroundOpacity": 30,
			"backgroundColor":       "#0a0a0a",
			"activeColor":           "#ff00ff",
			"translationColor":      "#00ffff",
			"trackInfoColor":        "#ffff00",
			"originalFontSize":      28,
			"originalFontWeight":    "800",
			"textShadow":            "hard",
			"borderRadius":          20,
		},
	},
	{
		ID:          "solid-card",
		Name:        Text{Ko: "솔리드 카드", En: "Solid Card"},
		Description: Text{Ko: "단색 배경의 카드 형태", En: "Card style with solid background"},
		Category:    Modern,
		Settings: Patch{
			"showOriginal":           true,
			"showPhonetic":           true,
			"showTranslation":        true,
			"showTrackInfo":          true,
			"showAlbumArt":           true,
			"backgroundMode":         "solid",
			"solidBackgroundColor":   "#1e1e2e",
			"solidBackgroundOpacity": 95,
			"lineBackgroundOpacity":  0,
			"activeColor":            "#cba6f7",
			"phoneticColor":          "#a6adc8",
			"translationColor":       "#bac2de",
			"originalFontSize":       24,
			"borderRadius":           16,
			"padding":                16,
		},
	},

	{
		ID:          "popup-bubble",
		Name:        Text{Ko: "팝업 버블", En: "Popup Bubble"},
		Description: Text{Ko: "말풍선 형태의 팝업 스타일", En: "Speech bubble popup style"},
		Category:    Creative,
		Settings: Patch{
			"showOriginal":          true,
			"showPhonetic":          false,
			"showTranslation":       true,
			"showTrackInfo":         false,
			"lineBackgroundOpacity": 90,
			"backgroundColor":       "#ffffff",
			"activeColor":           "#333333",
			"translationColor":      "#666666",
			"originalFontSize":      20,
			"translationFontSize":   14,
			"borderRadius":          24,
			"textAlign":             "left",
			"overlayMaxWidth":       400,
		},
	},
	{
		ID:          "retro-terminal",
		Name:        Text{Ko: "레트로 터미널", En: "Retro Terminal"},
		Description: Text{Ko: "옛날 터미널/모니터 스타일", En: "Old terminal/monitor style"},
		Category:    Creative,
		Settings: Patch{
			"showOriginal":           true,
			"showPhonetic":           false,
			"showTranslation":        true,
			"showTrackInfo":          true,
			"backgroundMode":         "solid",
			"solidBackgroundColor":   "#0d1117",
			"solidBackgroundOpacity": 95,
			"lineBackgroundOpacity":  0,
			"activeColor":            "#00ff00",
			"translationColor":       "#00aa00",
			"trackInfoColor":         "#00ff00",
			"originalFontSize":       22,
			"originalFontWeight":     "400",
			"borderRadius":           0,
			"textAlign":              "left",
		},
	},
	{
		ID:          "gradient-wave",
		Name:        Text{Ko: "그라디언트 웨이브", En: "Gradient Wave"},
		Description: Text{Ko: "다채로운 그라디언트 색상", En: "Colorful gradient colors"},
		Category:    Creative,
		Settings: Patch{
			"showOriginal":          true,
			"showPhonetic":          true,
			"showTranslation":       true,
			"showTrackInfo":         true,
			"showAlbumArt":          true,
			"lineBackgroundOpacity": 50,
			"backgroundColor":       "#1a1a2e",
			"activeColor":           "#e94560",
			"phoneticColor":         "#f39c12",
			"translationColor":      "#3498db",
			"trackInfoColor":        "#9b59b6",
			"originalFontSize":      26,
			"originalFontWeight":    "700",
			"borderRadius":          12,
		},
	},

	{
		ID:          "high-contrast",
		Name:        Text{Ko: "고대비", En: "High Contrast"},
		Description: Text{Ko: "시인성이 높은 고대비 스타일", En: "High visibility contrast style"},
		Category:    Accessibility,
		Settings: Patch{
			"showOriginal":          true,
			"showPhonetic":          true,
			"showTranslation":       true,
			"showTrackInfo":         true,
			"lineBackgroundOpacity": 100,
			"backgroundColor":       "#000000",
			"activeColor":           "#ffffff",
			"phoneticColor":         "#ffff00",
			"translationColor":      "#00ffff",
			"trackInfoColor":        "#ffffff",
			"originalFontSize":      28,
			"originalFontWeight":    "700",
			"textShadow":            "none",
			"borderRadius":          0,
		},
	},
	{
		ID:          "large-text",
		Name:        Text{Ko: "큰 글씨", En: "Large Text"},
		Description: Text{Ko: "가독성을 위한 큰 글씨 크기", En: "Large text size for readability"},
		Category:    Accessibility,
		Settings: Patch{
			"showOriginal":          true,
			"showPhonetic":          false,
			"showTranslation":       true,
			"showTrackInfo":         true,
			"lineBackgroundOpacity": 80,
			"originalFontSize":      36,
			"translationFontSize":   22,
			"trackInfoFontSize":     16,
			"originalFontWeight":    "700",
			"lineGap":               12,
			"sectionGap":            16,
		},
	},
	{
		ID:          "dyslexia-friendly",
		Name:        Text{Ko: "난독증 친화", En: "Dyslexia Friendly"},
		Description: Text{Ko: "읽기 쉬운 폰트와 간격", En: "Easy-to-read fonts and spacing"},
		Category:    Accessibility,
		Settings: Patch{
			"showOriginal":          true,
			"showPhonetic":          false,
			"showTranslation":       true,
			"showTrackInfo":         true,
			"lineBackgroundOpacity": 70,
			"backgroundColor":       "#fffbf0",
			"activeColor":           "#2c3e50",
			"translationColor":      "#34495e",
			"originalFontSize":      26,
			"translationFontSize":   18,
			"originalFontWeight":    "500",
			"lineGap":               14,
			"textAlign":             "left",
		},
	},
}
