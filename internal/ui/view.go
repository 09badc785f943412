package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
	"github.com/mattn/go-runewidth"

	"karolbroda.com/lyroverlay/internal/artwork"
	"karolbroda.com/lyroverlay/internal/colors"
	"karolbroda.com/lyroverlay/internal/render"
	"karolbroda.com/lyroverlay/internal/settings"
)

const (
	bannerText = "lyroverlay"
	bannerFont = "small"
	sideMargin = 2
)

type labels struct {
	waiting   string
	next      string
	locked    string
	unlocked  string
	unlocking string
	keys      string
}

var labelsByLanguage = map[string]labels{
	settings.LanguageKorean: {
		waiting:   "음악을 기다리는 중",
		next:      "다음 곡",
		locked:    "잠금",
		unlocked:  "잠금 해제",
		unlocking: "해제 중",
		keys:      "l 잠금 · [ ] 이전 줄 · { } 다음 줄 · p 프리셋 · q 종료",
	},
	settings.LanguageEnglish: {
		waiting:   "waiting for music",
		next:      "up next",
		locked:    "locked",
		unlocked:  "unlocked",
		unlocking: "unlocking",
		keys:      "l lock · [ ] prev lines · { } next lines · p preset · q quit",
	},
}

func labelsFor(language string) labels {
	if l, ok := labelsByLanguage[language]; ok {
		return l
	}
	return labelsByLanguage[settings.LanguageEnglish]
}

// painter fades every color toward the background by the displayed overlay
// opacity times the element's own alpha.
type painter struct {
	bg      string
	opacity float64
}

func (p painter) style(hex string, alpha float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Fade(hex, p.bg, clamp(p.opacity*alpha, 0, 1))))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	height := m.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	p := painter{bg: m.cfg.BackgroundColor, opacity: m.fade.Value()}

	var body []string
	switch {
	case p.opacity < 0.01:
	case m.state.Waiting:
		body = m.renderWaiting(p, width)
	default:
		body = m.renderOverlay(p, width)
	}

	footer := m.renderFooter(width)
	return compose(body, footer, width, height, m.cfg.TextAlign)
}

func compose(body []string, footer []string, width int, height int, align string) string {
	avail := height - len(footer)
	if avail < 0 {
		avail = 0
	}
	if len(body) > avail {
		body = body[:avail]
	}

	lines := make([]string, 0, height)
	top := (avail - len(body)) / 2
	for i := 0; i < top; i++ {
		lines = append(lines, "")
	}
	pos := position(align)
	for _, l := range body {
		lines = append(lines, lipgloss.PlaceHorizontal(width, pos, l))
	}
	for len(lines) < avail {
		lines = append(lines, "")
	}
	lines = append(lines, footer...)

	return strings.Join(lines, "\n")
}

func position(align string) lipgloss.Position {
	switch align {
	case "left":
		return lipgloss.Left
	case "right":
		return lipgloss.Right
	}
	return lipgloss.Center
}

func (m Model) renderOverlay(p painter, width int) []string {
	info := m.renderTrackInfo(p, width)
	sets := m.renderSets(p, width)

	first, second := sets, info
	if m.state.TrackInfoFirst {
		first, second = info, sets
	}

	out := append([]string{}, first...)
	if len(first) > 0 && len(second) > 0 {
		out = append(out, "")
	}
	return append(out, second...)
}

func (m Model) renderSets(p painter, width int) []string {
	gap := setGapRows(m.cfg.LyricsSetGap)
	maxWidth := width - 2*sideMargin

	var out []string
	for i, set := range m.state.Sets {
		if i > 0 {
			for j := 0; j < gap; j++ {
				out = append(out, "")
			}
		}
		for _, el := range set.Elements {
			out = append(out, m.renderElement(p, set, el, maxWidth))
		}
	}
	return out
}

func (m Model) renderElement(p painter, set render.LineSet, el render.Element, maxWidth int) string {
	cfg := m.cfg
	text := truncate(el.Text, maxWidth)

	var style lipgloss.Style
	switch el.Kind {
	case settings.ElementOriginal:
		color := cfg.TextColor
		if set.IsActive {
			color = cfg.ActiveColor
		}
		style = p.style(color, set.Opacity).Bold(isBold(cfg.OriginalFontWeight))
	case settings.ElementPhonetic:
		style = p.style(cfg.PhoneticColor, set.Opacity).Bold(isBold(cfg.PhoneticFontWeight))
	case settings.ElementTranslation:
		style = p.style(cfg.TranslationColor, set.Opacity).Bold(isBold(cfg.TranslationFontWeight))
	default:
		style = p.style(cfg.TextColor, set.Opacity)
	}

	return style.Render(text)
}

func (m Model) renderTrackInfo(p painter, width int) []string {
	info := m.state.TrackInfo
	if info == nil {
		return nil
	}

	cfg := m.cfg
	l := labelsFor(cfg.Language)

	artH := artRows(cfg.AlbumArtSize)
	artW := artH * 2
	// half-block art cannot be faded, so it only shows at full opacity
	var art []string
	if m.art != nil && p.opacity >= 0.99 {
		art = artwork.RenderHalfBlockArt(m.art, artW, artH)
	}

	textWidth := width - 2*sideMargin
	if len(art) > 0 {
		textWidth -= artW + 2
	}

	title := info.Label
	if info.IsNext {
		title = l.next + " · " + title
	}

	var text []string
	text = append(text, p.style(cfg.TrackInfoColor, 1).Bold(isBold(cfg.TrackInfoFontWeight)).Render(truncate(title, textWidth)))

	if !info.IsNext && m.state.Remaining >= 0 {
		elapsed := colors.FormatTime(m.state.Position)
		total := colors.FormatTime(m.state.Position + m.state.Remaining)
		text = append(text, p.style(cfg.TrackInfoColor, 0.6).Render(elapsed+" / "+total))
	}

	if len(art) == 0 {
		return text
	}

	block := lipgloss.JoinHorizontal(lipgloss.Center,
		strings.Join(art, "\n"), "  ", strings.Join(text, "\n"))
	return strings.Split(block, "\n")
}

func (m Model) renderWaiting(p painter, width int) []string {
	cfg := m.cfg
	var out []string

	banner := figure.NewFigure(bannerText, bannerFont, false).Slicify()
	bannerWidth := 0
	for _, line := range banner {
		bannerWidth = max(bannerWidth, runewidth.StringWidth(line))
	}

	if bannerWidth > 0 && bannerWidth <= width-2*sideMargin {
		start := colors.Fade(cfg.ActiveColor, cfg.BackgroundColor, p.opacity)
		end := colors.Fade(cfg.TextColor, cfg.BackgroundColor, p.opacity*0.5)
		for _, line := range banner {
			if strings.TrimSpace(line) == "" {
				continue
			}
			out = append(out, colors.Gradient(line, start, end, false))
		}
		out = append(out, "")
	}

	pulse := []string{"·", "•", "●", "•"}
	dot := pulse[(m.tickCount/8)%len(pulse)]
	out = append(out, p.style(cfg.TextColor, 0.7).Italic(true).Render(labelsFor(cfg.Language).waiting+" "+dot))

	return out
}

func (m Model) renderFooter(width int) []string {
	if m.height > 0 && m.height < 6 {
		return nil
	}

	cfg := m.cfg
	l := labelsFor(cfg.Language)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Fade(cfg.TextColor, cfg.BackgroundColor, 0.45)))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ActiveColor))

	lock := l.unlocked
	if m.state.IsLocked {
		lock = l.locked
	}
	parts := []string{accent.Render(lock), dim.Render(linesStatus(cfg))}

	if m.state.IsLocked && m.state.UnlockProgress > 0 {
		parts = append(parts, accent.Render(l.unlocking+" "+gauge(m.state.UnlockProgress, 10)))
	}
	if m.status != "" {
		parts = append(parts, dim.Render(truncate(m.status, 32)))
	}

	status := strings.Join(parts, dim.Render("  ·  "))
	keys := dim.Render(truncate(l.keys, width-2*sideMargin))

	return []string{
		lipgloss.PlaceHorizontal(width, lipgloss.Center, status),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, keys),
	}
}

func linesStatus(cfg settings.Overlay) string {
	return fmt.Sprintf("-%d/+%d", cfg.LyricsPrevLines, cfg.LyricsNextLines)
}

func gauge(progress float64, cells int) string {
	filled := int(clamp(progress, 0, 1)*float64(cells) + 0.5)
	return strings.Repeat("▰", filled) + strings.Repeat("▱", cells-filled)
}

func truncate(s string, width int) string {
	if width <= 1 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

func isBold(weight string) bool {
	switch weight {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n >= 600
}

// setGapRows maps the pixel gap between sets to blank rows.
func setGapRows(px int) int {
	switch {
	case px <= 4:
		return 0
	case px <= 16:
		return 1
	}
	return 2
}

// artRows maps the configured pixel size to terminal rows.
func artRows(px int) int {
	rows := px / 10
	if rows < 2 {
		return 2
	}
	if rows > 6 {
		return 6
	}
	return rows
}
