package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"karolbroda.com/lyroverlay/internal/artwork"
	"karolbroda.com/lyroverlay/internal/logger"
	"karolbroda.com/lyroverlay/internal/preset"
	"karolbroda.com/lyroverlay/internal/render"
	"karolbroda.com/lyroverlay/internal/settings"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case StateMsg:
		return m.handleState(msg.State)

	case SettingsMsg:
		m.cfg = msg.Settings
		return m, waitForSettings(m.settingsCh)

	case ArtworkFetchedMsg:
		return m.handleArtworkFetched(msg)

	case TickMsg:
		return m.handleTick()

	case sourceClosedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "l":
		if m.source == nil {
			return m, nil
		}
		if err := m.source.PushLock(!m.state.IsLocked); err != nil {
			logger.Warn("lock toggle failed", logger.ErrorField(err))
		}
		return m, nil

	case "[":
		m.adjustLines(func(o *settings.Overlay) { o.LyricsPrevLines-- })
	case "]":
		m.adjustLines(func(o *settings.Overlay) { o.LyricsPrevLines++ })
	case "{":
		m.adjustLines(func(o *settings.Overlay) { o.LyricsNextLines-- })
	case "}":
		m.adjustLines(func(o *settings.Overlay) { o.LyricsNextLines++ })

	case "p":
		m.cyclePreset()
	}

	return m, nil
}

func (m *Model) adjustLines(fn func(*settings.Overlay)) {
	if m.store == nil {
		return
	}

	next, err := m.store.Update(func(o *settings.Overlay) {
		fn(o)
		o.LyricsPrevLines = settings.ClampLines(o.LyricsPrevLines)
		o.LyricsNextLines = settings.ClampLines(o.LyricsNextLines)
	})
	if err != nil {
		logger.Warn("failed to save window size", logger.ErrorField(err))
		return
	}

	m.cfg = next
	m.status = linesStatus(next)
}

func (m *Model) cyclePreset() {
	if m.store == nil {
		return
	}

	all := preset.All()
	m.presetIndex = (m.presetIndex + 1) % len(all)
	p := all[m.presetIndex]

	next, err := m.store.Update(func(o *settings.Overlay) {
		*o = preset.Apply(*o, p)
	})
	if err != nil {
		logger.Warn("failed to apply preset",
			logger.String("preset", p.ID), logger.ErrorField(err))
		return
	}

	m.cfg = next
	m.status = p.Name.In(next.Language)
}

func (m Model) handleState(st render.State) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{waitForState(m.states)}

	first := !m.seen
	m.seen = true
	m.state = st

	// the first state is drawn as is rather than faded in from nothing
	if first || m.animationDuration() <= 0 {
		m.fade.Snap(st.Opacity)
	} else {
		m.fade.Retarget(st.Opacity)
		if !m.fade.Done() && !m.ticking {
			m.ticking = true
			cmds = append(cmds, tickCmd())
		}
	}

	if cmd := m.syncArtwork(); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// syncArtwork starts a fetch when the track info block points at new art.
func (m *Model) syncArtwork() tea.Cmd {
	url := ""
	if m.state.TrackInfo != nil && m.termCaps.ShowArt() {
		url = m.state.TrackInfo.AlbumArt
	}
	if url == m.artURL {
		return nil
	}

	m.artURL = url
	m.art = nil
	if url == "" {
		return nil
	}
	return fetchArtworkCmd(m.fetcher, url)
}

func (m Model) handleArtworkFetched(msg ArtworkFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.URL != m.artURL {
		return m, nil
	}
	if msg.Err != nil {
		logger.Debug("album art unavailable",
			logger.String("url", msg.URL), logger.ErrorField(msg.Err))
		return m, nil
	}
	m.art = msg.Image
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tickCount++
	m.fade.Step(m.animationDuration())

	if m.fade.Done() {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd()
}

func fetchArtworkCmd(fetcher *artwork.Fetcher, url string) tea.Cmd {
	return func() tea.Msg {
		img, err := fetcher.Fetch(context.Background(), url)
		return ArtworkFetchedMsg{URL: url, Image: img, Err: err}
	}
}
