package ui

import (
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"karolbroda.com/lyroverlay/internal/artwork"
	"karolbroda.com/lyroverlay/internal/render"
	"karolbroda.com/lyroverlay/internal/settings"
	"karolbroda.com/lyroverlay/internal/terminal"
)

// Source is the render-state producer the model draws. The engine satisfies
// it.
type Source interface {
	Subscribe() (string, <-chan render.State)
	Unsubscribe(id string)
	PushLock(locked bool) error
}

type TickMsg time.Time

type StateMsg struct {
	State render.State
}

type SettingsMsg struct {
	Settings settings.Overlay
}

type ArtworkFetchedMsg struct {
	URL   string
	Image image.Image
	Err   error
}

type sourceClosedMsg struct{}

type Model struct {
	source   Source
	store    *settings.Store
	fetcher  *artwork.Fetcher
	termCaps *terminal.Capabilities

	stateID    string
	states     <-chan render.State
	settingsID string
	settingsCh <-chan settings.Overlay

	state   render.State
	seen    bool
	cfg     settings.Overlay
	fade    OpacityFade
	ticking bool

	artURL string
	art    image.Image

	presetIndex int
	status      string

	width     int
	height    int
	tickCount int
	quitting  bool
}

type ModelConfig struct {
	Source   Source
	Store    *settings.Store
	Fetcher  *artwork.Fetcher
	TermCaps *terminal.Capabilities
}

// NewModel subscribes to the source and the settings store. Call Close when
// the program exits.
func NewModel(cfg ModelConfig) Model {
	m := Model{
		source:      cfg.Source,
		store:       cfg.Store,
		fetcher:     cfg.Fetcher,
		termCaps:    cfg.TermCaps,
		presetIndex: -1,
	}

	if m.fetcher == nil {
		m.fetcher = artwork.NewFetcher(nil, 0)
	}
	if m.store != nil {
		m.cfg = m.store.Get()
		m.settingsID, m.settingsCh = m.store.Subscribe()
	} else {
		m.cfg = settings.Defaults()
	}
	if m.source != nil {
		m.stateID, m.states = m.source.Subscribe()
	}

	m.state.ActiveIndex = -1
	m.fade = NewOpacityFade(0)

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForState(m.states),
		waitForSettings(m.settingsCh),
	)
}

func waitForState(ch <-chan render.State) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		st, ok := <-ch
		if !ok {
			return sourceClosedMsg{}
		}
		return StateMsg{State: st}
	}
}

func waitForSettings(ch <-chan settings.Overlay) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return SettingsMsg{Settings: s}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) animationDuration() time.Duration {
	if m.cfg.AnimationType == "none" {
		return 0
	}
	return time.Duration(m.cfg.AnimationDuration) * time.Millisecond
}

func (m Model) Width() int                 { return m.width }
func (m Model) Height() int                { return m.height }
func (m Model) State() render.State        { return m.state }
func (m Model) Settings() settings.Overlay { return m.cfg }
func (m Model) DisplayedOpacity() float64  { return m.fade.Value() }
func (m Model) Status() string             { return m.status }
func (m Model) IsQuitting() bool           { return m.quitting }

// Close drops the model's subscriptions.
func (m Model) Close() {
	if m.source != nil && m.stateID != "" {
		m.source.Unsubscribe(m.stateID)
	}
	if m.store != nil && m.settingsID != "" {
		m.store.Unsubscribe(m.settingsID)
	}
}
