// Package player follows an MPRIS media player on the session bus and turns
// its metadata and position into lyrics and progress feed events.
package player

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"karolbroda.com/lyroverlay/internal/engine"
	"karolbroda.com/lyroverlay/internal/logger"
	"karolbroda.com/lyroverlay/internal/lyrics"
	"karolbroda.com/lyroverlay/internal/track"
)

const (
	mprisPath        = "/org/mpris/MediaPlayer2"
	mprisPlayerIface = "org.mpris.MediaPlayer2.Player"
)

// Sink receives what the player observes.
type Sink interface {
	PushLyrics(data lyrics.Data) error
	PushProgress(ev engine.ProgressEvent) error
}

type Option func(*Service)

// WithLrcDir enables sideloaded .lrc files for tracks the player reports.
func WithLrcDir(dir string) Option {
	return func(s *Service) {
		s.lrcDir = dir
	}
}

// WithSyncOffset shifts every reported position by offset seconds.
func WithSyncOffset(offset float64) Option {
	return func(s *Service) {
		s.syncOffset = offset
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(s *Service) {
		s.pollInterval = d
	}
}

type Service struct {
	bus          *dbus.Conn
	service      string
	sink         Sink
	lrcDir       string
	syncOffset   float64
	pollInterval time.Duration

	mu      sync.Mutex
	current *track.Info
}

func NewService(bus *dbus.Conn, mprisService string, sink Sink, opts ...Option) (*Service, error) {
	if bus == nil {
		return nil, errors.New("nil dbus connection")
	}
	if mprisService == "" {
		return nil, errors.New("empty mpris service name")
	}
	if sink == nil {
		return nil, errors.New("nil sink")
	}

	s := &Service{
		bus:          bus,
		service:      mprisService,
		sink:         sink,
		pollInterval: 250 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run polls the player and reacts to its change signals until ctx is
// cancelled. A player that is not running is not an error; polling keeps
// going until it appears.
func (s *Service) Run(ctx context.Context) error {
	signals := make(chan *dbus.Signal, 10)
	s.bus.Signal(signals)
	defer s.bus.RemoveSignal(signals)

	matches := []string{
		fmt.Sprintf(
			"type='signal',interface='org.freedesktop.DBus.Properties',member='PropertiesChanged',path='%s'",
			mprisPath,
		),
		fmt.Sprintf(
			"type='signal',interface='%s',member='Seeked',path='%s'",
			mprisPlayerIface, mprisPath,
		),
	}
	for _, match := range matches {
		if err := s.bus.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, match).Err; err != nil {
			return fmt.Errorf("failed to add signal match: %w", err)
		}
	}

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	s.pollAndLog()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.pollAndLog()
		case sig, ok := <-signals:
			if !ok {
				return nil
			}
			if isPlayerSignal(sig) {
				s.pollAndLog()
			}
		}
	}
}

func isPlayerSignal(sig *dbus.Signal) bool {
	if sig == nil {
		return false
	}
	switch sig.Name {
	case "org.mpris.MediaPlayer2.Player.Seeked":
		return true
	case "org.freedesktop.DBus.Properties.PropertiesChanged":
		if len(sig.Body) < 1 {
			return false
		}
		iface, ok := sig.Body[0].(string)
		return ok && iface == mprisPlayerIface
	}
	return false
}

func (s *Service) pollAndLog() {
	if err := s.Poll(); err != nil {
		logger.Debug("mpris poll failed",
			logger.String("service", s.service), logger.ErrorField(err))
	}
}

// Poll reads the player once and pushes a lyrics event on track change and a
// progress event every time.
func (s *Service) Poll() error {
	obj := s.bus.Object(s.service, mprisPath)

	metaProp, err := obj.GetProperty(mprisPlayerIface + ".Metadata")
	if err != nil {
		return fmt.Errorf("failed to get metadata property: %w", err)
	}
	metadata, ok := metaProp.Value().(map[string]dbus.Variant)
	if !ok {
		return fmt.Errorf("unexpected metadata type %T", metaProp.Value())
	}

	info := trackFromMetadata(metadata)
	if !info.IsValid() {
		return fmt.Errorf("missing title or artist in metadata (title=%q, artist=%q)", info.Title, info.Artist)
	}

	posProp, err := obj.GetProperty(mprisPlayerIface + ".Position")
	if err != nil {
		return fmt.Errorf("failed to get position property: %w", err)
	}
	position := microsToSeconds(posProp.Value())

	playing := false
	if statusProp, err := obj.GetProperty(mprisPlayerIface + ".PlaybackStatus"); err == nil {
		status, _ := statusProp.Value().(string)
		playing = status == "Playing"
	}

	s.mu.Lock()
	changed := !info.IsSameTrack(s.current)
	if changed {
		s.current = info
	}
	s.mu.Unlock()

	if changed {
		logger.Info("track changed",
			logger.String("title", info.Title), logger.String("artist", info.Artist))
		if err := s.sink.PushLyrics(s.lyricsFor(info)); err != nil {
			return err
		}
	}

	return s.sink.PushProgress(progressEvent(position+s.syncOffset, playing, info.Duration))
}

// lyricsFor looks up a sideloaded .lrc file. Without one the track is still
// announced, with no synced lines.
func (s *Service) lyricsFor(info *track.Info) lyrics.Data {
	data := lyrics.Data{Track: *info}
	if s.lrcDir == "" {
		return data
	}

	lines, path, err := FindLRC(s.lrcDir, info)
	if err != nil {
		logger.Debug("no sideloaded lyrics",
			logger.String("title", info.Title), logger.ErrorField(err))
		return data
	}

	logger.Info("loaded sideloaded lyrics",
		logger.String("path", path), logger.Int("lines", len(lines)))
	data.Lines = lines
	data.IsSynced = len(lines) > 0
	return data
}

// progressEvent builds a progress push. remaining is unknown (+Inf) when the
// player does not report a length.
func progressEvent(position float64, playing bool, duration float64) engine.ProgressEvent {
	remaining := math.Inf(1)
	if duration > 0 {
		remaining = duration - position
	}
	return engine.ProgressEvent{
		Position:  position,
		IsPlaying: playing,
		Remaining: remaining,
	}
}

func trackFromMetadata(metadata map[string]dbus.Variant) *track.Info {
	return &track.Info{
		Title:    extractString(metadata, "xesam:title"),
		Artist:   extractArtist(metadata, "xesam:artist"),
		Album:    extractString(metadata, "xesam:album"),
		AlbumArt: extractString(metadata, "mpris:artUrl"),
		Duration: extractDurationSeconds(metadata, "mpris:length"),
	}
}

func microsToSeconds(raw any) float64 {
	switch typed := raw.(type) {
	case int64:
		if typed <= 0 {
			return 0
		}
		return float64(typed) / 1_000_000
	case uint64:
		return float64(typed) / 1_000_000
	default:
		return 0
	}
}

func extractString(metadata map[string]dbus.Variant, key string) string {
	variant, exists := metadata[key]
	if !exists {
		return ""
	}

	text, ok := variant.Value().(string)
	if ok {
		return text
	}

	return ""
}

func extractArtist(metadata map[string]dbus.Variant, key string) string {
	variant, exists := metadata[key]
	if !exists {
		return ""
	}

	switch typed := variant.Value().(type) {
	case []string:
		if len(typed) > 0 {
			return typed[0]
		}
		return ""
	case string:
		return typed
	default:
		return ""
	}
}

func extractDurationSeconds(metadata map[string]dbus.Variant, key string) float64 {
	variant, exists := metadata[key]
	if !exists {
		return 0
	}
	return microsToSeconds(variant.Value())
}
