package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"karolbroda.com/lyroverlay/internal/logger"
)

const subscriberBuffer = 4

// Store owns the current settings. Every change is persisted and pushed to
// all subscribers; render surfaces re-derive from what they receive.
type Store struct {
	path string

	mu          sync.RWMutex
	current     Overlay
	subscribers map[string]chan Overlay
	lastWritten []byte
}

// NewStore loads settings from path, merged over defaults. A missing file
// yields defaults with the language taken from locale. An empty path keeps
// settings in memory only.
func NewStore(path string, locale string) (*Store, error) {
	s := &Store{
		path:        path,
		subscribers: make(map[string]chan Overlay),
	}

	loaded, err := s.load(locale)
	if err != nil {
		return nil, err
	}
	s.current = loaded

	return s, nil
}

func (s *Store) load(locale string) (Overlay, error) {
	fresh := Defaults()
	fresh.Language = DetectLanguage(locale)

	if s.path == "" {
		return fresh, nil
	}

	data, err := readFile(s.path)
	if errors.Is(err, ErrNoSettingsFile) {
		return fresh, nil
	}
	if err != nil {
		return Overlay{}, fmt.Errorf("failed to read settings: %w", err)
	}

	loaded, err := Decode(data)
	if err != nil {
		logger.Warn("settings file is corrupt, using defaults",
			logger.String("path", s.path), logger.ErrorField(err))
		return fresh, nil
	}

	s.lastWritten = data
	return loaded, nil
}

func (s *Store) Path() string {
	return s.path
}

// Get returns a copy of the current settings.
func (s *Store) Get() Overlay {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Update applies fn to a copy of the current settings and commits the
// result if anything changed.
func (s *Store) Update(fn func(*Overlay)) (Overlay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	fn(&next)

	return s.commitLocked(next)
}

// Replace commits next as the whole settings object.
func (s *Store) Replace(next Overlay) (Overlay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commitLocked(next.Clone())
}

func (s *Store) commitLocked(next Overlay) (Overlay, error) {
	if next.Equal(s.current) {
		return next.Clone(), nil
	}

	if err := s.persistLocked(next); err != nil {
		return s.current.Clone(), err
	}

	s.current = next
	s.broadcastLocked(next)

	return next.Clone(), nil
}

func (s *Store) persistLocked(next Overlay) error {
	if s.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := writeFile(s.path, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	s.lastWritten = data
	return nil
}

// Subscribe registers a listener. The channel always ends up holding the
// latest settings; intermediate values may be skipped for slow readers.
func (s *Store) Subscribe() (string, <-chan Overlay) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan Overlay, subscriberBuffer)
	s.subscribers[id] = ch

	return id, ch
}

func (s *Store) Unsubscribe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.subscribers[id]; ok {
		delete(s.subscribers, id)
		close(ch)
	}
}

func (s *Store) broadcastLocked(next Overlay) {
	for _, ch := range s.subscribers {
		select {
		case ch <- next.Clone():
			continue
		default:
		}

		// full: drop the oldest pending value so the newest is never lost
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- next.Clone():
		default:
		}
	}
}

// reload folds an externally written settings file back into the store.
func (s *Store) reload() error {
	data, err := readFile(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if bytes.Equal(data, s.lastWritten) {
		return nil
	}

	next, err := Decode(data)
	if err != nil {
		return err
	}

	s.lastWritten = data
	if next.Equal(s.current) {
		return nil
	}

	s.current = next
	s.broadcastLocked(next)
	return nil
}

// SetupComplete reports whether the first-run setup has finished.
func (s *Store) SetupComplete() bool {
	if s.path == "" {
		return false
	}
	_, err := os.Stat(setupMarkerPath(s.path))
	return err == nil
}

func (s *Store) MarkSetupComplete() error {
	if s.path == "" {
		return nil
	}
	return writeFile(setupMarkerPath(s.path), []byte("true"))
}

func (s *Store) ResetSetup() error {
	if s.path == "" {
		return nil
	}
	err := os.Remove(setupMarkerPath(s.path))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
