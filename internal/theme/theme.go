// Package theme reads and writes shareable theme files.
package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"karolbroda.com/lyroverlay/internal/settings"
)

const Version = 1

var ErrInvalidTheme = errors.New("invalid theme file")

// File is the on-disk theme document. Settings may be full or partial.
type File struct {
	Version  int             `json:"version"`
	Name     string          `json:"name"`
	Settings json.RawMessage `json:"settings"`
}

// Export encodes s as a theme document.
func Export(name string, s settings.Overlay) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode theme settings: %w", err)
	}

	data, err := json.MarshalIndent(File{
		Version:  Version,
		Name:     name,
		Settings: raw,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode theme: %w", err)
	}
	return data, nil
}

// Parse decodes a theme document and checks that it carries a settings
// object.
func Parse(raw []byte) (File, error) {
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}

	body := bytes.TrimSpace(f.Settings)
	if len(body) == 0 || body[0] != '{' {
		return File{}, fmt.Errorf("%w: missing settings object", ErrInvalidTheme)
	}
	return f, nil
}

// Import merges the theme's settings over the defaults. language and
// isLocked always come from current; nothing is applied when the document is
// rejected.
func Import(raw []byte, current settings.Overlay) (settings.Overlay, error) {
	f, err := Parse(raw)
	if err != nil {
		return current, err
	}

	next, err := settings.Decode(f.Settings)
	if err != nil {
		return current, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}

	next.Language = current.Language
	next.IsLocked = current.IsLocked
	return next, nil
}
