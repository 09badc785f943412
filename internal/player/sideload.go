package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"karolbroda.com/lyroverlay/internal/lyrics"
	"karolbroda.com/lyroverlay/internal/track"
)

var ErrNoLRC = errors.New("no lrc file for track")

var unsafeFileChars = strings.NewReplacer("/", "_", "\\", "_", ":", "_", "\x00", "")

// FindLRC looks for "<artist> - <title>.lrc" and then "<title>.lrc" in dir.
func FindLRC(dir string, info *track.Info) ([]lyrics.Line, string, error) {
	candidates := []string{
		track.Label(info.Artist, info.Title) + ".lrc",
		info.Title + ".lrc",
	}

	for _, name := range candidates {
		path := filepath.Join(dir, unsafeFileChars.Replace(name))
		raw, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, path, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return lyrics.ParseLRC(string(raw)), path, nil
	}

	return nil, "", ErrNoLRC
}
