package settings

import (
	"errors"
	"os"
	"path/filepath"
)

const setupMarkerName = "setup-complete"

var ErrNoSettingsFile = errors.New("settings file not found")

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSettingsFile
		}
		return nil, err
	}
	return data, nil
}

// writeFile writes to a temp file first, then renames it over path so a
// reader never observes a half-written document.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmpPath := path + ".tmp"

	file, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	if err = file.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}

func setupMarkerPath(settingsPath string) string {
	return filepath.Join(filepath.Dir(settingsPath), setupMarkerName)
}
