package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"karolbroda.com/lyroverlay/internal/logger"
)

const (
	AppDirName          = "lyroverlay"
	SettingsFileName    = "settings.json"
	PortFileName        = "port.txt"
	LogFileName         = "lyroverlay.log"
	DefaultPort         = 15000
	MinPort             = 1024
	MaxPort             = 65535
	DefaultMprisService = "org.mpris.MediaPlayer2.spotify"
	HTTPTimeoutSeconds  = 10
	PollInterval        = 250 * time.Millisecond
	DataTimeout         = 5 * time.Second
)

var ErrPortOutOfRange = fmt.Errorf("port must be between %d and %d", MinPort, MaxPort)

type Config struct {
	Dir          string
	Port         int
	SettingsPath string
	MprisService string
	LrcDir       string
	SyncOffset   float64
	LogLevel     logger.Level
	LogFile      string
	UpdateURL    string
	Locale       string
}

// Load reads configuration from the environment, after merging a .env file
// from the working directory if there is one. Variables already set win over
// the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	port, err := resolvePort(dir)
	if err != nil {
		return nil, err
	}

	syncOffset, err := strconv.ParseFloat(getEnvOrDefault("LYROVERLAY_SYNC_OFFSET", "0"), 64)
	if err != nil {
		syncOffset = 0
	}

	return &Config{
		Dir:          dir,
		Port:         port,
		SettingsPath: getEnvOrDefault("LYROVERLAY_SETTINGS", filepath.Join(dir, SettingsFileName)),
		MprisService: getEnvOrDefault("LYROVERLAY_MPRIS_SERVICE", DefaultMprisService),
		LrcDir:       os.Getenv("LYROVERLAY_LRC_DIR"),
		SyncOffset:   syncOffset,
		LogLevel:     logger.Level(getEnvOrDefault("LYROVERLAY_LOG_LEVEL", string(logger.InfoLevel))),
		LogFile:      getEnvOrDefault("LYROVERLAY_LOG_FILE", filepath.Join(dir, LogFileName)),
		UpdateURL:    os.Getenv("LYROVERLAY_UPDATE_URL"),
		Locale:       locale(),
	}, nil
}

// Dir is the per-user configuration directory. LYROVERLAY_CONFIG_DIR
// overrides the platform default.
func Dir() (string, error) {
	if dir := os.Getenv("LYROVERLAY_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// resolvePort takes LYROVERLAY_PORT, then the saved port file, then the
// default.
func resolvePort(dir string) (int, error) {
	if raw := os.Getenv("LYROVERLAY_PORT"); raw != "" {
		return ParsePort(raw)
	}

	port, err := ReadPortFile(dir)
	if err == nil {
		return port, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		logger.Warn("ignoring invalid port file",
			logger.String("dir", dir), logger.ErrorField(err))
	}

	return DefaultPort, nil
}

func ParsePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %w", raw, err)
	}
	if err := ValidatePort(port); err != nil {
		return 0, err
	}
	return port, nil
}

func ValidatePort(port int) error {
	if port < MinPort || port > MaxPort {
		return fmt.Errorf("%w: got %d", ErrPortOutOfRange, port)
	}
	return nil
}

func ReadPortFile(dir string) (int, error) {
	data, err := os.ReadFile(filepath.Join(dir, PortFileName))
	if err != nil {
		return 0, err
	}
	return ParsePort(string(data))
}

// SavePort validates port and records it for the next start.
func SavePort(dir string, port int) error {
	if err := ValidatePort(port); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, PortFileName), []byte(strconv.Itoa(port)), 0644)
}

func locale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func getEnvOrDefault(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
