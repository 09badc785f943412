package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"karolbroda.com/lyroverlay/internal/config"
	"karolbroda.com/lyroverlay/internal/logger"
	"karolbroda.com/lyroverlay/internal/settings"
)

var version = "0.1.0"

var (
	// global flags
	flagPort         int
	flagSettingsPath string
	flagMprisService string
	flagLrcDir       string
	flagSyncOffset   float64
	flagLogLevel     string
	flagVerbose      bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "lyroverlay",
	Short: "synchronized lyrics overlay driven by a local feed",
	Long: `lyroverlay receives lyrics and playback progress over a local http feed,
works out which lines to show and how visible the overlay should be, and
draws the result in the terminal. render states are also streamed over a
websocket for other surfaces.

when run without a subcommand, it starts the overlay.`,
	Version:           version,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOverlay(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagPort, "port", "p", 0, "feed server port (1024-65535)")
	rootCmd.PersistentFlags().StringVar(&flagSettingsPath, "settings", "", "settings file path")
	rootCmd.PersistentFlags().StringVarP(&flagMprisService, "mpris-service", "m", "", "mpris service name (e.g., org.mpris.MediaPlayer2.spotify)")
	rootCmd.PersistentFlags().StringVar(&flagLrcDir, "lrc-dir", "", "directory of .lrc files used with the mpris source")
	rootCmd.PersistentFlags().Float64VarP(&flagSyncOffset, "sync-offset", "s", 0, "seconds added to mpris positions")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "mirror logs to stderr")
}

// setup loads configuration, applies flag overrides and starts the logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		if err := config.ValidatePort(flagPort); err != nil {
			return err
		}
		loaded.Port = flagPort
	}
	if flagSettingsPath != "" {
		loaded.SettingsPath = flagSettingsPath
	}
	if flagMprisService != "" {
		loaded.MprisService = flagMprisService
	}
	if flagLrcDir != "" {
		loaded.LrcDir = flagLrcDir
	}
	if flags.Changed("sync-offset") {
		loaded.SyncOffset = flagSyncOffset
	}
	if flagLogLevel != "" {
		loaded.LogLevel = logger.Level(flagLogLevel)
	}
	cfg = loaded

	return logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		OutputPath: cfg.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
		Console:    flagVerbose && !wantsTUI(cmd),
	})
}

func openStore() (*settings.Store, error) {
	store, err := settings.NewStore(cfg.SettingsPath, cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings: %w", err)
	}
	return store, nil
}

func Execute() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		logger.Sync()
		os.Exit(1)
	}
}
