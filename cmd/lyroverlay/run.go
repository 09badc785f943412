package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/godbus/dbus/v5"
	"github.com/spf13/cobra"

	"karolbroda.com/lyroverlay/internal/artwork"
	"karolbroda.com/lyroverlay/internal/config"
	"karolbroda.com/lyroverlay/internal/engine"
	"karolbroda.com/lyroverlay/internal/feed"
	"karolbroda.com/lyroverlay/internal/logger"
	"karolbroda.com/lyroverlay/internal/player"
	"karolbroda.com/lyroverlay/internal/preset"
	"karolbroda.com/lyroverlay/internal/settings"
	"karolbroda.com/lyroverlay/internal/terminal"
	"karolbroda.com/lyroverlay/internal/ui"
)

var (
	// flags for run
	runHeadless bool
	runMpris    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "start the feed server and the overlay",
	Long: `starts the local feed server and the terminal overlay. with --headless
only the feed server runs and render states are served over /state and /ws.`,
	RunE: runOverlay,
}

func init() {
	rootCmd.AddCommand(runCmd)

	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().BoolVar(&runHeadless, "headless", false, "run without the terminal overlay")
		c.Flags().BoolVar(&runMpris, "mpris", false, "feed the engine from an mpris player")
	}
}

// wantsTUI reports whether cmd draws the terminal overlay: the bare root
// command or run, unless headless.
func wantsTUI(cmd *cobra.Command) bool {
	if runHeadless {
		return false
	}
	return !cmd.HasParent() || cmd.Name() == "run"
}

func runOverlay(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	store, err := openStore()
	if err != nil {
		return err
	}
	if err := firstRun(store); err != nil {
		return err
	}

	eng := engine.New(store, engine.WithDataTimeout(config.DataTimeout))
	server := feed.NewServer(eng)

	var wg sync.WaitGroup
	errCh := make(chan error, 4)
	spawn := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				logger.Error(name+" stopped", logger.ErrorField(err))
				errCh <- fmt.Errorf("%s: %w", name, err)
				cancel()
			}
		}()
	}

	spawn("engine", eng.Run)
	spawn("settings watcher", store.Watch)
	spawn("feed server", func(ctx context.Context) error {
		return server.Run(ctx, cfg.Port)
	})

	if runMpris {
		bus, err := dbus.ConnectSessionBus()
		if err != nil {
			return fmt.Errorf("failed to connect to session bus: %w", err)
		}
		defer bus.Close()

		source, err := player.NewService(bus, cfg.MprisService, eng,
			player.WithLrcDir(cfg.LrcDir),
			player.WithSyncOffset(cfg.SyncOffset),
			player.WithPollInterval(config.PollInterval),
		)
		if err != nil {
			return fmt.Errorf("failed to create player service: %w", err)
		}
		spawn("mpris source", source.Run)
	}

	logger.Info("overlay started",
		logger.Int("port", cfg.Port),
		logger.String("settings", store.Path()),
		logger.Bool("headless", runHeadless),
		logger.Bool("mpris", runMpris),
	)

	if runHeadless {
		fmt.Fprintf(os.Stderr, "feed listening on http://127.0.0.1:%d\n", cfg.Port)
		<-ctx.Done()
	} else if err := runTUI(ctx, cancel, eng, store); err != nil {
		cancel()
		wg.Wait()
		return err
	}

	cancel()
	wg.Wait()

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

func runTUI(ctx context.Context, cancel context.CancelFunc, eng *engine.Engine, store *settings.Store) error {
	defer terminal.Reset()

	model := ui.NewModel(ui.ModelConfig{
		Source:   eng,
		Store:    store,
		Fetcher:  artwork.NewFetcher(nil, 0),
		TermCaps: terminal.DetectCapabilities(),
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, err := p.Run()
	cancel()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running bubble tea: %w", err)
	}
	return nil
}

// firstRun applies the default preset the first time the overlay starts
// with a given settings file.
func firstRun(store *settings.Store) error {
	if store.Path() != "" {
		if err := os.MkdirAll(filepath.Dir(store.Path()), 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}
	if store.SetupComplete() {
		return nil
	}

	p, ok := preset.ByID(preset.DefaultID)
	if !ok {
		return fmt.Errorf("default preset %q missing", preset.DefaultID)
	}
	if _, err := store.Update(func(o *settings.Overlay) {
		*o = preset.Apply(*o, p)
	}); err != nil {
		return fmt.Errorf("failed to apply default preset: %w", err)
	}
	if err := store.MarkSetupComplete(); err != nil {
		return fmt.Errorf("failed to record setup: %w", err)
	}

	logger.Info("first run setup complete", logger.String("preset", p.ID))
	return nil
}
