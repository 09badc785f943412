package main

import (
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/spf13/cobra"

	"karolbroda.com/lyroverlay/internal/colors"
	"karolbroda.com/lyroverlay/internal/engine"
	"karolbroda.com/lyroverlay/internal/lyrics"
	"karolbroda.com/lyroverlay/internal/player"
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "mpris player utilities",
	Long:  `discover mpris-compatible music players and check what the mpris source would feed the overlay.`,
}

var playerListCmd = &cobra.Command{
	Use:   "list",
	Short: "list available mpris players",
	RunE: func(cmd *cobra.Command, args []string) error {
		bus, err := dbus.ConnectSessionBus()
		if err != nil {
			return fmt.Errorf("failed to connect to session bus: %w", err)
		}
		defer bus.Close()

		var names []string
		err = bus.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names)
		if err != nil {
			return fmt.Errorf("failed to list dbus names: %w", err)
		}

		var services []string
		for _, name := range names {
			if strings.HasPrefix(name, "org.mpris.MediaPlayer2.") {
				services = append(services, name)
			}
		}

		if len(services) == 0 {
			fmt.Println("no mpris players found")
			fmt.Println("\ncheck if your music player is running and supports mpris")
			return nil
		}

		fmt.Printf("found %d mpris player(s):\n\n", len(services))
		for _, service := range services {
			if identity := getPlayerIdentity(bus, service); identity != "" {
				fmt.Printf("  %s (%s)\n", service, identity)
			} else {
				fmt.Printf("  %s\n", service)
			}
		}

		fmt.Println("\nuse --mpris-service with run --mpris to pick one")
		return nil
	},
}

// snapshotSink keeps the last events a single poll produced.
type snapshotSink struct {
	lyrics   *lyrics.Data
	progress *engine.ProgressEvent
}

func (s *snapshotSink) PushLyrics(data lyrics.Data) error {
	s.lyrics = &data
	return nil
}

func (s *snapshotSink) PushProgress(ev engine.ProgressEvent) error {
	s.progress = &ev
	return nil
}

var playerCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "show what the mpris source reads from the player",
	RunE: func(cmd *cobra.Command, args []string) error {
		bus, err := dbus.ConnectSessionBus()
		if err != nil {
			return fmt.Errorf("failed to connect to session bus: %w", err)
		}
		defer bus.Close()

		sink := &snapshotSink{}
		source, err := player.NewService(bus, cfg.MprisService, sink,
			player.WithLrcDir(cfg.LrcDir),
			player.WithSyncOffset(cfg.SyncOffset),
		)
		if err != nil {
			return fmt.Errorf("failed to create player service: %w", err)
		}

		if err := source.Poll(); err != nil {
			fmt.Printf("nothing playing on %s\n", cfg.MprisService)
			return nil
		}

		if sink.lyrics != nil {
			t := sink.lyrics.Track
			fmt.Printf("title:    %s\n", t.Title)
			fmt.Printf("artist:   %s\n", t.Artist)
			if t.Album != "" {
				fmt.Printf("album:    %s\n", t.Album)
			}
			if t.Duration > 0 {
				fmt.Printf("duration: %s\n", colors.FormatTime(t.Duration))
			}
			if t.AlbumArt != "" {
				fmt.Printf("artwork:  %s\n", t.AlbumArt)
			}
			if sink.lyrics.IsSynced {
				fmt.Printf("lyrics:   %d synced lines\n", len(sink.lyrics.Lines))
			} else {
				fmt.Println("lyrics:   none")
			}
		}

		if p := sink.progress; p != nil {
			state := "paused"
			if p.IsPlaying {
				state = "playing"
			}
			fmt.Printf("state:    %s\n", state)
			fmt.Printf("position: %s\n", colors.FormatTime(p.Position))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(playerCmd)

	playerCmd.AddCommand(playerListCmd)
	playerCmd.AddCommand(playerCurrentCmd)
}

func getPlayerIdentity(bus *dbus.Conn, serviceName string) string {
	obj := bus.Object(serviceName, "/org/mpris/MediaPlayer2")
	variant, err := obj.GetProperty("org.mpris.MediaPlayer2.Identity")
	if err != nil {
		return ""
	}

	identity, ok := variant.Value().(string)
	if !ok {
		return ""
	}

	return identity
}
