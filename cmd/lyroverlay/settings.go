package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"karolbroda.com/lyroverlay/internal/settings"
)

var settingsConfirm bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "inspect and change overlay settings",
	Long:  `show, locate, reset or adjust the saved overlay settings. a running overlay picks up changes made here.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "print the current settings as json",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(store.Get())
	},
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "print the settings file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(cfg.SettingsPath)
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "restore the default settings",
	Long:  `restores every setting to its default and reruns the first-run setup on the next start. the language is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !settingsConfirm {
			fmt.Println("this will reset every overlay setting")
			fmt.Println("use --confirm to proceed")
			return nil
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		language := store.Get().Language
		next := settings.Defaults()
		next.Language = language

		if _, err := store.Replace(next); err != nil {
			return fmt.Errorf("failed to reset settings: %w", err)
		}
		if err := store.ResetSetup(); err != nil {
			return fmt.Errorf("failed to reset setup: %w", err)
		}

		fmt.Println("settings reset")
		return nil
	},
}

var settingsSetLinesCmd = &cobra.Command{
	Use:   "set-lines <prev> <next>",
	Short: "set how many lines show before and after the active one",
	Long:  `sets lyricsPrevLines and lyricsNextLines. values are clamped to 0-5.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		prev, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid prev count %q: %w", args[0], err)
		}
		next, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid next count %q: %w", args[1], err)
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		updated, err := store.Update(func(o *settings.Overlay) {
			o.LyricsPrevLines = settings.ClampLines(prev)
			o.LyricsNextLines = settings.ClampLines(next)
		})
		if err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		fmt.Printf("lines before: %d\n", updated.LyricsPrevLines)
		fmt.Printf("lines after:  %d\n", updated.LyricsNextLines)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsSetLinesCmd)

	settingsResetCmd.Flags().BoolVar(&settingsConfirm, "confirm", false, "confirm the reset")
}
