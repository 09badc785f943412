package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"karolbroda.com/lyroverlay/internal/colors"
	"karolbroda.com/lyroverlay/internal/lyrics"
	"karolbroda.com/lyroverlay/internal/render"
	"karolbroda.com/lyroverlay/internal/settings"
)

var (
	// flags for lyrics preview
	previewAt   float64
	previewPrev int
	previewNext int
)

var lyricsCmd = &cobra.Command{
	Use:   "lyrics",
	Short: "lyrics utilities",
}

var lyricsPreviewCmd = &cobra.Command{
	Use:   "preview <file.lrc>",
	Short: "show which lines an lrc file would display at a position",
	Long:  `parses an lrc file and prints the line window the overlay would draw at --at seconds, using the saved settings.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read lrc: %w", err)
		}

		lines := lyrics.Normalize(lyrics.Data{Lines: lyrics.ParseLRC(string(raw)), IsSynced: true})
		if len(lines) == 0 {
			return fmt.Errorf("no timed lines in %s", args[0])
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		s := store.Get()
		if cmd.Flags().Changed("prev") {
			s.LyricsPrevLines = settings.ClampLines(previewPrev)
		}
		if cmd.Flags().Changed("next") {
			s.LyricsNextLines = settings.ClampLines(previewNext)
		}

		active, ok := lyrics.ResolveActive(lines, previewAt)
		if !ok {
			fmt.Printf("%s: before the first line (%s)\n",
				colors.FormatTime(previewAt), colors.FormatTime(lines[0].StartTime))
			return nil
		}

		fmt.Printf("%s: line %d of %d\n\n", colors.FormatTime(previewAt), active+1, len(lines))
		for _, set := range render.BuildSets(lines, active, s) {
			marker := " "
			if set.IsActive {
				marker = ">"
			}
			for i, el := range set.Elements {
				stamp := "     "
				if i == 0 {
					stamp = colors.FormatTime(lines[set.Index].StartTime)
				}
				fmt.Printf("%s %5s  %s\n", marker, stamp, el.Text)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lyricsCmd)

	lyricsCmd.AddCommand(lyricsPreviewCmd)

	lyricsPreviewCmd.Flags().Float64Var(&previewAt, "at", 0, "position in seconds")
	lyricsPreviewCmd.Flags().IntVar(&previewPrev, "prev", 0, "override lines before the active one")
	lyricsPreviewCmd.Flags().IntVar(&previewNext, "next", 0, "override lines after the active one")
}
