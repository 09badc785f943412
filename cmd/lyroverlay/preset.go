package main

import (
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"karolbroda.com/lyroverlay/internal/preset"
	"karolbroda.com/lyroverlay/internal/settings"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "list and apply style presets",
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "list the built-in presets by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		language := store.Get().Language

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, category := range preset.Categories() {
			fmt.Fprintf(w, "%s\n", category.Label().In(language))
			for _, p := range preset.ByCategory(category) {
				mark := ""
				if slices.Contains(preset.Recommended, p.ID) {
					mark = "*"
				}
				fmt.Fprintf(w, "  %s%s\t%s\t%s\n", p.ID, mark, p.Name.In(language), p.Description.In(language))
			}
		}
		w.Flush()

		fmt.Println("\n* recommended")
		return nil
	},
}

var presetApplyCmd = &cobra.Command{
	Use:   "apply <id>",
	Short: "apply a preset to the saved settings",
	Long:  `resets style settings to their defaults and applies the preset. language, lock state, fonts, custom css, lock timing, visibility behavior, element order and the line window are kept.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := preset.ByID(args[0])
		if !ok {
			return fmt.Errorf("unknown preset %q (see 'lyroverlay preset list')", args[0])
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		next, err := store.Update(func(o *settings.Overlay) {
			*o = preset.Apply(*o, p)
		})
		if err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		fmt.Printf("applied %s\n", p.Name.In(next.Language))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetCmd)

	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetApplyCmd)
}
