package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"karolbroda.com/lyroverlay/internal/theme"
)

var themeName string

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "export and import settings as theme files",
}

var themeExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "write the current settings to a theme file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		name := themeName
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}

		data, err := theme.Export(name, store.Get())
		if err != nil {
			return fmt.Errorf("failed to encode theme: %w", err)
		}
		if err := os.WriteFile(args[0], data, 0644); err != nil {
			return fmt.Errorf("failed to write theme: %w", err)
		}

		fmt.Printf("exported %q to %s\n", name, args[0])
		return nil
	},
}

var themeImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "replace the settings with a theme file",
	Long:  `merges the theme over the default settings and saves the result. the current language and lock state are kept. an invalid file changes nothing.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read theme: %w", err)
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		next, err := theme.Import(raw, store.Get())
		if err != nil {
			return err
		}
		if _, err := store.Replace(next); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		name := ""
		if f, err := theme.Parse(raw); err == nil {
			name = f.Name
		}
		if name != "" {
			fmt.Printf("imported %q\n", name)
		} else {
			fmt.Println("imported theme")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)

	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeImportCmd)

	themeExportCmd.Flags().StringVar(&themeName, "name", "", "theme name (defaults to the file name)")
}
