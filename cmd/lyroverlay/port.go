package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"karolbroda.com/lyroverlay/internal/config"
)

var portCmd = &cobra.Command{
	Use:   "port",
	Short: "show or change the feed server port",
}

var portShowCmd = &cobra.Command{
	Use:   "show",
	Short: "print the port the feed server will use",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(cfg.Port)
	},
}

var portSetCmd = &cobra.Command{
	Use:   "set <port>",
	Short: "save the feed server port",
	Long:  `saves the port used on the next start. it must be between 1024 and 65535. LYROVERLAY_PORT still takes precedence.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		port, err := config.ParsePort(args[0])
		if err != nil {
			return err
		}
		if err := config.SavePort(cfg.Dir, port); err != nil {
			return fmt.Errorf("failed to save port: %w", err)
		}

		fmt.Printf("port set to %d, restart the overlay to apply\n", port)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(portCmd)

	portCmd.AddCommand(portShowCmd)
	portCmd.AddCommand(portSetCmd)
}
