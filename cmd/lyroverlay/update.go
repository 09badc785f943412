package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"karolbroda.com/lyroverlay/internal/config"
	"karolbroda.com/lyroverlay/internal/logger"
	"karolbroda.com/lyroverlay/internal/update"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "release utilities",
}

var updateCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "check whether a newer release exists",
	Long:  `asks the release endpoint in LYROVERLAY_UPDATE_URL for the latest version. an unreachable endpoint is reported as up to date.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(config.HTTPTimeoutSeconds)*time.Second)
		defer cancel()

		res, err := update.Check(ctx, nil, cfg.UpdateURL, version)
		if errors.Is(err, update.ErrUnreachable) {
			logger.Info("update server unreachable", logger.ErrorField(err))
			fmt.Printf("up to date (%s)\n", version)
			return nil
		}
		if err != nil {
			return fmt.Errorf("update check failed: %w", err)
		}

		if !res.Available {
			fmt.Printf("up to date (%s)\n", version)
			return nil
		}

		fmt.Printf("update available: %s -> %s\n", res.Current, res.Latest)
		if res.Notes != "" {
			fmt.Printf("\n%s\n", res.Notes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.AddCommand(updateCheckCmd)
}
