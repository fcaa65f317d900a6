package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/crmkit/ghl-bridge/internal/config"
	"github.com/crmkit/ghl-bridge/internal/ghl"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify GHL credentials with one real API call",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}

		client := ghl.NewClient(ghl.Config{
			BaseURL:    cfg.GHL.BaseURL,
			APIKey:     cfg.GHL.APIKey,
			LocationID: cfg.GHL.LocationID,
			Version:    cfg.GHL.Version,
			Timeout:    cfg.GHL.Timeout,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		res, err := client.ListPipelines(ctx)
		if err != nil {
			return fmt.Errorf("pipelines probe failed: %w", err)
		}

		fmt.Printf(">> Credentials OK (pipelines endpoint answered %d) ✅\n", res.Status)
		return nil
	},
}
