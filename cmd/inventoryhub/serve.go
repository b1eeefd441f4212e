package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohi-ict/inventoryhub/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only device API",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openDeviceStore()
		if err != nil {
			return fmt.Errorf("failed to connect to inventory database: %w", err)
		}

		return api.Start(cfg, store)
	},
}
