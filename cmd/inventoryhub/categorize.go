package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohi-ict/inventoryhub/internal/categorizer"
)

var categorizeCmd = &cobra.Command{
	Use:   "categorize",
	Short: "Auto-categorize devices from their hardware description",
	Long: `Assigns a category to every device with a non-empty hardware description
using keyword matching, persisting only devices whose category changes.
Devices with no keyword match are listed for manual review.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openDeviceStore()
		if err != nil {
			return fmt.Errorf("failed to connect to inventory database: %w", err)
		}

		_, err = categorizer.New(store, os.Stdout).Run(cmd.Context())
		return err
	},
}
