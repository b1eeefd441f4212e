package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohi-ict/inventoryhub/internal/corrector"
)

// hardwareNameFixes lists the known misspellings in the hardware column, in
// the order they are applied.
var hardwareNameFixes = []corrector.Rule{
	{Old: "Systen", New: "System"},
}

var fixHardwareNamesCmd = &cobra.Command{
	Use:   "fix-hardware-names",
	Short: "Fix known misspellings in device hardware descriptions",
	Long: `Finds devices whose hardware description contains a known misspelling
(case-insensitive) and rewrites every literal occurrence. Only the hardware
field is touched, and only when the value actually changes. The pass is
idempotent, so it is safe to re-run after a failure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openDeviceStore()
		if err != nil {
			return fmt.Errorf("failed to connect to inventory database: %w", err)
		}

		report, err := corrector.New(store, os.Stdout).Run(cmd.Context(), hardwareNameFixes)
		if err != nil {
			return err
		}

		fmt.Printf("%d devices corrected.\n", report.TotalChanges())
		return nil
	},
}
