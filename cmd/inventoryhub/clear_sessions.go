package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var clearSessionsDryRun bool

var clearSessionsCmd = &cobra.Command{
	Use:   "clear-sessions",
	Short: "Delete expired login sessions",
	Long: `Removes expired sessions from the session table. Intended to run
periodically, either from an external crontab or via the schedule command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSessionStore()
		if err != nil {
			return fmt.Errorf("failed to connect to session database: %w", err)
		}

		ctx := cmd.Context()
		now := time.Now()

		if clearSessionsDryRun {
			count, err := store.CountExpired(ctx, now)
			if err != nil {
				return err
			}
			fmt.Printf("DRY RUN: would delete %d expired sessions\n", count)
		} else {
			deleted, err := store.DeleteExpired(ctx, now)
			if err != nil {
				return err
			}
			fmt.Printf("Successfully deleted %d expired sessions\n", deleted)
		}

		active, err := store.CountActive(ctx, now)
		if err != nil {
			return err
		}
		fmt.Printf("Active sessions remaining: %d\n", active)
		return nil
	},
}

func init() {
	clearSessionsCmd.Flags().BoolVar(&clearSessionsDryRun, "dry-run", false,
		"show what would be deleted without actually deleting")
}
