package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mohi-ict/inventoryhub/internal/scheduler"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run maintenance jobs on their cron schedules",
	Long: `Runs the periodic maintenance jobs in the foreground until interrupted.
Currently scheduled: expired-session cleanup (SESSION_CLEANUP_SPEC, default
every six hours).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := openSessionStore()
		if err != nil {
			return fmt.Errorf("failed to connect to session database: %w", err)
		}

		s := scheduler.New()
		err = s.AddJob(scheduler.Job{
			Name: "session-cleanup",
			Spec: cfg.GetWithDefault("SESSION_CLEANUP_SPEC", "0 */6 * * *"),
			Run: func(ctx context.Context) error {
				deleted, err := sessions.DeleteExpired(ctx, time.Now())
				if err != nil {
					return err
				}
				log.Printf("[SCHEDULER]: Deleted %d expired sessions", deleted)
				return nil
			},
		})
		if err != nil {
			return err
		}

		s.Start()
		defer s.Stop()
		log.Printf("[SCHEDULER]: Started with %d jobs", len(s.Jobs()))

		// Block until interrupted
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("[SCHEDULER]: Shutting down")
		return nil
	},
}
