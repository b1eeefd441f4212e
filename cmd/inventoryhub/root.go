package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/mohi-ict/inventoryhub/internal/stores/device"
	"github.com/mohi-ict/inventoryhub/internal/stores/session"
	"github.com/mohi-ict/inventoryhub/pkg/utils"
)

var cfg *utils.Config

var rootCmd = &cobra.Command{
	Use:   "inventoryhub",
	Short: "Maintenance tools for the ICT inventory database",
	Long: `InventoryHub is a command-line toolkit for one-off and scheduled
maintenance of the ICT inventory database: hardware-name corrections,
auto-categorization, session cleanup, and a read-only device API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(fixHardwareNamesCmd)
	rootCmd.AddCommand(categorizeCmd)
	rootCmd.AddCommand(clearSessionsCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(serveCmd)
}

func initConfig() {
	cfg = utils.NewConfigFromEnv(".env")
}

// openDeviceStore connects to the inventory database
func openDeviceStore() (device.Store, error) {
	return device.NewMySqlStore(cfg.Get("DATABASE_URL"))
}

// openSessionStore connects to the session table
func openSessionStore() (session.Store, error) {
	return session.NewMySqlStore(cfg.Get("DATABASE_URL"))
}
