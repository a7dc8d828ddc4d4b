// Package cmd implements the CLI commands for the pricewatch server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "pricewatch",
	Short: "Track retailer prices and fire deal alerts",
	Long: "An API-first service that periodically collects price quotes for tracked " +
		"products across retailers, detects price changes, and fires user price alerts.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(migrateCommand())
	rootCmd.AddCommand(refreshCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
