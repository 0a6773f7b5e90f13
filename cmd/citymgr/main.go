package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "citymgr",
	Short: "Municipal utility records service",
	Long: `citymgr serves the city utility-records API and provides maintenance
commands for the same database.

Configuration is read from the environment (LISTEN_ADDR, DB_PATH, LOG_LEVEL,
...) and optionally from the file named by CONFIG_FILE.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, importCmd, userCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
