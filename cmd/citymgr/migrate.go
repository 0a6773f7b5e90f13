package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vbonduro/citygrid/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		if err := db.MigrateUp(a.db.DB); err != nil {
			return err
		}
		return printVersion(cmd, a)
	},
}

var migrateDownSteps int

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		if err := db.MigrateDown(a.db.DB, migrateDownSteps); err != nil {
			return err
		}
		return printVersion(cmd, a)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		return printVersion(cmd, a)
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&migrateDownSteps, "steps", 1, "number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
}

func printVersion(cmd *cobra.Command, a *app) error {
	version, dirty, err := db.Version(a.db.DB)
	if err != nil {
		return err
	}
	if dirty {
		fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty)\n", version)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
	return nil
}
