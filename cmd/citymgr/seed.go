package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vbonduro/citygrid/internal/seed"
	"github.com/vbonduro/citygrid/internal/store"
)

var (
	seedCount int
	seedReset bool
	seedValue int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create fake cities",
	Long: `Create fake cities for demos and local development.

--reset first deletes every city together with all of its utility records.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", seed.DefaultCityCount, "number of cities to create")
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "delete all cities and records first")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 0, "random seed; 0 picks a random one")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.close()

	cities := store.NewCityStore(a.db)
	if seedReset {
		if err := cities.DeleteAll(cmd.Context()); err != nil {
			return err
		}
		a.logger.Info("cleared all cities and records")
	}

	created, err := seed.New(cities, seedValue, a.logger).Cities(cmd.Context(), seedCount)
	if err != nil {
		return err
	}
	for _, c := range created {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s, %s\n", c.ID, c.Name, c.Country)
	}
	return nil
}
