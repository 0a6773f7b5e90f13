package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vbonduro/citygrid/internal/domain"
)

var (
	importKind   string
	importCityID int64
	importFile   string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a CSV file of utility records for a city",
	Long: `Import a CSV file of electricity or water-supply records for one city.

The file uses the same layout as the HTTP import endpoint. The first
malformed row stops the import; rows before it stay stored.`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importKind, "kind", string(domain.KindElectricity), "record kind: electricity or water-supply")
	importCmd.Flags().Int64Var(&importCityID, "city", 0, "id of the owning city")
	importCmd.Flags().StringVar(&importFile, "file", "", "path to the CSV file")
	_ = importCmd.MarkFlagRequired("city")
	_ = importCmd.MarkFlagRequired("file")
}

func runImport(cmd *cobra.Command, _ []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.close()

	pub, err := a.publisher()
	if err != nil {
		return err
	}
	svcs := a.services(pub)

	f, err := os.Open(importFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			a.logger.Error("failed to close import file", "error", err)
		}
	}()

	var n int
	switch domain.Kind(importKind) {
	case domain.KindElectricity:
		n, err = svcs.Electricity.Import(cmd.Context(), importCityID, f)
	case domain.KindWaterSupply:
		n, err = svcs.WaterSupply.Import(cmd.Context(), importCityID, f)
	default:
		return fmt.Errorf("unsupported kind %q: want %s or %s", importKind, domain.KindElectricity, domain.KindWaterSupply)
	}
	if err != nil {
		return fmt.Errorf("import stopped after %d records: %w", n, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d records imported successfully for city ID: %d\n", n, importCityID)
	return nil
}
