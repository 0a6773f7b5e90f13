package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/vbonduro/citygrid/internal/domain"
)

type electricityRow struct {
	Area                  string      `csv:"area"`
	ConsumptionKwh        float64     `csv:"consumptionKwh"`
	OutageDurationMinutes int         `csv:"outageDurationMinutes"`
	OutageReason          string      `csv:"outageReason"`
	Date                  domain.Date `csv:"date"`
}

type waterSupplyRow struct {
	Area                     string      `csv:"area"`
	ConsumptionLiters        float64     `csv:"consumptionLiters"`
	ProductionLiters         float64     `csv:"productionLiters"`
	ReservoirLevelPercentage float64     `csv:"reservoirLevelPercentage"`
	RainfallMm               float64     `csv:"rainfallMm"`
	Date                     domain.Date `csv:"date"`
}

// WriteElectricity writes records in the electricity import layout, header
// first, so the output can be imported again.
func WriteElectricity(w io.Writer, recs []*domain.Electricity) error {
	rows := make([]electricityRow, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, electricityRow{
			Area:                  r.Area,
			ConsumptionKwh:        r.ConsumptionKwh,
			OutageDurationMinutes: r.OutageDurationMinutes,
			OutageReason:          r.OutageReason,
			Date:                  r.Date,
		})
	}
	return writeRows(w, electricityRow{}, rows)
}

// WriteWaterSupply writes records in the water-supply import layout.
func WriteWaterSupply(w io.Writer, recs []*domain.WaterSupply) error {
	rows := make([]waterSupplyRow, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, waterSupplyRow{
			Area:                     r.Area,
			ConsumptionLiters:        r.ConsumptionLiters,
			ProductionLiters:         r.ProductionLiters,
			ReservoirLevelPercentage: r.ReservoirLevelPercentage,
			RainfallMm:               r.RainfallMm,
			Date:                     r.Date,
		})
	}
	return writeRows(w, waterSupplyRow{}, rows)
}

func writeRows(w io.Writer, header, rows any) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	enc.AutoHeader = false

	if err := enc.EncodeHeader(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
