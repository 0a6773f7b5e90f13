// Package report computes aggregate views over utility records.
package report

import "github.com/vbonduro/citygrid/internal/domain"

// SumByArea groups records by the exact area string and totals the value
// each record contributes. Areas with no records are absent from the result.
// The order of the returned slice is unspecified.
func SumByArea[T any](records []T, area func(T) string, value func(T) float64) []domain.AreaTotal {
	totals := make(map[string]float64)
	for _, rec := range records {
		totals[area(rec)] += value(rec)
	}

	out := make([]domain.AreaTotal, 0, len(totals))
	for a, total := range totals {
		out = append(out, domain.AreaTotal{Area: a, TotalConsumption: total})
	}
	return out
}

// ElectricityByArea totals consumptionKwh per area.
func ElectricityByArea(records []*domain.Electricity) []domain.AreaTotal {
	return SumByArea(records,
		func(r *domain.Electricity) string { return r.Area },
		func(r *domain.Electricity) float64 { return r.ConsumptionKwh },
	)
}

// WaterSupplyByArea totals consumptionLiters per area.
func WaterSupplyByArea(records []*domain.WaterSupply) []domain.AreaTotal {
	return SumByArea(records,
		func(r *domain.WaterSupply) string { return r.Area },
		func(r *domain.WaterSupply) float64 { return r.ConsumptionLiters },
	)
}
