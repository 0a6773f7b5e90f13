package importer

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vbonduro/citygrid/internal/domain"
)

// ElectricityColumns is the electricity import layout.
var ElectricityColumns = []string{"area", "consumptionKwh", "outageDurationMinutes", "outageReason", "date"}

// WaterSupplyColumns is the water-supply import layout.
var WaterSupplyColumns = []string{"area", "consumptionLiters", "productionLiters", "reservoirLevelPercentage", "rainfallMm", "date"}

// fieldError is a conversion failure before the line number is known.
type fieldError struct {
	column int
	name   string
	err    error
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("column %d (%s): %v", e.column, e.name, e.err)
}

// row reads typed values out of positional fields, remembering the first
// failure so conversions read top to bottom without an error check per field.
type row struct {
	fields  []string
	columns []string
	err     *fieldError
}

func (r *row) str(i int) string {
	if r.err != nil {
		return ""
	}
	if i >= len(r.fields) {
		r.err = &fieldError{column: i + 1, name: r.columns[i], err: fmt.Errorf("missing field: row has %d fields, want %d", len(r.fields), len(r.columns))}
		return ""
	}
	return r.fields[i]
}

func (r *row) float(i int) float64 {
	s := r.str(i)
	if r.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = fmt.Errorf("%q is not a finite number", s)
	}
	if err != nil {
		r.err = &fieldError{column: i + 1, name: r.columns[i], err: err}
		return 0
	}
	return v
}

func (r *row) integer(i int) int {
	s := r.str(i)
	if r.err != nil {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		r.err = &fieldError{column: i + 1, name: r.columns[i], err: err}
	}
	return v
}

func (r *row) date(i int) domain.Date {
	s := r.str(i)
	if r.err != nil {
		return domain.Date{}
	}
	v, err := domain.ParseDate(s)
	if err != nil {
		r.err = &fieldError{column: i + 1, name: r.columns[i], err: err}
	}
	return v
}

func (r *row) result() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// ToElectricity converts one parsed row in ElectricityColumns order. The
// returned record has no city attached.
func ToElectricity(fields []string) (*domain.Electricity, error) {
	r := &row{fields: fields, columns: ElectricityColumns}
	rec := &domain.Electricity{
		Area:                  r.str(0),
		ConsumptionKwh:        r.float(1),
		OutageDurationMinutes: r.integer(2),
		OutageReason:          r.str(3),
		Date:                  r.date(4),
	}
	if err := r.result(); err != nil {
		return nil, err
	}
	return rec, nil
}

// ToWaterSupply converts one parsed row in WaterSupplyColumns order. The
// returned record has no city attached.
func ToWaterSupply(fields []string) (*domain.WaterSupply, error) {
	r := &row{fields: fields, columns: WaterSupplyColumns}
	rec := &domain.WaterSupply{
		Area:                     r.str(0),
		ConsumptionLiters:        r.float(1),
		ProductionLiters:         r.float(2),
		ReservoirLevelPercentage: r.float(3),
		RainfallMm:               r.float(4),
		Date:                     r.date(5),
	}
	if err := r.result(); err != nil {
		return nil, err
	}
	return rec, nil
}
