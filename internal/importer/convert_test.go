package importer

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToElectricity(t *testing.T) {
	rec, err := ToElectricity([]string{"Downtown", "1500.75", "45", "Maintenance", "2024-02-29"})
	require.NoError(t, err)
	assert.Equal(t, "Downtown", rec.Area)
	assert.Equal(t, 1500.75, rec.ConsumptionKwh)
	assert.Equal(t, 45, rec.OutageDurationMinutes)
	assert.Equal(t, "Maintenance", rec.OutageReason)
	assert.Equal(t, "2024-02-29", rec.Date.String())
	assert.Zero(t, rec.CityID)
}

func TestToElectricityIgnoresExtraFields(t *testing.T) {
	rec, err := ToElectricity([]string{"A", "1", "0", "", "2024-01-01", "extra", "more"})
	require.NoError(t, err)
	assert.Equal(t, "A", rec.Area)
}

func TestToElectricityErrors(t *testing.T) {
	tests := []struct {
		name       string
		fields     []string
		wantColumn int
		wantField  string
	}{
		{name: "bad consumption", fields: []string{"A", "lots", "0", "", "2024-01-01"}, wantColumn: 2, wantField: "consumptionKwh"},
		{name: "fractional outage", fields: []string{"A", "1", "1.5", "", "2024-01-01"}, wantColumn: 3, wantField: "outageDurationMinutes"},
		{name: "bad date", fields: []string{"A", "1", "0", "", "01/01/2024"}, wantColumn: 5, wantField: "date"},
		{name: "too few fields", fields: []string{"A", "1", "0"}, wantColumn: 4, wantField: "outageReason"},
		{name: "blank consumption", fields: []string{"A", "", "0", "", "2024-01-01"}, wantColumn: 2, wantField: "consumptionKwh"},
		{name: "NaN consumption", fields: []string{"A", "NaN", "0", "", "2024-01-01"}, wantColumn: 2, wantField: "consumptionKwh"},
		{name: "infinite consumption", fields: []string{"A", "Inf", "0", "", "2024-01-01"}, wantColumn: 2, wantField: "consumptionKwh"},
		{name: "negative infinite consumption", fields: []string{"A", "-Infinity", "0", "", "2024-01-01"}, wantColumn: 2, wantField: "consumptionKwh"},
		{name: "empty line", fields: []string{""}, wantColumn: 2, wantField: "consumptionKwh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ToElectricity(tt.fields)
			require.Error(t, err)
			assert.Nil(t, rec)

			var fe *fieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.wantColumn, fe.column)
			assert.Equal(t, tt.wantField, fe.name)
		})
	}
}

func TestToElectricityKeepsParseErrorMessage(t *testing.T) {
	_, err := ToElectricity([]string{"A", "abc", "0", "", "2024-01-01"})
	require.Error(t, err)

	var fe *fieldError
	require.True(t, errors.As(err, &fe))
	var numErr *strconv.NumError
	assert.True(t, errors.As(fe.err, &numErr))
	assert.Contains(t, err.Error(), `parsing "abc"`)
}

func TestToWaterSupply(t *testing.T) {
	rec, err := ToWaterSupply([]string{"Harbor", "52000", "61000.5", "78.25", "3.5", "2023-12-31"})
	require.NoError(t, err)
	assert.Equal(t, "Harbor", rec.Area)
	assert.Equal(t, 52000.0, rec.ConsumptionLiters)
	assert.Equal(t, 61000.5, rec.ProductionLiters)
	assert.Equal(t, 78.25, rec.ReservoirLevelPercentage)
	assert.Equal(t, 3.5, rec.RainfallMm)
	assert.Equal(t, "2023-12-31", rec.Date.String())
}

func TestToWaterSupplyErrors(t *testing.T) {
	_, err := ToWaterSupply([]string{"Harbor", "52000", "61000.5", "high", "3.5", "2023-12-31"})
	var fe *fieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "reservoirLevelPercentage", fe.name)

	_, err = ToWaterSupply([]string{"Harbor", "52000", "61000.5", "78", "3.5"})
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 6, fe.column)
	assert.Equal(t, "date", fe.name)

	for _, v := range []string{"nan", "+Inf", "1e999"} {
		_, err = ToWaterSupply([]string{"Harbor", "52000", v, "78", "3.5", "2023-12-31"})
		require.True(t, errors.As(err, &fe), v)
		assert.Equal(t, "productionLiters", fe.name, v)
	}
}
