package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/citygrid/internal/domain"
)

func TestWasteServiceCRUD(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()
	city := mustCity(t, svcs.cities, "Tokyo", "Japan")

	rec, err := svcs.waste.Create(ctx, &domain.Waste{
		CityID:             city.ID,
		Area:               "Shibuya",
		WasteType:          "Plastic",
		QuantityKg:         320.5,
		CollectionSchedule: "Weekly",
		Date:               domain.NewDate(2024, 4, 10),
	})
	require.NoError(t, err)

	got, err := svcs.waste.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	byCity, err := svcs.waste.ListByCity(ctx, city.ID)
	require.NoError(t, err)
	assert.Len(t, byCity, 1)

	inPeriod, err := svcs.waste.ListForPeriod(ctx, city.ID, "2024-04-01", "2024-04-10")
	require.NoError(t, err)
	assert.Len(t, inPeriod, 1)

	outside, err := svcs.waste.ListForPeriod(ctx, city.ID, "2024-04-11", "2024-04-30")
	require.NoError(t, err)
	assert.Empty(t, outside)

	updated, err := svcs.waste.Update(ctx, rec.ID, &domain.Waste{
		CityID:             city.ID,
		Area:               "Shibuya",
		WasteType:          "Glass",
		QuantityKg:         100,
		CollectionSchedule: "Monthly",
		Date:               domain.NewDate(2024, 4, 11),
	})
	require.NoError(t, err)
	assert.Equal(t, "Glass", updated.WasteType)

	require.NoError(t, svcs.waste.Delete(ctx, rec.ID))
	assert.ErrorIs(t, svcs.waste.Delete(ctx, rec.ID), domain.ErrNotFound)
}

func TestWasteServiceRejectsInvertedPeriod(t *testing.T) {
	svc := newTestServices(t).waste

	_, err := svc.ListForPeriod(context.Background(), 1, "2024-12-31", "2024-01-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
