package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/citygrid/internal/domain"
)

func TestWaterSupplyServiceImportAndTrends(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()
	city := mustCity(t, svcs.cities, "Athens", "Greece")

	n, err := svcs.waterSupply.Import(ctx, city.ID, stringsReader(
		"area,consumptionLiters,productionLiters,reservoirLevelPercentage,rainfallMm,date\n"+
			"North,100,150,80.5,2.5,2024-05-01\n"+
			"North,50,60,79,0,2024-05-02\n"+
			"South,10,20,70,1,2024-05-02\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	trends, err := svcs.waterSupply.AreaTrends(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.AreaTotal{
		{Area: "North", TotalConsumption: 150},
		{Area: "South", TotalConsumption: 10},
	}, trends)

	recs, err := svcs.waterSupply.ListForPeriod(ctx, city.ID, "2024-05-02", "2024-05-31")
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	var buf bytes.Buffer
	require.NoError(t, svcs.waterSupply.Export(ctx, city.ID, &buf))
	assert.Contains(t, buf.String(), "North,100,150,80.5,2.5,2024-05-01\n")
}

func TestWaterSupplyServiceCRUD(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()
	city := mustCity(t, svcs.cities, "Cairo", "Egypt")

	rec, err := svcs.waterSupply.Create(ctx, &domain.WaterSupply{
		CityID:            city.ID,
		Area:              "Giza",
		ConsumptionLiters: 500,
		Date:              domain.NewDate(2024, 7, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, *city, rec.City)

	updated, err := svcs.waterSupply.Update(ctx, rec.ID, &domain.WaterSupply{
		CityID:            city.ID,
		Area:              "Giza",
		ConsumptionLiters: 750,
		RainfallMm:        0.5,
		Date:              domain.NewDate(2024, 7, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, 750.0, updated.ConsumptionLiters)

	require.NoError(t, svcs.waterSupply.Delete(ctx, rec.ID))
	_, err = svcs.waterSupply.Get(ctx, rec.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svcs.waterSupply.Create(ctx, &domain.WaterSupply{CityID: 77})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWaterSupplyServiceImportEmptyFile(t *testing.T) {
	svcs := newTestServices(t)
	city := mustCity(t, svcs.cities, "Lima", "Peru")

	_, err := svcs.waterSupply.Import(context.Background(), city.ID, stringsReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
