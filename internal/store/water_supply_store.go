package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vbonduro/citygrid/internal/domain"
)

const waterSupplySelect = `
	SELECT w.id, w.city_id, w.date, w.area, w.consumption_liters, w.production_liters,
	       w.reservoir_level_percentage, w.rainfall_mm,
	       c.id AS "city.id", c.name AS "city.name", c.country AS "city.country"
	FROM water_supply w JOIN cities c ON c.id = w.city_id`

type WaterSupplyStore struct {
	db *sqlx.DB
}

func NewWaterSupplyStore(db *sqlx.DB) *WaterSupplyStore {
	return &WaterSupplyStore{db: db}
}

func (s *WaterSupplyStore) Create(ctx context.Context, rec *domain.WaterSupply) (*domain.WaterSupply, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO water_supply (city_id, date, area, consumption_liters, production_liters, reservoir_level_percentage, rainfall_mm)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.CityID, rec.Date.String(), rec.Area, rec.ConsumptionLiters, rec.ProductionLiters, rec.ReservoirLevelPercentage, rec.RainfallMm)
	if err != nil {
		return nil, fmt.Errorf("failed to create water supply record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *WaterSupplyStore) GetByID(ctx context.Context, id int64) (*domain.WaterSupply, error) {
	rec := &domain.WaterSupply{}
	err := s.db.GetContext(ctx, rec, waterSupplySelect+` WHERE w.id = ?`, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get water supply record: %w", err)
	}

	return rec, nil
}

func (s *WaterSupplyStore) List(ctx context.Context) ([]*domain.WaterSupply, error) {
	return s.list(ctx, waterSupplySelect+` ORDER BY w.id ASC`)
}

func (s *WaterSupplyStore) ListByCityID(ctx context.Context, cityID int64) ([]*domain.WaterSupply, error) {
	return s.list(ctx, waterSupplySelect+` WHERE w.city_id = ? ORDER BY w.id ASC`, cityID)
}

func (s *WaterSupplyStore) ListByCityIDBetween(ctx context.Context, cityID int64, from, to domain.Date) ([]*domain.WaterSupply, error) {
	return s.list(ctx, waterSupplySelect+` WHERE w.city_id = ? AND w.date BETWEEN ? AND ? ORDER BY w.id ASC`, cityID, from.String(), to.String())
}

func (s *WaterSupplyStore) list(ctx context.Context, query string, args ...any) ([]*domain.WaterSupply, error) {
	recs := []*domain.WaterSupply{}
	if err := s.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list water supply records: %w", err)
	}
	return recs, nil
}

func (s *WaterSupplyStore) Update(ctx context.Context, rec *domain.WaterSupply) error {
	return execOne(ctx, s.db, "update water supply record", rec.ID, `
		UPDATE water_supply
		SET city_id = ?, date = ?, area = ?, consumption_liters = ?, production_liters = ?,
		    reservoir_level_percentage = ?, rainfall_mm = ?
		WHERE id = ?
	`, rec.CityID, rec.Date.String(), rec.Area, rec.ConsumptionLiters, rec.ProductionLiters, rec.ReservoirLevelPercentage, rec.RainfallMm, rec.ID)
}

func (s *WaterSupplyStore) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, s.db, "delete water supply record", id, `DELETE FROM water_supply WHERE id = ?`, id)
}
