package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vbonduro/citygrid/internal/domain"
)

const wasteSelect = `
	SELECT w.id, w.city_id, w.date, w.area, w.waste_type, w.quantity_kg, w.collection_schedule,
	       c.id AS "city.id", c.name AS "city.name", c.country AS "city.country"
	FROM waste w JOIN cities c ON c.id = w.city_id`

type WasteStore struct {
	db *sqlx.DB
}

func NewWasteStore(db *sqlx.DB) *WasteStore {
	return &WasteStore{db: db}
}

func (s *WasteStore) Create(ctx context.Context, rec *domain.Waste) (*domain.Waste, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO waste (city_id, date, area, waste_type, quantity_kg, collection_schedule)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.CityID, rec.Date.String(), rec.Area, rec.WasteType, rec.QuantityKg, rec.CollectionSchedule)
	if err != nil {
		return nil, fmt.Errorf("failed to create waste record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *WasteStore) GetByID(ctx context.Context, id int64) (*domain.Waste, error) {
	rec := &domain.Waste{}
	err := s.db.GetContext(ctx, rec, wasteSelect+` WHERE w.id = ?`, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get waste record: %w", err)
	}

	return rec, nil
}

func (s *WasteStore) List(ctx context.Context) ([]*domain.Waste, error) {
	return s.list(ctx, wasteSelect+` ORDER BY w.id ASC`)
}

func (s *WasteStore) ListByCityID(ctx context.Context, cityID int64) ([]*domain.Waste, error) {
	return s.list(ctx, wasteSelect+` WHERE w.city_id = ? ORDER BY w.id ASC`, cityID)
}

func (s *WasteStore) ListByCityIDBetween(ctx context.Context, cityID int64, from, to domain.Date) ([]*domain.Waste, error) {
	return s.list(ctx, wasteSelect+` WHERE w.city_id = ? AND w.date BETWEEN ? AND ? ORDER BY w.id ASC`, cityID, from.String(), to.String())
}

func (s *WasteStore) list(ctx context.Context, query string, args ...any) ([]*domain.Waste, error) {
	recs := []*domain.Waste{}
	if err := s.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list waste records: %w", err)
	}
	return recs, nil
}

func (s *WasteStore) Update(ctx context.Context, rec *domain.Waste) error {
	return execOne(ctx, s.db, "update waste record", rec.ID, `
		UPDATE waste
		SET city_id = ?, date = ?, area = ?, waste_type = ?, quantity_kg = ?, collection_schedule = ?
		WHERE id = ?
	`, rec.CityID, rec.Date.String(), rec.Area, rec.WasteType, rec.QuantityKg, rec.CollectionSchedule, rec.ID)
}

func (s *WasteStore) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, s.db, "delete waste record", id, `DELETE FROM waste WHERE id = ?`, id)
}
