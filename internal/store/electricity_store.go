package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vbonduro/citygrid/internal/domain"
)

const electricitySelect = `
	SELECT e.id, e.city_id, e.date, e.area, e.consumption_kwh, e.outage_duration_minutes, e.outage_reason,
	       c.id AS "city.id", c.name AS "city.name", c.country AS "city.country"
	FROM electricity e JOIN cities c ON c.id = e.city_id`

type ElectricityStore struct {
	db *sqlx.DB
}

func NewElectricityStore(db *sqlx.DB) *ElectricityStore {
	return &ElectricityStore{db: db}
}

func (s *ElectricityStore) Create(ctx context.Context, rec *domain.Electricity) (*domain.Electricity, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO electricity (city_id, date, area, consumption_kwh, outage_duration_minutes, outage_reason)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.CityID, rec.Date.String(), rec.Area, rec.ConsumptionKwh, rec.OutageDurationMinutes, rec.OutageReason)
	if err != nil {
		return nil, fmt.Errorf("failed to create electricity record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *ElectricityStore) GetByID(ctx context.Context, id int64) (*domain.Electricity, error) {
	rec := &domain.Electricity{}
	err := s.db.GetContext(ctx, rec, electricitySelect+` WHERE e.id = ?`, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get electricity record: %w", err)
	}

	return rec, nil
}

func (s *ElectricityStore) List(ctx context.Context) ([]*domain.Electricity, error) {
	return s.list(ctx, electricitySelect+` ORDER BY e.id ASC`)
}

func (s *ElectricityStore) ListByCityID(ctx context.Context, cityID int64) ([]*domain.Electricity, error) {
	return s.list(ctx, electricitySelect+` WHERE e.city_id = ? ORDER BY e.id ASC`, cityID)
}

// ListByCityIDBetween returns the city's records dated within [from, to].
func (s *ElectricityStore) ListByCityIDBetween(ctx context.Context, cityID int64, from, to domain.Date) ([]*domain.Electricity, error) {
	return s.list(ctx, electricitySelect+` WHERE e.city_id = ? AND e.date BETWEEN ? AND ? ORDER BY e.id ASC`, cityID, from.String(), to.String())
}

// ListOutages returns every record with a positive outage duration.
func (s *ElectricityStore) ListOutages(ctx context.Context) ([]*domain.Electricity, error) {
	return s.list(ctx, electricitySelect+` WHERE e.outage_duration_minutes > 0 ORDER BY e.id ASC`)
}

func (s *ElectricityStore) list(ctx context.Context, query string, args ...any) ([]*domain.Electricity, error) {
	recs := []*domain.Electricity{}
	if err := s.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list electricity records: %w", err)
	}
	return recs, nil
}

func (s *ElectricityStore) Update(ctx context.Context, rec *domain.Electricity) error {
	return execOne(ctx, s.db, "update electricity record", rec.ID, `
		UPDATE electricity
		SET city_id = ?, date = ?, area = ?, consumption_kwh = ?, outage_duration_minutes = ?, outage_reason = ?
		WHERE id = ?
	`, rec.CityID, rec.Date.String(), rec.Area, rec.ConsumptionKwh, rec.OutageDurationMinutes, rec.OutageReason, rec.ID)
}

func (s *ElectricityStore) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, s.db, "delete electricity record", id, `DELETE FROM electricity WHERE id = ?`, id)
}
