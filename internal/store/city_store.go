package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vbonduro/citygrid/internal/domain"
)

type CityStore struct {
	db *sqlx.DB
}

func NewCityStore(db *sqlx.DB) *CityStore {
	return &CityStore{db: db}
}

func (s *CityStore) Create(ctx context.Context, name, country string) (*domain.City, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO cities (name, country) VALUES (?, ?)
	`, name, country)
	if err != nil {
		return nil, fmt.Errorf("failed to create city: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *CityStore) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	city := &domain.City{}
	err := s.db.GetContext(ctx, city, `
		SELECT id, name, country FROM cities WHERE id = ?
	`, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get city: %w", err)
	}

	return city, nil
}

func (s *CityStore) List(ctx context.Context) ([]*domain.City, error) {
	cities := []*domain.City{}
	if err := s.db.SelectContext(ctx, &cities, `
		SELECT id, name, country FROM cities ORDER BY id ASC
	`); err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

func (s *CityStore) Update(ctx context.Context, id int64, name, country string) error {
	return execOne(ctx, s.db, "update city", id, `
		UPDATE cities SET name = ?, country = ? WHERE id = ?
	`, name, country, id)
}

// Delete removes the city together with every electricity, water-supply and
// waste record that references it, in one transaction.
func (s *CityStore) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"electricity", "water_supply", "waste"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE city_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete %s records: %w", table, err)
		}
	}

	if err := execOne(ctx, tx, "delete city", id, `DELETE FROM cities WHERE id = ?`, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit city delete: %w", err)
	}
	return nil
}

// DeleteAll removes every city and, with them, every utility record.
func (s *CityStore) DeleteAll(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"electricity", "water_supply", "waste", "cities"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}
