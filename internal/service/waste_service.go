package service

import (
	"context"
	"fmt"

	"github.com/vbonduro/citygrid/internal/domain"
)

// wasteRepository is the subset of store.WasteStore that WasteService requires.
type wasteRepository interface {
	Create(ctx context.Context, rec *domain.Waste) (*domain.Waste, error)
	GetByID(ctx context.Context, id int64) (*domain.Waste, error)
	List(ctx context.Context) ([]*domain.Waste, error)
	ListByCityID(ctx context.Context, cityID int64) ([]*domain.Waste, error)
	ListByCityIDBetween(ctx context.Context, cityID int64, from, to domain.Date) ([]*domain.Waste, error)
	Update(ctx context.Context, rec *domain.Waste) error
	Delete(ctx context.Context, id int64) error
}

// WasteService manages waste collection records. Waste has no bulk import.
type WasteService struct {
	records wasteRepository
	cities  cityLookup
}

func NewWasteService(records wasteRepository, cities cityLookup) *WasteService {
	return &WasteService{records: records, cities: cities}
}

func (s *WasteService) List(ctx context.Context) ([]*domain.Waste, error) {
	return s.records.List(ctx)
}

func (s *WasteService) Get(ctx context.Context, id int64) (*domain.Waste, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("waste record %d %w", id, domain.ErrNotFound)
	}
	return rec, nil
}

func (s *WasteService) ListByCity(ctx context.Context, cityID int64) ([]*domain.Waste, error) {
	return s.records.ListByCityID(ctx, cityID)
}

func (s *WasteService) ListForPeriod(ctx context.Context, cityID int64, start, end string) ([]*domain.Waste, error) {
	p, err := domain.ParsePeriod(start, end)
	if err != nil {
		return nil, err
	}
	return s.records.ListByCityIDBetween(ctx, cityID, p.Start, p.End)
}

func (s *WasteService) Create(ctx context.Context, rec *domain.Waste) (*domain.Waste, error) {
	if _, err := requireCity(ctx, s.cities, rec.CityID); err != nil {
		return nil, err
	}
	return s.records.Create(ctx, rec)
}

func (s *WasteService) Update(ctx context.Context, id int64, rec *domain.Waste) (*domain.Waste, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if _, err := requireCity(ctx, s.cities, rec.CityID); err != nil {
		return nil, err
	}

	rec.ID = id
	if err := s.records.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to update waste record: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *WasteService) Delete(ctx context.Context, id int64) error {
	return s.records.Delete(ctx, id)
}
