package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vbonduro/citygrid/internal/domain"
)

// cityRepository is the subset of store.CityStore that CityService requires.
type cityRepository interface {
	Create(ctx context.Context, name, country string) (*domain.City, error)
	GetByID(ctx context.Context, id int64) (*domain.City, error)
	List(ctx context.Context) ([]*domain.City, error)
	Update(ctx context.Context, id int64, name, country string) error
	Delete(ctx context.Context, id int64) error
}

type CityService struct {
	cities cityRepository
	logger *slog.Logger
}

func NewCityService(cities cityRepository, logger *slog.Logger) *CityService {
	return &CityService{cities: cities, logger: logger}
}

func (s *CityService) CreateCity(ctx context.Context, name, country string) (*domain.City, error) {
	return s.cities.Create(ctx, name, country)
}

func (s *CityService) ListCities(ctx context.Context) ([]*domain.City, error) {
	return s.cities.List(ctx)
}

func (s *CityService) GetCity(ctx context.Context, id int64) (*domain.City, error) {
	return requireCity(ctx, s.cities, id)
}

func (s *CityService) UpdateCity(ctx context.Context, id int64, name, country string) (*domain.City, error) {
	if err := s.cities.Update(ctx, id, name, country); err != nil {
		return nil, fmt.Errorf("failed to update city: %w", err)
	}
	return requireCity(ctx, s.cities, id)
}

// DeleteCity removes the city and every record that belongs to it.
func (s *CityService) DeleteCity(ctx context.Context, id int64) error {
	if err := s.cities.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete city: %w", err)
	}
	s.logger.Info("city deleted", "city_id", id)
	return nil
}
