package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vbonduro/citygrid/internal/domain"
	"github.com/vbonduro/citygrid/internal/importer"
	"github.com/vbonduro/citygrid/internal/report"
)

// electricityRepository is the subset of store.ElectricityStore that
// ElectricityService requires.
type electricityRepository interface {
	Create(ctx context.Context, rec *domain.Electricity) (*domain.Electricity, error)
	GetByID(ctx context.Context, id int64) (*domain.Electricity, error)
	List(ctx context.Context) ([]*domain.Electricity, error)
	ListByCityID(ctx context.Context, cityID int64) ([]*domain.Electricity, error)
	ListByCityIDBetween(ctx context.Context, cityID int64, from, to domain.Date) ([]*domain.Electricity, error)
	ListOutages(ctx context.Context) ([]*domain.Electricity, error)
	Update(ctx context.Context, rec *domain.Electricity) error
	Delete(ctx context.Context, id int64) error
}

type ElectricityService struct {
	records  electricityRepository
	cities   cityLookup
	importer importRunner
	logger   *slog.Logger
}

func NewElectricityService(
	records electricityRepository,
	cities cityLookup,
	imp importRunner,
	logger *slog.Logger,
) *ElectricityService {
	return &ElectricityService{
		records:  records,
		cities:   cities,
		importer: imp,
		logger:   logger,
	}
}

func (s *ElectricityService) List(ctx context.Context) ([]*domain.Electricity, error) {
	return s.records.List(ctx)
}

func (s *ElectricityService) Get(ctx context.Context, id int64) (*domain.Electricity, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("electricity record %d %w", id, domain.ErrNotFound)
	}
	return rec, nil
}

func (s *ElectricityService) ListByCity(ctx context.Context, cityID int64) ([]*domain.Electricity, error) {
	return s.records.ListByCityID(ctx, cityID)
}

// ListForPeriod returns the city's records dated between start and end
// inclusive. Both bounds are validated before storage is queried.
func (s *ElectricityService) ListForPeriod(ctx context.Context, cityID int64, start, end string) ([]*domain.Electricity, error) {
	p, err := domain.ParsePeriod(start, end)
	if err != nil {
		return nil, err
	}
	return s.records.ListByCityIDBetween(ctx, cityID, p.Start, p.End)
}

func (s *ElectricityService) Outages(ctx context.Context) ([]*domain.Electricity, error) {
	return s.records.ListOutages(ctx)
}

func (s *ElectricityService) AreaTrends(ctx context.Context) ([]domain.AreaTotal, error) {
	recs, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.ElectricityByArea(recs), nil
}

// Create stores rec under rec.CityID, which must name an existing city.
func (s *ElectricityService) Create(ctx context.Context, rec *domain.Electricity) (*domain.Electricity, error) {
	if _, err := requireCity(ctx, s.cities, rec.CityID); err != nil {
		return nil, err
	}
	return s.records.Create(ctx, rec)
}

// Update replaces every field of record id, including its date and city.
func (s *ElectricityService) Update(ctx context.Context, id int64, rec *domain.Electricity) (*domain.Electricity, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if _, err := requireCity(ctx, s.cities, rec.CityID); err != nil {
		return nil, err
	}

	rec.ID = id
	if err := s.records.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to update electricity record: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *ElectricityService) Delete(ctx context.Context, id int64) error {
	return s.records.Delete(ctx, id)
}

// Import stores one record per CSV data row in r for the city.
func (s *ElectricityService) Import(ctx context.Context, cityID int64, r io.Reader) (int, error) {
	return s.importer.Import(ctx, cityID, domain.KindElectricity, r)
}

// Export writes the city's records to w as CSV in the import layout.
func (s *ElectricityService) Export(ctx context.Context, cityID int64, w io.Writer) error {
	if _, err := requireCity(ctx, s.cities, cityID); err != nil {
		return err
	}
	recs, err := s.records.ListByCityID(ctx, cityID)
	if err != nil {
		return err
	}
	s.logger.Debug("exporting records", "city_id", cityID, "rows", len(recs))
	return importer.WriteElectricity(w, recs)
}
