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

// waterSupplyRepository is the subset of store.WaterSupplyStore that
// WaterSupplyService requires.
type waterSupplyRepository interface {
	Create(ctx context.Context, rec *domain.WaterSupply) (*domain.WaterSupply, error)
	GetByID(ctx context.Context, id int64) (*domain.WaterSupply, error)
	List(ctx context.Context) ([]*domain.WaterSupply, error)
	ListByCityID(ctx context.Context, cityID int64) ([]*domain.WaterSupply, error)
	ListByCityIDBetween(ctx context.Context, cityID int64, from, to domain.Date) ([]*domain.WaterSupply, error)
	Update(ctx context.Context, rec *domain.WaterSupply) error
	Delete(ctx context.Context, id int64) error
}

type WaterSupplyService struct {
	records  waterSupplyRepository
	cities   cityLookup
	importer importRunner
	logger   *slog.Logger
}

func NewWaterSupplyService(
	records waterSupplyRepository,
	cities cityLookup,
	imp importRunner,
	logger *slog.Logger,
) *WaterSupplyService {
	return &WaterSupplyService{
		records:  records,
		cities:   cities,
		importer: imp,
		logger:   logger,
	}
}

func (s *WaterSupplyService) List(ctx context.Context) ([]*domain.WaterSupply, error) {
	return s.records.List(ctx)
}

func (s *WaterSupplyService) Get(ctx context.Context, id int64) (*domain.WaterSupply, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("water-supply record %d %w", id, domain.ErrNotFound)
	}
	return rec, nil
}

func (s *WaterSupplyService) ListByCity(ctx context.Context, cityID int64) ([]*domain.WaterSupply, error) {
	return s.records.ListByCityID(ctx, cityID)
}

func (s *WaterSupplyService) ListForPeriod(ctx context.Context, cityID int64, start, end string) ([]*domain.WaterSupply, error) {
	p, err := domain.ParsePeriod(start, end)
	if err != nil {
		return nil, err
	}
	return s.records.ListByCityIDBetween(ctx, cityID, p.Start, p.End)
}

func (s *WaterSupplyService) AreaTrends(ctx context.Context) ([]domain.AreaTotal, error) {
	recs, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.WaterSupplyByArea(recs), nil
}

func (s *WaterSupplyService) Create(ctx context.Context, rec *domain.WaterSupply) (*domain.WaterSupply, error) {
	if _, err := requireCity(ctx, s.cities, rec.CityID); err != nil {
		return nil, err
	}
	return s.records.Create(ctx, rec)
}

func (s *WaterSupplyService) Update(ctx context.Context, id int64, rec *domain.WaterSupply) (*domain.WaterSupply, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if _, err := requireCity(ctx, s.cities, rec.CityID); err != nil {
		return nil, err
	}

	rec.ID = id
	if err := s.records.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to update water-supply record: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *WaterSupplyService) Delete(ctx context.Context, id int64) error {
	return s.records.Delete(ctx, id)
}

func (s *WaterSupplyService) Import(ctx context.Context, cityID int64, r io.Reader) (int, error) {
	return s.importer.Import(ctx, cityID, domain.KindWaterSupply, r)
}

func (s *WaterSupplyService) Export(ctx context.Context, cityID int64, w io.Writer) error {
	if _, err := requireCity(ctx, s.cities, cityID); err != nil {
		return err
	}
	recs, err := s.records.ListByCityID(ctx, cityID)
	if err != nil {
		return err
	}
	s.logger.Debug("exporting records", "city_id", cityID, "rows", len(recs))
	return importer.WriteWaterSupply(w, recs)
}
