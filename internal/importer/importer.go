package importer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/vbonduro/citygrid/internal/domain"
	"github.com/vbonduro/citygrid/internal/events"
)

// maxLineBytes bounds a single CSV line.
const maxLineBytes = 1024 * 1024

// cityFinder is the subset of store.CityStore the importer requires.
type cityFinder interface {
	GetByID(ctx context.Context, id int64) (*domain.City, error)
}

// electricitySaver is the subset of store.ElectricityStore the importer requires.
type electricitySaver interface {
	Create(ctx context.Context, rec *domain.Electricity) (*domain.Electricity, error)
}

// waterSupplySaver is the subset of store.WaterSupplyStore the importer requires.
type waterSupplySaver interface {
	Create(ctx context.Context, rec *domain.WaterSupply) (*domain.WaterSupply, error)
}

type Importer struct {
	cities      cityFinder
	electricity electricitySaver
	waterSupply waterSupplySaver
	publisher   events.Publisher
	logger      *slog.Logger
	now         func() time.Time
}

func New(
	cities cityFinder,
	electricity electricitySaver,
	waterSupply waterSupplySaver,
	publisher events.Publisher,
	logger *slog.Logger,
) *Importer {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &Importer{
		cities:      cities,
		electricity: electricity,
		waterSupply: waterSupply,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// Import reads r line by line and stores one record of the given kind per
// data row, all owned by cityID. It returns the number of rows stored.
//
// Rows are written one at a time as they are read. The first malformed row
// stops the import; rows stored before it are kept and the returned count
// says how many there were.
func (imp *Importer) Import(ctx context.Context, cityID int64, kind domain.Kind, r io.Reader) (int, error) {
	var (
		n   int
		err error
	)
	switch kind {
	case domain.KindElectricity:
		n, err = run(ctx, imp.cities, cityID, r, pipeline[*domain.Electricity]{
			decode: ToElectricity,
			attach: func(rec *domain.Electricity, city *domain.City) {
				rec.CityID = city.ID
				rec.City = *city
			},
			save: func(ctx context.Context, rec *domain.Electricity) error {
				_, err := imp.electricity.Create(ctx, rec)
				return err
			},
		})
	case domain.KindWaterSupply:
		n, err = run(ctx, imp.cities, cityID, r, pipeline[*domain.WaterSupply]{
			decode: ToWaterSupply,
			attach: func(rec *domain.WaterSupply, city *domain.City) {
				rec.CityID = city.ID
				rec.City = *city
			},
			save: func(ctx context.Context, rec *domain.WaterSupply) error {
				_, err := imp.waterSupply.Create(ctx, rec)
				return err
			},
		})
	default:
		return 0, fmt.Errorf("%w: %q records cannot be imported", domain.ErrInvalidInput, kind)
	}

	if err != nil {
		imp.logger.Warn("import aborted", "kind", kind, "city_id", cityID, "rows_stored", n, "error", err)
		return n, err
	}

	imp.logger.Info("import complete", "kind", kind, "city_id", cityID, "rows_stored", n)

	ev := events.ImportCompleted{Kind: kind, CityID: cityID, Count: n, At: imp.now().UTC()}
	if perr := imp.publisher.PublishImportCompleted(ctx, ev); perr != nil {
		imp.logger.Error("failed to publish import event", "kind", kind, "city_id", cityID, "error", perr)
	}

	return n, nil
}

// pipeline binds the per-kind steps of an import.
type pipeline[T any] struct {
	decode func(fields []string) (T, error)
	attach func(rec T, city *domain.City)
	save   func(ctx context.Context, rec T) error
}

func run[T any](ctx context.Context, cities cityFinder, cityID int64, r io.Reader, p pipeline[T]) (int, error) {
	city, err := cities.GetByID(ctx, cityID)
	if err != nil {
		return 0, fmt.Errorf("failed to get city: %w", err)
	}
	if city == nil {
		return 0, fmt.Errorf("city %d %w", cityID, domain.ErrNotFound)
	}

	br := bufio.NewReader(r)
	if _, err := br.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrEmptyFile
		}
		return 0, fmt.Errorf("error reading CSV file: %w", err)
	}

	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	count := 0
	line := 0
	for scanner.Scan() {
		line++
		fields, header := ParseLine(scanner.Text())
		if header {
			continue
		}

		rec, err := p.decode(fields)
		if err != nil {
			var fe *fieldError
			if errors.As(err, &fe) {
				return count, &RowError{Line: line, Column: fe.column, Field: fe.name, Err: fe.err}
			}
			return count, &RowError{Line: line, Err: err}
		}

		p.attach(rec, city)
		if err := p.save(ctx, rec); err != nil {
			return count, fmt.Errorf("failed to store row at line %d: %w", line, err)
		}
		count++
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return count, fmt.Errorf("%w: line %d is longer than %d bytes", domain.ErrInvalidInput, line+1, maxLineBytes)
		}
		return count, fmt.Errorf("error reading CSV file: %w", err)
	}

	return count, nil
}
