// Package seed fills an empty database with fake cities for demos and
// local development.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/vbonduro/citygrid/internal/domain"
)

// DefaultCityCount is the number of cities seeded when no count is given.
const DefaultCityCount = 15

type cityCreator interface {
	Create(ctx context.Context, name, country string) (*domain.City, error)
}

type Seeder struct {
	cities cityCreator
	faker  *gofakeit.Faker
	logger *slog.Logger
}

// New returns a Seeder. A zero seed draws from a random source; any other
// value makes the generated names reproducible.
func New(cities cityCreator, seed int64, logger *slog.Logger) *Seeder {
	return &Seeder{
		cities: cities,
		faker:  gofakeit.New(seed),
		logger: logger,
	}
}

// Cities creates n cities with fake names and countries.
func (s *Seeder) Cities(ctx context.Context, n int) ([]*domain.City, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: city count must not be negative, got %d", domain.ErrInvalidInput, n)
	}

	created := make([]*domain.City, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return created, err
		}
		city, err := s.cities.Create(ctx, s.faker.City(), s.faker.Country())
		if err != nil {
			return created, fmt.Errorf("failed to seed city %d of %d: %w", i+1, n, err)
		}
		created = append(created, city)
	}

	s.logger.Info("seeded cities", "count", len(created))
	return created, nil
}
