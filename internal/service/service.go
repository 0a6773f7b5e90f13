package service

import (
	"context"
	"fmt"
	"io"

	"github.com/vbonduro/citygrid/internal/domain"
)

// cityLookup is the subset of store.CityStore the record services require.
type cityLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.City, error)
}

// importRunner is satisfied by *importer.Importer.
type importRunner interface {
	Import(ctx context.Context, cityID int64, kind domain.Kind, r io.Reader) (int, error)
}

// requireCity returns the city or an error wrapping domain.ErrNotFound.
func requireCity(ctx context.Context, cities cityLookup, id int64) (*domain.City, error) {
	city, err := cities.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get city: %w", err)
	}
	if city == nil {
		return nil, fmt.Errorf("city %d %w", id, domain.ErrNotFound)
	}
	return city, nil
}
