package events

import (
	"context"
	"time"

	"github.com/vbonduro/citygrid/internal/domain"
)

// ImportCompleted is emitted once a bulk import has persisted every row.
type ImportCompleted struct {
	Kind   domain.Kind `json:"kind"`
	CityID int64       `json:"cityId"`
	Count  int         `json:"count"`
	At     time.Time   `json:"at"`
}

type Publisher interface {
	PublishImportCompleted(ctx context.Context, ev ImportCompleted) error
}

// Noop discards every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) PublishImportCompleted(context.Context, ImportCompleted) error {
	return nil
}
