package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vbonduro/citygrid/internal/domain"
)

// execOne runs a write statement that must touch exactly one row; zero rows
// affected is reported as domain.ErrNotFound.
func execOne(ctx context.Context, exec interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}, what string, id int64, query string, args ...any) error {
	result, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", what, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", what, id, domain.ErrNotFound)
	}

	return nil
}
