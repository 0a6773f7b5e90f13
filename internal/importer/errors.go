package importer

import (
	"errors"
	"fmt"

	"github.com/vbonduro/citygrid/internal/domain"
)

var (
	// ErrEmptyFile is returned when the upload contains no bytes at all.
	ErrEmptyFile = fmt.Errorf("%w: uploaded file is empty", domain.ErrInvalidInput)
	// ErrMalformedRow matches every *RowError.
	ErrMalformedRow = errors.New("malformed row")
)

// RowError describes the first row an import could not convert. Line is the
// 1-indexed physical line in the uploaded file, header lines included.
type RowError struct {
	Line   int
	Column int
	Field  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("invalid data format in CSV at line %d, column %d (%s): %v", e.Line, e.Column, e.Field, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Is lets callers classify row failures as client input errors.
func (e *RowError) Is(target error) bool {
	return target == ErrMalformedRow || target == domain.ErrInvalidInput
}
