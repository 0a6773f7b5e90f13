package domain

import "errors"

var (
	// ErrNotFound marks a missing city or record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput marks client mistakes: malformed dates, inverted ranges,
	// bad CSV rows, empty uploads.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized marks failed authentication.
	ErrUnauthorized = errors.New("unauthorized")
)
