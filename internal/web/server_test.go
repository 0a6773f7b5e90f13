package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vbonduro/citygrid/internal/domain"
	"github.com/vbonduro/citygrid/internal/importer"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("city 3 %w", domain.ErrNotFound), http.StatusNotFound},
		{"invalid input", fmt.Errorf("%w: bad date", domain.ErrInvalidInput), http.StatusBadRequest},
		{"empty file", importer.ErrEmptyFile, http.StatusBadRequest},
		{"row error", &importer.RowError{Line: 2, Column: 1, Field: "consumptionKwh", Err: errors.New("bad")}, http.StatusBadRequest},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"other", errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestValidationMessage(t *testing.T) {
	v := newValidator()

	err := v.Struct(waterSupplyRequest{
		ReservoirLevelPercentage: 120,
	})
	assert.Equal(t,
		"cityId is required; date is required; area is required; reservoirLevelPercentage must be at most 100",
		validationMessage(err))

	err = v.Struct(wasteRequest{WasteType: "Paper", Area: "North"})
	assert.Equal(t, "city.id must be greater than 0; date is required", validationMessage(err))
}

func TestBearerToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/city", nil)
	_, ok := bearerToken(r)
	assert.False(t, ok)

	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	_, ok = bearerToken(r)
	assert.False(t, ok)

	r.Header.Set("Authorization", "bearer abc-123")
	tok, ok := bearerToken(r)
	assert.True(t, ok)
	assert.Equal(t, "abc-123", tok)
}

func TestPathID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/city/7", nil)
	r.SetPathValue("id", "7")
	id, err := pathID(r, "id")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)

	r.SetPathValue("id", "-1")
	_, err = pathID(r, "id")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSecurityHeaders(t *testing.T) {
	h := securityHeaders(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/city", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
