package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/cv-paginator/internal/schemas"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "orientation", Message: "oneof"}
	assert.Equal(t, "validation error: orientation - oneof", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrNotFound(t *testing.T) {
	id := uuid.New()
	err := &ErrNotFound{Resource: "profile", ID: id}
	assert.Equal(t, "profile not found: "+id.String(), err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrStoreUnavailable(t *testing.T) {
	err := &ErrStoreUnavailable{}
	assert.Equal(t, "profile store is not configured", err.Error())
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Field: "max_pages", Message: "lte"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "schema ValidationError",
			err:      &schemas.ValidationError{Errors: []schemas.FieldError{{Field: "general", Message: "bad"}}},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped ErrNotFound",
			err:      fmt.Errorf("loading: %w", &ErrNotFound{Resource: "template", ID: uuid.New()}),
			expected: http.StatusNotFound,
		},
		{
			name:     "ErrStoreUnavailable",
			err:      &ErrStoreUnavailable{},
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "Unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
