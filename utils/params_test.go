package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/bookings", nil)
	opts := ParseQueryOptions(r)

	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, 20, opts.Limit)
	assert.Nil(t, opts.From)
	assert.Nil(t, opts.To)
	assert.Equal(t, int64(0), opts.Skip())
}

func TestParseQueryOptionsPagination(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/bookings?page=3&limit=25", nil)
	opts := ParseQueryOptions(r)

	assert.Equal(t, 3, opts.Page)
	assert.Equal(t, 25, opts.Limit)
	assert.Equal(t, int64(50), opts.Skip())
}

func TestParseQueryOptionsClampsLimit(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/bookings?page=-2&limit=5000", nil)
	opts := ParseQueryOptions(r)

	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, 20, opts.Limit)
}

func TestParseQueryOptionsDateRange(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/bookings?from=2025-01-01&to=2025-01-31", nil)
	opts := ParseQueryOptions(r)

	require.NotNil(t, opts.From)
	require.NotNil(t, opts.To)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *opts.From)
	// end date is inclusive
	assert.True(t, opts.To.After(time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)))
}

func TestParseQueryOptionsFilters(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/bookings?status=delivered&platform=Amazon", nil)
	opts := ParseQueryOptions(r)

	assert.Equal(t, "delivered", opts.Status)
	assert.Equal(t, "Amazon", opts.Platform)
}
