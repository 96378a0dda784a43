package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vportnov/airport-api/internal/store"
)

func TestNewPageResponse_FirstPage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/crews/", nil)

	page := NewPageResponse(req, 45, store.ListParams{Page: 1, PageSize: 20}, []string{})

	assert.Equal(t, 45, page.Count)
	require.NotNil(t, page.Next)
	assert.Equal(t, "/api/crews/?page=2", *page.Next)
	assert.Nil(t, page.Previous)
}

func TestNewPageResponse_MiddlePage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/crews/?page=2&page_size=20", nil)

	page := NewPageResponse(req, 45, store.ListParams{Page: 2, PageSize: 20}, []string{})

	require.NotNil(t, page.Next)
	assert.Equal(t, "/api/crews/?page=3&page_size=20", *page.Next)
	require.NotNil(t, page.Previous)
	assert.Equal(t, "/api/crews/?page=1&page_size=20", *page.Previous)
}

func TestNewPageResponse_LastPage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/crews/?page=3", nil)

	page := NewPageResponse(req, 45, store.ListParams{Page: 3, PageSize: 20}, []string{})

	assert.Nil(t, page.Next)
	require.NotNil(t, page.Previous)
	assert.Equal(t, "/api/crews/?page=2", *page.Previous)
}

func TestNewPageResponse_KeepsFilterParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/flights/?route=London-Paris&page=1", nil)

	page := NewPageResponse(req, 30, store.ListParams{Page: 1, PageSize: 20}, []string{})

	require.NotNil(t, page.Next)
	assert.Equal(t, "/api/flights/?page=2&route=London-Paris", *page.Next)
}

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected store.ListParams
	}{
		{
			name:     "defaults",
			query:    "",
			expected: store.ListParams{Page: 1, PageSize: store.DefaultPageSize},
		},
		{
			name:     "explicit page and size",
			query:    "page=3&page_size=50",
			expected: store.ListParams{Page: 3, PageSize: 50},
		},
		{
			name:     "size clamped to maximum",
			query:    "page_size=4000",
			expected: store.ListParams{Page: 1, PageSize: store.MaxPageSize},
		},
		{
			name:     "malformed values fall back to defaults",
			query:    "page=abc&page_size=-5",
			expected: store.ListParams{Page: 1, PageSize: store.DefaultPageSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/crews/?"+tt.query, nil)
			assert.Equal(t, tt.expected, parseListParams(req))
		})
	}
}
