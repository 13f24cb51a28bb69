package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

func TestParseID(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/orders/42", nil),
		map[string]string{"orderId": "42"})

	id, err := ParseID(req, "orderId")

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseIDRejects(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"missing var", nil},
		{"non numeric", map[string]string{"orderId": "abc"}},
		{"zero", map[string]string{"orderId": "0"}},
		{"negative", map[string]string{"orderId": "-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/orders/x", nil), tt.vars)

			_, err := ParseID(req, "orderId")

			assert.Error(t, err)
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int64
		wantLimit int64
	}{
		{"defaults", "", 1, domain.DefaultPageSize},
		{"explicit", "?page=3&limit=25", 3, 25},
		{"limit capped", "?limit=500", 1, domain.MaxPageSize},
		{"invalid values fall back", "?page=abc&limit=-1", 1, domain.DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/orders"+tt.query, nil)

			page, limit := ParsePagination(req)

			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestParseLang(t *testing.T) {
	assert.Equal(t, domain.LangEnglish,
		ParseLang(httptest.NewRequest(http.MethodGet, "/tours?lang=en", nil)))
	assert.Equal(t, domain.LangSpanish,
		ParseLang(httptest.NewRequest(http.MethodGet, "/tours?lang=es", nil)))
	assert.Equal(t, domain.LangSpanish,
		ParseLang(httptest.NewRequest(http.MethodGet, "/tours?lang=fr", nil)))
	assert.Equal(t, domain.LangSpanish,
		ParseLang(httptest.NewRequest(http.MethodGet, "/tours", nil)))
}

func TestOptionalQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/orders?search=ana", nil)

	search := OptionalQuery(req, "search")
	require.NotNil(t, search)
	assert.Equal(t, "ana", *search)

	assert.Nil(t, OptionalQuery(req, "status"))
}
