package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// ParseID extrae un ID numérico de las variables de ruta
func ParseID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("missing path variable %q", name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}

	return id, nil
}

// ParsePagination extrae page y limit de la query, con valores por
// defecto y límite máximo de página
func ParsePagination(r *http.Request) (page, limit int64) {
	page = 1
	limit = domain.DefaultPageSize

	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			page = v
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}

	if limit > domain.MaxPageSize {
		limit = domain.MaxPageSize
	}

	return page, limit
}

// ParseLang extrae el idioma pedido de la query. Solo se aceptan los
// idiomas soportados; cualquier otro valor cae al español.
func ParseLang(r *http.Request) string {
	lang := r.URL.Query().Get("lang")
	if lang == domain.LangEnglish {
		return domain.LangEnglish
	}
	return domain.LangSpanish
}

// OptionalQuery devuelve el parámetro de query como puntero, o nil si
// no está presente
func OptionalQuery(r *http.Request, name string) *string {
	if raw := r.URL.Query().Get(name); raw != "" {
		return &raw
	}
	return nil
}
