package models

import (
	"time"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// Modelos de request

// SaveTransportRequest cuerpo de creación y actualización de una
// opción de transporte
type SaveTransportRequest struct {
	Type     string   `json:"type"`
	Vehicle  string   `json:"vehicle"`
	Services []string `json:"services"`
	ImageURL string   `json:"imageUrl"`
}

// ToDomain convierte el request en una opción de transporte de dominio
func (r *SaveTransportRequest) ToDomain() *domain.TransportOption {
	return &domain.TransportOption{
		Type:     domain.PackageType(r.Type),
		Vehicle:  r.Vehicle,
		Services: r.Services,
		ImageURL: r.ImageURL,
	}
}

// ListTransportRequest parámetros del listado paginado
type ListTransportRequest struct {
	Page  int64
	Limit int64
	Type  *string
}

// Modelos de response

// TransportResponse respuesta con los datos de una opción de transporte
type TransportResponse struct {
	ID       int64    `json:"id"`
	Type     string   `json:"type"`
	Vehicle  string   `json:"vehicle"`
	Services []string `json:"services"`
	ImageURL string   `json:"imageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meta metadatos de paginación
type Meta struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// TransportListResponse listado paginado de opciones de transporte
type TransportListResponse struct {
	Data []*TransportResponse `json:"data"`
	Meta Meta                 `json:"meta"`
}

// FromDomainTransport convierte una opción de dominio en la respuesta
func FromDomainTransport(option *domain.TransportOption) *TransportResponse {
	services := option.Services
	if services == nil {
		services = []string{}
	}

	return &TransportResponse{
		ID:        option.ID,
		Type:      string(option.Type),
		Vehicle:   option.Vehicle,
		Services:  services,
		ImageURL:  option.ImageURL,
		CreatedAt: option.CreatedAt,
		UpdatedAt: option.UpdatedAt,
	}
}

// FromDomainTransportList convierte un slice de opciones en respuestas
func FromDomainTransportList(options []*domain.TransportOption) []*TransportResponse {
	out := make([]*TransportResponse, 0, len(options))
	for _, option := range options {
		out = append(out, FromDomainTransport(option))
	}
	return out
}

// NewMeta construye los metadatos de paginación
func NewMeta(page, limit, total int64) Meta {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
