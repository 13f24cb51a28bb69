package models

import (
	"time"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	"github.com/illapa-dev/TourOperatorService/pkg/money"
)

// Modelos de request

// SaveTourRequest cuerpo de creación y actualización de un tour.
// Los campos de texto llegan en la forma bilingüe {es, en}.
type SaveTourRequest struct {
	Title         domain.LocalizedText   `json:"title"`
	Subtitle      domain.LocalizedText   `json:"subtitle"`
	Slug          string                 `json:"slug"`
	Price         float64                `json:"price"`
	OriginalPrice *float64               `json:"originalPrice,omitempty"`
	Duration      string                 `json:"duration"`
	Rating        float64                `json:"rating"`
	Reviews       int                    `json:"reviews"`
	Location      domain.LocalizedText   `json:"location"`
	Region        string                 `json:"region"`
	Category      string                 `json:"category"`
	Difficulty    string                 `json:"difficulty"`
	PackageType   string                 `json:"packageType"`
	ImageURL      string                 `json:"imageUrl"`
	Highlights    []domain.LocalizedText `json:"highlights"`
	Itinerary     []domain.ItineraryDay  `json:"itinerary"`
	Includes      []domain.LocalizedText `json:"includes"`
	NotIncludes   []domain.LocalizedText `json:"notIncludes"`
	ToBring       []domain.LocalizedText `json:"toBring"`
	Conditions    []domain.LocalizedText `json:"conditions"`

	TransportOptionIDs []int64 `json:"transportOptionIds"`
}

// ToDomain convierte el request en un tour de dominio
func (r *SaveTourRequest) ToDomain() *domain.Tour {
	return &domain.Tour{
		Title:              r.Title,
		Subtitle:           r.Subtitle,
		Slug:               r.Slug,
		Price:              r.Price,
		OriginalPrice:      r.OriginalPrice,
		Duration:           r.Duration,
		Rating:             r.Rating,
		Reviews:            r.Reviews,
		Location:           r.Location,
		Region:             r.Region,
		Category:           r.Category,
		Difficulty:         r.Difficulty,
		PackageType:        domain.PackageType(r.PackageType),
		ImageURL:           r.ImageURL,
		Highlights:         r.Highlights,
		Itinerary:          r.Itinerary,
		Includes:           r.Includes,
		NotIncludes:        r.NotIncludes,
		ToBring:            r.ToBring,
		Conditions:         r.Conditions,
		TransportOptionIDs: r.TransportOptionIDs,
	}
}

// ListToursRequest parámetros del listado paginado
type ListToursRequest struct {
	Page  int64
	Limit int64
	Lang  string
}

// Modelos de response

// TourResponse respuesta completa de un tour, con los textos bilingües
// sin resolver. Es la forma que consume el panel de administración.
type TourResponse struct {
	ID            int64                  `json:"id"`
	Title         domain.LocalizedText   `json:"title"`
	Subtitle      domain.LocalizedText   `json:"subtitle"`
	Slug          string                 `json:"slug"`
	Price         float64                `json:"price"`
	OriginalPrice *float64               `json:"originalPrice,omitempty"`
	Duration      string                 `json:"duration"`
	Rating        float64                `json:"rating"`
	Reviews       int                    `json:"reviews"`
	Location      domain.LocalizedText   `json:"location"`
	Region        string                 `json:"region"`
	Category      string                 `json:"category"`
	Difficulty    string                 `json:"difficulty"`
	PackageType   string                 `json:"packageType"`
	ImageURL      string                 `json:"imageUrl"`
	Highlights    []domain.LocalizedText `json:"highlights"`
	Itinerary     []domain.ItineraryDay  `json:"itinerary"`
	Includes      []domain.LocalizedText `json:"includes"`
	NotIncludes   []domain.LocalizedText `json:"notIncludes"`
	ToBring       []domain.LocalizedText `json:"toBring"`
	Conditions    []domain.LocalizedText `json:"conditions"`

	TransportOptionIDs []int64 `json:"transportOptionIds"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TourCardResponse tarjeta de tour para los listados públicos, con los
// textos ya resueltos al idioma solicitado.
type TourCardResponse struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Subtitle       string   `json:"subtitle,omitempty"`
	Slug           string   `json:"slug"`
	Price          float64  `json:"price"`
	PriceFormatted string   `json:"priceFormatted"`
	OriginalPrice  *float64 `json:"originalPrice,omitempty"`
	Duration       string   `json:"duration"`
	Rating         float64  `json:"rating"`
	Reviews        int      `json:"reviews"`
	Location       string   `json:"location"`
	Region         string   `json:"region"`
	Category       string   `json:"category"`
	PackageType    string   `json:"packageType"`
	ImageURL       string   `json:"imageUrl"`
}

// Meta metadatos de paginación
type Meta struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// TourListResponse listado paginado de tarjetas de tour
type TourListResponse struct {
	Data []*TourCardResponse `json:"data"`
	Meta Meta                `json:"meta"`
}

// FromDomainTour convierte un tour de dominio en la respuesta completa
func FromDomainTour(tour *domain.Tour) *TourResponse {
	return &TourResponse{
		ID:                 tour.ID,
		Title:              tour.Title,
		Subtitle:           tour.Subtitle,
		Slug:               tour.Slug,
		Price:              tour.Price,
		OriginalPrice:      tour.OriginalPrice,
		Duration:           tour.Duration,
		Rating:             tour.Rating,
		Reviews:            tour.Reviews,
		Location:           tour.Location,
		Region:             tour.Region,
		Category:           tour.Category,
		Difficulty:         tour.Difficulty,
		PackageType:        string(tour.PackageType),
		ImageURL:           tour.ImageURL,
		Highlights:         tour.Highlights,
		Itinerary:          tour.Itinerary,
		Includes:           tour.Includes,
		NotIncludes:        tour.NotIncludes,
		ToBring:            tour.ToBring,
		Conditions:         tour.Conditions,
		TransportOptionIDs: tour.TransportOptionIDs,
		CreatedAt:          tour.CreatedAt,
		UpdatedAt:          tour.UpdatedAt,
	}
}

// FromDomainTourCard convierte un tour en una tarjeta resuelta al idioma dado
func FromDomainTourCard(tour *domain.Tour, lang string) *TourCardResponse {
	return &TourCardResponse{
		ID:             tour.ID,
		Title:          tour.Title.Resolve(lang),
		Subtitle:       tour.Subtitle.Resolve(lang),
		Slug:           tour.Slug,
		Price:          tour.Price,
		PriceFormatted: money.FormatValue(tour.Price),
		OriginalPrice:  tour.OriginalPrice,
		Duration:       tour.Duration,
		Rating:         tour.Rating,
		Reviews:        tour.Reviews,
		Location:       tour.Location.Resolve(lang),
		Region:         tour.Region,
		Category:       tour.Category,
		PackageType:    string(tour.PackageType),
		ImageURL:       tour.ImageURL,
	}
}

// FromDomainTourCards convierte un slice de tours en tarjetas
func FromDomainTourCards(tours []*domain.Tour, lang string) []*TourCardResponse {
	cards := make([]*TourCardResponse, 0, len(tours))
	for _, tour := range tours {
		cards = append(cards, FromDomainTourCard(tour, lang))
	}
	return cards
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
