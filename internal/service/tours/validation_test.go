package tours

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	"github.com/illapa-dev/TourOperatorService/pkg/ptr"
)

func validTour() *domain.Tour {
	return &domain.Tour{
		Title:       domain.LocalizedText{ES: "Montaña de Colores"},
		Slug:        "montana-de-colores",
		Price:       120,
		Rating:      4.8,
		PackageType: domain.PackageBasico,
		Itinerary: []domain.ItineraryDay{
			{
				Title:      domain.LocalizedText{ES: "Día 1"},
				Activities: []domain.LocalizedText{{ES: "Caminata hasta la cumbre"}},
				Route:      []string{"Cusco", "Cusipata", "Vinicunca"},
			},
		},
	}
}

func TestValidateTour(t *testing.T) {
	assert.NoError(t, validateTour(validTour()))
}

func TestValidateTourWithoutItinerary(t *testing.T) {
	// El itinerario necesita al menos un día, vacío o nil se rechaza
	tour := validTour()
	tour.Itinerary = nil
	assert.ErrorIs(t, validateTour(tour), ErrInvalidInput)

	tour = validTour()
	tour.Itinerary = []domain.ItineraryDay{}
	assert.ErrorIs(t, validateTour(tour), ErrInvalidInput)
}

func TestValidateTourRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(tour *domain.Tour)
	}{
		{"missing spanish title", func(tour *domain.Tour) { tour.Title = domain.LocalizedText{EN: ptr.Ptr("Rainbow Mountain")} }},
		{"missing slug", func(tour *domain.Tour) { tour.Slug = "  " }},
		{"zero price", func(tour *domain.Tour) { tour.Price = 0 }},
		{"negative price", func(tour *domain.Tour) { tour.Price = -50 }},
		{"original price below price", func(tour *domain.Tour) { tour.OriginalPrice = ptr.Ptr(100.0) }},
		{"unknown package type", func(tour *domain.Tour) { tour.PackageType = "Deluxe" }},
		{"rating above five", func(tour *domain.Tour) { tour.Rating = 5.1 }},
		{"negative rating", func(tour *domain.Tour) { tour.Rating = -1 }},
		{"day without title", func(tour *domain.Tour) { tour.Itinerary[0].Title = domain.LocalizedText{} }},
		{"day without activities", func(tour *domain.Tour) { tour.Itinerary[0].Activities = nil }},
		{"day without route", func(tour *domain.Tour) { tour.Itinerary[0].Route = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tour := validTour()
			tt.mutate(tour)

			assert.ErrorIs(t, validateTour(tour), ErrInvalidInput)
		})
	}
}

func TestValidateTourOriginalPriceAbovePrice(t *testing.T) {
	tour := validTour()
	tour.OriginalPrice = ptr.Ptr(150.0)

	assert.NoError(t, validateTour(tour))
}
