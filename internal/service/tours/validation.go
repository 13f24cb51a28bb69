package tours

import (
	"fmt"
	"strings"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// validateTour valida un tour antes de guardarlo. El itinerario debe
// tener al menos un día, y cada día al menos una actividad y un punto
// de ruta.
func validateTour(tour *domain.Tour) error {
	if strings.TrimSpace(tour.Title.ES) == "" {
		return fmt.Errorf("%w: title (es) is required", ErrInvalidInput)
	}

	if strings.TrimSpace(tour.Slug) == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	if tour.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	if tour.OriginalPrice != nil && *tour.OriginalPrice < tour.Price {
		return fmt.Errorf("%w: original price must not be below price", ErrInvalidInput)
	}

	if !domain.IsValidPackageType(tour.PackageType) {
		return fmt.Errorf("%w: unknown package type %q", ErrInvalidInput, tour.PackageType)
	}

	if tour.Rating < 0 || tour.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}

	if len(tour.Itinerary) < domain.MinItineraryDays {
		return fmt.Errorf("%w: itinerary must have at least %d day(s)", ErrInvalidInput, domain.MinItineraryDays)
	}

	for i, day := range tour.Itinerary {
		if err := validateItineraryDay(i, day); err != nil {
			return err
		}
	}

	return nil
}

func validateItineraryDay(index int, day domain.ItineraryDay) error {
	if day.Title.IsEmpty() {
		return fmt.Errorf("%w: itinerary day %d: title is required", ErrInvalidInput, index+1)
	}

	if len(day.Activities) < domain.MinActivitiesPerDay {
		return fmt.Errorf("%w: itinerary day %d: at least one activity is required", ErrInvalidInput, index+1)
	}

	if len(day.Route) < domain.MinRoutePointsPerDay {
		return fmt.Errorf("%w: itinerary day %d: at least one route point is required", ErrInvalidInput, index+1)
	}

	return nil
}
