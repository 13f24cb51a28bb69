package domain

import "time"

// PackageType is the service tier of a tour package. It matches the
// transport option tiers: a tour only offers transports of its own tier.
type PackageType string

const (
	PackageBasico  PackageType = "Basico"
	PackagePremium PackageType = "Premium"
)

// IsValidPackageType reports whether t is a known package tier.
func IsValidPackageType(t PackageType) bool {
	return t == PackageBasico || t == PackagePremium
}

// ItineraryDay is one day of a tour itinerary. The nested shapes are stored
// as JSON, hence the tags.
type ItineraryDay struct {
	Title         LocalizedText   `json:"title"`
	Description   LocalizedText   `json:"description"`
	Activities    []LocalizedText `json:"activities"`
	Route         []string        `json:"route"`
	Meals         []string        `json:"meals,omitempty"`
	Accommodation *LocalizedText  `json:"accommodation,omitempty"`
}

// Tour represents a sellable travel package.
type Tour struct {
	ID            int64
	Title         LocalizedText
	Subtitle      LocalizedText
	Slug          string
	Price         float64
	OriginalPrice *float64
	Duration      string
	Rating        float64
	Reviews       int
	Location      LocalizedText
	Region        string
	Category      string
	Difficulty    string
	PackageType   PackageType
	ImageURL      string

	Highlights  []LocalizedText
	Itinerary   []ItineraryDay
	Includes    []LocalizedText
	NotIncludes []LocalizedText
	ToBring     []LocalizedText
	Conditions  []LocalizedText

	TransportOptionIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot freezes the order-relevant tour fields, resolved to lang.
func (t *Tour) Snapshot(lang string) TourSnapshot {
	return TourSnapshot{
		TourID:   t.ID,
		Title:    t.Title.Resolve(lang),
		ImageURL: t.ImageURL,
		Price:    t.Price,
		Region:   t.Region,
		Duration: t.Duration,
	}
}

// ToursFilter filtro para el listado paginado de tours
type ToursFilter struct {
	Page  int64
	Limit int64
}

// Offset returns the SQL offset for the filter's page.
func (f ToursFilter) Offset() int64 {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
