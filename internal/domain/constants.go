package domain

// Party size bounds for a single booking or cart line.
const (
	MinPeoplePerBooking = 1
	MaxPeoplePerBooking = 15
)

// Business validation constants
const (
	MaxNotesLength       = 500
	MaxPageSize          = 100
	DefaultPageSize      = 10
	MinItineraryDays     = 1
	MinActivitiesPerDay  = 1
	MinRoutePointsPerDay = 1
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Locale constants. Spanish is the default content language; English is the
// optional translation (resolution order: requested -> es -> en -> "").
const (
	LangSpanish = "es"
	LangEnglish = "en"
)

// ActiveStatuses lista de estados de reservas activas
var ActiveStatuses = []OrderStatus{
	StatusCreated,
	StatusConfirmed,
	StatusCompleted,
}

// ValidStatuses todos los estados aceptados para una reserva
var ValidStatuses = []OrderStatus{
	StatusCreated,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}
