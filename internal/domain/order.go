package domain

import "time"

// OrderStatus represents the status of an order (reserva)
type OrderStatus string

const (
	StatusCreated   OrderStatus = "created"
	StatusConfirmed OrderStatus = "confirmed"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Customer holds the contact data captured with an order.
type Customer struct {
	FullName    string
	Email       string
	Phone       string
	Nationality string
}

// TourSnapshot is the denormalized tour data frozen into an order at
// creation time, so history survives later edits to the tour.
type TourSnapshot struct {
	TourID   int64
	Title    string
	ImageURL string
	Price    float64
	Region   string
	Duration string
}

// Order represents a customer's reservation for a tour on a specific date.
type Order struct {
	ID       int64
	Customer Customer
	Tour     TourSnapshot

	// StartDate is nil when the record arrived without a usable date.
	// Date-dependent views (the calendar) skip such orders instead of
	// failing on them.
	StartDate *time.Time

	People     int
	TotalPrice *float64
	Status     OrderStatus

	PaymentMethod    string
	Notes            *string
	DiscountCodeUsed *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the order has not been cancelled.
func (o *Order) IsActive() bool {
	return o.Status != StatusCancelled
}

// CanBeCancelled returns true if the order can still be cancelled.
func (o *Order) CanBeCancelled() bool {
	return o.Status == StatusCreated || o.Status == StatusConfirmed
}

// IsFinished returns true if the order reached a terminal state.
func (o *Order) IsFinished() bool {
	return o.Status == StatusCompleted || o.Status == StatusCancelled
}

// IsValidStatus reports whether s is one of the enumerated order statuses.
func IsValidStatus(s OrderStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// ValidPartySize reports whether n respects the party size bounds.
func ValidPartySize(n int) bool {
	return n >= MinPeoplePerBooking && n <= MaxPeoplePerBooking
}

// OrdersFilter filtro para el listado paginado de reservas
type OrdersFilter struct {
	Search *string      // Busca en nombre y email del cliente (opcional)
	Status *OrderStatus // Filtro por estado (opcional)
	Page   int64
	Limit  int64
}

// Offset returns the SQL offset for the filter's page.
func (f OrdersFilter) Offset() int64 {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
