package get_order_calendar

import (
	"context"
	"time"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// OrderRepository interfaz del repositorio de reservas
type OrderRepository interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Order, error)
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
