package orders

import (
	"context"
	"time"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// OrderRepository interfaz del repositorio de reservas
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrdersFilter) ([]*domain.Order, int64, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	Delete(ctx context.Context, id int64) error
}

// EventPublisher interfaz del publicador de eventos de reservas.
// Los fallos de publicación se registran pero no revierten la operación.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, order *domain.Order) error
	PublishCancelled(ctx context.Context, order *domain.Order) error
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
