package create_order

import (
	"context"
	"time"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// OrderRepository interfaz del repositorio de reservas
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

// TourRepository interfaz del repositorio de tours
type TourRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
}

// EventPublisher interfaz del publicador de eventos de reservas
type EventPublisher interface {
	PublishCreated(ctx context.Context, order *domain.Order) error
}

// TransactionManager interfaz para la gestión de transacciones
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider interfaz para obtener la hora actual (inyectable en tests)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider implementación de TimeProvider sobre el reloj real
type RealTimeProvider struct{}

// Now devuelve la hora actual
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
