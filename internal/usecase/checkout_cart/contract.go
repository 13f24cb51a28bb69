package checkout_cart

import (
	"context"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// CartStore interfaz del almacén de carritos
type CartStore interface {
	Get(ctx context.Context, userID int64) (*domain.Cart, error)
	Delete(ctx context.Context, userID int64) error
}

// OrderRepository interfaz del repositorio de reservas
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

// EventPublisher interfaz del publicador de eventos de reservas
type EventPublisher interface {
	PublishCreated(ctx context.Context, order *domain.Order) error
}

// TransactionManager interfaz para la gestión de transacciones
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
