package carts

import (
	"context"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// CartStore interfaz del almacén de carritos. Cada carrito se guarda
// como un documento completo por usuario.
type CartStore interface {
	Get(ctx context.Context, userID int64) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, userID int64) error
}

// TourRepository interfaz reducida del repositorio de tours: el carrito
// solo necesita congelar los datos del tour al añadir una línea.
type TourRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
