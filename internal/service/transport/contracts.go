package transport

import (
	"context"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// TransportRepository interfaz del repositorio de opciones de transporte
type TransportRepository interface {
	Create(ctx context.Context, option *domain.TransportOption) (*domain.TransportOption, error)
	GetByID(ctx context.Context, id int64) (*domain.TransportOption, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.TransportOption, error)
	List(ctx context.Context, page, limit int64, optionType *domain.PackageType) ([]*domain.TransportOption, int64, error)
	Update(ctx context.Context, option *domain.TransportOption) error
	Delete(ctx context.Context, id int64) error
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
