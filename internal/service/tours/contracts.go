package tours

import (
	"context"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// TourRepository interfaz del repositorio de tours
type TourRepository interface {
	Create(ctx context.Context, tour *domain.Tour) (*domain.Tour, error)
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tour, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Tour, error)
	List(ctx context.Context, filter domain.ToursFilter) ([]*domain.Tour, int64, error)
	GetTop(ctx context.Context, limit int64) ([]*domain.Tour, error)
	Update(ctx context.Context, tour *domain.Tour) error
	Delete(ctx context.Context, id int64) error
}

// TopCache interfaz del caché de tours destacados. Un fallo del caché
// nunca debe propagarse: el servicio degrada a la consulta directa.
type TopCache interface {
	Get(ctx context.Context, lang string) ([]*domain.Tour, bool)
	Set(ctx context.Context, lang string, tours []*domain.Tour) error
	Invalidate(ctx context.Context) error
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
