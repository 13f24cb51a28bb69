package tours

import (
	"context"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	toursModels "github.com/illapa-dev/TourOperatorService/internal/service/tours/models"
	transportModels "github.com/illapa-dev/TourOperatorService/internal/service/transport/models"
)

// ToursService interfaz del servicio de tours
type ToursService interface {
	Create(ctx context.Context, req *toursModels.SaveTourRequest) (*toursModels.TourResponse, error)
	GetByID(ctx context.Context, id int64) (*toursModels.TourResponse, error)
	GetBySlug(ctx context.Context, slug string) (*toursModels.TourResponse, error)
	GetDomainByID(ctx context.Context, id int64) (*domain.Tour, error)
	List(ctx context.Context, req *toursModels.ListToursRequest) (*toursModels.TourListResponse, error)
	GetTop(ctx context.Context, lang string) ([]*toursModels.TourCardResponse, error)
	Update(ctx context.Context, id int64, req *toursModels.SaveTourRequest) (*toursModels.TourResponse, error)
	Delete(ctx context.Context, id int64) error
}

// TransportService interfaz reducida del servicio de transporte: las
// opciones de un tour ya llegan filtradas por el nivel del paquete
type TransportService interface {
	GetForTour(ctx context.Context, tour *domain.Tour) ([]*transportModels.TransportResponse, error)
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
