package transport

import (
	"context"

	transportModels "github.com/illapa-dev/TourOperatorService/internal/service/transport/models"
)

// TransportService interfaz del servicio de transporte
type TransportService interface {
	Create(ctx context.Context, req *transportModels.SaveTransportRequest) (*transportModels.TransportResponse, error)
	GetByID(ctx context.Context, id int64) (*transportModels.TransportResponse, error)
	List(ctx context.Context, req *transportModels.ListTransportRequest) (*transportModels.TransportListResponse, error)
	Update(ctx context.Context, id int64, req *transportModels.SaveTransportRequest) (*transportModels.TransportResponse, error)
	Delete(ctx context.Context, id int64) error
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
