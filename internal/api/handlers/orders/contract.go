package orders

import (
	"context"

	ordersModels "github.com/illapa-dev/TourOperatorService/internal/service/orders/models"
	createOrder "github.com/illapa-dev/TourOperatorService/internal/usecase/create_order"
	getOrderCalendar "github.com/illapa-dev/TourOperatorService/internal/usecase/get_order_calendar"
)

// CreateOrderUseCase interfaz del use case de creación de reservas
type CreateOrderUseCase interface {
	Execute(ctx context.Context, req *createOrder.Request) (*createOrder.Response, error)
}

// CalendarUseCase interfaz del use case del calendario mensual
type CalendarUseCase interface {
	Execute(ctx context.Context, req *getOrderCalendar.Request) (*getOrderCalendar.Response, error)
}

// OrdersService interfaz del servicio de reservas
type OrdersService interface {
	GetByID(ctx context.Context, id int64) (*ordersModels.OrderResponse, error)
	List(ctx context.Context, req *ordersModels.ListOrdersRequest) (*ordersModels.OrderListResponse, error)
	Stats(ctx context.Context, req *ordersModels.ListOrdersRequest) (*ordersModels.StatsResponse, error)
	Update(ctx context.Context, id int64, req *ordersModels.UpdateOrderRequest) (*ordersModels.OrderResponse, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*ordersModels.OrderResponse, error)
	Cancel(ctx context.Context, id int64) (*ordersModels.OrderResponse, error)
	Delete(ctx context.Context, id int64) error
}

// VoucherService interfaz del generador de vouchers PDF
type VoucherService interface {
	Generate(ctx context.Context, orderID int64) ([]byte, error)
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
