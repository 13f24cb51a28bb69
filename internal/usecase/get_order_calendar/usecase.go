package get_order_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// UseCase use case del calendario mensual de reservas del dashboard
type UseCase struct {
	orderRepo OrderRepository
	logger    Logger
}

// NewUseCase crea una nueva instancia del use case
func NewUseCase(orderRepo OrderRepository, logger Logger) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Execute construye el calendario del mes pedido
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validación del mes
	month, err := time.Parse(domain.MonthFormat, req.Month)
	if err != nil {
		uc.logger.Warn("GetOrderCalendar: invalid month=%s", req.Month)
		return nil, ErrInvalidMonth
	}

	// 2. Reservas del mes completo
	from, to := monthRange(month)
	orders, err := uc.orderRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetOrderCalendar: repository error for month=%s: %v", req.Month, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	// 3. Agrupación por día
	response := buildCalendar(month, orders)

	uc.logger.Info("GetOrderCalendar: month=%s days=%d orders=%d", req.Month, len(response.Days), response.Total)
	return response, nil
}
