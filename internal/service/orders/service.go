package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	orderRepo "github.com/illapa-dev/TourOperatorService/internal/infra/storage/order"
	"github.com/illapa-dev/TourOperatorService/internal/service/orders/models"
)

// Service servicio para trabajar con reservas
type Service struct {
	orderRepo OrderRepository
	publisher EventPublisher
	logger    Logger
}

// NewService crea una nueva instancia del servicio de reservas
func NewService(orderRepo OrderRepository, publisher EventPublisher, logger Logger) *Service {
	return &Service{
		orderRepo: orderRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// GetByID obtiene una reserva por ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.OrderResponse, error) {
	order, err := s.getOrder(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainOrder(order), nil
}

// GetDomainByID obtiene la reserva de dominio sin convertir. Lo usa el
// generador de vouchers.
func (s *Service) GetDomainByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.getOrder(ctx, "GetDomainByID", id)
}

// List obtiene una página de reservas con búsqueda por cliente y
// filtro por estado
func (s *Service) List(ctx context.Context, req *models.ListOrdersRequest) (*models.OrderListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status=%v", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	orders, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return &models.OrderListResponse{
		Data: models.FromDomainOrderList(orders),
		Meta: models.NewMeta(filter.Page, filter.Limit, total),
	}, nil
}

// ListByDateRange obtiene las reservas del rango de fechas dado. Las
// reservas sin fecha no aparecen.
func (s *Service) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Order, error) {
	orders, err := s.orderRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("ListByDateRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByDateRange - repository error: %v", ErrInternal, err)
	}
	return orders, nil
}

// Stats calcula los agregados del dashboard sobre la misma página que
// devuelve List: contadores por estado y facturación total. Un precio
// ausente o corrupto aporta cero a la facturación.
func (s *Service) Stats(ctx context.Context, req *models.ListOrdersRequest) (*models.StatsResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("Stats: invalid status=%v", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	orders, _, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStats(domain.ComputeStats(orders)), nil
}

// Update actualiza los campos editables de una reserva. El snapshot del
// tour no se toca: es el registro histórico del momento de la compra.
// Si cambian las personas, el total se recalcula con el precio congelado.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateOrderRequest) (*models.OrderResponse, error) {
	order, err := s.getOrder(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	if !domain.ValidPartySize(req.People) {
		s.logger.Warn("Update: invalid people=%d for order id=%d", req.People, id)
		return nil, fmt.Errorf("%w: people must be between %d and %d",
			ErrInvalidInput, domain.MinPeoplePerBooking, domain.MaxPeoplePerBooking)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		s.logger.Warn("Update: notes too long for order id=%d", id)
		return nil, fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	startDate, err := parseStartDate(req.StartDate, order.StartDate)
	if err != nil {
		s.logger.Warn("Update: invalid start date for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: invalid start date", ErrInvalidInput)
	}

	order.Customer = domain.Customer{
		FullName:    req.Customer.FullName,
		Email:       req.Customer.Email,
		Phone:       req.Customer.Phone,
		Nationality: req.Customer.Nationality,
	}
	order.StartDate = startDate
	order.People = req.People
	order.PaymentMethod = req.PaymentMethod
	order.Notes = req.Notes
	order.DiscountCodeUsed = req.DiscountCodeUsed

	total := order.Tour.Price * float64(order.People)
	order.TotalPrice = &total

	if err := s.orderRepo.Update(ctx, order); err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("Update: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.getOrder(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: updated order id=%d", id)
	return models.FromDomainOrder(updated), nil
}

// UpdateStatus cambia el estado de una reserva y publica el evento
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*models.OrderResponse, error) {
	newStatus := domain.OrderStatus(status)
	if !domain.IsValidStatus(newStatus) {
		s.logger.Warn("UpdateStatus: invalid status=%s for order id=%d", status, id)
		return nil, ErrInvalidStatus
	}

	order, err := s.getOrder(ctx, "UpdateStatus", id)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("UpdateStatus: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	order.Status = newStatus
	if err := s.publisher.PublishStatusChanged(ctx, order); err != nil {
		s.logger.Warn("UpdateStatus: failed to publish event for order id=%d: %v", id, err)
	}

	s.logger.Info("UpdateStatus: order id=%d moved to status=%s", id, newStatus)
	return models.FromDomainOrder(order), nil
}

// Cancel cancela una reserva. Solo las reservas creadas o confirmadas
// admiten cancelación.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.OrderResponse, error) {
	order, err := s.getOrder(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if !order.CanBeCancelled() {
		s.logger.Warn("Cancel: order id=%d in status=%s cannot be cancelled", id, order.Status)
		return nil, ErrCannotCancel
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("Cancel: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	order.Status = domain.StatusCancelled
	if err := s.publisher.PublishCancelled(ctx, order); err != nil {
		s.logger.Warn("Cancel: failed to publish event for order id=%d: %v", id, err)
	}

	s.logger.Info("Cancel: cancelled order id=%d", id)
	return models.FromDomainOrder(order), nil
}

// Delete elimina una reserva de forma permanente
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("Delete: order id=%d not found", id)
			return ErrOrderNotFound
		}
		s.logger.Error("Delete: repository error for order id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted order id=%d", id)
	return nil
}

func (s *Service) getOrder(ctx context.Context, op string, id int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("%s: order id=%d not found", op, id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("%s: repository error for order id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return order, nil
}

// parseStartDate interpreta el campo startDate del request: ausente
// conserva la fecha actual, cadena vacía la limpia, cualquier otro
// valor debe ser "YYYY-MM-DD".
func parseStartDate(raw *string, current *time.Time) (*time.Time, error) {
	if raw == nil {
		return current, nil
	}
	if *raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(domain.DateFormat, *raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
