package create_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	tourRepo "github.com/illapa-dev/TourOperatorService/internal/infra/storage/tour"
)

// UseCase use case de creación de una reserva
type UseCase struct {
	orderRepo    OrderRepository
	tourRepo     TourRepository
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase crea una nueva instancia del use case
func NewUseCase(
	orderRepo OrderRepository,
	tourRepo TourRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		tourRepo:     tourRepo,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute crea la reserva: valida la entrada, congela el snapshot del
// tour con el precio vigente y guarda dentro de una transacción. El
// evento se publica después de confirmar, un fallo del broker no
// revierte la reserva.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: tour=%d, people=%d, email=%s", req.TourID, req.People, req.Email)

	// 1. Validación de los datos de entrada
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Fecha de inicio (opcional, nunca en el pasado)
	startDate, err := parseStartDate(req.StartDate, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateOrder: date validation failed: %v", err)
		return nil, err
	}

	// 3. Obtenemos el tour para congelar sus datos en la reserva
	tour, err := uc.tourRepo.GetByID(ctx, req.TourID)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			uc.logger.Warn("CreateOrder: tour id=%d not found", req.TourID)
			return nil, ErrTourNotFound
		}
		uc.logger.Error("CreateOrder: failed to get tour id=%d: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
	}

	lang := req.Lang
	if lang == "" {
		lang = domain.LangSpanish
	}

	// 4. Construimos la reserva con el snapshot y el total calculado
	total := tour.Price * float64(req.People)
	order := &domain.Order{
		Customer: domain.Customer{
			FullName:    req.FullName,
			Email:       req.Email,
			Phone:       req.Phone,
			Nationality: req.Nationality,
		},
		Tour:             tour.Snapshot(lang),
		StartDate:        startDate,
		People:           req.People,
		TotalPrice:       &total,
		Status:           domain.StatusCreated,
		PaymentMethod:    req.PaymentMethod,
		Notes:            req.Notes,
		DiscountCodeUsed: req.DiscountCode,
	}

	// 5. Guardamos dentro de una transacción serializable
	var created *domain.Order
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err = uc.orderRepo.Create(txCtx, order)
		if err != nil {
			return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("CreateOrder: transaction failed: %v", err)
		return nil, err
	}

	// 6. Publicamos el evento fuera de la transacción
	if err := uc.publisher.PublishCreated(ctx, created); err != nil {
		uc.logger.Warn("CreateOrder: failed to publish event for order id=%d: %v", created.ID, err)
	}

	uc.logger.Info("CreateOrder: created order id=%d for tour=%d", created.ID, req.TourID)
	return FromDomainOrder(created), nil
}
