package checkout_cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// UseCase use case del checkout: convierte el carrito del usuario en
// reservas confirmables
type UseCase struct {
	cartStore CartStore
	orderRepo OrderRepository
	publisher EventPublisher
	txManager TransactionManager
	logger    Logger
}

// NewUseCase crea una nueva instancia del use case
func NewUseCase(
	cartStore CartStore,
	orderRepo OrderRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		cartStore: cartStore,
		orderRepo: orderRepo,
		publisher: publisher,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute convierte cada línea del carrito en una reserva dentro de una
// única transacción: o se crean todas o ninguna. El carrito se vacía
// solo después de confirmar. Los totales se recalculan a partir del
// precio congelado en cada línea, nunca se confía en el total guardado.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckoutCart: user=%d, email=%s", req.UserID, req.Email)

	// 1. Validación de los datos de contacto
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckoutCart: validation failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	// 2. Cargamos el carrito
	cart, err := uc.cartStore.Get(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("CheckoutCart: failed to load cart for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to load cart: %v", ErrInternal, err)
	}

	if cart.IsEmpty() {
		uc.logger.Warn("CheckoutCart: empty cart for user=%d", req.UserID)
		return nil, ErrEmptyCart
	}

	customer := domain.Customer{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Nationality: req.Nationality,
	}

	// 3. Creamos todas las reservas en una transacción serializable
	created := make([]*domain.Order, 0, len(cart.Items))
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for i := range cart.Items {
			item := &cart.Items[i]

			total := item.PricePerPerson * float64(item.People)
			order := &domain.Order{
				Customer:      customer,
				Tour:          item.Tour,
				StartDate:     item.StartDate,
				People:        item.People,
				TotalPrice:    &total,
				Status:        domain.StatusCreated,
				PaymentMethod: req.PaymentMethod,
				Notes:         item.Notes,
			}

			saved, err := uc.orderRepo.Create(txCtx, order)
			if err != nil {
				return fmt.Errorf("%w: failed to create order for tour=%d: %v", ErrInternal, item.Tour.TourID, err)
			}
			created = append(created, saved)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("CheckoutCart: transaction failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	// 4. Vaciamos el carrito una vez confirmadas las reservas
	if err := uc.cartStore.Delete(ctx, req.UserID); err != nil {
		uc.logger.Warn("CheckoutCart: failed to clear cart for user=%d: %v", req.UserID, err)
	}

	// 5. Publicamos los eventos fuera de la transacción
	for _, order := range created {
		if err := uc.publisher.PublishCreated(ctx, order); err != nil {
			uc.logger.Warn("CheckoutCart: failed to publish event for order id=%d: %v", order.ID, err)
		}
	}

	uc.logger.Info("CheckoutCart: created %d orders for user=%d", len(created), req.UserID)
	return FromDomainOrders(created), nil
}

// validateRequest valida los datos de contacto del checkout
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}

	return nil
}
