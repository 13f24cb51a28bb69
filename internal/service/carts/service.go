package carts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	tourRepo "github.com/illapa-dev/TourOperatorService/internal/infra/storage/tour"
	"github.com/illapa-dev/TourOperatorService/internal/service/carts/models"
)

// Service servicio para trabajar con carritos. Cada mutación valida la
// entrada, aplica el cambio sobre el documento completo, recalcula los
// totales y guarda. La respuesta siempre es el carrito recalculado.
type Service struct {
	cartStore CartStore
	tourRepo  TourRepository
	logger    Logger
}

// NewService crea una nueva instancia del servicio de carritos
func NewService(cartStore CartStore, tourRepo TourRepository, logger Logger) *Service {
	return &Service{
		cartStore: cartStore,
		tourRepo:  tourRepo,
		logger:    logger,
	}
}

// Get obtiene el carrito del usuario. Un usuario sin carrito recibe
// uno vacío.
func (s *Service) Get(ctx context.Context, userID int64) (*models.CartResponse, error) {
	cart, err := s.loadCart(ctx, "Get", userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainCart(cart), nil
}

// GetDomain obtiene el carrito de dominio sin convertir. Lo usa el
// flujo de checkout.
func (s *Service) GetDomain(ctx context.Context, userID int64) (*domain.Cart, error) {
	return s.loadCart(ctx, "GetDomain", userID)
}

// AddItem añade una línea al carrito. El tamaño del grupo se valida
// antes de tocar el almacén; los datos del tour se congelan en la línea
// con el precio vigente.
func (s *Service) AddItem(ctx context.Context, userID int64, req *models.AddItemRequest) (*models.CartResponse, error) {
	if !domain.ValidPartySize(req.People) {
		s.logger.Warn("AddItem: invalid people=%d for user=%d", req.People, userID)
		return nil, fmt.Errorf("%w: people must be between %d and %d",
			ErrInvalidInput, domain.MinPeoplePerBooking, domain.MaxPeoplePerBooking)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		s.logger.Warn("AddItem: invalid start date for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: invalid start date", ErrInvalidInput)
	}

	tour, err := s.tourRepo.GetByID(ctx, req.TourID)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			s.logger.Warn("AddItem: tour id=%d not found for user=%d", req.TourID, userID)
			return nil, ErrTourNotFound
		}
		s.logger.Error("AddItem: repository error for tour id=%d: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: AddItem - repository error: %v", ErrInternal, err)
	}

	cart, err := s.loadCart(ctx, "AddItem", userID)
	if err != nil {
		return nil, err
	}

	lang := req.Lang
	if lang == "" {
		lang = domain.LangSpanish
	}

	item := domain.CartItem{
		ID:             uuid.NewString(),
		Tour:           tour.Snapshot(lang),
		StartDate:      startDate,
		People:         req.People,
		PricePerPerson: tour.Price,
		Notes:          req.Notes,
	}

	cart.Items = append(cart.Items, item)

	if err := s.saveCart(ctx, "AddItem", cart); err != nil {
		return nil, err
	}

	s.logger.Info("AddItem: user=%d added tour id=%d people=%d", userID, req.TourID, req.People)
	return models.FromDomainCart(cart), nil
}

// UpdateItem modifica una línea existente. Los campos no enviados
// conservan su valor; los límites del grupo se validan antes de tocar
// el almacén.
func (s *Service) UpdateItem(ctx context.Context, userID int64, itemID string, req *models.UpdateItemRequest) (*models.CartResponse, error) {
	if req.People != nil && !domain.ValidPartySize(*req.People) {
		s.logger.Warn("UpdateItem: invalid people=%d for user=%d item=%s", *req.People, userID, itemID)
		return nil, fmt.Errorf("%w: people must be between %d and %d",
			ErrInvalidInput, domain.MinPeoplePerBooking, domain.MaxPeoplePerBooking)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	var startDate *time.Time
	if req.StartDate != nil {
		parsed, err := parseDate(req.StartDate)
		if err != nil {
			s.logger.Warn("UpdateItem: invalid start date for user=%d item=%s: %v", userID, itemID, err)
			return nil, fmt.Errorf("%w: invalid start date", ErrInvalidInput)
		}
		startDate = parsed
	}

	cart, err := s.loadCart(ctx, "UpdateItem", userID)
	if err != nil {
		return nil, err
	}

	item := cart.FindItem(itemID)
	if item == nil {
		s.logger.Warn("UpdateItem: item=%s not in cart of user=%d", itemID, userID)
		return nil, ErrItemNotFound
	}

	if req.People != nil {
		item.People = *req.People
	}
	if req.StartDate != nil {
		item.StartDate = startDate
	}
	if req.Notes != nil {
		item.Notes = req.Notes
	}

	if err := s.saveCart(ctx, "UpdateItem", cart); err != nil {
		return nil, err
	}

	s.logger.Info("UpdateItem: user=%d updated item=%s", userID, itemID)
	return models.FromDomainCart(cart), nil
}

// RemoveItem elimina una línea del carrito
func (s *Service) RemoveItem(ctx context.Context, userID int64, itemID string) (*models.CartResponse, error) {
	cart, err := s.loadCart(ctx, "RemoveItem", userID)
	if err != nil {
		return nil, err
	}

	if !cart.RemoveItem(itemID) {
		s.logger.Warn("RemoveItem: item=%s not in cart of user=%d", itemID, userID)
		return nil, ErrItemNotFound
	}

	if err := s.saveCart(ctx, "RemoveItem", cart); err != nil {
		return nil, err
	}

	s.logger.Info("RemoveItem: user=%d removed item=%s", userID, itemID)
	return models.FromDomainCart(cart), nil
}

// Clear vacía el carrito del usuario
func (s *Service) Clear(ctx context.Context, userID int64) error {
	if err := s.cartStore.Delete(ctx, userID); err != nil {
		s.logger.Error("Clear: store error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: Clear - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Clear: cleared cart of user=%d", userID)
	return nil
}

func (s *Service) loadCart(ctx context.Context, op string, userID int64) (*domain.Cart, error) {
	cart, err := s.cartStore.Get(ctx, userID)
	if err != nil {
		s.logger.Error("%s: store error for user=%d: %v", op, userID, err)
		return nil, fmt.Errorf("%w: %s - store error: %v", ErrInternal, op, err)
	}
	return cart, nil
}

func (s *Service) saveCart(ctx context.Context, op string, cart *domain.Cart) error {
	cart.Recalculate()
	cart.UpdatedAt = time.Now().UTC()

	if err := s.cartStore.Save(ctx, cart); err != nil {
		s.logger.Error("%s: store error for user=%d: %v", op, cart.UserID, err)
		return fmt.Errorf("%w: %s - store error: %v", ErrInternal, op, err)
	}
	return nil
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(domain.DateFormat, *raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
