package tours

import (
	"context"
	"errors"
	"fmt"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	tourRepo "github.com/illapa-dev/TourOperatorService/internal/infra/storage/tour"
	"github.com/illapa-dev/TourOperatorService/internal/service/tours/models"
)

// Cantidad de tours destacados en la portada
const topToursLimit = 6

// Service servicio para trabajar con el catálogo de tours
type Service struct {
	tourRepo TourRepository
	topCache TopCache
	logger   Logger
}

// NewService crea una nueva instancia del servicio de tours
func NewService(tourRepo TourRepository, topCache TopCache, logger Logger) *Service {
	return &Service{
		tourRepo: tourRepo,
		topCache: topCache,
		logger:   logger,
	}
}

// Create crea un nuevo tour e invalida el caché de destacados
func (s *Service) Create(ctx context.Context, req *models.SaveTourRequest) (*models.TourResponse, error) {
	tour := req.ToDomain()

	if err := validateTour(tour); err != nil {
		s.logger.Warn("Create: validation failed for slug=%s: %v", req.Slug, err)
		return nil, err
	}

	created, err := s.tourRepo.Create(ctx, tour)
	if err != nil {
		if errors.Is(err, tourRepo.ErrDuplicateSlug) {
			s.logger.Warn("Create: duplicate slug=%s", req.Slug)
			return nil, ErrDuplicateSlug
		}
		s.logger.Error("Create: repository error for slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.invalidateTopCache(ctx)

	s.logger.Info("Create: created tour id=%d slug=%s", created.ID, created.Slug)
	return models.FromDomainTour(created), nil
}

// GetByID obtiene un tour por ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TourResponse, error) {
	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			s.logger.Warn("GetByID: tour id=%d not found", id)
			return nil, ErrTourNotFound
		}
		s.logger.Error("GetByID: repository error for tour id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTour(tour), nil
}

// GetBySlug obtiene un tour por su slug. Es la consulta de la página
// pública de detalle.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.TourResponse, error) {
	tour, err := s.tourRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			s.logger.Warn("GetBySlug: tour slug=%s not found", slug)
			return nil, ErrTourNotFound
		}
		s.logger.Error("GetBySlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTour(tour), nil
}

// List obtiene una página de tarjetas de tour resueltas al idioma pedido
func (s *Service) List(ctx context.Context, req *models.ListToursRequest) (*models.TourListResponse, error) {
	filter := domain.ToursFilter{
		Page:  req.Page,
		Limit: req.Limit,
	}

	tours, total, err := s.tourRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return &models.TourListResponse{
		Data: models.FromDomainTourCards(tours, req.Lang),
		Meta: models.NewMeta(req.Page, req.Limit, total),
	}, nil
}

// GetTop obtiene los tours destacados (mejor valorados). Primero
// consulta el caché; si no hay entrada, lee de la BD y rellena el
// caché. Un fallo de Redis solo se registra, nunca rompe la respuesta.
func (s *Service) GetTop(ctx context.Context, lang string) ([]*models.TourCardResponse, error) {
	if cached, ok := s.topCache.Get(ctx, lang); ok {
		return models.FromDomainTourCards(cached, lang), nil
	}

	tours, err := s.tourRepo.GetTop(ctx, topToursLimit)
	if err != nil {
		s.logger.Error("GetTop: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetTop - repository error: %v", ErrInternal, err)
	}

	if err := s.topCache.Set(ctx, lang, tours); err != nil {
		s.logger.Warn("GetTop: failed to cache top tours for lang=%s: %v", lang, err)
	}

	return models.FromDomainTourCards(tours, lang), nil
}

// GetByIDs obtiene varios tours por ID. Lo usa el flujo de checkout
// para congelar los datos del tour en cada reserva.
func (s *Service) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Tour, error) {
	tours, err := s.tourRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("GetByIDs: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByIDs - repository error: %v", ErrInternal, err)
	}
	return tours, nil
}

// GetDomainByID obtiene el tour de dominio sin convertir. Lo usan los
// flujos internos que necesitan congelar un snapshot del tour.
func (s *Service) GetDomainByID(ctx context.Context, id int64) (*domain.Tour, error) {
	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			return nil, ErrTourNotFound
		}
		s.logger.Error("GetDomainByID: repository error for tour id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetDomainByID - repository error: %v", ErrInternal, err)
	}
	return tour, nil
}

// Update actualiza un tour existente e invalida el caché de destacados
func (s *Service) Update(ctx context.Context, id int64, req *models.SaveTourRequest) (*models.TourResponse, error) {
	tour := req.ToDomain()
	tour.ID = id

	if err := validateTour(tour); err != nil {
		s.logger.Warn("Update: validation failed for tour id=%d: %v", id, err)
		return nil, err
	}

	if err := s.tourRepo.Update(ctx, tour); err != nil {
		switch {
		case errors.Is(err, tourRepo.ErrTourNotFound):
			s.logger.Warn("Update: tour id=%d not found", id)
			return nil, ErrTourNotFound
		case errors.Is(err, tourRepo.ErrDuplicateSlug):
			s.logger.Warn("Update: duplicate slug=%s for tour id=%d", req.Slug, id)
			return nil, ErrDuplicateSlug
		default:
			s.logger.Error("Update: repository error for tour id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	updated, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload tour id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload error: %v", ErrInternal, err)
	}

	s.invalidateTopCache(ctx)

	s.logger.Info("Update: updated tour id=%d slug=%s", id, updated.Slug)
	return models.FromDomainTour(updated), nil
}

// Delete elimina un tour e invalida el caché de destacados
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.tourRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			s.logger.Warn("Delete: tour id=%d not found", id)
			return ErrTourNotFound
		}
		s.logger.Error("Delete: repository error for tour id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.invalidateTopCache(ctx)

	s.logger.Info("Delete: deleted tour id=%d", id)
	return nil
}

func (s *Service) invalidateTopCache(ctx context.Context) {
	if err := s.topCache.Invalidate(ctx); err != nil {
		s.logger.Warn("failed to invalidate top tours cache: %v", err)
	}
}
