package transport

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	transportRepo "github.com/illapa-dev/TourOperatorService/internal/infra/storage/transport"
	"github.com/illapa-dev/TourOperatorService/internal/service/transport/models"
)

// Service servicio para trabajar con opciones de transporte
type Service struct {
	transportRepo TransportRepository
	logger        Logger
}

// NewService crea una nueva instancia del servicio de transporte
func NewService(transportRepo TransportRepository, logger Logger) *Service {
	return &Service{
		transportRepo: transportRepo,
		logger:        logger,
	}
}

// Create crea una nueva opción de transporte
func (s *Service) Create(ctx context.Context, req *models.SaveTransportRequest) (*models.TransportResponse, error) {
	option := req.ToDomain()

	if err := validateTransport(option); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.transportRepo.Create(ctx, option)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created transport option id=%d vehicle=%s", created.ID, created.Vehicle)
	return models.FromDomainTransport(created), nil
}

// GetByID obtiene una opción de transporte por ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TransportResponse, error) {
	option, err := s.transportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, transportRepo.ErrTransportNotFound) {
			s.logger.Warn("GetByID: transport option id=%d not found", id)
			return nil, ErrTransportNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTransport(option), nil
}

// GetForTour obtiene las opciones de transporte de un tour, filtradas
// por el nivel del paquete y en el orden configurado en el tour.
func (s *Service) GetForTour(ctx context.Context, tour *domain.Tour) ([]*models.TransportResponse, error) {
	options, err := s.transportRepo.GetByIDs(ctx, tour.TransportOptionIDs)
	if err != nil {
		s.logger.Error("GetForTour: repository error for tour id=%d: %v", tour.ID, err)
		return nil, fmt.Errorf("%w: GetForTour - repository error: %v", ErrInternal, err)
	}

	// El repositorio devuelve por id ascendente, reordenamos según el tour
	byID := make(map[int64]*domain.TransportOption, len(options))
	for _, opt := range options {
		byID[opt.ID] = opt
	}
	ordered := make([]*domain.TransportOption, 0, len(options))
	for _, id := range tour.TransportOptionIDs {
		if opt, ok := byID[id]; ok {
			ordered = append(ordered, opt)
		}
	}

	filtered := domain.FilterTransportByType(ordered, tour.PackageType)
	return models.FromDomainTransportList(filtered), nil
}

// List obtiene una página de opciones de transporte, con filtro
// opcional por tipo
func (s *Service) List(ctx context.Context, req *models.ListTransportRequest) (*models.TransportListResponse, error) {
	var optionType *domain.PackageType
	if req.Type != nil && *req.Type != "" {
		t := domain.PackageType(*req.Type)
		if !domain.IsValidPackageType(t) {
			s.logger.Warn("List: unknown transport type=%s", *req.Type)
			return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidInput, *req.Type)
		}
		optionType = &t
	}

	options, total, err := s.transportRepo.List(ctx, req.Page, req.Limit, optionType)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return &models.TransportListResponse{
		Data: models.FromDomainTransportList(options),
		Meta: models.NewMeta(req.Page, req.Limit, total),
	}, nil
}

// Update actualiza una opción de transporte
func (s *Service) Update(ctx context.Context, id int64, req *models.SaveTransportRequest) (*models.TransportResponse, error) {
	option := req.ToDomain()
	option.ID = id

	if err := validateTransport(option); err != nil {
		s.logger.Warn("Update: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	if err := s.transportRepo.Update(ctx, option); err != nil {
		if errors.Is(err, transportRepo.ErrTransportNotFound) {
			s.logger.Warn("Update: transport option id=%d not found", id)
			return nil, ErrTransportNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.transportRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload transport option id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated transport option id=%d", id)
	return models.FromDomainTransport(updated), nil
}

// Delete elimina una opción de transporte
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.transportRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, transportRepo.ErrTransportNotFound) {
			s.logger.Warn("Delete: transport option id=%d not found", id)
			return ErrTransportNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted transport option id=%d", id)
	return nil
}

func validateTransport(option *domain.TransportOption) error {
	if !domain.IsValidPackageType(option.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidInput, option.Type)
	}

	if strings.TrimSpace(option.Vehicle) == "" {
		return fmt.Errorf("%w: vehicle is required", ErrInvalidInput)
	}

	return nil
}
