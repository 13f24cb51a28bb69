package tours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/illapa-dev/TourOperatorService/internal/api/handlers"
	toursService "github.com/illapa-dev/TourOperatorService/internal/service/tours"
	toursModels "github.com/illapa-dev/TourOperatorService/internal/service/tours/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgInvalidTourID      = "identificador de tour inválido"
	msgInvalidInput       = "datos del tour inválidos"
	msgTourNotFound       = "tour no encontrado"
	msgDuplicateSlug      = "el slug ya está en uso"
)

type Handler struct {
	service   ToursService
	transport TransportService
	logger    Logger
}

func NewHandler(service ToursService, transport TransportService, logger Logger) *Handler {
	return &Handler{
		service:   service,
		transport: transport,
		logger:    logger,
	}
}

// List GET /api/v1/tours
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := handlers.ParsePagination(r)
	req := &toursModels.ListToursRequest{
		Page:  page,
		Limit: limit,
		Lang:  handlers.ParseLang(r),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /tours - failed to list tours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Top GET /api/v1/tours/top
func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetTop(r.Context(), handlers.ParseLang(r))
	if err != nil {
		h.logger.Error("GET /tours/top - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetByID GET /api/v1/tours/{tourId}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "tourId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, toursService.ErrTourNotFound) {
			handlers.RespondNotFound(w, msgTourNotFound)
			return
		}
		h.logger.Error("GET /tours/%d - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetBySlug GET /api/v1/tours/slug/{slug}
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	result, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, toursService.ErrTourNotFound) {
			handlers.RespondNotFound(w, msgTourNotFound)
			return
		}
		h.logger.Error("GET /tours/slug/%s - failed: %v", slug, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// TransportOptions GET /api/v1/tours/{tourId}/transport
// Devuelve las opciones de transporte del tour, filtradas por el nivel
// del paquete y en el orden configurado en el tour.
func (h *Handler) TransportOptions(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "tourId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	tour, err := h.service.GetDomainByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, toursService.ErrTourNotFound) {
			handlers.RespondNotFound(w, msgTourNotFound)
			return
		}
		h.logger.Error("GET /tours/%d/transport - failed to get tour: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	options, err := h.transport.GetForTour(r.Context(), tour)
	if err != nil {
		h.logger.Error("GET /tours/%d/transport - failed to get options: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, options)
}

// Create POST /api/v1/tours
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req toursModels.SaveTourRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tours - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, toursService.ErrDuplicateSlug):
			handlers.RespondConflict(w, msgDuplicateSlug)
		case errors.Is(err, toursService.ErrInvalidInput):
			h.logger.Warn("POST /tours - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /tours - failed to create tour: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tours - tour created: tour_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/tours/{tourId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "tourId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	var req toursModels.SaveTourRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tours/%d - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, toursService.ErrTourNotFound):
			handlers.RespondNotFound(w, msgTourNotFound)
		case errors.Is(err, toursService.ErrDuplicateSlug):
			handlers.RespondConflict(w, msgDuplicateSlug)
		case errors.Is(err, toursService.ErrInvalidInput):
			h.logger.Warn("PUT /tours/%d - invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /tours/%d - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tours/%d - tour updated", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/tours/{tourId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "tourId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, toursService.ErrTourNotFound) {
			handlers.RespondNotFound(w, msgTourNotFound)
			return
		}
		h.logger.Error("DELETE /tours/%d - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /tours/%d - tour deleted", id)
	handlers.RespondNoContent(w)
}
