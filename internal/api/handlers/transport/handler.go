package transport

import (
	"errors"
	"net/http"

	"github.com/illapa-dev/TourOperatorService/internal/api/handlers"
	transportService "github.com/illapa-dev/TourOperatorService/internal/service/transport"
	transportModels "github.com/illapa-dev/TourOperatorService/internal/service/transport/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgInvalidTransportID = "identificador de transporte inválido"
	msgInvalidInput       = "datos de la opción de transporte inválidos"
	msgTransportNotFound  = "opción de transporte no encontrada"
)

type Handler struct {
	service TransportService
	logger  Logger
}

func NewHandler(service TransportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/transport
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := handlers.ParsePagination(r)
	req := &transportModels.ListTransportRequest{
		Page:  page,
		Limit: limit,
		Type:  handlers.OptionalQuery(r, "type"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, transportService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /transport - failed to list options: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetByID GET /api/v1/transport/{transportId}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "transportId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTransportID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, transportService.ErrTransportNotFound) {
			handlers.RespondNotFound(w, msgTransportNotFound)
			return
		}
		h.logger.Error("GET /transport/%d - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/transport
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req transportModels.SaveTransportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /transport - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, transportService.ErrInvalidInput) {
			h.logger.Warn("POST /transport - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /transport - failed to create option: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /transport - option created: transport_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/transport/{transportId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "transportId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTransportID)
		return
	}

	var req transportModels.SaveTransportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /transport/%d - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, transportService.ErrTransportNotFound):
			handlers.RespondNotFound(w, msgTransportNotFound)
		case errors.Is(err, transportService.ErrInvalidInput):
			h.logger.Warn("PUT /transport/%d - invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /transport/%d - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /transport/%d - option updated", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/transport/{transportId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "transportId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTransportID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, transportService.ErrTransportNotFound) {
			handlers.RespondNotFound(w, msgTransportNotFound)
			return
		}
		h.logger.Error("DELETE /transport/%d - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /transport/%d - option deleted", id)
	handlers.RespondNoContent(w)
}
