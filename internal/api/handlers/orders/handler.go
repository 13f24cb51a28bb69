package orders

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/illapa-dev/TourOperatorService/internal/api/handlers"
	ordersService "github.com/illapa-dev/TourOperatorService/internal/service/orders"
	ordersModels "github.com/illapa-dev/TourOperatorService/internal/service/orders/models"
	vouchersService "github.com/illapa-dev/TourOperatorService/internal/service/vouchers"
	createOrder "github.com/illapa-dev/TourOperatorService/internal/usecase/create_order"
	getOrderCalendar "github.com/illapa-dev/TourOperatorService/internal/usecase/get_order_calendar"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgInvalidOrderID     = "identificador de reserva inválido"
	msgInvalidInput       = "datos de la reserva inválidos"
	msgInvalidDate        = "fecha de inicio inválida, se espera YYYY-MM-DD"
	msgInvalidMonth       = "mes inválido, se espera YYYY-MM"
	msgInvalidStatus      = "estado de reserva desconocido"
	msgOrderNotFound      = "reserva no encontrada"
	msgTourNotFound       = "tour no encontrado"
	msgCannotCancel       = "la reserva ya no admite cancelación"
)

type Handler struct {
	createUseCase   CreateOrderUseCase
	calendarUseCase CalendarUseCase
	service         OrdersService
	vouchers        VoucherService
	logger          Logger
}

func NewHandler(
	createUseCase CreateOrderUseCase,
	calendarUseCase CalendarUseCase,
	service OrdersService,
	vouchers VoucherService,
	logger Logger,
) *Handler {
	return &Handler{
		createUseCase:   createUseCase,
		calendarUseCase: calendarUseCase,
		service:         service,
		vouchers:        vouchers,
		logger:          logger,
	}
}

// Create POST /api/v1/orders
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrder.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Lang = handlers.ParseLang(r)

	result, err := h.createUseCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, createOrder.ErrTourNotFound):
			h.logger.Warn("POST /orders - tour not found: tour_id=%d", req.TourID)
			handlers.RespondNotFound(w, msgTourNotFound)
		case errors.Is(err, createOrder.ErrInvalidDate):
			h.logger.Warn("POST /orders - invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, createOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /orders - failed to create order: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders - order created: order_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// List GET /api/v1/orders
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req := h.listRequest(r)

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, ordersService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /orders - failed to list orders: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Stats GET /api/v1/orders/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	req := h.listRequest(r)

	result, err := h.service.Stats(r.Context(), req)
	if err != nil {
		if errors.Is(err, ordersService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /orders/stats - failed to compute stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Calendar GET /api/v1/orders/calendar?month=YYYY-MM
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	req := &getOrderCalendar.Request{Month: r.URL.Query().Get("month")}

	result, err := h.calendarUseCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getOrderCalendar.ErrInvalidMonth) {
			h.logger.Warn("GET /orders/calendar - invalid month=%s", req.Month)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		h.logger.Error("GET /orders/calendar - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetByID GET /api/v1/orders/{orderId}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "orderId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ordersService.ErrOrderNotFound) {
			handlers.RespondNotFound(w, msgOrderNotFound)
			return
		}
		h.logger.Error("GET /orders/%d - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Voucher GET /api/v1/orders/{orderId}/voucher
func (h *Handler) Voucher(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "orderId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	pdf, err := h.vouchers.Generate(r.Context(), id)
	if err != nil {
		if errors.Is(err, vouchersService.ErrOrderNotFound) {
			handlers.RespondNotFound(w, msgOrderNotFound)
			return
		}
		h.logger.Error("GET /orders/%d/voucher - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=voucher-%d.pdf", id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// Update PUT /api/v1/orders/{orderId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "orderId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	var req ordersModels.UpdateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /orders/%d - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ordersService.ErrOrderNotFound):
			handlers.RespondNotFound(w, msgOrderNotFound)
		case errors.Is(err, ordersService.ErrInvalidInput):
			h.logger.Warn("PUT /orders/%d - invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /orders/%d - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /orders/%d - order updated", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateStatus PATCH /api/v1/orders/{orderId}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "orderId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	var req ordersModels.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /orders/%d/status - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ordersService.ErrOrderNotFound):
			handlers.RespondNotFound(w, msgOrderNotFound)
		case errors.Is(err, ordersService.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("PATCH /orders/%d/status - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /orders/%d/status - status updated to %s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Cancel POST /api/v1/orders/{orderId}/cancel
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "orderId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	result, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ordersService.ErrOrderNotFound):
			handlers.RespondNotFound(w, msgOrderNotFound)
		case errors.Is(err, ordersService.ErrCannotCancel):
			handlers.RespondConflict(w, msgCannotCancel)
		default:
			h.logger.Error("POST /orders/%d/cancel - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders/%d/cancel - order cancelled", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/orders/{orderId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "orderId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ordersService.ErrOrderNotFound) {
			handlers.RespondNotFound(w, msgOrderNotFound)
			return
		}
		h.logger.Error("DELETE /orders/%d - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /orders/%d - order deleted", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) listRequest(r *http.Request) *ordersModels.ListOrdersRequest {
	page, limit := handlers.ParsePagination(r)

	return &ordersModels.ListOrdersRequest{
		Search: handlers.OptionalQuery(r, "search"),
		Status: handlers.OptionalQuery(r, "status"),
		Page:   page,
		Limit:  limit,
	}
}
