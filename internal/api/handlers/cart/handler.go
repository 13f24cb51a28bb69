package cart

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/illapa-dev/TourOperatorService/internal/api/handlers"
	"github.com/illapa-dev/TourOperatorService/internal/api/middleware"
	cartsService "github.com/illapa-dev/TourOperatorService/internal/service/carts"
	cartsModels "github.com/illapa-dev/TourOperatorService/internal/service/carts/models"
	checkoutCart "github.com/illapa-dev/TourOperatorService/internal/usecase/checkout_cart"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgMissingUser        = "falta el encabezado X-User-ID"
	msgInvalidItemID      = "identificador de línea inválido"
	msgInvalidInput       = "datos del carrito inválidos"
	msgTourNotFound       = "tour no encontrado"
	msgItemNotFound       = "línea no encontrada en el carrito"
	msgEmptyCart          = "el carrito está vacío"
)

type Handler struct {
	service  CartsService
	checkout CheckoutUseCase
	logger   Logger
}

func NewHandler(service CartsService, checkout CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		service:  service,
		checkout: checkout,
		logger:   logger,
	}
}

// Get GET /api/v1/cart
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /cart - failed for user=%d: %v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// AddItem POST /api/v1/cart/items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req cartsModels.AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/items - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Lang = handlers.ParseLang(r)

	result, err := h.service.AddItem(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, cartsService.ErrTourNotFound):
			handlers.RespondNotFound(w, msgTourNotFound)
		case errors.Is(err, cartsService.ErrInvalidInput):
			h.logger.Warn("POST /cart/items - invalid input for user=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /cart/items - failed for user=%d: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/items - item added for user=%d", userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateItem PATCH /api/v1/cart/items/{itemId}
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	itemID := mux.Vars(r)["itemId"]
	if itemID == "" {
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	var req cartsModels.UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /cart/items/%s - invalid request body: %v", itemID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateItem(r.Context(), userID, itemID, &req)
	if err != nil {
		switch {
		case errors.Is(err, cartsService.ErrItemNotFound):
			handlers.RespondNotFound(w, msgItemNotFound)
		case errors.Is(err, cartsService.ErrInvalidInput):
			h.logger.Warn("PATCH /cart/items/%s - invalid input for user=%d: %v", itemID, userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PATCH /cart/items/%s - failed for user=%d: %v", itemID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /cart/items/%s - item updated for user=%d", itemID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// RemoveItem DELETE /api/v1/cart/items/{itemId}
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	itemID := mux.Vars(r)["itemId"]
	if itemID == "" {
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	result, err := h.service.RemoveItem(r.Context(), userID, itemID)
	if err != nil {
		if errors.Is(err, cartsService.ErrItemNotFound) {
			handlers.RespondNotFound(w, msgItemNotFound)
			return
		}
		h.logger.Error("DELETE /cart/items/%s - failed for user=%d: %v", itemID, userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /cart/items/%s - item removed for user=%d", itemID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Clear DELETE /api/v1/cart
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	if err := h.service.Clear(r.Context(), userID); err != nil {
		h.logger.Error("DELETE /cart - failed for user=%d: %v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /cart - cart cleared for user=%d", userID)
	handlers.RespondNoContent(w)
}

// Checkout POST /api/v1/cart/checkout
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req checkoutCart.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/checkout - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.checkout.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, checkoutCart.ErrEmptyCart):
			handlers.RespondConflict(w, msgEmptyCart)
		case errors.Is(err, checkoutCart.ErrInvalidInput):
			h.logger.Warn("POST /cart/checkout - invalid input for user=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /cart/checkout - failed for user=%d: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/checkout - %d orders created for user=%d", len(result.Orders), userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
