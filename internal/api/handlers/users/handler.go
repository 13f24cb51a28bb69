package users

import (
	"errors"
	"net/http"

	"github.com/illapa-dev/TourOperatorService/internal/api/handlers"
	"github.com/illapa-dev/TourOperatorService/internal/api/middleware"
	usersService "github.com/illapa-dev/TourOperatorService/internal/service/users"
	usersModels "github.com/illapa-dev/TourOperatorService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgMissingUser        = "falta el encabezado X-User-ID"
	msgInvalidUserID      = "identificador de usuario inválido"
	msgInvalidInput       = "datos del usuario inválidos"
	msgUserNotFound       = "usuario no encontrado"
	msgDuplicateEmail     = "el email ya está registrado"
	msgInvalidCredentials = "credenciales incorrectas"
)

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register POST /api/v1/users
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req usersModels.RegisterUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrDuplicateEmail):
			handlers.RespondConflict(w, msgDuplicateEmail)
		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("POST /users - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /users - failed to register user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - user registered: user_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Login POST /api/v1/users/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req usersModels.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/login - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Authenticate(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usersService.ErrInvalidCredentials) {
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /users/login - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /users/login - user logged in: user_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Me GET /api/v1/users/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usersService.ErrUserNotFound) {
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("GET /users/me - failed for user=%d: %v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := handlers.ParsePagination(r)
	req := &usersModels.ListUsersRequest{
		Page:  page,
		Limit: limit,
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /users - failed to list users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetByID GET /api/v1/users/{userId}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "userId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usersService.ErrUserNotFound) {
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("GET /users/%d - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/users/{userId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "userId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req usersModels.UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/%d - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, usersService.ErrDuplicateEmail):
			handlers.RespondConflict(w, msgDuplicateEmail)
		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("PUT /users/%d - invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /users/%d - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/%d - user updated", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/users/{userId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "userId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usersService.ErrUserNotFound) {
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("DELETE /users/%d - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /users/%d - user deleted", id)
	handlers.RespondNoContent(w)
}
