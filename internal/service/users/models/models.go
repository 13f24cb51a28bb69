package models

import (
	"time"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// Modelos de request

// RegisterUserRequest cuerpo de registro de usuario. Password solo se
// exige para el proveedor local; las cuentas sociales llegan ya
// verificadas por el proveedor.
type RegisterUserRequest struct {
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	Password     string  `json:"password,omitempty"`
	AuthProvider string  `json:"authProvider"`
	Phone        *string `json:"phone,omitempty"`
	Country      *string `json:"country,omitempty"`
}

// LoginRequest cuerpo de inicio de sesión local
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest cuerpo de actualización del perfil
type UpdateUserRequest struct {
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Phone    *string `json:"phone,omitempty"`
	Country  *string `json:"country,omitempty"`
}

// ListUsersRequest parámetros del listado paginado
type ListUsersRequest struct {
	Page  int64
	Limit int64
}

// Modelos de response

// UserResponse respuesta con los datos públicos de un usuario.
// El hash de la contraseña nunca sale del servicio.
type UserResponse struct {
	ID           int64   `json:"id"`
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	AuthProvider string  `json:"authProvider"`
	Phone        *string `json:"phone,omitempty"`
	Country      *string `json:"country,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meta metadatos de paginación
type Meta struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// UserListResponse listado paginado de usuarios
type UserListResponse struct {
	Data []*UserResponse `json:"data"`
	Meta Meta            `json:"meta"`
}

// FromDomainUser convierte un usuario de dominio en la respuesta
func FromDomainUser(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		FullName:     user.FullName,
		Email:        user.Email,
		Role:         string(user.Role),
		AuthProvider: string(user.AuthProvider),
		Phone:        user.Phone,
		Country:      user.Country,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// FromDomainUserList convierte un slice de usuarios en respuestas
func FromDomainUserList(users []*domain.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, FromDomainUser(user))
	}
	return out
}

// NewMeta construye los metadatos de paginación
func NewMeta(page, limit, total int64) Meta {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
