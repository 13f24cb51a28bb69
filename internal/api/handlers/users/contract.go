package users

import (
	"context"

	usersModels "github.com/illapa-dev/TourOperatorService/internal/service/users/models"
)

// UsersService interfaz del servicio de usuarios
type UsersService interface {
	Register(ctx context.Context, req *usersModels.RegisterUserRequest) (*usersModels.UserResponse, error)
	Authenticate(ctx context.Context, req *usersModels.LoginRequest) (*usersModels.UserResponse, error)
	GetByID(ctx context.Context, id int64) (*usersModels.UserResponse, error)
	List(ctx context.Context, req *usersModels.ListUsersRequest) (*usersModels.UserListResponse, error)
	Update(ctx context.Context, id int64, req *usersModels.UpdateUserRequest) (*usersModels.UserResponse, error)
	Delete(ctx context.Context, id int64) error
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
