package users

import "errors"

var (
	// ErrUserNotFound se devuelve cuando el usuario no existe
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail se devuelve cuando el email ya está registrado
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials se devuelve cuando las credenciales no coinciden
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput se devuelve con datos de entrada incorrectos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal se devuelve ante errores internos del servicio
	ErrInternal = errors.New("service: internal error")
)
