package tours

import "errors"

var (
	// ErrTourNotFound se devuelve cuando el tour no existe
	ErrTourNotFound = errors.New("tour not found")

	// ErrDuplicateSlug se devuelve cuando el slug ya está en uso
	ErrDuplicateSlug = errors.New("slug already in use")

	// ErrInvalidInput se devuelve con datos de entrada incorrectos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal se devuelve ante errores internos del servicio
	ErrInternal = errors.New("service: internal error")
)
