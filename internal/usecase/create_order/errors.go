package create_order

import "errors"

var (
	// ErrTourNotFound se devuelve cuando el tour reservado no existe
	ErrTourNotFound = errors.New("tour not found")

	// ErrInvalidInput se devuelve con datos de entrada incorrectos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate se devuelve con una fecha mal formada o en el pasado
	ErrInvalidDate = errors.New("invalid start date")

	// ErrInternal se devuelve ante errores internos
	ErrInternal = errors.New("usecase: internal error")
)
