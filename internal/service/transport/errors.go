package transport

import "errors"

var (
	// ErrTransportNotFound se devuelve cuando la opción de transporte no existe
	ErrTransportNotFound = errors.New("transport option not found")

	// ErrInvalidInput se devuelve con datos de entrada incorrectos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal se devuelve ante errores internos del servicio
	ErrInternal = errors.New("service: internal error")
)
