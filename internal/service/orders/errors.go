package orders

import "errors"

var (
	// ErrOrderNotFound se devuelve cuando la reserva no existe
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidStatus se devuelve al intentar asignar un estado desconocido
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrCannotCancel se devuelve cuando la reserva ya no admite cancelación
	ErrCannotCancel = errors.New("order cannot be cancelled")

	// ErrInvalidInput se devuelve con datos de entrada incorrectos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal se devuelve ante errores internos del servicio
	ErrInternal = errors.New("service: internal error")
)
