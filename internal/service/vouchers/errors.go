package vouchers

import "errors"

var (
	// ErrOrderNotFound se devuelve cuando la reserva no existe
	ErrOrderNotFound = errors.New("order not found")

	// ErrInternal se devuelve ante errores internos del servicio
	ErrInternal = errors.New("service: internal error")
)
