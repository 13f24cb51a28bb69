package get_order_calendar

import "errors"

var (
	// ErrInvalidMonth se devuelve con un mes mal formado
	ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

	// ErrInternal se devuelve ante errores internos
	ErrInternal = errors.New("usecase: internal error")
)
