package checkout_cart

import "errors"

var (
	// ErrEmptyCart se devuelve al intentar pagar un carrito vacío
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidInput se devuelve con datos de entrada incorrectos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal se devuelve ante errores internos
	ErrInternal = errors.New("usecase: internal error")
)
