package carts

import "errors"

var (
	// ErrTourNotFound se devuelve cuando el tour a añadir no existe
	ErrTourNotFound = errors.New("tour not found")

	// ErrItemNotFound se devuelve cuando la línea no está en el carrito
	ErrItemNotFound = errors.New("cart item not found")

	// ErrInvalidInput se devuelve con datos de entrada incorrectos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal se devuelve ante errores internos del servicio
	ErrInternal = errors.New("service: internal error")
)
