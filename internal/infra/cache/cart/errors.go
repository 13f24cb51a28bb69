package cart

import "errors"

var (
	// ErrMarshal se devuelve al fallar la serialización del carrito
	ErrMarshal = errors.New("cart.store: failed to marshal cart")

	// ErrUnmarshal se devuelve al fallar la deserialización del carrito
	ErrUnmarshal = errors.New("cart.store: failed to unmarshal cart")

	// ErrRedis se devuelve al fallar una operación contra Redis
	ErrRedis = errors.New("cart.store: redis operation failed")
)
