package order

import "errors"

var (
	// ErrOrderNotFound se devuelve cuando la reserva no existe
	ErrOrderNotFound = errors.New("order.repository: order not found")

	// ErrBuildQuery se devuelve al fallar la construcción de la consulta SQL
	ErrBuildQuery = errors.New("order.repository: failed to build query")

	// ErrExecQuery se devuelve al fallar la ejecución de la consulta SQL
	ErrExecQuery = errors.New("order.repository: failed to execute query")

	// ErrScanRow se devuelve al fallar el escaneo del resultado
	ErrScanRow = errors.New("order.repository: failed to scan row")
)
