package transport

import "errors"

var (
	// ErrTransportNotFound se devuelve cuando la opción de transporte no existe
	ErrTransportNotFound = errors.New("transport.repository: transport option not found")

	// ErrBuildQuery se devuelve al fallar la construcción de la consulta SQL
	ErrBuildQuery = errors.New("transport.repository: failed to build query")

	// ErrExecQuery se devuelve al fallar la ejecución de la consulta SQL
	ErrExecQuery = errors.New("transport.repository: failed to execute query")

	// ErrScanRow se devuelve al fallar el escaneo del resultado
	ErrScanRow = errors.New("transport.repository: failed to scan row")
)
