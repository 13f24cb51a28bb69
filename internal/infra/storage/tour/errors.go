package tour

import "errors"

var (
	// ErrTourNotFound se devuelve cuando el tour no existe
	ErrTourNotFound = errors.New("tour.repository: tour not found")

	// ErrDuplicateSlug se devuelve al intentar crear un tour con slug repetido
	ErrDuplicateSlug = errors.New("tour.repository: duplicate slug")

	// ErrBuildQuery se devuelve al fallar la construcción de la consulta SQL
	ErrBuildQuery = errors.New("tour.repository: failed to build query")

	// ErrExecQuery se devuelve al fallar la ejecución de la consulta SQL
	ErrExecQuery = errors.New("tour.repository: failed to execute query")

	// ErrScanRow se devuelve al fallar el escaneo del resultado
	ErrScanRow = errors.New("tour.repository: failed to scan row")

	// ErrMarshal se devuelve al fallar la serialización de campos JSON
	ErrMarshal = errors.New("tour.repository: failed to marshal json field")
)
