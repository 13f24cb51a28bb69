package user

import "errors"

var (
	// ErrUserNotFound se devuelve cuando el usuario no existe
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrDuplicateEmail se devuelve al intentar registrar un email repetido
	ErrDuplicateEmail = errors.New("user.repository: duplicate email")

	// ErrBuildQuery se devuelve al fallar la construcción de la consulta SQL
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery se devuelve al fallar la ejecución de la consulta SQL
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow se devuelve al fallar el escaneo del resultado
	ErrScanRow = errors.New("user.repository: failed to scan row")
)
