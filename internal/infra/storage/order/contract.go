package order

import (
	"github.com/illapa-dev/TourOperatorService/pkg/dbmetrics"
)

// Reutilizamos las interfaces de dbmetrics para trabajar con la BD
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
