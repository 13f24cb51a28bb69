package order

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	"github.com/illapa-dev/TourOperatorService/pkg/dbmetrics"
	"github.com/illapa-dev/TourOperatorService/pkg/psqlbuilder"
)

var orderColumns = []string{
	"id",
	"customer_full_name",
	"customer_email",
	"customer_phone",
	"customer_nationality",
	"tour_id",
	"tour_title",
	"tour_image_url",
	"tour_price",
	"tour_region",
	"tour_duration",
	"start_date",
	"people",
	"total_price",
	"status",
	"payment_method",
	"notes",
	"discount_code_used",
	"created_at",
	"updated_at",
}

// Repository repositorio para trabajar con reservas
type Repository struct {
	db DBExecutor
}

// NewRepository crea una nueva instancia del repositorio de reservas
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create crea una nueva reserva. Si el contexto lleva una transacción
// activa, la utiliza; en caso contrario ejecuta la consulta directamente.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("orders").
		Columns(
			"customer_full_name",
			"customer_email",
			"customer_phone",
			"customer_nationality",
			"tour_id",
			"tour_title",
			"tour_image_url",
			"tour_price",
			"tour_region",
			"tour_duration",
			"start_date",
			"people",
			"total_price",
			"status",
			"payment_method",
			"notes",
			"discount_code_used",
		).
		Values(
			order.Customer.FullName,
			order.Customer.Email,
			order.Customer.Phone,
			order.Customer.Nationality,
			order.Tour.TourID,
			order.Tour.Title,
			order.Tour.ImageURL,
			order.Tour.Price,
			order.Tour.Region,
			order.Tour.Duration,
			order.StartDate,
			order.People,
			order.TotalPrice,
			order.Status,
			order.PaymentMethod,
			order.Notes,
			order.DiscountCodeUsed,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&order.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	return order, nil
}

// GetByID obtiene una reserva por ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	order, err := scanOrder(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan order: %v", ErrScanRow, err)
	}

	return order, nil
}

// List obtiene una página de reservas con búsqueda y filtro por estado.
// Devuelve también el total de filas que cumplen el filtro, para el
// sobre de paginación {data, meta}.
func (r *Repository) List(ctx context.Context, filter domain.OrdersFilter) ([]*domain.Order, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset()))

	countBuilder := psqlbuilder.Select("COUNT(*)").From("orders")

	// Búsqueda por nombre o email del cliente
	if filter.Search != nil && *filter.Search != "" {
		like := "%" + *filter.Search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"customer_full_name": like},
			squirrel.ILike{"customer_email": like},
		}
		selectBuilder = selectBuilder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	// Filtro por estado
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
		countBuilder = countBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - scan count: %v", ErrScanRow, err)
	}

	return orders, total, nil
}

// ListByDateRange obtiene las reservas cuya fecha de inicio cae dentro del
// rango [from, to]. Las reservas sin fecha quedan fuera por definición.
// Se usa para el calendario mensual del dashboard.
func (r *Repository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.GtOrEq{"start_date": from}).
		Where(squirrel.LtOrEq{"start_date": to}).
		OrderBy("start_date ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// Update actualiza los campos mutables de una reserva
func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("customer_full_name", order.Customer.FullName).
		Set("customer_email", order.Customer.Email).
		Set("customer_phone", order.Customer.Phone).
		Set("customer_nationality", order.Customer.Nationality).
		Set("start_date", order.StartDate).
		Set("people", order.People).
		Set("total_price", order.TotalPrice).
		Set("status", order.Status).
		Set("payment_method", order.PaymentMethod).
		Set("notes", order.Notes).
		Set("discount_code_used", order.DiscountCodeUsed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": order.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// UpdateStatus actualiza únicamente el estado de una reserva
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// Delete elimina una reserva de forma permanente
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanOrder escanea una fila en una reserva
func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var startDate, createdAt, updatedAt sql.NullTime
	var totalPrice sql.NullFloat64

	err := row.Scan(
		&order.ID,
		&order.Customer.FullName,
		&order.Customer.Email,
		&order.Customer.Phone,
		&order.Customer.Nationality,
		&order.Tour.TourID,
		&order.Tour.Title,
		&order.Tour.ImageURL,
		&order.Tour.Price,
		&order.Tour.Region,
		&order.Tour.Duration,
		&startDate,
		&order.People,
		&totalPrice,
		&order.Status,
		&order.PaymentMethod,
		&order.Notes,
		&order.DiscountCodeUsed,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if startDate.Valid {
		t := startDate.Time
		order.StartDate = &t
	}
	if totalPrice.Valid {
		v := totalPrice.Float64
		order.TotalPrice = &v
	}
	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	return &order, nil
}

// scanOrders escanea el resultado de una consulta en un slice de reservas
func scanOrders(rows *sql.Rows) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0)

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanOrders - scan row: %v", ErrScanRow, err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOrders - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}
