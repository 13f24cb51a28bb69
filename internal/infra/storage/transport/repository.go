package transport

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	"github.com/illapa-dev/TourOperatorService/pkg/dbmetrics"
	"github.com/illapa-dev/TourOperatorService/pkg/psqlbuilder"
)

var transportColumns = []string{
	"id",
	"type",
	"vehicle",
	"services",
	"image_url",
	"created_at",
	"updated_at",
}

// Repository repositorio para trabajar con opciones de transporte
type Repository struct {
	db DBExecutor
}

// NewRepository crea una nueva instancia del repositorio de transporte
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create crea una nueva opción de transporte
func (r *Repository) Create(ctx context.Context, option *domain.TransportOption) (*domain.TransportOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	services, err := json.Marshal(emptyIfNil(option.Services))
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal services: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("transport_options").
		Columns("type", "vehicle", "services", "image_url").
		Values(option.Type, option.Vehicle, services, option.ImageURL).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&option.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	option.CreatedAt = createdAt.Time
	option.UpdatedAt = updatedAt.Time

	return option, nil
}

// GetByID obtiene una opción de transporte por ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TransportOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(transportColumns...).
		From("transport_options").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	option, err := scanTransport(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTransportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan transport: %v", ErrScanRow, err)
	}

	return option, nil
}

// GetByIDs obtiene varias opciones de transporte por ID, ordenadas por ID
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.TransportOption, error) {
	if len(ids) == 0 {
		return []*domain.TransportOption{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(transportColumns...).
		From("transport_options").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTransports(rows)
}

// List obtiene una página de opciones de transporte, con filtro opcional
// por tipo (Basico/Premium). Devuelve también el total de filas.
func (r *Repository) List(ctx context.Context, page, limit int64, optionType *domain.PackageType) ([]*domain.TransportOption, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	offset := int64(0)
	if page > 1 {
		offset = (page - 1) * limit
	}

	selectBuilder := psqlbuilder.Select(transportColumns...).
		From("transport_options").
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	countBuilder := psqlbuilder.Select("COUNT(*)").From("transport_options")

	if optionType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *optionType})
		countBuilder = countBuilder.Where(squirrel.Eq{"type": *optionType})
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

	options, err := scanTransports(rows)
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

	return options, total, nil
}

// Update actualiza una opción de transporte
func (r *Repository) Update(ctx context.Context, option *domain.TransportOption) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	services, err := json.Marshal(emptyIfNil(option.Services))
	if err != nil {
		return fmt.Errorf("%w: Update - marshal services: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("transport_options").
		Set("type", option.Type).
		Set("vehicle", option.Vehicle).
		Set("services", services).
		Set("image_url", option.ImageURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": option.ID}).
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
		return ErrTransportNotFound
	}

	return nil
}

// Delete elimina una opción de transporte
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("transport_options").
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
		return ErrTransportNotFound
	}

	return nil
}

func emptyIfNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTransport escanea una fila en una opción de transporte
func scanTransport(row rowScanner) (*domain.TransportOption, error) {
	var option domain.TransportOption
	var createdAt, updatedAt sql.NullTime
	var services []byte

	err := row.Scan(
		&option.ID,
		&option.Type,
		&option.Vehicle,
		&services,
		&option.ImageURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(services) > 0 {
		if err := json.Unmarshal(services, &option.Services); err != nil {
			return nil, err
		}
	}

	option.CreatedAt = createdAt.Time
	option.UpdatedAt = updatedAt.Time

	return &option, nil
}

// scanTransports escanea el resultado en un slice de opciones de transporte
func scanTransports(rows *sql.Rows) ([]*domain.TransportOption, error) {
	options := make([]*domain.TransportOption, 0)

	for rows.Next() {
		option, err := scanTransport(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTransports - scan row: %v", ErrScanRow, err)
		}
		options = append(options, option)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTransports - rows error: %v", ErrScanRow, err)
	}

	return options, nil
}
