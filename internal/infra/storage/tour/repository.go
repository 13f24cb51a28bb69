package tour

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	"github.com/illapa-dev/TourOperatorService/pkg/dbmetrics"
	"github.com/illapa-dev/TourOperatorService/pkg/psqlbuilder"
)

// Código de error de PostgreSQL para violación de unicidad
const pqUniqueViolation = "23505"

var tourColumns = []string{
	"id",
	"title",
	"subtitle",
	"slug",
	"price",
	"original_price",
	"duration",
	"rating",
	"reviews",
	"location",
	"region",
	"category",
	"difficulty",
	"package_type",
	"image_url",
	"highlights",
	"itinerary",
	"includes",
	"not_includes",
	"to_bring",
	"conditions",
	"transport_option_ids",
	"created_at",
	"updated_at",
}

// Repository repositorio para trabajar con tours.
// Los campos multiidioma y las estructuras anidadas (itinerario, listas)
// se guardan como JSONB y se (de)serializan aquí.
type Repository struct {
	db DBExecutor
}

// NewRepository crea una nueva instancia del repositorio de tours
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create crea un nuevo tour
func (r *Repository) Create(ctx context.Context, tour *domain.Tour) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	jsonFields, err := marshalJSONFields(tour)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("tours").
		Columns(
			"title",
			"subtitle",
			"slug",
			"price",
			"original_price",
			"duration",
			"rating",
			"reviews",
			"location",
			"region",
			"category",
			"difficulty",
			"package_type",
			"image_url",
			"highlights",
			"itinerary",
			"includes",
			"not_includes",
			"to_bring",
			"conditions",
			"transport_option_ids",
		).
		Values(
			jsonFields.title,
			jsonFields.subtitle,
			tour.Slug,
			tour.Price,
			tour.OriginalPrice,
			tour.Duration,
			tour.Rating,
			tour.Reviews,
			jsonFields.location,
			tour.Region,
			tour.Category,
			tour.Difficulty,
			tour.PackageType,
			tour.ImageURL,
			jsonFields.highlights,
			jsonFields.itinerary,
			jsonFields.includes,
			jsonFields.notIncludes,
			jsonFields.toBring,
			jsonFields.conditions,
			jsonFields.transportIDs,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tour.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tour.CreatedAt = createdAt.Time
	tour.UpdatedAt = updatedAt.Time

	return tour, nil
}

// GetByID obtiene un tour por ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetBySlug obtiene un tour por su slug público
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Tour, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug}, "GetBySlug")
}

func (r *Repository) getOne(ctx context.Context, cond squirrel.Eq, method string) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tourColumns...).
		From("tours").
		Where(cond).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	tour, err := scanTour(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan tour: %v", ErrScanRow, method, err)
	}

	return tour, nil
}

// GetByIDs obtiene varios tours por ID, en el orden que devuelva la BD
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Tour, error) {
	if len(ids) == 0 {
		return []*domain.Tour{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tourColumns...).
		From("tours").
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

	return scanTours(rows)
}

// List obtiene una página de tours junto con el total de filas
func (r *Repository) List(ctx context.Context, filter domain.ToursFilter) ([]*domain.Tour, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tourColumns...).
		From("tours").
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()

	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tours, err := scanTours(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").From("tours").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - scan count: %v", ErrScanRow, err)
	}

	return tours, total, nil
}

// GetTop obtiene los tours mejor valorados
func (r *Repository) GetTop(ctx context.Context, limit int64) ([]*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tourColumns...).
		From("tours").
		OrderBy("rating DESC, reviews DESC, id ASC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTop - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTop - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTours(rows)
}

// Update actualiza un tour completo
func (r *Repository) Update(ctx context.Context, tour *domain.Tour) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	jsonFields, err := marshalJSONFields(tour)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update("tours").
		Set("title", jsonFields.title).
		Set("subtitle", jsonFields.subtitle).
		Set("slug", tour.Slug).
		Set("price", tour.Price).
		Set("original_price", tour.OriginalPrice).
		Set("duration", tour.Duration).
		Set("rating", tour.Rating).
		Set("reviews", tour.Reviews).
		Set("location", jsonFields.location).
		Set("region", tour.Region).
		Set("category", tour.Category).
		Set("difficulty", tour.Difficulty).
		Set("package_type", tour.PackageType).
		Set("image_url", tour.ImageURL).
		Set("highlights", jsonFields.highlights).
		Set("itinerary", jsonFields.itinerary).
		Set("includes", jsonFields.includes).
		Set("not_includes", jsonFields.notIncludes).
		Set("to_bring", jsonFields.toBring).
		Set("conditions", jsonFields.conditions).
		Set("transport_option_ids", jsonFields.transportIDs).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": tour.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pqUniqueViolation {
			return ErrDuplicateSlug
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTourNotFound
	}

	return nil
}

// Delete elimina un tour
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tours").
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
		return ErrTourNotFound
	}

	return nil
}

// Campos JSONB serializados

type jsonFields struct {
	title        []byte
	subtitle     []byte
	location     []byte
	highlights   []byte
	itinerary    []byte
	includes     []byte
	notIncludes  []byte
	toBring      []byte
	conditions   []byte
	transportIDs []byte
}

func marshalJSONFields(tour *domain.Tour) (*jsonFields, error) {
	var out jsonFields
	var err error

	marshal := func(dst *[]byte, v interface{}, field string) {
		if err != nil {
			return
		}
		var data []byte
		data, err = json.Marshal(v)
		if err != nil {
			err = fmt.Errorf("%w: %s: %v", ErrMarshal, field, err)
			return
		}
		*dst = data
	}

	marshal(&out.title, tour.Title, "title")
	marshal(&out.subtitle, tour.Subtitle, "subtitle")
	marshal(&out.location, tour.Location, "location")
	marshal(&out.highlights, emptyIfNilLocalized(tour.Highlights), "highlights")
	marshal(&out.itinerary, emptyIfNilItinerary(tour.Itinerary), "itinerary")
	marshal(&out.includes, emptyIfNilLocalized(tour.Includes), "includes")
	marshal(&out.notIncludes, emptyIfNilLocalized(tour.NotIncludes), "not_includes")
	marshal(&out.toBring, emptyIfNilLocalized(tour.ToBring), "to_bring")
	marshal(&out.conditions, emptyIfNilLocalized(tour.Conditions), "conditions")
	marshal(&out.transportIDs, emptyIfNilIDs(tour.TransportOptionIDs), "transport_option_ids")

	if err != nil {
		return nil, err
	}
	return &out, nil
}

func emptyIfNilLocalized(v []domain.LocalizedText) []domain.LocalizedText {
	if v == nil {
		return []domain.LocalizedText{}
	}
	return v
}

func emptyIfNilItinerary(v []domain.ItineraryDay) []domain.ItineraryDay {
	if v == nil {
		return []domain.ItineraryDay{}
	}
	return v
}

func emptyIfNilIDs(v []int64) []int64 {
	if v == nil {
		return []int64{}
	}
	return v
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTour escanea una fila en un tour, deserializando los campos JSONB
func scanTour(row rowScanner) (*domain.Tour, error) {
	var tour domain.Tour
	var createdAt, updatedAt sql.NullTime
	var title, subtitle, location []byte
	var highlights, itinerary, includes, notIncludes, toBring, conditions, transportIDs []byte

	err := row.Scan(
		&tour.ID,
		&title,
		&subtitle,
		&tour.Slug,
		&tour.Price,
		&tour.OriginalPrice,
		&tour.Duration,
		&tour.Rating,
		&tour.Reviews,
		&location,
		&tour.Region,
		&tour.Category,
		&tour.Difficulty,
		&tour.PackageType,
		&tour.ImageURL,
		&highlights,
		&itinerary,
		&includes,
		&notIncludes,
		&toBring,
		&conditions,
		&transportIDs,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	unmarshalInto := func(data []byte, v interface{}) {
		if err != nil || len(data) == 0 {
			return
		}
		err = json.Unmarshal(data, v)
	}

	unmarshalInto(title, &tour.Title)
	unmarshalInto(subtitle, &tour.Subtitle)
	unmarshalInto(location, &tour.Location)
	unmarshalInto(highlights, &tour.Highlights)
	unmarshalInto(itinerary, &tour.Itinerary)
	unmarshalInto(includes, &tour.Includes)
	unmarshalInto(notIncludes, &tour.NotIncludes)
	unmarshalInto(toBring, &tour.ToBring)
	unmarshalInto(conditions, &tour.Conditions)
	unmarshalInto(transportIDs, &tour.TransportOptionIDs)
	if err != nil {
		return nil, err
	}

	tour.CreatedAt = createdAt.Time
	tour.UpdatedAt = updatedAt.Time

	return &tour, nil
}

// scanTours escanea el resultado de una consulta en un slice de tours
func scanTours(rows *sql.Rows) ([]*domain.Tour, error) {
	tours := make([]*domain.Tour, 0)

	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTours - scan row: %v", ErrScanRow, err)
		}
		tours = append(tours, tour)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTours - rows error: %v", ErrScanRow, err)
	}

	return tours, nil
}
