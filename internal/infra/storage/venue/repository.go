package venue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SVP-BookingService/pkg/geo"
	"github.com/m04kA/SVP-BookingService/pkg/psqlbuilder"
)

var venueColumns = []string{
	"id",
	"owner_id",
	"sport",
	"name",
	"city",
	"contact",
	"location",
	"lat",
	"lng",
	"surface",
	"size",
	"lights",
	"details",
	"opening_hour",
	"closing_hour",
	"slot_duration_minutes",
	"price_off_peak",
	"price_peak",
	"equipment_count",
	"available_games",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с площадками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую площадку
func (r *Repository) Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	games, err := marshalGames(v.AvailableGames)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal available games: %v", ErrBuildQuery, err)
	}

	var lat, lng *float64
	if v.Coordinates != nil {
		lat = &v.Coordinates.Lat
		lng = &v.Coordinates.Lng
	}

	query, args, err := psqlbuilder.Insert("venues").
		Columns(
			"owner_id",
			"sport",
			"name",
			"city",
			"contact",
			"location",
			"lat",
			"lng",
			"surface",
			"size",
			"lights",
			"details",
			"opening_hour",
			"closing_hour",
			"slot_duration_minutes",
			"price_off_peak",
			"price_peak",
			"equipment_count",
			"available_games",
		).
		Values(
			v.OwnerID,
			v.Sport,
			v.Name,
			v.City,
			v.Contact,
			v.Location,
			lat,
			lng,
			v.Surface,
			v.Size,
			v.Lights,
			v.Details,
			v.OpeningHour,
			v.ClosingHour,
			v.SlotDurationMinutes,
			v.PriceOffPeak,
			v.PricePeak,
			v.EquipmentCount,
			games,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&v.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	v, err := scanVenue(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan venue: %v", ErrScanRow, err)
	}

	return v, nil
}

// List получает площадки, опционально фильтруя по виду спорта
// Сортировка по ID сохраняет порядок добавления (стабильный порядок для
// фильтрации по расстоянию)
func (r *Repository) List(ctx context.Context, sport *domain.Sport) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(venueColumns...).
		From("venues").
		OrderBy("id ASC")

	if sport != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"sport": *sport})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan venue: %v", ErrScanRow, err)
		}
		venues = append(venues, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return venues, nil
}

// ListByOwner получает площадки владельца
func (r *Repository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("venues").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByOwner - scan venue: %v", ErrScanRow, err)
		}
		venues = append(venues, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - iterate rows: %v", ErrExecQuery, err)
	}

	return venues, nil
}

// Delete удаляет площадку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrVenueNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVenue(row rowScanner) (*domain.Venue, error) {
	var (
		v                    domain.Venue
		lat, lng             sql.NullFloat64
		games                []byte
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&v.ID,
		&v.OwnerID,
		&v.Sport,
		&v.Name,
		&v.City,
		&v.Contact,
		&v.Location,
		&lat,
		&lng,
		&v.Surface,
		&v.Size,
		&v.Lights,
		&v.Details,
		&v.OpeningHour,
		&v.ClosingHour,
		&v.SlotDurationMinutes,
		&v.PriceOffPeak,
		&v.PricePeak,
		&v.EquipmentCount,
		&games,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lat.Valid && lng.Valid {
		v.Coordinates = &geo.Point{Lat: lat.Float64, Lng: lng.Float64}
	}

	if len(games) > 0 {
		if err := json.Unmarshal(games, &v.AvailableGames); err != nil {
			return nil, err
		}
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}

func marshalGames(games []string) ([]byte, error) {
	if games == nil {
		return nil, nil
	}
	return json.Marshal(games)
}
