package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SVP-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/SVP-BookingService/pkg/types"
)

var bookingColumns = []string{
	"id",
	"venue_id",
	"venue_snapshot",
	"player_name",
	"booking_date",
	"start_time",
	"base_price",
	"discount_code",
	"final_price",
	"payment_method",
	"payment_status",
	"transaction_id",
	"created_at",
	"updated_at",
}

// Filter фильтр для выборки бронирований
type Filter struct {
	VenueID *int64                // Фильтр по площадке (опционально)
	Date    *time.Time            // Фильтр по дате (опционально)
	Time    *types.TimeString     // Фильтр по времени начала слота (опционально)
	Status  *domain.PaymentStatus // Фильтр по статусу (опционально)
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование со снимком площадки на момент брони.
// Снимок хранится как jsonb и не меняется при изменении или удалении
// площадки: история бронирований остается читаемой.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	snapshot, err := json.Marshal(b.Venue)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal venue snapshot: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"venue_id",
			"venue_snapshot",
			"player_name",
			"booking_date",
			"start_time",
			"base_price",
			"discount_code",
			"final_price",
			"payment_method",
			"payment_status",
			"transaction_id",
		).
		Values(
			b.VenueID,
			snapshot,
			b.PlayerName,
			b.BookingDate,
			b.StartTime,
			b.BasePrice,
			b.DiscountCode,
			b.FinalPrice,
			b.PaymentMethod,
			b.PaymentStatus,
			b.TransactionID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetWithFilter получает бронирования с гибкой фильтрацией
//
// Примеры использования:
//
//  1. Подтвержденные бронирования площадки на дату (расчет доступности слотов):
//     status := domain.StatusConfirmed
//     filter := Filter{VenueID: &venueID, Date: &date, Status: &status}
//
//  2. Все бронирования площадки:
//     filter := Filter{VenueID: &venueID}
//
//  3. Все бронирования (админский список):
//     filter := Filter{}
func (r *Repository) GetWithFilter(ctx context.Context, filter Filter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.VenueID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"venue_id": *filter.VenueID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}
	if filter.Time != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"start_time": *filter.Time})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"payment_status": *filter.Status})
	}

	if filter.Date != nil {
		// Для конкретной даты сортируем по времени начала слота
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		// Иначе сначала новые
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	// Внутри транзакции блокируем строки на конкретную дату:
	// защита от гонки при создании бронирования
	if dbmetrics.IsInTransaction(ctx) && filter.VenueID != nil && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус оплаты бронирования
// Валидация перехода выполняется на уровне сервиса; репозиторий
// проверяет только, что статус известен
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", status).
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

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование
// Каскадное удаление чата выполняется сервисом в одной транзакции
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
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
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                    domain.Booking
		snapshot             []byte
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.VenueID,
		&snapshot,
		&b.PlayerName,
		&b.BookingDate,
		&b.StartTime,
		&b.BasePrice,
		&b.DiscountCode,
		&b.FinalPrice,
		&b.PaymentMethod,
		&b.PaymentStatus,
		&b.TransactionID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(snapshot, &b.Venue); err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrExecQuery, err)
	}

	return bookings, nil
}
