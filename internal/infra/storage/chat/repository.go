package chat

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SVP-BookingService/pkg/psqlbuilder"
)

var messageColumns = []string{
	"id",
	"booking_id",
	"sender",
	"text",
	"image_url",
	"created_at",
}

// Repository репозиторий для работы с чатами бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория чатов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет сообщение в чат бронирования
func (r *Repository) Create(ctx context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("chat_messages").
		Columns("booking_id", "sender", "text", "image_url").
		Values(m.BookingID, m.Sender, m.Text, m.ImageURL).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return m, nil
}

// ListByBooking возвращает сообщения чата в хронологическом порядке
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.ChatMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(messageColumns...).
		From("chat_messages").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]*domain.ChatMessage, 0)
	for rows.Next() {
		var m domain.ChatMessage
		err := rows.Scan(&m.ID, &m.BookingID, &m.Sender, &m.Text, &m.ImageURL, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBooking - scan message: %v", ErrScanRow, err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - iterate rows: %v", ErrExecQuery, err)
	}

	return messages, nil
}

// DeleteByBooking удаляет весь чат бронирования.
// Вызывается при удалении бронирования в одной транзакции с ним
func (r *Repository) DeleteByBooking(ctx context.Context, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("chat_messages").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByBooking - build delete query: %v", ErrBuildQuery, err)
	}

	// Пустой чат не ошибка: у онлайн-бронирований чата может не быть
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByBooking - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
