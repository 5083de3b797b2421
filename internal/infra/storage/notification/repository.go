package notification

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SVP-BookingService/pkg/psqlbuilder"
)

var notificationColumns = []string{
	"id",
	"text",
	"read",
	"created_at",
}

// Repository репозиторий для работы с уведомлениями администратора
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое уведомление
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("text", "read").
		Values(n.Text, n.Read).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return n, nil
}

// List возвращает уведомления, новые сначала
func (r *Repository) List(ctx context.Context) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(notificationColumns...).
		From("notifications").
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.Text, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan notification: %v", ErrScanRow, err)
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return notifications, nil
}

// CountUnread возвращает количество непрочитанных уведомлений
func (r *Repository) CountUnread(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("notifications").
		Where(squirrel.Eq{"read": false}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountUnread - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: CountUnread - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// MarkRead помечает уведомление прочитанным
func (r *Repository) MarkRead(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead помечает все уведомления прочитанными
func (r *Repository) MarkAllRead(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"read": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkAllRead - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkAllRead - execute update: %v", ErrExecQuery, err)
	}

	return nil
}
