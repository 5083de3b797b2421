package owner

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SVP-BookingService/pkg/psqlbuilder"
)

var ownerColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с владельцами площадок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория владельцев
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует заявку владельца в статусе pending
func (r *Repository) Create(ctx context.Context, o *domain.Owner) (*domain.Owner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("owners").
		Columns("name", "email", "phone", "status").
		Values(o.Name, o.Email, o.Phone, o.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return o, nil
}

// GetByID получает владельца по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Owner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ownerColumns...).
		From("owners").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var o domain.Owner
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&o.ID, &o.Name, &o.Email, &o.Phone, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrOwnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan owner: %v", ErrScanRow, err)
	}

	return &o, nil
}

// List возвращает владельцев, опционально фильтруя по статусу
func (r *Repository) List(ctx context.Context, status *domain.OwnerStatus) ([]*domain.Owner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(ownerColumns...).
		From("owners").
		OrderBy("created_at DESC, id DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
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

	owners := make([]*domain.Owner, 0)
	for rows.Next() {
		var o domain.Owner
		err := rows.Scan(&o.ID, &o.Name, &o.Email, &o.Phone, &o.Status, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan owner: %v", ErrScanRow, err)
		}
		owners = append(owners, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return owners, nil
}

// UpdateStatus обновляет статус владельца
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.OwnerStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("owners").
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

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrOwnerNotFound
	}

	return nil
}
