package discount

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SVP-BookingService/pkg/psqlbuilder"
)

var discountColumns = []string{
	"id",
	"code",
	"percent",
	"created_at",
}

// Repository репозиторий для работы с промокодами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый промокод.
// Дубликаты кодов допускаются; при поиске используется самая свежая запись
func (r *Repository) Create(ctx context.Context, d *domain.DiscountCode) (*domain.DiscountCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("discounts").
		Columns("code", "percent").
		Values(d.Code, d.Percent).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return d, nil
}

// GetByCode ищет промокод по точному совпадению кода (с учетом регистра)
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(discountColumns...).
		From("discounts").
		Where(squirrel.Eq{"code": code}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.DiscountCode
	err = executor.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.Code, &d.Percent, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrDiscountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan discount: %v", ErrScanRow, err)
	}

	return &d, nil
}

// List возвращает все промокоды, новые сначала
func (r *Repository) List(ctx context.Context) ([]*domain.DiscountCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(discountColumns...).
		From("discounts").
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

	discounts := make([]*domain.DiscountCode, 0)
	for rows.Next() {
		var d domain.DiscountCode
		if err := rows.Scan(&d.ID, &d.Code, &d.Percent, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan discount: %v", ErrScanRow, err)
		}
		discounts = append(discounts, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return discounts, nil
}

// Delete удаляет промокод по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("discounts").
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
		return ErrDiscountNotFound
	}

	return nil
}
