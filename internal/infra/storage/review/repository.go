package review

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SVP-BookingService/pkg/psqlbuilder"
)

var reviewColumns = []string{
	"id",
	"venue_id",
	"player_name",
	"rating",
	"comment",
	"created_at",
}

// Repository репозиторий для работы с отзывами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отзыв
func (r *Repository) Create(ctx context.Context, rev *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("venue_id", "player_name", "rating", "comment").
		Values(rev.VenueID, rev.PlayerName, rev.Rating, rev.Comment).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&rev.ID, &rev.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return rev, nil
}

// ListByVenue возвращает отзывы площадки, новые сначала
func (r *Repository) ListByVenue(ctx context.Context, venueID int64) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var rev domain.Review
		err := rows.Scan(&rev.ID, &rev.VenueID, &rev.PlayerName, &rev.Rating, &rev.Comment, &rev.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByVenue - scan review: %v", ErrScanRow, err)
		}
		reviews = append(reviews, &rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - iterate rows: %v", ErrExecQuery, err)
	}

	return reviews, nil
}

// AverageByVenue считает средний рейтинг площадки на стороне БД.
// Возвращает 0, если отзывов нет
func (r *Repository) AverageByVenue(ctx context.Context, venueID int64) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(AVG(rating), 0)").
		From("reviews").
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: AverageByVenue - build select query: %v", ErrBuildQuery, err)
	}

	var avg float64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("%w: AverageByVenue - scan average: %v", ErrScanRow, err)
	}

	return avg, nil
}
