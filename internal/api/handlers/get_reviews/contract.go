package get_reviews

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/service/reviews/models"
)

// ReviewService интерфейс сервиса отзывов
type ReviewService interface {
	ListByVenue(ctx context.Context, venueID int64) (*models.ReviewListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
