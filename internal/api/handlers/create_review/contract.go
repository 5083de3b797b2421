package create_review

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/service/reviews/models"
)

// ReviewService интерфейс сервиса отзывов
type ReviewService interface {
	Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
