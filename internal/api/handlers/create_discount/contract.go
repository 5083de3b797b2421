package create_discount

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/service/discounts/models"
)

// DiscountService интерфейс сервиса промокодов
type DiscountService interface {
	Create(ctx context.Context, req *models.CreateDiscountRequest) (*models.DiscountResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
