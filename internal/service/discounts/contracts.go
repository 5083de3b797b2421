package discounts

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/domain"
)

// DiscountRepository интерфейс репозитория промокодов
type DiscountRepository interface {
	Create(ctx context.Context, d *domain.DiscountCode) (*domain.DiscountCode, error)
	GetByCode(ctx context.Context, code string) (*domain.DiscountCode, error)
	List(ctx context.Context) ([]*domain.DiscountCode, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
