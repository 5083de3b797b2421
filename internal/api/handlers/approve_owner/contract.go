package approve_owner

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/service/owners/models"
)

// OwnerService интерфейс сервиса владельцев площадок
type OwnerService interface {
	Approve(ctx context.Context, id int64) (*models.OwnerResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
