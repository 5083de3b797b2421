package get_notifications

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/service/notifications/models"
)

// NotificationService интерфейс сервиса уведомлений
type NotificationService interface {
	List(ctx context.Context) (*models.NotificationListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
