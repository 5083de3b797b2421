package confirm_booking

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	ConfirmPayment(ctx context.Context, id int64) (*models.BookingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
