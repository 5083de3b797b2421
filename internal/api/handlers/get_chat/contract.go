package get_chat

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/service/chats/models"
)

// ChatService интерфейс сервиса чатов бронирований
type ChatService interface {
	ListByBooking(ctx context.Context, bookingID int64) (*models.MessageListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
