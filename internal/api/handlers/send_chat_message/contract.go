package send_chat_message

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/service/chats/models"
)

// ChatService интерфейс сервиса чатов бронирований
type ChatService interface {
	SendMessage(ctx context.Context, req *models.SendMessageRequest) (*models.MessageResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
