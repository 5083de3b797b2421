package chats

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/domain"
)

// ChatRepository интерфейс репозитория чатов бронирований
type ChatRepository interface {
	Create(ctx context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.ChatMessage, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
