package bookings

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter booking.Filter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	Delete(ctx context.Context, id int64) error
}

// ChatRepository интерфейс репозитория чатов бронирований
type ChatRepository interface {
	Create(ctx context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error)
	DeleteByBooking(ctx context.Context, bookingID int64) error
}

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
