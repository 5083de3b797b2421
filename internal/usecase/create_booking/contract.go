package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SVP-BookingService/internal/integrations/payment"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter booking.Filter) ([]*domain.Booking, error)
}

// DiscountRepository интерфейс репозитория промокодов
type DiscountRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.DiscountCode, error)
}

// ChatRepository интерфейс репозитория чатов бронирований
type ChatRepository interface {
	Create(ctx context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error)
}

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

// PaymentClient интерфейс клиента платежного шлюза
type PaymentClient interface {
	Charge(ctx context.Context, req payment.ChargeRequest) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
