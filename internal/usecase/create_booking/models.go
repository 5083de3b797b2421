package create_booking

import (
	"time"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	VenueID       int64                // ID площадки
	PlayerName    string               // Имя игрока
	Date          time.Time            // Дата бронирования (без времени)
	StartTime     types.TimeString     // Время начала слота (например, "18:00")
	DiscountCode  *string              // Промокод (опционально)
	PaymentMethod domain.PaymentMethod // online | manual
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	VenueID         int64            // ID площадки
	PlayerName      string           // Имя игрока
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах

	BasePrice    float64 // Цена слота до скидки
	DiscountCode *string // Примененный промокод
	FinalPrice   float64 // Итоговая цена

	PaymentMethod domain.PaymentMethod // Способ оплаты
	PaymentStatus domain.PaymentStatus // Статус оплаты
	TransactionID *string              // ID транзакции шлюза (для online)

	// Денормализованные данные площадки на момент брони
	VenueName     string
	VenueLocation string

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
