package get_available_slots

import (
	"time"

	"github.com/m04kA/SVP-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	VenueID int64     // ID площадки
	Date    time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов на день
type Response struct {
	VenueID int64     // ID площадки
	Date    time.Time // Дата, на которую запрашивались слоты
	Slots   []Slot    // Все слоты дня, занятые помечены
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "18:00")
	DurationMinutes int              // Длительность слота в минутах
	Price           float64          // Цена слота с учетом пикового времени
	IsPeak          bool             // Слот попадает в пиковое окно
	Available       bool             // Слот свободен для бронирования
}
