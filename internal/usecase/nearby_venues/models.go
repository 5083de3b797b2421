package nearby_venues

import (
	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/pkg/geo"
)

// NoLimit отключает ограничение на размер ответа (явный фильтр по
// расстоянию отдает все подошедшие площадки)
const NoLimit = -1

// Request модель запроса ближайших площадок
type Request struct {
	// Координаты клиента, если браузер их передал
	Position *geo.Point

	// SessionID для запроса позиции у геосервиса, когда координат нет
	SessionID string

	// Фильтр по виду спорта (опционально)
	Sport *domain.Sport

	// MaxDistanceKm порог расстояния, 0 = значение по умолчанию.
	// Площадки дальше порога (и без координат) в ответ не попадают
	MaxDistanceKm float64

	// Limit максимум площадок в ответе, 0 = значение по умолчанию,
	// NoLimit = без ограничения
	Limit int
}

// Response модель ответа со списком площадок, ближайшие сначала
type Response struct {
	Venues []VenueWithDistance
}

// VenueWithDistance площадка с расстоянием до клиента в километрах.
// DistanceKm равен +Inf, если у площадки нет координат
type VenueWithDistance struct {
	Venue      *domain.Venue
	DistanceKm float64
}
