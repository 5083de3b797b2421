package get_available_slots

import (
	"time"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/pkg/types"
)

// buildDaySlots строит все слоты дня для площадки.
// Слоты почасовые, на полуоткрытом интервале [OpeningHour, ClosingHour):
// площадка с окном 16..23 дает семь слотов, последний начинается в 22:00.
// Цена каждого слота определяется пиковым окном
func buildDaySlots(venue *domain.Venue) []Slot {
	slots := make([]Slot, 0, venue.SlotCount())

	for hour := venue.OpeningHour; hour < venue.ClosingHour; hour++ {
		slots = append(slots, Slot{
			StartTime:       types.NewTimeStringFromHour(hour),
			DurationMinutes: venue.SlotDurationMinutes,
			Price:           domain.PriceForHour(venue, hour),
			IsPeak:          domain.IsPeakHour(hour),
			Available:       true,
		})
	}

	return slots
}

// markBookedSlots помечает занятые слоты.
// Слот блокирует только подтвержденное бронирование: бронирование в статусе
// pending слот не занимает, и несколько гостей могут одновременно дойти до
// подтверждения в чате. Выигрывает тот, кого администратор подтвердит первым
func markBookedSlots(slots []Slot, bookings []*domain.Booking) []Slot {
	booked := make(map[types.TimeString]struct{}, len(bookings))
	for _, b := range bookings {
		if b.BlocksSlot() {
			booked[b.StartTime] = struct{}{}
		}
	}

	for i := range slots {
		if _, ok := booked[slots[i].StartTime]; ok {
			slots[i].Available = false
		}
	}

	return slots
}

// markPastSlots помечает недоступными сегодняшние слоты, чье время начала
// уже прошло. Будущие даты остаются нетронутыми
func markPastSlots(slots []Slot, requestDate time.Time, now time.Time) []Slot {
	if !isSameDay(requestDate, now) {
		return slots
	}

	currentTime := types.NewTimeString(now)
	for i := range slots {
		if slots[i].StartTime.IsBefore(currentTime) {
			slots[i].Available = false
		}
	}

	return slots
}

func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
