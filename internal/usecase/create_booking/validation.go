package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	// Имя игрока обязательно и ограничено по длине
	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		return fmt.Errorf("%w: playerName is required", ErrInvalidInput)
	}
	if len([]rune(name)) > domain.MaxPlayerNameLength {
		return fmt.Errorf("%w: playerName exceeds %d characters", ErrInvalidInput, domain.MaxPlayerNameLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if !req.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidInput)
	}

	return nil
}

// validateSlotTime проверяет, что слот начинается в рабочие часы площадки
// и ровно в начале часа
func validateSlotTime(venue *domain.Venue, startTime types.TimeString) error {
	hour, err := startTime.Hour()
	if err != nil {
		return fmt.Errorf("%w: slot must start on the hour", ErrInvalidTimeSlot)
	}
	if startTime != types.NewTimeStringFromHour(hour) {
		return fmt.Errorf("%w: slot must start on the hour", ErrInvalidTimeSlot)
	}

	if !venue.ContainsHour(hour) {
		return fmt.Errorf("%w: venue operates %02d:00-%02d:00", ErrInvalidTimeSlot, venue.OpeningHour, venue.ClosingHour)
	}

	return nil
}
