package domain

import "github.com/m04kA/SVP-BookingService/pkg/types"

// Slot represents a one-hour bookable interval at a venue on a given date
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Price           float64
	Available       bool
}

// IsPeak returns true if the slot starts inside the peak pricing window
func (s *Slot) IsPeak() bool {
	hour, err := s.StartTime.Hour()
	if err != nil {
		return false
	}
	return IsPeakHour(hour)
}
