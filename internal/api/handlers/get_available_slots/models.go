package get_available_slots

import (
	"github.com/m04kA/SVP-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SVP-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	IsPeak          bool    `json:"isPeak"`
	Available       bool    `json:"available"`
}

// SlotsResponse HTTP модель ответа со слотами на день
type SlotsResponse struct {
	VenueID int64          `json:"venueId"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			IsPeak:          s.IsPeak,
			Available:       s.Available,
		})
	}

	return &SlotsResponse{
		VenueID: resp.VenueID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}
