package models

import (
	"errors"
	"time"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/internal/infra/storage/booking"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе оплаты
	ErrInvalidStatus = errors.New("invalid payment status")
)

// Request модели

// ListBookingsRequest запрос на получение бронирований с фильтрацией
type ListBookingsRequest struct {
	VenueID *int64     `json:"venueId,omitempty"` // Фильтр по площадке (опционально)
	Date    *time.Time `json:"date,omitempty"`    // Фильтр по дате (опционально)
	Status  *string    `json:"status,omitempty"`  // Фильтр по статусу (опционально)
}

// ToStorageFilter конвертирует request в фильтр репозитория
func (r *ListBookingsRequest) ToStorageFilter() (booking.Filter, error) {
	filter := booking.Filter{
		VenueID: r.VenueID,
		Date:    r.Date,
	}

	if r.Status != nil {
		status := domain.PaymentStatus(*r.Status)
		if !status.IsValid() {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	VenueID         int64  `json:"venueId"`
	PlayerName      string `json:"playerName"`
	BookingDate     string `json:"bookingDate"` // "2026-03-15"
	StartTime       string `json:"startTime"`   // "18:00"
	DurationMinutes int    `json:"durationMinutes"`

	BasePrice    float64 `json:"basePrice"`
	DiscountCode *string `json:"discountCode,omitempty"`
	FinalPrice   float64 `json:"finalPrice"`

	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`
	TransactionID *string `json:"transactionId,omitempty"`

	// Снимок площадки на момент брони
	Venue VenueSnapshot `json:"venue"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VenueSnapshot денормализованные данные площадки внутри бронирования
type VenueSnapshot struct {
	ID       int64  `json:"id"`
	Sport    string `json:"sport"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Location string `json:"location"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		VenueID:         b.VenueID,
		PlayerName:      b.PlayerName,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.Venue.SlotDurationMinutes,
		BasePrice:       b.BasePrice,
		DiscountCode:    b.DiscountCode,
		FinalPrice:      b.FinalPrice,
		PaymentMethod:   string(b.PaymentMethod),
		PaymentStatus:   string(b.PaymentStatus),
		TransactionID:   b.TransactionID,
		Venue: VenueSnapshot{
			ID:       b.Venue.ID,
			Sport:    string(b.Venue.Sport),
			Name:     b.Venue.Name,
			City:     b.Venue.City,
			Location: b.Venue.Location,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}

	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
