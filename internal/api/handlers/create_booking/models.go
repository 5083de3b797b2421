package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	createBooking "github.com/m04kA/SVP-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/SVP-BookingService/pkg/types"
)

// CreateBookingRequest HTTP модель запроса на создание бронирования
type CreateBookingRequest struct {
	VenueID       int64   `json:"venueId"`
	PlayerName    string  `json:"playerName"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	DiscountCode  *string `json:"discountCode,omitempty"`
	PaymentMethod string  `json:"paymentMethod"`
}

// ToUseCaseRequest конвертирует HTTP модель в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q: %w", r.StartTime, err)
	}

	return &createBooking.Request{
		VenueID:       r.VenueID,
		PlayerName:    r.PlayerName,
		Date:          date,
		StartTime:     startTime,
		DiscountCode:  r.DiscountCode,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}, nil
}

// BookingResponse HTTP модель созданного бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	VenueID         int64  `json:"venueId"`
	PlayerName      string `json:"playerName"`
	BookingDate     string `json:"bookingDate"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`

	BasePrice    float64 `json:"basePrice"`
	DiscountCode *string `json:"discountCode,omitempty"`
	FinalPrice   float64 `json:"finalPrice"`

	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`
	TransactionID *string `json:"transactionId,omitempty"`

	VenueName     string `json:"venueName"`
	VenueLocation string `json:"venueLocation"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		VenueID:         resp.VenueID,
		PlayerName:      resp.PlayerName,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		BasePrice:       resp.BasePrice,
		DiscountCode:    resp.DiscountCode,
		FinalPrice:      resp.FinalPrice,
		PaymentMethod:   string(resp.PaymentMethod),
		PaymentStatus:   string(resp.PaymentStatus),
		TransactionID:   resp.TransactionID,
		VenueName:       resp.VenueName,
		VenueLocation:   resp.VenueLocation,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}
