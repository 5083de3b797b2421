package models

import (
	"time"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/pkg/geo"
)

// Request модели

// CreateVenueRequest запрос на создание площадки
type CreateVenueRequest struct {
	OwnerID  *int64  `json:"ownerId,omitempty"`
	Sport    string  `json:"sport"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Contact  string  `json:"contact"`
	Location string  `json:"location"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`

	Surface string `json:"surface"`
	Size    string `json:"size"`
	Lights  bool   `json:"lights"`
	Details string `json:"details,omitempty"`

	// Нулевые значения заменяются дефолтами площадки
	OpeningHour         *int `json:"openingHour,omitempty"`
	ClosingHour         *int `json:"closingHour,omitempty"`
	SlotDurationMinutes *int `json:"slotDurationMinutes,omitempty"`

	PriceOffPeak float64 `json:"priceOffPeak"`
	PricePeak    float64 `json:"pricePeak"`

	// Поля киберспортивных центров
	EquipmentCount *int     `json:"equipmentCount,omitempty"`
	AvailableGames []string `json:"availableGames,omitempty"`
}

// ToDomain конвертирует request в domain модель с подстановкой дефолтов
func (r *CreateVenueRequest) ToDomain() *domain.Venue {
	venue := &domain.Venue{
		OwnerID:             r.OwnerID,
		Sport:               domain.Sport(r.Sport),
		Name:                r.Name,
		City:                r.City,
		Contact:             r.Contact,
		Location:            r.Location,
		Surface:             r.Surface,
		Size:                r.Size,
		Lights:              r.Lights,
		Details:             r.Details,
		OpeningHour:         domain.DefaultOpeningHour,
		ClosingHour:         domain.DefaultClosingHour,
		SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
		PriceOffPeak:        r.PriceOffPeak,
		PricePeak:           r.PricePeak,
		EquipmentCount:      r.EquipmentCount,
		AvailableGames:      r.AvailableGames,
	}

	if r.Lat != nil && r.Lng != nil {
		venue.Coordinates = &geo.Point{Lat: *r.Lat, Lng: *r.Lng}
	}
	if r.OpeningHour != nil {
		venue.OpeningHour = *r.OpeningHour
	}
	if r.ClosingHour != nil {
		venue.ClosingHour = *r.ClosingHour
	}
	if r.SlotDurationMinutes != nil {
		venue.SlotDurationMinutes = *r.SlotDurationMinutes
	}

	return venue
}

// Response модели

// VenueResponse ответ с данными площадки
type VenueResponse struct {
	ID       int64    `json:"id"`
	OwnerID  *int64   `json:"ownerId,omitempty"`
	Sport    string   `json:"sport"`
	Name     string   `json:"name"`
	City     string   `json:"city"`
	Contact  string   `json:"contact"`
	Location string   `json:"location"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`

	Surface string `json:"surface"`
	Size    string `json:"size"`
	Lights  bool   `json:"lights"`
	Details string `json:"details,omitempty"`

	OpeningHour         int `json:"openingHour"`
	ClosingHour         int `json:"closingHour"`
	SlotDurationMinutes int `json:"slotDurationMinutes"`

	PriceOffPeak float64 `json:"priceOffPeak"`
	PricePeak    float64 `json:"pricePeak"`

	EquipmentCount *int     `json:"equipmentCount,omitempty"`
	AvailableGames []string `json:"availableGames,omitempty"`

	// Средний рейтинг по отзывам, 0 при отсутствии отзывов
	AverageRating float64 `json:"averageRating"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VenueListResponse ответ со списком площадок
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
	Total  int             `json:"total"`
}

// FromDomainVenue конвертирует domain модель в response
func FromDomainVenue(v *domain.Venue, averageRating float64) *VenueResponse {
	resp := &VenueResponse{
		ID:                  v.ID,
		OwnerID:             v.OwnerID,
		Sport:               string(v.Sport),
		Name:                v.Name,
		City:                v.City,
		Contact:             v.Contact,
		Location:            v.Location,
		Surface:             v.Surface,
		Size:                v.Size,
		Lights:              v.Lights,
		Details:             v.Details,
		OpeningHour:         v.OpeningHour,
		ClosingHour:         v.ClosingHour,
		SlotDurationMinutes: v.SlotDurationMinutes,
		PriceOffPeak:        v.PriceOffPeak,
		PricePeak:           v.PricePeak,
		EquipmentCount:      v.EquipmentCount,
		AvailableGames:      v.AvailableGames,
		AverageRating:       averageRating,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}

	if v.Coordinates != nil {
		resp.Lat = &v.Coordinates.Lat
		resp.Lng = &v.Coordinates.Lng
	}

	return resp
}
