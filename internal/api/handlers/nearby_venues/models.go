package nearby_venues

import (
	"math"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	nearbyVenues "github.com/m04kA/SVP-BookingService/internal/usecase/nearby_venues"
)

// VenueResponse HTTP модель площадки с расстоянием
type VenueResponse struct {
	ID       int64  `json:"id"`
	Sport    string `json:"sport"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Location string `json:"location"`

	PriceOffPeak float64 `json:"priceOffPeak"`
	PricePeak    float64 `json:"pricePeak"`

	// DistanceKm отсутствует в ответе, если у площадки нет координат
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// NearbyVenuesResponse HTTP модель ответа
type NearbyVenuesResponse struct {
	Venues []VenueResponse `json:"venues"`
	Total  int             `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *nearbyVenues.Response) *NearbyVenuesResponse {
	result := make([]VenueResponse, 0, len(resp.Venues))

	for _, v := range resp.Venues {
		item := VenueResponse{
			ID:           v.Venue.ID,
			Sport:        string(v.Venue.Sport),
			Name:         v.Venue.Name,
			City:         v.Venue.City,
			Location:     v.Venue.Location,
			PriceOffPeak: v.Venue.PriceOffPeak,
			PricePeak:    v.Venue.PricePeak,
		}

		// +Inf в JSON не сериализуется, площадки без координат идут без расстояния
		if !math.IsInf(v.DistanceKm, 1) {
			distance := v.DistanceKm
			item.DistanceKm = &distance
		}

		result = append(result, item)
	}

	return &NearbyVenuesResponse{
		Venues: result,
		Total:  len(result),
	}
}

// parseSport валидирует фильтр по виду спорта из query
func parseSport(s string) (*domain.Sport, bool) {
	if s == "" {
		return nil, true
	}

	sport := domain.Sport(s)
	if !sport.IsValid() {
		return nil, false
	}

	return &sport, true
}
