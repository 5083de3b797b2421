package domain

import (
	"time"

	"github.com/m04kA/SVP-BookingService/pkg/geo"
)

// Sport represents a venue's sport category
type Sport string

const (
	SportFootball   Sport = "football"
	SportVolleyball Sport = "volleyball"
	SportBasketball Sport = "basketball"
	SportTennis     Sport = "tennis"
	SportSwimming   Sport = "swimming"
	SportEsports    Sport = "esports"
)

// Sports lists all supported sport categories
var Sports = []Sport{
	SportFootball,
	SportVolleyball,
	SportBasketball,
	SportTennis,
	SportSwimming,
	SportEsports,
}

// IsValid returns true if the sport is one of the supported categories
func (s Sport) IsValid() bool {
	for _, sport := range Sports {
		if s == sport {
			return true
		}
	}
	return false
}

// Venue represents a bookable sports venue
type Venue struct {
	ID      int64  `json:"id"`
	OwnerID *int64 `json:"ownerId,omitempty"` // nil = unassigned
	Sport   Sport  `json:"sport"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Contact string `json:"contact"`
	// Location is the human-readable address; Coordinates may be absent
	Location    string     `json:"location"`
	Coordinates *geo.Point `json:"coordinates,omitempty"`

	Surface string `json:"surface"`
	Size    string `json:"size"`
	Lights  bool   `json:"lights"`
	Details string `json:"details,omitempty"`

	// Operating window is the half-open hour interval [OpeningHour, ClosingHour)
	OpeningHour         int `json:"openingHour"`
	ClosingHour         int `json:"closingHour"`
	SlotDurationMinutes int `json:"slotDurationMinutes"`

	PriceOffPeak float64 `json:"priceOffPeak"`
	PricePeak    float64 `json:"pricePeak"`

	// Esports-specific attributes, nil/empty for other sports
	EquipmentCount *int     `json:"equipmentCount,omitempty"`
	AvailableGames []string `json:"availableGames,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsEsports returns true for esports centers, which carry extra attributes
func (v *Venue) IsEsports() bool {
	return v.Sport == SportEsports
}

// SlotCount returns the number of bookable slots per day
func (v *Venue) SlotCount() int {
	if v.ClosingHour <= v.OpeningHour {
		return 0
	}
	return v.ClosingHour - v.OpeningHour
}

// ContainsHour returns true if the hour falls inside the operating window
func (v *Venue) ContainsHour(hour int) bool {
	return hour >= v.OpeningHour && hour < v.ClosingHour
}

// Snapshot returns an owned deep copy of the venue for denormalization
// inside a booking. The copy stays readable even if the venue is later
// modified or deleted.
func (v *Venue) Snapshot() Venue {
	snapshot := *v

	if v.OwnerID != nil {
		ownerID := *v.OwnerID
		snapshot.OwnerID = &ownerID
	}
	if v.Coordinates != nil {
		point := *v.Coordinates
		snapshot.Coordinates = &point
	}
	if v.EquipmentCount != nil {
		count := *v.EquipmentCount
		snapshot.EquipmentCount = &count
	}
	if v.AvailableGames != nil {
		games := make([]string, len(v.AvailableGames))
		copy(games, v.AvailableGames)
		snapshot.AvailableGames = games
	}

	return snapshot
}
