package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SVP-BookingService/pkg/geo"
)

func TestPaymentStatusTransitions(t *testing.T) {
	assert.True(t, StatusPendingPaymentConfirmation.CanTransitionTo(StatusConfirmed))
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusPendingPaymentConfirmation))
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusConfirmed))
}

func TestBookingBlocksSlot(t *testing.T) {
	confirmed := &Booking{PaymentStatus: StatusConfirmed}
	pending := &Booking{PaymentStatus: StatusPendingPaymentConfirmation}

	assert.True(t, confirmed.BlocksSlot())
	// Неподтвержденная бронь намеренно не блокирует слот
	assert.False(t, pending.BlocksSlot())
}

func TestPaymentMethodIsValid(t *testing.T) {
	assert.True(t, MethodOnline.IsValid())
	assert.True(t, MethodManual.IsValid())
	assert.False(t, PaymentMethod("cash").IsValid())
	assert.False(t, PaymentMethod("").IsValid())
}

func TestVenueSnapshotIsIndependent(t *testing.T) {
	ownerID := int64(7)
	count := 20
	venue := &Venue{
		ID:             1,
		OwnerID:        &ownerID,
		Sport:          SportEsports,
		Name:           "Cyber Arena",
		EquipmentCount: &count,
		AvailableGames: []string{"dota2", "cs2"},
	}

	snapshot := venue.Snapshot()

	*venue.OwnerID = 99
	*venue.EquipmentCount = 5
	venue.AvailableGames[0] = "fortnite"
	venue.Name = "Renamed"

	assert.Equal(t, int64(7), *snapshot.OwnerID)
	assert.Equal(t, 20, *snapshot.EquipmentCount)
	assert.Equal(t, "dota2", snapshot.AvailableGames[0])
	assert.Equal(t, "Cyber Arena", snapshot.Name)
}

func TestVenueSnapshotSurvivesJSONRoundTrip(t *testing.T) {
	// Снимок площадки хранится в бронировании как jsonb и должен
	// восстанавливаться без потерь
	ownerID := int64(7)
	count := 20
	original := Venue{
		ID:                  1,
		OwnerID:             &ownerID,
		Sport:               SportEsports,
		Name:                "Cyber Arena",
		City:                "Riyadh",
		Contact:             "+966501234567",
		Location:            "King Fahd Rd",
		Coordinates:         &geo.Point{Lat: 24.7136, Lng: 46.6753},
		Surface:             "indoor",
		Size:                "20 мест",
		Lights:              true,
		Details:             "RTX 4080",
		OpeningHour:         16,
		ClosingHour:         23,
		SlotDurationMinutes: 60,
		PriceOffPeak:        50,
		PricePeak:           80,
		EquipmentCount:      &count,
		AvailableGames:      []string{"dota2", "cs2"},
		CreatedAt:           time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
		UpdatedAt:           time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original.Snapshot())
	require.NoError(t, err)

	var restored Venue
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, original, restored)
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))

	reviews := []*Review{
		{Rating: 5},
		{Rating: 3},
		{Rating: 4},
	}
	assert.InDelta(t, 4.0, AverageRating(reviews), 1e-9)
}

func TestIsValidRating(t *testing.T) {
	assert.False(t, IsValidRating(0))
	assert.True(t, IsValidRating(1))
	assert.True(t, IsValidRating(5))
	assert.False(t, IsValidRating(6))
}

func TestIsValidPercent(t *testing.T) {
	assert.False(t, IsValidPercent(0))
	assert.True(t, IsValidPercent(1))
	assert.True(t, IsValidPercent(100))
	assert.False(t, IsValidPercent(101))
}
