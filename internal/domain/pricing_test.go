package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPeakHour(t *testing.T) {
	tests := []struct {
		hour int
		peak bool
	}{
		{hour: 16, peak: false},
		{hour: 17, peak: false},
		{hour: 18, peak: true},
		{hour: 19, peak: true},
		{hour: 20, peak: true},
		{hour: 21, peak: true},
		{hour: 22, peak: false},
		{hour: 23, peak: false},
		{hour: 0, peak: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.peak, IsPeakHour(tt.hour), "hour=%d", tt.hour)
	}
}

func TestPriceForHour(t *testing.T) {
	venue := &Venue{
		PriceOffPeak: 100,
		PricePeak:    150,
	}

	assert.Equal(t, 100.0, PriceForHour(venue, 16))
	assert.Equal(t, 150.0, PriceForHour(venue, 18))
	assert.Equal(t, 150.0, PriceForHour(venue, 21))
	assert.Equal(t, 100.0, PriceForHour(venue, 22))
}

func TestApplyDiscount(t *testing.T) {
	t.Run("nil discount keeps the price", func(t *testing.T) {
		assert.Equal(t, 100.0, ApplyDiscount(100, nil))
	})

	t.Run("percent is applied without rounding", func(t *testing.T) {
		discount := &DiscountCode{Code: "WELCOME10", Percent: 10}
		assert.InDelta(t, 90.0, ApplyDiscount(100, discount), 1e-9)

		// Дробный результат хранится как есть
		discount = &DiscountCode{Code: "LUCKY7", Percent: 7}
		assert.InDelta(t, 139.5, ApplyDiscount(150, discount), 1e-9)
	})

	t.Run("full discount gives zero", func(t *testing.T) {
		discount := &DiscountCode{Code: "FREE", Percent: 100}
		assert.InDelta(t, 0.0, ApplyDiscount(100, discount), 1e-9)
	})
}

func TestToPaymentCurrency(t *testing.T) {
	// 1 единица валюты шлюза = 3.75 локальных
	assert.InDelta(t, 40.0, ToPaymentCurrency(150), 1e-9)
	assert.InDelta(t, 26.67, ToPaymentCurrency(100), 1e-9)
	assert.InDelta(t, 0.0, ToPaymentCurrency(0), 1e-9)
}

func TestVenueSlotCount(t *testing.T) {
	venue := &Venue{OpeningHour: 16, ClosingHour: 23}
	assert.Equal(t, 7, venue.SlotCount())

	// Вырожденное окно работы не дает слотов
	venue = &Venue{OpeningHour: 18, ClosingHour: 18}
	assert.Equal(t, 0, venue.SlotCount())
}

func TestVenueContainsHour(t *testing.T) {
	venue := &Venue{OpeningHour: 16, ClosingHour: 23}

	assert.False(t, venue.ContainsHour(15))
	assert.True(t, venue.ContainsHour(16))
	assert.True(t, venue.ContainsHour(22))
	// Полуинтервал: час закрытия уже не бронируется
	assert.False(t, venue.ContainsHour(23))
}
