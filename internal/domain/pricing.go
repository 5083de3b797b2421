package domain

import "math"

// IsPeakHour returns true if the hour falls inside the inclusive peak
// window [PeakHourStart, PeakHourEnd]
func IsPeakHour(hour int) bool {
	return hour >= PeakHourStart && hour <= PeakHourEnd
}

// PriceForHour returns the venue's unit price for a slot starting at hour
func PriceForHour(v *Venue, hour int) float64 {
	if IsPeakHour(hour) {
		return v.PricePeak
	}
	return v.PriceOffPeak
}

// ApplyDiscount returns the price after applying a discount code.
// A nil discount leaves the price unchanged. No rounding is applied:
// fractional amounts are valid and stored as-is.
func ApplyDiscount(basePrice float64, discount *DiscountCode) float64 {
	if discount == nil {
		return basePrice
	}
	return basePrice * (1 - float64(discount.Percent)/100)
}

// ToPaymentCurrency converts a local amount to the payment gateway currency
// at the fixed platform rate, rounded to 2 decimal places. Presentation
// value only; the stored final price stays in the local currency.
func ToPaymentCurrency(amount float64) float64 {
	return math.Round(amount/PaymentConversionRate*100) / 100
}
