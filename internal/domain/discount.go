package domain

import "time"

// DiscountCode represents a percentage discount token applied at booking time.
// Codes are matched case-sensitively. Immutable once created except by deletion.
type DiscountCode struct {
	ID        int64
	Code      string
	Percent   int // [1, 100]
	CreatedAt time.Time
}

// IsValidPercent returns true if the percent is within the allowed range
func IsValidPercent(percent int) bool {
	return percent >= MinDiscountPercent && percent <= MaxDiscountPercent
}
