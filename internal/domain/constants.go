package domain

// Peak pricing window. Hours inside [PeakHourStart, PeakHourEnd] (inclusive)
// are billed at the venue's peak price. Fixed platform-wide, not per-venue.
const (
	PeakHourStart = 18
	PeakHourEnd   = 21
)

// Default venue slot configuration
const (
	DefaultSlotDurationMinutes = 60
	DefaultOpeningHour         = 16
	DefaultClosingHour         = 23
)

// Business validation constants
const (
	MinHour = 0
	MaxHour = 24

	MinRating = 1
	MaxRating = 5

	MinDiscountPercent = 1
	MaxDiscountPercent = 100

	MaxPlayerNameLength = 200
	MaxCommentLength    = 1000
	MaxChatTextLength   = 2000
)

// PaymentConversionRate fixed conversion rate from the local currency to the
// payment gateway currency (1 gateway unit = 3.75 local units). The converted
// amount is a presentation value for the gateway, never stored as authoritative.
const PaymentConversionRate = 3.75

// NearbyVenuesLimit maximum number of venues in the "nearby" view
const NearbyVenuesLimit = 5

// DefaultMaxDistanceKm distance threshold applied when the client does not
// supply one. Venues farther away (or without coordinates) are filtered out
const DefaultMaxDistanceKm = 10.0

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
