package domain

import "time"

// Review represents a guest review of a venue. Immutable after creation.
type Review struct {
	ID         int64
	VenueID    int64
	PlayerName string
	Rating     int // [1, 5]
	Comment    string
	CreatedAt  time.Time
}

// IsValidRating returns true if the rating is within the allowed range
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// AverageRating returns the arithmetic mean of the review ratings,
// 0 when there are no reviews
func AverageRating(reviews []*Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	return float64(sum) / float64(len(reviews))
}
