package domain

import "time"

// Tournament represents an owner-organized tournament hosted at a venue.
// Like bookings, it carries an owned venue snapshot taken at creation time.
type Tournament struct {
	ID      int64
	VenueID int64
	Venue   Venue

	Sport   Sport
	Name    string
	Date    time.Time
	Fee     float64
	Details string

	RegisteredPlayers []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
