package domain

import "time"

// Notification represents an admin-facing event record. Appended by every
// successful state-changing operation, newest first, read flag toggled by
// the presentation layer.
type Notification struct {
	ID        int64
	Text      string
	Read      bool
	CreatedAt time.Time
}
