package domain

import "time"

// ChatSender identifies the author of a chat message
type ChatSender string

const (
	SenderUser  ChatSender = "user"
	SenderAdmin ChatSender = "admin"
)

// IsValid returns true for a known sender
func (s ChatSender) IsValid() bool {
	return s == SenderUser || s == SenderAdmin
}

// ChatMessage represents one message in a booking's payment-confirmation
// thread. Messages are append-only per booking, ordered by send time.
type ChatMessage struct {
	ID        int64
	BookingID int64
	Sender    ChatSender
	Text      string
	ImageURL  *string
	CreatedAt time.Time
}
