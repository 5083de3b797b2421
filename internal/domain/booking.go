package domain

import (
	"time"

	"github.com/m04kA/SVP-BookingService/pkg/types"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	// StatusPendingPaymentConfirmation booking awaits manual, chat-based
	// payment verification by an administrator
	StatusPendingPaymentConfirmation PaymentStatus = "pending_payment_confirmation"

	// StatusConfirmed payment verified; the booking reserves its slot
	StatusConfirmed PaymentStatus = "confirmed"
)

// IsValid returns true for a known payment status
func (s PaymentStatus) IsValid() bool {
	return s == StatusPendingPaymentConfirmation || s == StatusConfirmed
}

// CanTransitionTo reports whether the status may move to next.
// The only legal transition is pending -> confirmed; a booking never
// moves back to pending.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return s == StatusPendingPaymentConfirmation && next == StatusConfirmed
}

// PaymentMethod represents how the guest pays for a booking
type PaymentMethod string

const (
	// MethodOnline automated gateway payment, confirmed immediately on success
	MethodOnline PaymentMethod = "online"

	// MethodManual offline payment verified by an admin through the booking chat
	MethodManual PaymentMethod = "manual"
)

// IsValid returns true for a known payment method
func (m PaymentMethod) IsValid() bool {
	return m == MethodOnline || m == MethodManual
}

// Booking represents a slot booking at a venue
type Booking struct {
	ID      int64
	VenueID int64

	// Venue is an immutable denormalized copy taken at booking time.
	// The booking history stays readable even after the venue is deleted.
	Venue Venue

	PlayerName  string
	BookingDate time.Time
	StartTime   types.TimeString

	BasePrice    float64
	DiscountCode *string
	FinalPrice   float64

	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	TransactionID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true once payment has been verified
func (b *Booking) IsConfirmed() bool {
	return b.PaymentStatus == StatusConfirmed
}

// BlocksSlot reports whether the booking reserves its slot.
// Only confirmed bookings block; pending bookings deliberately leave the
// slot available, so two guests may both reach chat confirmation for the
// same slot. The first admin confirmation wins.
func (b *Booking) BlocksSlot() bool {
	return b.PaymentStatus == StatusConfirmed
}
