package domain

import "time"

// OwnerStatus represents the approval state of a venue owner account
type OwnerStatus string

const (
	OwnerStatusPending  OwnerStatus = "pending"
	OwnerStatusApproved OwnerStatus = "approved"
)

// Owner represents a venue owner account. Registration lands in pending;
// an admin approval moves it to approved exactly once.
type Owner struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Status    OwnerStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsApproved returns true once an admin has approved the account
func (o *Owner) IsApproved() bool {
	return o.Status == OwnerStatusApproved
}
