package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a customer account. Profiles provisioned automatically during
// checkout carry IsGuest until the customer activates the account through a
// one-time setup link.
type Profile struct {
	ID         uuid.UUID
	Email      string
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Country    string
	IsGuest    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
