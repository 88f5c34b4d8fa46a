package models

import (
	"time"

	"github.com/google/uuid"
)

// Object is the physical item a certificate is issued for. Created exactly
// once per certificate, at materialization time.
type Object struct {
	ID           uuid.UUID
	Type         string
	Brand        string
	Model        string
	Reference    string
	SerialNumber string
	OwnerID      uuid.UUID
	CreatedAt    time.Time
}
