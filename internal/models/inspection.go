package models

import (
	"time"

	"github.com/google/uuid"
)

// InspectionResult is the outcome of a partner's physical inspection.
type InspectionResult string

const (
	ResultAuthenticItem   InspectionResult = "AuthenticItem"
	ResultInauthenticItem InspectionResult = "InauthenticItem"
)

// MinInspectionPhotos is the documented precondition on inspection
// submissions: the photo set must contain at least this many images.
const MinInspectionPhotos = 5

// Suspect-point option sets differ by result. An inauthentic finding can flag
// any component; an authentic item may only carry accessory caveats.
var (
	inauthenticSuspectPoints = []string{
		"dial", "hands", "movement", "case", "case_back", "crown", "bezel",
		"crystal", "bracelet", "clasp", "serial_number", "engravings",
		"documents", "packaging",
	}
	authenticCaveatPoints = []string{
		"bracelet", "clasp", "documents", "packaging",
	}
)

// SuspectPointOptions returns the option set valid for the given result.
func SuspectPointOptions(result InspectionResult) []string {
	if result == ResultInauthenticItem {
		return inauthenticSuspectPoints
	}
	return authenticCaveatPoints
}

// ValidSuspectPoints reports whether every point is a member of the option
// set for the given result.
func ValidSuspectPoints(result InspectionResult, points []string) bool {
	options := SuspectPointOptions(result)
	for _, p := range points {
		found := false
		for _, opt := range options {
			if p == opt {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// CertificateInspection records a single physical inspection of the object
// behind a certificate. Immutable once created.
type CertificateInspection struct {
	ID            uuid.UUID
	CertificateID string
	InspectedBy   string
	Result        InspectionResult
	SuspectPoints []string
	Photos        []string
	Comment       string
	CreatedAt     time.Time
}
