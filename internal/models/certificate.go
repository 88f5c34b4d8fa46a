package models

import (
	"time"

	"github.com/google/uuid"
)

// Status is the processing state of a certificate.
type Status string

const (
	StatusPendingPayment       Status = "PendingPayment"
	StatusPaymentConfirmed     Status = "PaymentConfirmed"
	StatusInspectionCompleted  Status = "InspectionCompleted"
	StatusPendingCertification Status = "PendingCertification"
	StatusCompleted            Status = "Completed"
	StatusCancelled            Status = "Cancelled"
)

// validTransitions holds the allowed status moves. Any non-terminal state may
// also move to Cancelled.
var validTransitions = map[Status][]Status{
	StatusPendingPayment:       {StatusPaymentConfirmed},
	StatusPaymentConfirmed:     {StatusInspectionCompleted, StatusCompleted},
	StatusInspectionCompleted:  {StatusPendingCertification},
	StatusPendingCertification: {StatusCompleted},
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether a certificate may move from s to next.
func (s Status) CanTransition(next Status) bool {
	if next == StatusCancelled {
		return !s.IsTerminal()
	}
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// VerificationStatus is a trust-level marker independent of the processing
// status. It only ever advances.
type VerificationStatus string

const (
	VerificationRegistered    VerificationStatus = "Registered"
	VerificationAuthenticated VerificationStatus = "Authenticated"
	VerificationCertified     VerificationStatus = "Certified"
)

func (v VerificationStatus) Rank() int {
	switch v {
	case VerificationAuthenticated:
		return 1
	case VerificationCertified:
		return 2
	default:
		return 0
	}
}

// Certificate is the durable record produced by materializing a draft. Its id
// is the originating draft's id.
type Certificate struct {
	ID                 string
	ObjectID           uuid.UUID
	CustomerID         uuid.UUID
	CreatedBy          string
	CertificateTypeID  string
	PaymentMethodID    string
	Status             Status
	VerificationStatus VerificationStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CertificateType is a purchasable certification service.
type CertificateType struct {
	ID    string
	Name  string
	Price float64
	// ExcludedReportFormFields toggles which of the condition report's
	// graded attributes apply for this certificate type.
	ExcludedReportFormFields []string
}

// PaymentMethod distinguishes hosted checkout from in-person payment paths.
type PaymentMethod struct {
	ID       string
	Name     string
	IsOnline bool
}
