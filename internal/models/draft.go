package models

import (
	"database/sql"
	"time"
)

// CustomerData is the contact snapshot embedded in a draft. No account may
// exist yet when the draft is created, so this is not a foreign key.
type CustomerData struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Draft is an in-progress certification request, keyed by a client-generated
// id. The draft id becomes the certificate id once the draft is materialized.
type Draft struct {
	ID                 string
	CustomerData       CustomerData
	ObjectType         string
	ObjectBrand        string
	ObjectModel        string
	ObjectReference    string
	ObjectSerialNumber string
	CertificateTypeID  string
	PaymentMethodID    string
	CreatedBy          string
	StripeSessionID    sql.NullString
	PaymentLinkSent    bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
