package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type DraftResponse struct {
	Success         bool      `json:"success"`
	ID              string    `json:"id"`
	StripeSessionID string    `json:"stripe_session_id,omitempty"`
	PaymentLinkSent bool      `json:"payment_link_sent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CheckoutSessionResponse struct {
	Success    bool   `json:"success"`
	SessionID  string `json:"session_id"`
	SessionURL string `json:"session_url"`
	// EmailSent is false when the payment-request email could not be
	// dispatched; the session itself is still valid.
	EmailSent bool   `json:"email_sent"`
	Warning   string `json:"warning,omitempty"`
}

type VerifyPaymentResponse struct {
	Success       bool   `json:"success"`
	Paid          bool   `json:"paid"`
	CertificateID string `json:"certificate_id,omitempty"`
}

type CertificateResponse struct {
	Success            bool   `json:"success"`
	ID                 string `json:"id"`
	Status             string `json:"status"`
	VerificationStatus string `json:"verification_status"`
	// InspectionResult is present once a physical inspection has been
	// recorded for the certificate.
	InspectionResult   string    `json:"inspection_result,omitempty"`
	ObjectID           string    `json:"object_id"`
	CustomerID         string    `json:"customer_id"`
	CertificateTypeID  string    `json:"certificate_type_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type InspectionResponse struct {
	Success       bool   `json:"success"`
	InspectionID  string `json:"inspection_id"`
	CertificateID string `json:"certificate_id"`
	Result        string `json:"result"`
	Status        string `json:"status"`
}

type SendEmailResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
