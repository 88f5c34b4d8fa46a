package models

type UpsertDraftRequest struct {
	ID                 string       `json:"id" example:"CERT-1"`
	CustomerData       CustomerData `json:"customer_data"`
	ObjectType         string       `json:"object_type,omitempty"`
	ObjectBrand        string       `json:"object_brand,omitempty"`
	ObjectModel        string       `json:"object_model,omitempty"`
	ObjectReference    string       `json:"object_reference,omitempty"`
	ObjectSerialNumber string       `json:"object_serial_number,omitempty"`
	CertificateTypeID  string       `json:"certificate_type_id,omitempty"`
	PaymentMethodID    string       `json:"payment_method_id,omitempty"`
}

type VerifyPaymentRequest struct {
	SessionID string `json:"session_id" example:"cs_test_123"`
}

type SubmitInspectionRequest struct {
	Result        string   `json:"result" example:"AuthenticItem"`
	SuspectPoints []string `json:"suspect_points,omitempty"`
	Photos        []string `json:"photos"`
	Comment       string   `json:"comment,omitempty"`
}

type SendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}
