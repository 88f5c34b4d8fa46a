package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"luxcert-backend/internal/mailer"
	"luxcert-backend/internal/models"
	"luxcert-backend/internal/stripe"
)

// Store is the persistence surface the lifecycle depends on, implemented by
// supabase.DatabaseClient.
type Store interface {
	GetDraft(id string) (*models.Draft, error)
	SetDraftSession(id, sessionID string) error
	MarkPaymentLinkSent(id string) error
	DeleteDraft(id string) error
	GetCertificateType(id string) (*models.CertificateType, error)
	GetPaymentMethod(id string) (*models.PaymentMethod, error)
	CanonicalName(kind, raw string) (string, error)
	MaterializeDraft(obj *models.Object, cert *models.Certificate) error
	GetCertificate(id string) (*models.Certificate, error)
	UpdateCertificateStatus(id string, status models.Status) error
	SetVerificationStatus(id string, vs models.VerificationStatus) error
	CreateInspection(ins *models.CertificateInspection) error
	GetProfile(id uuid.UUID) (*models.Profile, error)
}

// PaymentClient is the checkout-session surface of the payment provider,
// implemented by stripe.Client.
type PaymentClient interface {
	CreateCheckoutSession(params stripe.CheckoutParams) (*stripe.Session, error)
	RetrieveSession(sessionID string) (*stripe.Session, error)
	ExpireSession(sessionID string) error
	RetryWithBackoff(fn func() error, maxRetries int) error
}

// MailSender dispatches notification emails, implemented by mailer.Mailer.
type MailSender interface {
	Send(to, subject, html string) (string, error)
}

// IdentityResolver finds or provisions customer accounts, implemented by
// IdentityService.
type IdentityResolver interface {
	ResolveOrCreateCustomer(email string, data models.CustomerData) (*models.Profile, bool, error)
	GenerateSetupLink(email string) (string, error)
}

// LifecycleService sequences a certification request from unpaid draft to
// completed certificate.
type LifecycleService struct {
	store           Store
	payments        PaymentClient
	identity        IdentityResolver
	mail            MailSender
	frontendBaseURL string
	log             *logrus.Logger
}

func NewLifecycleService(
	store Store,
	payments PaymentClient,
	identity IdentityResolver,
	mail MailSender,
	frontendBaseURL string,
	log *logrus.Logger,
) *LifecycleService {
	return &LifecycleService{
		store:           store,
		payments:        payments,
		identity:        identity,
		mail:            mail,
		frontendBaseURL: frontendBaseURL,
		log:             log,
	}
}

// CheckoutResult reports a created session plus whether the payment-request
// email went out. Email failure is a warning, never a session failure.
type CheckoutResult struct {
	Session   *stripe.Session
	EmailSent bool
	Warning   string
}

// CreateCheckout issues a hosted payment session for a persisted draft.
func (s *LifecycleService) CreateCheckout(draftID string) (*CheckoutResult, error) {
	draft, err := s.store.GetDraft(draftID)
	if err != nil {
		return nil, err
	}

	if draft.CertificateTypeID == "" {
		return nil, fmt.Errorf("%w: draft has no certificate type", models.ErrInvalidInput)
	}

	certType, err := s.store.GetCertificateType(draft.CertificateTypeID)
	if err != nil {
		return nil, err
	}
	if certType.Price <= 0 {
		return nil, fmt.Errorf("%w: certificate type %s has no positive price", models.ErrInvalidInput, certType.Name)
	}

	session, err := s.payments.CreateCheckoutSession(stripe.CheckoutParams{
		ProductName:   certType.Name,
		Price:         certType.Price,
		CustomerEmail: draft.CustomerData.Email,
		SuccessURL:    s.frontendBaseURL + "/payment/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     s.frontendBaseURL + "/payment/cancelled",
		DraftID:       draft.ID,
		TypeName:      certType.Name,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.SetDraftSession(draft.ID, session.ID); err != nil {
		return nil, err
	}

	result := &CheckoutResult{Session: session}
	if draft.CustomerData.Email != "" {
		subject, html := mailer.PaymentRequestEmail(certType.Name, session.URL)
		if _, err := s.mail.Send(draft.CustomerData.Email, subject, html); err != nil {
			s.log.WithError(err).WithField("draft_id", draft.ID).Warn("payment-request email failed")
			result.Warning = "payment request email could not be sent"
		} else {
			result.EmailSent = true
			if err := s.store.MarkPaymentLinkSent(draft.ID); err != nil {
				s.log.WithError(err).WithField("draft_id", draft.ID).Warn("failed to flag payment link as sent")
			}
		}
	}

	return result, nil
}

// VerifyPayment checks a session against the payment provider. Paid requires
// BOTH payment_status == "paid" and status == "complete"; a complete session
// is not necessarily a paid one.
func (s *LifecycleService) VerifyPayment(sessionID string) (bool, string, error) {
	session, err := s.payments.RetrieveSession(sessionID)
	if err != nil {
		return false, "", err
	}

	paid := session.PaymentStatus == "paid" && session.Status == "complete"
	return paid, session.Metadata["draft_id"], nil
}

// Materialize converts a confirmed draft into a durable object/certificate
// pair and deletes the draft. A retried call after success fails with
// ErrNotFound at the draft load, which is what makes duplicate webhook
// deliveries harmless.
func (s *LifecycleService) Materialize(draftID string) (*models.Certificate, error) {
	draft, err := s.store.GetDraft(draftID)
	if err != nil {
		return nil, err
	}

	email := draft.CustomerData.Email
	if email == "" {
		return nil, fmt.Errorf("%w: draft has no customer email", models.ErrInvalidInput)
	}

	profile, wasCreated, err := s.identity.ResolveOrCreateCustomer(email, draft.CustomerData)
	if err != nil {
		return nil, err
	}

	obj := &models.Object{
		ID:           uuid.New(),
		Type:         s.canonical("type", draft.ObjectType),
		Brand:        s.canonical("brand", draft.ObjectBrand),
		Model:        s.canonical("model", draft.ObjectModel),
		Reference:    s.canonical("reference", draft.ObjectReference),
		SerialNumber: draft.ObjectSerialNumber,
		OwnerID:      profile.ID,
	}

	cert := &models.Certificate{
		ID:                 draft.ID,
		ObjectID:           obj.ID,
		CustomerID:         profile.ID,
		CreatedBy:          draft.CreatedBy,
		CertificateTypeID:  draft.CertificateTypeID,
		PaymentMethodID:    draft.PaymentMethodID,
		Status:             models.StatusPaymentConfirmed,
		VerificationStatus: models.VerificationRegistered,
	}

	if err := s.store.MaterializeDraft(obj, cert); err != nil {
		return nil, err
	}

	certificateURL := s.frontendBaseURL + "/verify/" + cert.ID
	subject, html := mailer.CertificateReadyEmail(cert.ID, certificateURL)
	if _, err := s.mail.Send(email, subject, html); err != nil {
		s.log.WithError(err).WithField("certificate_id", cert.ID).Warn("certificate-ready email failed")
	}

	if wasCreated {
		s.sendAccountInvite(email, cert.ID)
	}

	return cert, nil
}

// sendAccountInvite emails a newly provisioned guest a one-time setup link.
// Failures here never roll back the materialization.
func (s *LifecycleService) sendAccountInvite(email, certificateID string) {
	link, err := s.identity.GenerateSetupLink(email)
	if err != nil {
		s.log.WithError(err).WithField("certificate_id", certificateID).Warn("failed to generate account setup link")
		return
	}
	subject, html := mailer.AccountInviteEmail(link)
	if _, err := s.mail.Send(email, subject, html); err != nil {
		s.log.WithError(err).WithField("certificate_id", certificateID).Warn("account-invitation email failed")
	}
}

// ConfirmInStorePayment materializes a draft paid in person. Drafts bound to
// an online payment method must go through checkout verification instead.
func (s *LifecycleService) ConfirmInStorePayment(draftID string) (*models.Certificate, error) {
	draft, err := s.store.GetDraft(draftID)
	if err != nil {
		return nil, err
	}

	if draft.PaymentMethodID != "" {
		method, err := s.store.GetPaymentMethod(draft.PaymentMethodID)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		if method != nil && method.IsOnline {
			return nil, fmt.Errorf("%w: draft uses an online payment method", models.ErrInvalidInput)
		}
	}

	return s.Materialize(draftID)
}

// CancelDraft abandons a draft: the associated checkout session is expired
// at the provider and the draft deleted. A draft without a session is a
// caller error, there is nothing to cancel.
//
// Expiring the session is advisory. A payment slipping through an unexpired
// session still finds no draft to materialize, so a failed expire retries off
// the request path instead of holding the caller through backoff sleeps.
func (s *LifecycleService) CancelDraft(draftID string) error {
	draft, err := s.store.GetDraft(draftID)
	if err != nil {
		return err
	}

	if !draft.StripeSessionID.Valid || draft.StripeSessionID.String == "" {
		return models.ErrNoPaymentSession
	}

	sessionID := draft.StripeSessionID.String
	if err := s.payments.ExpireSession(sessionID); err != nil {
		s.log.WithError(err).WithField("draft_id", draftID).Warn("failed to expire checkout session, retrying in background")
		go func() {
			if err := s.payments.RetryWithBackoff(func() error {
				return s.payments.ExpireSession(sessionID)
			}, 3); err != nil {
				s.log.WithError(err).WithField("session_id", sessionID).Warn("checkout session could not be expired")
			}
		}()
	}

	return s.store.DeleteDraft(draftID)
}

// SubmitInspection records the partner's physical inspection outcome and
// advances the certificate. The inspection row is persisted before any
// status change; if it cannot be, the status stays put.
func (s *LifecycleService) SubmitInspection(
	certificateID, inspectedBy string,
	result models.InspectionResult,
	suspectPoints, photos []string,
	comment string,
) (*models.CertificateInspection, *models.Certificate, error) {
	cert, err := s.store.GetCertificate(certificateID)
	if err != nil {
		return nil, nil, err
	}

	if cert.Status != models.StatusPaymentConfirmed {
		return nil, nil, fmt.Errorf("%w: certificate is %s, expected %s",
			models.ErrInvalidTransition, cert.Status, models.StatusPaymentConfirmed)
	}

	if result != models.ResultAuthenticItem && result != models.ResultInauthenticItem {
		return nil, nil, fmt.Errorf("%w: unknown inspection result %q", models.ErrInvalidInput, result)
	}
	if len(photos) < models.MinInspectionPhotos {
		return nil, nil, fmt.Errorf("%w: at least %d inspection photos are required",
			models.ErrInvalidInput, models.MinInspectionPhotos)
	}
	if !models.ValidSuspectPoints(result, suspectPoints) {
		return nil, nil, fmt.Errorf("%w: suspect point not valid for result %s", models.ErrInvalidInput, result)
	}

	inspection := &models.CertificateInspection{
		ID:            uuid.New(),
		CertificateID: cert.ID,
		InspectedBy:   inspectedBy,
		Result:        result,
		SuspectPoints: suspectPoints,
		Photos:        photos,
		Comment:       comment,
	}

	if err := s.store.CreateInspection(inspection); err != nil {
		return nil, nil, err
	}

	if result == models.ResultInauthenticItem {
		// Inspection terminates the process, the item is not certified.
		if err := s.store.UpdateCertificateStatus(cert.ID, models.StatusCompleted); err != nil {
			return nil, nil, err
		}
		cert.Status = models.StatusCompleted
		s.notifyInauthentic(cert, suspectPoints, comment)
		return inspection, cert, nil
	}

	if err := s.store.UpdateCertificateStatus(cert.ID, models.StatusInspectionCompleted); err != nil {
		return nil, nil, err
	}
	cert.Status = models.StatusInspectionCompleted
	if err := s.store.SetVerificationStatus(cert.ID, models.VerificationAuthenticated); err != nil {
		s.log.WithError(err).WithField("certificate_id", cert.ID).Warn("failed to advance verification status")
	} else {
		cert.VerificationStatus = models.VerificationAuthenticated
	}

	return inspection, cert, nil
}

func (s *LifecycleService) notifyInauthentic(cert *models.Certificate, suspectPoints []string, comment string) {
	profile, err := s.store.GetProfile(cert.CustomerID)
	if err != nil {
		s.log.WithError(err).WithField("certificate_id", cert.ID).Warn("failed to load customer for inauthenticity notice")
		return
	}
	subject, html := mailer.InauthenticItemEmail(cert.ID, suspectPoints, comment)
	if _, err := s.mail.Send(profile.Email, subject, html); err != nil {
		s.log.WithError(err).WithField("certificate_id", cert.ID).Warn("inauthenticity email failed")
	}
}

// CompleteReport marks the condition report as finished for a certificate
// whose inspection found the item authentic.
func (s *LifecycleService) CompleteReport(certificateID string) (*models.Certificate, error) {
	return s.advance(certificateID, models.StatusInspectionCompleted, models.StatusPendingCertification)
}

// FinalizeCertification completes the lifecycle and advances the trust
// marker to Certified.
func (s *LifecycleService) FinalizeCertification(certificateID string) (*models.Certificate, error) {
	cert, err := s.advance(certificateID, models.StatusPendingCertification, models.StatusCompleted)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetVerificationStatus(cert.ID, models.VerificationCertified); err != nil {
		s.log.WithError(err).WithField("certificate_id", cert.ID).Warn("failed to advance verification status")
	} else {
		cert.VerificationStatus = models.VerificationCertified
	}

	profile, err := s.store.GetProfile(cert.CustomerID)
	if err == nil {
		subject, html := mailer.CertificateCompletedEmail(cert.ID, s.frontendBaseURL+"/verify/"+cert.ID)
		if _, err := s.mail.Send(profile.Email, subject, html); err != nil {
			s.log.WithError(err).WithField("certificate_id", cert.ID).Warn("completion email failed")
		}
	}

	return cert, nil
}

func (s *LifecycleService) advance(certificateID string, from, to models.Status) (*models.Certificate, error) {
	cert, err := s.store.GetCertificate(certificateID)
	if err != nil {
		return nil, err
	}
	if cert.Status != from || !cert.Status.CanTransition(to) {
		return nil, fmt.Errorf("%w: certificate is %s, expected %s", models.ErrInvalidTransition, cert.Status, from)
	}
	if err := s.store.UpdateCertificateStatus(cert.ID, to); err != nil {
		return nil, err
	}
	cert.Status = to
	return cert, nil
}

// ResendCertificateEmail re-dispatches the certificate-ready notification.
func (s *LifecycleService) ResendCertificateEmail(certificateID string) error {
	cert, err := s.store.GetCertificate(certificateID)
	if err != nil {
		return err
	}
	profile, err := s.store.GetProfile(cert.CustomerID)
	if err != nil {
		return err
	}

	subject, html := mailer.CertificateReadyEmail(cert.ID, s.frontendBaseURL+"/verify/"+cert.ID)
	if _, err := s.mail.Send(profile.Email, subject, html); err != nil {
		return fmt.Errorf("failed to resend certificate email: %w", err)
	}
	return nil
}

// canonical prefers the canonical spelling of a free-text attribute; lookup
// failures fall back to the raw value rather than blocking materialization.
func (s *LifecycleService) canonical(kind, raw string) string {
	name, err := s.store.CanonicalName(kind, raw)
	if err != nil {
		s.log.WithError(err).WithField("kind", kind).Warn("canonical lookup failed, keeping raw value")
		return raw
	}
	return name
}
