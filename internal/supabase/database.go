package supabase

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"luxcert-backend/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// NewDatabaseClientWithDB wraps an already opened connection.
func NewDatabaseClientWithDB(db *sql.DB) *DatabaseClient {
	return &DatabaseClient{db: db}
}

// UpsertDraft creates or overwrites a draft by id. Writing twice with the
// same id updates the existing row rather than duplicating it.
func (d *DatabaseClient) UpsertDraft(draft *models.Draft) (*models.Draft, error) {
	customerJSON, err := json.Marshal(draft.CustomerData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode customer data: %w", err)
	}

	var stored models.Draft
	var storedCustomer []byte
	err = d.db.QueryRow(`
		INSERT INTO certificate_drafts (
			id, customer_data, object_type, object_brand, object_model,
			object_reference, object_serial_number, certificate_type_id,
			payment_method_id, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			customer_data = EXCLUDED.customer_data,
			object_type = EXCLUDED.object_type,
			object_brand = EXCLUDED.object_brand,
			object_model = EXCLUDED.object_model,
			object_reference = EXCLUDED.object_reference,
			object_serial_number = EXCLUDED.object_serial_number,
			certificate_type_id = EXCLUDED.certificate_type_id,
			payment_method_id = EXCLUDED.payment_method_id,
			updated_at = NOW()
		RETURNING id, customer_data, object_type, object_brand, object_model,
			object_reference, object_serial_number, certificate_type_id,
			payment_method_id, created_by, stripe_session_id, payment_link_sent,
			created_at, updated_at
	`, draft.ID, customerJSON, draft.ObjectType, draft.ObjectBrand,
		draft.ObjectModel, draft.ObjectReference, draft.ObjectSerialNumber,
		draft.CertificateTypeID, draft.PaymentMethodID, draft.CreatedBy,
	).Scan(
		&stored.ID, &storedCustomer, &stored.ObjectType, &stored.ObjectBrand,
		&stored.ObjectModel, &stored.ObjectReference, &stored.ObjectSerialNumber,
		&stored.CertificateTypeID, &stored.PaymentMethodID, &stored.CreatedBy,
		&stored.StripeSessionID, &stored.PaymentLinkSent,
		&stored.CreatedAt, &stored.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("could not create draft: %w", err)
	}

	if len(storedCustomer) > 0 {
		json.Unmarshal(storedCustomer, &stored.CustomerData)
	}

	return &stored, nil
}

func (d *DatabaseClient) GetDraft(draftID string) (*models.Draft, error) {
	var draft models.Draft
	var customerJSON []byte
	err := d.db.QueryRow(`
		SELECT id, customer_data, object_type, object_brand, object_model,
			object_reference, object_serial_number, certificate_type_id,
			payment_method_id, created_by, stripe_session_id, payment_link_sent,
			created_at, updated_at
		FROM certificate_drafts
		WHERE id = $1
	`, draftID).Scan(
		&draft.ID, &customerJSON, &draft.ObjectType, &draft.ObjectBrand,
		&draft.ObjectModel, &draft.ObjectReference, &draft.ObjectSerialNumber,
		&draft.CertificateTypeID, &draft.PaymentMethodID, &draft.CreatedBy,
		&draft.StripeSessionID, &draft.PaymentLinkSent,
		&draft.CreatedAt, &draft.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	if len(customerJSON) > 0 {
		json.Unmarshal(customerJSON, &draft.CustomerData)
	}

	return &draft, nil
}

func (d *DatabaseClient) SetDraftSession(draftID, sessionID string) error {
	_, err := d.db.Exec(`
		UPDATE certificate_drafts
		SET stripe_session_id = $1, updated_at = NOW()
		WHERE id = $2
	`, sessionID, draftID)
	return err
}

func (d *DatabaseClient) MarkPaymentLinkSent(draftID string) error {
	_, err := d.db.Exec(`
		UPDATE certificate_drafts
		SET payment_link_sent = TRUE, updated_at = NOW()
		WHERE id = $1
	`, draftID)
	return err
}

// DeleteDraft removes a draft. Reports models.ErrNotFound when the draft was
// already deleted, which is how concurrent materialize/cancel calls are
// serialized: only the caller that actually deletes the row proceeds.
func (d *DatabaseClient) DeleteDraft(draftID string) error {
	res, err := d.db.Exec(`DELETE FROM certificate_drafts WHERE id = $1`, draftID)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// GetProfileByEmail returns (nil, nil) when no profile exists for the email.
func (d *DatabaseClient) GetProfileByEmail(email string) (*models.Profile, error) {
	var p models.Profile
	err := d.db.QueryRow(`
		SELECT id, email, first_name, last_name, phone, address, city,
			postal_code, country, is_guest, created_at, updated_at
		FROM profiles
		WHERE email = $1
	`, email).Scan(
		&p.ID, &p.Email, &p.FirstName, &p.LastName, &p.Phone, &p.Address,
		&p.City, &p.PostalCode, &p.Country, &p.IsGuest, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return &p, nil
}

func (d *DatabaseClient) GetProfile(profileID uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	err := d.db.QueryRow(`
		SELECT id, email, first_name, last_name, phone, address, city,
			postal_code, country, is_guest, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`, profileID).Scan(
		&p.ID, &p.Email, &p.FirstName, &p.LastName, &p.Phone, &p.Address,
		&p.City, &p.PostalCode, &p.Country, &p.IsGuest, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// UpsertProfile writes a profile keyed by its identity id, so a retried
// resolution converges on one row instead of duplicating.
func (d *DatabaseClient) UpsertProfile(p *models.Profile) error {
	_, err := d.db.Exec(`
		INSERT INTO profiles (
			id, email, first_name, last_name, phone, address, city,
			postal_code, country, is_guest
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			postal_code = EXCLUDED.postal_code,
			country = EXCLUDED.country,
			updated_at = NOW()
	`, p.ID, p.Email, p.FirstName, p.LastName, p.Phone, p.Address,
		p.City, p.PostalCode, p.Country, p.IsGuest)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetCertificateType(typeID string) (*models.CertificateType, error) {
	var ct models.CertificateType
	err := d.db.QueryRow(`
		SELECT id, name, price, excluded_report_form_fields
		FROM certificate_types
		WHERE id = $1
	`, typeID).Scan(&ct.ID, &ct.Name, &ct.Price, pq.Array(&ct.ExcludedReportFormFields))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get certificate type: %w", err)
	}
	return &ct, nil
}

func (d *DatabaseClient) GetPaymentMethod(methodID string) (*models.PaymentMethod, error) {
	var pm models.PaymentMethod
	err := d.db.QueryRow(`
		SELECT id, name, is_online
		FROM payment_methods
		WHERE id = $1
	`, methodID).Scan(&pm.ID, &pm.Name, &pm.IsOnline)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment method: %w", err)
	}
	return &pm, nil
}

// canonicalTables whitelists the lookup tables used for soft normalization.
var canonicalTables = map[string]string{
	"type":      "object_types",
	"brand":     "object_brands",
	"model":     "object_models",
	"reference": "object_references",
}

// CanonicalName prefers the canonical spelling of a free-text attribute when
// one exists, and falls back to the raw value otherwise. Absence is never an
// error: this is best-effort deduplication, not a foreign key.
func (d *DatabaseClient) CanonicalName(kind, raw string) (string, error) {
	table, ok := canonicalTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown canonical kind: %s", kind)
	}
	if raw == "" {
		return "", nil
	}

	var name string
	err := d.db.QueryRow(
		fmt.Sprintf("SELECT name FROM %s WHERE LOWER(name) = LOWER($1)", table),
		raw,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return raw, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up canonical %s: %w", kind, err)
	}
	return name, nil
}

// MaterializeDraft performs the object insert, certificate insert and draft
// delete as one transaction. A certificate can never reference a missing
// object, and the draft delete doubles as the single-writer claim: if another
// call already consumed the draft, the delete affects zero rows and the whole
// transaction rolls back with models.ErrNotFound.
func (d *DatabaseClient) MaterializeDraft(obj *models.Object, cert *models.Certificate) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO objects (id, type, brand, model, reference, serial_number, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, obj.ID, obj.Type, obj.Brand, obj.Model, obj.Reference, obj.SerialNumber, obj.OwnerID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create object: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO certificates (
			id, object_id, customer_id, created_by, certificate_type_id,
			payment_method_id, status, verification_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, cert.ID, cert.ObjectID, cert.CustomerID, cert.CreatedBy,
		cert.CertificateTypeID, cert.PaymentMethodID, cert.Status, cert.VerificationStatus); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create certificate: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM certificate_drafts WHERE id = $1`, cert.ID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		tx.Rollback()
		return models.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit materialization: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetCertificate(certificateID string) (*models.Certificate, error) {
	var cert models.Certificate
	err := d.db.QueryRow(`
		SELECT id, object_id, customer_id, created_by, certificate_type_id,
			payment_method_id, status, verification_status, created_at, updated_at
		FROM certificates
		WHERE id = $1
	`, certificateID).Scan(
		&cert.ID, &cert.ObjectID, &cert.CustomerID, &cert.CreatedBy,
		&cert.CertificateTypeID, &cert.PaymentMethodID, &cert.Status,
		&cert.VerificationStatus, &cert.CreatedAt, &cert.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}
	return &cert, nil
}

func (d *DatabaseClient) UpdateCertificateStatus(certificateID string, status models.Status) error {
	res, err := d.db.Exec(`
		UPDATE certificates
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, certificateID)
	if err != nil {
		return fmt.Errorf("failed to update certificate status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// SetVerificationStatus advances the trust marker. The WHERE clause keeps it
// monotonic even if callers race.
func (d *DatabaseClient) SetVerificationStatus(certificateID string, vs models.VerificationStatus) error {
	_, err := d.db.Exec(`
		UPDATE certificates
		SET verification_status = $1, updated_at = NOW()
		WHERE id = $2
		  AND CASE verification_status
			WHEN 'Authenticated' THEN 1
			WHEN 'Certified' THEN 2
			ELSE 0
		  END < $3
	`, vs, certificateID, vs.Rank())
	if err != nil {
		return fmt.Errorf("failed to set verification status: %w", err)
	}
	return nil
}

func (d *DatabaseClient) CreateInspection(ins *models.CertificateInspection) error {
	_, err := d.db.Exec(`
		INSERT INTO certificate_inspections (
			id, certificate_id, inspected_by, result, suspect_points, photos, comment
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, ins.ID, ins.CertificateID, ins.InspectedBy, ins.Result,
		pq.Array(ins.SuspectPoints), pq.Array(ins.Photos), ins.Comment)
	if err != nil {
		return fmt.Errorf("failed to create inspection: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetInspectionByCertificateID(certificateID string) (*models.CertificateInspection, error) {
	var ins models.CertificateInspection
	err := d.db.QueryRow(`
		SELECT id, certificate_id, inspected_by, result, suspect_points, photos, comment, created_at
		FROM certificate_inspections
		WHERE certificate_id = $1
	`, certificateID).Scan(
		&ins.ID, &ins.CertificateID, &ins.InspectedBy, &ins.Result,
		pq.Array(&ins.SuspectPoints), pq.Array(&ins.Photos), &ins.Comment, &ins.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inspection: %w", err)
	}
	return &ins, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
