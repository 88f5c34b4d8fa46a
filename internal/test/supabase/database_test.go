package supabase_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"luxcert-backend/internal/models"
	"luxcert-backend/internal/supabase"
)

var draftColumns = []string{
	"id", "customer_data", "object_type", "object_brand", "object_model",
	"object_reference", "object_serial_number", "certificate_type_id",
	"payment_method_id", "created_by", "stripe_session_id", "payment_link_sent",
	"created_at", "updated_at",
}

const upsertPattern = `INSERT INTO certificate_drafts[\s\S]*ON CONFLICT \(id\) DO UPDATE[\s\S]*RETURNING`

func TestDatabaseClient_UpsertDraft_SameIDConverges(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	client := supabase.NewDatabaseClientWithDB(db)

	customerJSON := []byte(`{"email":"customer@example.com"}`)
	created := time.Now().Add(-time.Minute)
	updated := time.Now()

	// Both writes carry the same id; the statement must be the conflict-update
	// form so the second write lands on the existing row.
	mock.ExpectQuery(upsertPattern).
		WithArgs("CERT-1", customerJSON, "watch", "Rolex", "Submariner", "", "", "premium", "card", "partner-1").
		WillReturnRows(sqlmock.NewRows(draftColumns).AddRow(
			"CERT-1", customerJSON, "watch", "Rolex", "Submariner", "", "",
			"premium", "card", "partner-1", nil, false, created, created,
		))
	mock.ExpectQuery(upsertPattern).
		WithArgs("CERT-1", customerJSON, "watch", "Omega", "Speedmaster", "", "", "premium", "card", "partner-1").
		WillReturnRows(sqlmock.NewRows(draftColumns).AddRow(
			"CERT-1", customerJSON, "watch", "Omega", "Speedmaster", "", "",
			"premium", "card", "partner-1", nil, false, created, updated,
		))

	first, err := client.UpsertDraft(&models.Draft{
		ID:                "CERT-1",
		CustomerData:      models.CustomerData{Email: "customer@example.com"},
		ObjectType:        "watch",
		ObjectBrand:       "Rolex",
		ObjectModel:       "Submariner",
		CertificateTypeID: "premium",
		PaymentMethodID:   "card",
		CreatedBy:         "partner-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rolex", first.ObjectBrand)

	second, err := client.UpsertDraft(&models.Draft{
		ID:                "CERT-1",
		CustomerData:      models.CustomerData{Email: "customer@example.com"},
		ObjectType:        "watch",
		ObjectBrand:       "Omega",
		ObjectModel:       "Speedmaster",
		CertificateTypeID: "premium",
		PaymentMethodID:   "card",
		CreatedBy:         "partner-1",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "rewriting an id updates the existing draft")
	assert.Equal(t, "Omega", second.ObjectBrand, "stored draft reflects the latest values")
	assert.Equal(t, "Speedmaster", second.ObjectModel)
	assert.Equal(t, "customer@example.com", second.CustomerData.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseClient_UpsertDraft_PreservesSessionFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	client := supabase.NewDatabaseClientWithDB(db)

	customerJSON := []byte(`{"email":"customer@example.com"}`)
	now := time.Now()

	// stripe_session_id and payment_link_sent are absent from the update set,
	// so a rewrite returns whatever checkout already stamped on the row.
	mock.ExpectQuery(upsertPattern).
		WithArgs("CERT-1", customerJSON, "watch", "Rolex", "", "", "", "premium", "card", "partner-1").
		WillReturnRows(sqlmock.NewRows(draftColumns).AddRow(
			"CERT-1", customerJSON, "watch", "Rolex", "", "", "",
			"premium", "card", "partner-1", "cs_test_1", true, now, now,
		))

	stored, err := client.UpsertDraft(&models.Draft{
		ID:                "CERT-1",
		CustomerData:      models.CustomerData{Email: "customer@example.com"},
		ObjectType:        "watch",
		ObjectBrand:       "Rolex",
		CertificateTypeID: "premium",
		PaymentMethodID:   "card",
		CreatedBy:         "partner-1",
	})
	require.NoError(t, err)

	assert.True(t, stored.StripeSessionID.Valid)
	assert.Equal(t, "cs_test_1", stored.StripeSessionID.String)
	assert.True(t, stored.PaymentLinkSent)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseClient_GetDraft_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	client := supabase.NewDatabaseClientWithDB(db)

	mock.ExpectQuery(`SELECT[\s\S]*FROM certificate_drafts`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(draftColumns))

	_, err = client.GetDraft("missing")

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseClient_DeleteDraft_AlreadyGone(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	client := supabase.NewDatabaseClientWithDB(db)

	mock.ExpectExec(`DELETE FROM certificate_drafts`).
		WithArgs("CERT-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = client.DeleteDraft("CERT-1")

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
