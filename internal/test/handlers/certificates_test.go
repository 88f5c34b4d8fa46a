package handlers_test

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"luxcert-backend/internal/handlers"
	"luxcert-backend/internal/supabase"
)

var certificateColumns = []string{
	"id", "object_id", "customer_id", "created_by", "certificate_type_id",
	"payment_method_id", "status", "verification_status", "created_at", "updated_at",
}

var inspectionColumns = []string{
	"id", "certificate_id", "inspected_by", "result", "suspect_points",
	"photos", "comment", "created_at",
}

func newVerifyRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	handler := handlers.NewCertificatesHandler(supabase.NewDatabaseClientWithDB(db), nil)

	router := gin.New()
	router.GET("/api/v1/verify/:certificate_id", handler.GetCertificate)
	return router, mock
}

func TestGetCertificate_IncludesInspectionResult(t *testing.T) {
	router, mock := newVerifyRouter(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, object_id[\s\S]*FROM certificates`).
		WithArgs("CERT-1").
		WillReturnRows(sqlmock.NewRows(certificateColumns).AddRow(
			"CERT-1", uuid.New().String(), uuid.New().String(), "partner-1",
			"premium", "card", "Completed", "Certified", now, now,
		))
	mock.ExpectQuery(`SELECT id, certificate_id[\s\S]*FROM certificate_inspections`).
		WithArgs("CERT-1").
		WillReturnRows(sqlmock.NewRows(inspectionColumns).AddRow(
			uuid.New().String(), "CERT-1", "partner-1", "AuthenticItem",
			"{bracelet}", "{p1.jpg,p2.jpg,p3.jpg,p4.jpg,p5.jpg}", "", now,
		))

	req, _ := http.NewRequest("GET", "/api/v1/verify/CERT-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"inspection_result":"AuthenticItem"`)
	assert.Contains(t, w.Body.String(), `"verification_status":"Certified"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCertificate_NoInspectionYet(t *testing.T) {
	router, mock := newVerifyRouter(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, object_id[\s\S]*FROM certificates`).
		WithArgs("CERT-1").
		WillReturnRows(sqlmock.NewRows(certificateColumns).AddRow(
			"CERT-1", uuid.New().String(), uuid.New().String(), "partner-1",
			"premium", "card", "PaymentConfirmed", "Registered", now, now,
		))
	mock.ExpectQuery(`SELECT id, certificate_id[\s\S]*FROM certificate_inspections`).
		WithArgs("CERT-1").
		WillReturnError(sql.ErrNoRows)

	req, _ := http.NewRequest("GET", "/api/v1/verify/CERT-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "inspection_result")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCertificate_NotFound(t *testing.T) {
	router, mock := newVerifyRouter(t)

	mock.ExpectQuery(`SELECT id, object_id[\s\S]*FROM certificates`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	req, _ := http.NewRequest("GET", "/api/v1/verify/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
