package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxcert-backend/internal/middleware"
	"luxcert-backend/internal/models"
	"luxcert-backend/internal/services"
	"luxcert-backend/internal/supabase"
)

type CertificatesHandler struct {
	dbClient  *supabase.DatabaseClient
	lifecycle *services.LifecycleService
}

func NewCertificatesHandler(dbClient *supabase.DatabaseClient, lifecycle *services.LifecycleService) *CertificatesHandler {
	return &CertificatesHandler{
		dbClient:  dbClient,
		lifecycle: lifecycle,
	}
}

// GetCertificate godoc
// @Summary     Look up a certificate
// @Description Public certificate verification lookup by id. Once a physical inspection has been recorded its result is included.
// @Tags        certificates
// @Accept      json
// @Produce     json
// @Param       certificate_id path string true "Certificate ID"
// @Success     200 {object} models.CertificateResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /verify/{certificate_id} [get]
func (h *CertificatesHandler) GetCertificate(c *gin.Context) {
	certificateID := c.Param("certificate_id")

	cert, err := h.dbClient.GetCertificate(certificateID)
	if err != nil {
		respondError(c, err, "certificate")
		return
	}

	response := models.CertificateResponse{
		Success:            true,
		ID:                 cert.ID,
		Status:             string(cert.Status),
		VerificationStatus: string(cert.VerificationStatus),
		ObjectID:           cert.ObjectID.String(),
		CustomerID:         cert.CustomerID.String(),
		CertificateTypeID:  cert.CertificateTypeID,
		CreatedAt:          cert.CreatedAt,
		UpdatedAt:          cert.UpdatedAt,
	}

	// Best effort: a certificate without an inspection yet is still valid.
	if inspection, err := h.dbClient.GetInspectionByCertificateID(certificateID); err == nil {
		response.InspectionResult = string(inspection.Result)
	}

	c.JSON(http.StatusOK, response)
}

// SubmitInspection godoc
// @Summary     Submit the physical inspection result
// @Description Records the partner's inspection outcome for a payment-confirmed certificate. At least 5 photos are required. An inauthentic result completes the certificate and notifies the customer; an authentic result hands off to the condition report.
// @Tags        certificates
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       certificate_id path string true "Certificate ID"
// @Param       request body models.SubmitInspectionRequest true "Inspection outcome"
// @Success     200 {object} models.InspectionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /certificates/{certificate_id}/inspection [post]
func (h *CertificatesHandler) SubmitInspection(c *gin.Context) {
	certificateID := c.Param("certificate_id")

	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	var req models.SubmitInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	inspection, cert, err := h.lifecycle.SubmitInspection(
		certificateID,
		userID.(string),
		models.InspectionResult(req.Result),
		req.SuspectPoints,
		req.Photos,
		req.Comment,
	)
	if err != nil {
		respondError(c, err, "inspection submission")
		return
	}

	c.JSON(http.StatusOK, models.InspectionResponse{
		Success:       true,
		InspectionID:  inspection.ID.String(),
		CertificateID: cert.ID,
		Result:        string(inspection.Result),
		Status:        string(cert.Status),
	})
}

// CompleteReport godoc
// @Summary     Mark the condition report as complete
// @Description Advances an inspection-completed certificate to pending certification once the condition report builder finishes.
// @Tags        certificates
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       certificate_id path string true "Certificate ID"
// @Success     200 {object} models.CertificateResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /certificates/{certificate_id}/report/complete [post]
func (h *CertificatesHandler) CompleteReport(c *gin.Context) {
	cert, err := h.lifecycle.CompleteReport(c.Param("certificate_id"))
	if err != nil {
		respondError(c, err, "report completion")
		return
	}

	c.JSON(http.StatusOK, models.CertificateResponse{
		Success:            true,
		ID:                 cert.ID,
		Status:             string(cert.Status),
		VerificationStatus: string(cert.VerificationStatus),
		ObjectID:           cert.ObjectID.String(),
		CustomerID:         cert.CustomerID.String(),
		CreatedAt:          cert.CreatedAt,
		UpdatedAt:          cert.UpdatedAt,
	})
}

// FinalizeCertification godoc
// @Summary     Finalize a certification
// @Description Moves a pending-certification certificate to completed and advances its verification status to Certified.
// @Tags        certificates
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       certificate_id path string true "Certificate ID"
// @Success     200 {object} models.CertificateResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /certificates/{certificate_id}/certify [post]
func (h *CertificatesHandler) FinalizeCertification(c *gin.Context) {
	cert, err := h.lifecycle.FinalizeCertification(c.Param("certificate_id"))
	if err != nil {
		respondError(c, err, "certification")
		return
	}

	c.JSON(http.StatusOK, models.CertificateResponse{
		Success:            true,
		ID:                 cert.ID,
		Status:             string(cert.Status),
		VerificationStatus: string(cert.VerificationStatus),
		ObjectID:           cert.ObjectID.String(),
		CustomerID:         cert.CustomerID.String(),
		CreatedAt:          cert.CreatedAt,
		UpdatedAt:          cert.UpdatedAt,
	})
}

// ResendCertificateEmail godoc
// @Summary     Resend the certificate-ready email
// @Tags        certificates
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       certificate_id path string true "Certificate ID"
// @Success     200 {object} map[string]interface{} "success"
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /certificates/{certificate_id}/resend-email [post]
func (h *CertificatesHandler) ResendCertificateEmail(c *gin.Context) {
	if err := h.lifecycle.ResendCertificateEmail(c.Param("certificate_id")); err != nil {
		respondError(c, err, "certificate email")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
