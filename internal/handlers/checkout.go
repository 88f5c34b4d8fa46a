package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luxcert-backend/internal/models"
	"luxcert-backend/internal/services"
)

type CheckoutHandler struct {
	lifecycle *services.LifecycleService
}

func NewCheckoutHandler(lifecycle *services.LifecycleService) *CheckoutHandler {
	return &CheckoutHandler{lifecycle: lifecycle}
}

// CreateCheckoutSession godoc
// @Summary     Create a hosted checkout session for a draft
// @Description Creates a payment session for the draft's certificate type and emails the payment link to the customer. The draft must already be persisted and its certificate type must have a positive price.
// @Tags        checkout
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID"
// @Success     200 {object} models.CheckoutSessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /drafts/{draft_id}/checkout [post]
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	draftID := c.Param("draft_id")

	result, err := h.lifecycle.CreateCheckout(draftID)
	if err != nil {
		respondError(c, err, "checkout session creation")
		return
	}

	c.JSON(http.StatusOK, models.CheckoutSessionResponse{
		Success:    true,
		SessionID:  result.Session.ID,
		SessionURL: result.Session.URL,
		EmailSent:  result.EmailSent,
		Warning:    result.Warning,
	})
}

// VerifyPayment godoc
// @Summary     Verify a checkout session and materialize the draft
// @Description Polls the payment provider for the session. When the session is both paid and complete, the originating draft is materialized into a certificate. Duplicate verification calls are harmless: once the draft is gone the call reports not found.
// @Tags        checkout
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.VerifyPaymentRequest true "Session id"
// @Success     200 {object} models.VerifyPaymentResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /payments/verify [post]
func (h *CheckoutHandler) VerifyPayment(c *gin.Context) {
	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "session_id is required"})
		return
	}

	paid, draftID, err := h.lifecycle.VerifyPayment(req.SessionID)
	if err != nil {
		respondError(c, err, "payment verification")
		return
	}

	if !paid {
		c.JSON(http.StatusOK, models.VerifyPaymentResponse{Success: true, Paid: false})
		return
	}

	if draftID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "session carries no draft id"})
		return
	}

	cert, err := h.lifecycle.Materialize(draftID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// Draft already consumed by a concurrent confirmation.
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "draft not found"})
			return
		}
		respondError(c, err, "certificate materialization")
		return
	}

	c.JSON(http.StatusOK, models.VerifyPaymentResponse{
		Success:       true,
		Paid:          true,
		CertificateID: cert.ID,
	})
}

// ConfirmInStorePayment godoc
// @Summary     Confirm an in-person payment for a draft
// @Description Materializes a draft paid through an offline payment method, bypassing the payment provider entirely.
// @Tags        checkout
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID"
// @Success     200 {object} models.VerifyPaymentResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /drafts/{draft_id}/confirm-instore [post]
func (h *CheckoutHandler) ConfirmInStorePayment(c *gin.Context) {
	draftID := c.Param("draft_id")

	cert, err := h.lifecycle.ConfirmInStorePayment(draftID)
	if err != nil {
		respondError(c, err, "in-store confirmation")
		return
	}

	c.JSON(http.StatusOK, models.VerifyPaymentResponse{
		Success:       true,
		Paid:          true,
		CertificateID: cert.ID,
	})
}
