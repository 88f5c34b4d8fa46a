package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"luxcert-backend/internal/config"
	"luxcert-backend/internal/models"
	"luxcert-backend/internal/services"
	"luxcert-backend/internal/stripe"
)

type WebhookHandler struct {
	config    *config.Config
	lifecycle *services.LifecycleService
	log       *logrus.Logger
}

func NewWebhookHandler(cfg *config.Config, lifecycle *services.LifecycleService, log *logrus.Logger) *WebhookHandler {
	return &WebhookHandler{
		config:    cfg,
		lifecycle: lifecycle,
		log:       log,
	}
}

// checkoutSessionPayload is the slice of the session object the webhook needs.
type checkoutSessionPayload struct {
	ID       string            `json:"id"`
	Metadata map[string]string `json:"metadata"`
}

// HandleStripeWebhook godoc
// @Summary     Stripe webhook endpoint
// @Description Receives checkout.session.completed events. The payload signature is verified against the webhook signing secret; payment state is then re-checked against the provider before the draft is materialized. Duplicate deliveries are acknowledged without effect.
// @Tags        webhooks
// @Accept      json
// @Produce     json
// @Param       Stripe-Signature header string true "Webhook signature"
// @Success     200 {object} map[string]string "status"
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read request body",
			Message: err.Error(),
		})
		return
	}

	event, err := stripe.ConstructEvent(body, c.GetHeader("Stripe-Signature"), h.config.StripeWebhookSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid webhook signature",
			Message: err.Error(),
		})
		return
	}

	if event.Type != "checkout.session.completed" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	var session checkoutSessionPayload
	if err := json.Unmarshal(event.Data.Object, &session); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse session payload",
			Message: err.Error(),
		})
		return
	}

	// The event says completed, but paid is verified against the provider:
	// completed and paid are not the same thing.
	paid, draftID, err := h.lifecycle.VerifyPayment(session.ID)
	if err != nil {
		h.log.WithError(err).WithField("session_id", session.ID).Error("webhook payment verification failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "payment verification failed"})
		return
	}
	if !paid {
		c.JSON(http.StatusOK, gin.H{"status": "not paid"})
		return
	}
	if draftID == "" {
		draftID = session.Metadata["draft_id"]
	}

	if _, err := h.lifecycle.Materialize(draftID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// Draft already materialized; duplicate delivery.
			c.JSON(http.StatusOK, gin.H{"status": "already processed"})
			return
		}
		h.log.WithError(err).WithField("draft_id", draftID).Error("webhook materialization failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "materialization failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
