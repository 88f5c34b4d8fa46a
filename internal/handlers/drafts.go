package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxcert-backend/internal/middleware"
	"luxcert-backend/internal/models"
	"luxcert-backend/internal/services"
	"luxcert-backend/internal/supabase"
)

type DraftsHandler struct {
	dbClient  *supabase.DatabaseClient
	lifecycle *services.LifecycleService
}

func NewDraftsHandler(dbClient *supabase.DatabaseClient, lifecycle *services.LifecycleService) *DraftsHandler {
	return &DraftsHandler{
		dbClient:  dbClient,
		lifecycle: lifecycle,
	}
}

// UpsertDraft godoc
// @Summary     Create or update a certification draft
// @Description Persists an in-progress certification request keyed by a client-generated id. Writing the same id again overwrites the stored draft.
// @Tags        drafts
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.UpsertDraftRequest true "Draft fields"
// @Success     200 {object} models.DraftResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /drafts [post]
func (h *DraftsHandler) UpsertDraft(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	var req models.UpsertDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	if req.ID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "draft id is required"})
		return
	}

	draft := &models.Draft{
		ID:                 req.ID,
		CustomerData:       req.CustomerData,
		ObjectType:         req.ObjectType,
		ObjectBrand:        req.ObjectBrand,
		ObjectModel:        req.ObjectModel,
		ObjectReference:    req.ObjectReference,
		ObjectSerialNumber: req.ObjectSerialNumber,
		CertificateTypeID:  req.CertificateTypeID,
		PaymentMethodID:    req.PaymentMethodID,
		CreatedBy:          userID.(string),
	}

	stored, err := h.dbClient.UpsertDraft(draft)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "could not create draft",
			Message: err.Error(),
		})
		return
	}

	response := models.DraftResponse{
		Success:         true,
		ID:              stored.ID,
		PaymentLinkSent: stored.PaymentLinkSent,
		CreatedAt:       stored.CreatedAt,
		UpdatedAt:       stored.UpdatedAt,
	}
	if stored.StripeSessionID.Valid {
		response.StripeSessionID = stored.StripeSessionID.String
	}

	c.JSON(http.StatusOK, response)
}

// CancelDraft godoc
// @Summary     Cancel a draft
// @Description Expires the draft's checkout session at the payment provider and deletes the draft. Fails when the draft has no associated payment session.
// @Tags        drafts
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       draft_id path string true "Draft ID"
// @Success     200 {object} map[string]interface{} "success"
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /drafts/{draft_id}/cancel [post]
func (h *DraftsHandler) CancelDraft(c *gin.Context) {
	draftID := c.Param("draft_id")

	if err := h.lifecycle.CancelDraft(draftID); err != nil {
		respondError(c, err, "draft cancellation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
