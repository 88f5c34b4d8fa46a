package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxcert-backend/internal/models"
	"luxcert-backend/internal/services"
)

type EmailHandler struct {
	mail services.MailSender
}

func NewEmailHandler(mail services.MailSender) *EmailHandler {
	return &EmailHandler{mail: mail}
}

// SendEmail godoc
// @Summary     Send an outbound email
// @Description Generic notification dispatch. The recipient, subject and body are validated before anything reaches the transport; the endpoint is rate-limited per client IP.
// @Tags        email
// @Accept      json
// @Produce     json
// @Param       request body models.SendEmailRequest true "Message"
// @Success     200 {object} models.SendEmailResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     429 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /email [post]
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req models.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	messageID, err := h.mail.Send(req.To, req.Subject, req.HTML)
	if err != nil {
		respondError(c, err, "email dispatch")
		return
	}

	c.JSON(http.StatusOK, models.SendEmailResponse{
		Success:   true,
		MessageID: messageID,
	})
}
