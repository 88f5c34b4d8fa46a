package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luxcert-backend/internal/models"
)

// respondError maps the service error taxonomy onto HTTP categories: bad
// input, missing entity, refused transition, or unexpected failure.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrNoPaymentSession):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: fallback + " not found"})
	case errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   fallback + " failed",
			Message: err.Error(),
		})
	}
}
