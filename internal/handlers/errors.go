package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/municipal_approval_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondWithError maps a service error to its HTTP status. Unexpected errors
// are logged and answered with fallback so internals do not leak.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.Message(err)})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidFilter):
		logger.Warn("Rejected invalid input", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.Message(err)})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Request conflicts with current state", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": apperrors.Message(err), "retryable": !errors.Is(err, apperrors.ErrInvalidState)})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
