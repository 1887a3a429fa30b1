package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/jobboard/internal/policy"
	"github.com/campushire/jobboard/internal/service"
)

// respondServiceError maps service errors to HTTP responses. Policy
// denials always come back as 403 with their machine-readable reason so
// clients never have to parse messages.
func respondServiceError(c *gin.Context, err error) {
	if denial, ok := policy.AsDenial(err); ok {
		c.JSON(http.StatusForbidden, gin.H{
			"error":  denial.Message,
			"reason": string(denial.Reason),
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrPostingNotFound),
		errors.Is(err, service.ErrApplicationNotFound),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrAlreadyApplied),
		errors.Is(err, service.ErrAlreadySaved):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrNotStudent),
		errors.Is(err, service.ErrInactiveAccount),
		errors.Is(err, service.ErrPostingClosed),
		errors.Is(err, service.ErrNotPostingOwner),
		errors.Is(err, service.ErrDeleteForbidden),
		errors.Is(err, service.ErrSettingsForbidden),
		errors.Is(err, service.ErrDeleteNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrInvalidDeadline),
		errors.Is(err, service.ErrInvalidJobType),
		errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrInvalidSettingKey),
		errors.Is(err, service.ErrInvalidApplicationStatus),
		errors.Is(err, service.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		// Store and directory failures propagate as-is; retrying is the
		// caller's decision, not ours
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
