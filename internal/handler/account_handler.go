package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campushire/jobboard/internal/middleware"
	"github.com/campushire/jobboard/internal/service"
	"github.com/campushire/jobboard/pkg/logger"
)

type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

type DeleteAccountRequest struct {
	Reason string `json:"reason"`
}

// DeleteMe deletes the caller's own account (hard delete)
// DELETE /api/account
func (h *AccountHandler) DeleteMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req DeleteAccountRequest
	_ = c.ShouldBindJSON(&req) // reason is optional

	logger.Log.Info("Self-initiated account deletion",
		zap.String("user_id", user.ID.String()),
	)

	if err := h.accountService.DeleteAccount(user.ID, user, req.Reason); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account deleted",
	})
}
