package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campushire/jobboard/internal/middleware"
	"github.com/campushire/jobboard/internal/models"
	"github.com/campushire/jobboard/internal/service"
	"github.com/campushire/jobboard/pkg/logger"
)

// AdminHandler groups the moderation and administration endpoints. All of
// its routes sit behind AdminMiddleware.
type AdminHandler struct {
	authService     *service.AuthService
	postingService  *service.PostingService
	settingsService *service.SettingsService
	accountService  *service.AccountService
}

func NewAdminHandler(
	authService *service.AuthService,
	postingService *service.PostingService,
	settingsService *service.SettingsService,
	accountService *service.AccountService,
) *AdminHandler {
	return &AdminHandler{
		authService:     authService,
		postingService:  postingService,
		settingsService: settingsService,
		accountService:  accountService,
	}
}

// Request types
type RejectPostingRequest struct {
	Note string `json:"note"`
}

type SetSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value *bool  `json:"value" binding:"required"`
}

type DeleteUserRequest struct {
	Reason string `json:"reason"`
}

// GetAllUsers returns all users
// GET /api/admin/users
func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	users, err := h.authService.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch users",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
	})
}

// ApproveAccount activates a pending rep/faculty account
// POST /api/admin/users/:id/approve
func (h *AdminHandler) ApproveAccount(c *gin.Context) {
	admin, _ := middleware.CurrentUser(c)

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	user, err := h.authService.ApproveAccount(userID, admin.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account approved",
		"user":    user,
	})
}

// DeleteUser runs the deletion workflow against any account
// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	admin, _ := middleware.CurrentUser(c)

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	var req DeleteUserRequest
	_ = c.ShouldBindJSON(&req) // reason is optional

	logger.Log.Info("Admin deleting user",
		zap.String("admin_id", admin.ID.String()),
		zap.String("target_user_id", userID.String()),
		zap.String("reason", req.Reason),
	)

	if err := h.accountService.DeleteAccount(userID, admin, req.Reason); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted",
	})
}

// PendingPostings returns the moderation queue
// GET /api/admin/postings/pending
func (h *AdminHandler) PendingPostings(c *gin.Context) {
	postings, err := h.postingService.ListByStatus(models.StatusPending)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch postings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"postings": postings,
	})
}

// ApprovePosting moves a pending posting live
// POST /api/admin/postings/:id/approve
func (h *AdminHandler) ApprovePosting(c *gin.Context) {
	admin, _ := middleware.CurrentUser(c)

	id, valid := parsePostingID(c)
	if !valid {
		return
	}

	posting, err := h.postingService.Approve(admin, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Posting approved",
		"posting": posting,
	})
}

// RejectPosting declines a pending posting with an optional note
// POST /api/admin/postings/:id/reject
func (h *AdminHandler) RejectPosting(c *gin.Context) {
	admin, _ := middleware.CurrentUser(c)

	id, valid := parsePostingID(c)
	if !valid {
		return
	}

	var req RejectPostingRequest
	_ = c.ShouldBindJSON(&req) // note is optional

	posting, err := h.postingService.Reject(admin, id, req.Note)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Posting rejected",
		"posting": posting,
	})
}

// RemovePosting takes an active posting down
// POST /api/admin/postings/:id/remove
func (h *AdminHandler) RemovePosting(c *gin.Context) {
	admin, _ := middleware.CurrentUser(c)

	id, valid := parsePostingID(c)
	if !valid {
		return
	}

	posting, err := h.postingService.Remove(admin, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Posting removed",
		"posting": posting,
	})
}

// GetSettings returns the global posting toggles
// GET /api/admin/settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch settings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"settings": settings,
	})
}

// SetSetting writes one toggle
// PUT /api/admin/settings
func (h *AdminHandler) SetSetting(c *gin.Context) {
	admin, _ := middleware.CurrentUser(c)

	var req SetSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.settingsService.Set(models.SettingKey(req.Key), *req.Value, admin); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Setting updated",
	})
}
