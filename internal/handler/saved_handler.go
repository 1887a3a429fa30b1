package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/jobboard/internal/middleware"
	"github.com/campushire/jobboard/internal/service"
)

type SavedJobHandler struct {
	savedJobService *service.SavedJobService
}

func NewSavedJobHandler(savedJobService *service.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{
		savedJobService: savedJobService,
	}
}

// Save bookmarks a posting
// POST /api/postings/:id/save
func (h *SavedJobHandler) Save(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID, valid := parsePostingID(c)
	if !valid {
		return
	}

	saved, err := h.savedJobService.Save(user, jobID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Posting saved",
		"saved":   saved,
	})
}

// Unsave removes a bookmark
// DELETE /api/postings/:id/save
func (h *SavedJobHandler) Unsave(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID, valid := parsePostingID(c)
	if !valid {
		return
	}

	if err := h.savedJobService.Unsave(user, jobID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Posting unsaved",
	})
}

// Mine lists the caller's bookmarks
// GET /api/saved
func (h *SavedJobHandler) Mine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	saved, err := h.savedJobService.List(user)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"saved": saved,
	})
}
