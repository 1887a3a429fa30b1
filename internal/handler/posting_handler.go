package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campushire/jobboard/internal/middleware"
	"github.com/campushire/jobboard/internal/policy"
	"github.com/campushire/jobboard/internal/service"
	"github.com/campushire/jobboard/pkg/logger"
)

type PostingHandler struct {
	postingService *service.PostingService
}

func NewPostingHandler(postingService *service.PostingService) *PostingHandler {
	return &PostingHandler{
		postingService: postingService,
	}
}

type ReactivateRequest struct {
	Deadline string `json:"deadline" binding:"required"`
}

// parseOrder reads the ?sort= query. Anything other than "deadline" falls
// back to newest-first.
func parseOrder(c *gin.Context) policy.Order {
	if c.Query("sort") == "deadline" {
		return policy.OrderDeadline
	}
	return policy.OrderNewest
}

func parsePostingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid posting ID"})
		return uuid.Nil, false
	}
	return id, true
}

// List returns the postings visible to the caller
// GET /api/postings
func (h *PostingHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c) // nil for anonymous browsing

	postings, err := h.postingService.List(user, parseOrder(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"postings": postings,
	})
}

// Get returns one posting if the caller may see it
// GET /api/postings/:id
func (h *PostingHandler) Get(c *gin.Context) {
	id, ok := parsePostingID(c)
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(c)

	posting, err := h.postingService.GetPosting(user, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posting": posting,
	})
}

// Create makes a new posting
// POST /api/postings
func (h *PostingHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input service.PostingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Log.Warn("Posting create request parsing failed",
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	posting, err := h.postingService.Create(user, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Posting created",
		"posting": posting,
	})
}

// Update edits the caller's own posting
// PUT /api/postings/:id
func (h *PostingHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, valid := parsePostingID(c)
	if !valid {
		return
	}

	var input service.PostingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	posting, err := h.postingService.Edit(user, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Posting updated",
		"posting": posting,
	})
}

// Resubmit sends a rejected posting back to moderation
// POST /api/postings/:id/resubmit
func (h *PostingHandler) Resubmit(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, valid := parsePostingID(c)
	if !valid {
		return
	}

	posting, err := h.postingService.Resubmit(user, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Posting resubmitted for review",
		"posting": posting,
	})
}

// Reactivate brings an expired posting back with a new deadline
// POST /api/postings/:id/reactivate
func (h *PostingHandler) Reactivate(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, valid := parsePostingID(c)
	if !valid {
		return
	}

	var req ReactivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	posting, err := h.postingService.Reactivate(user, id, req.Deadline)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Posting reactivated",
		"posting": posting,
	})
}

// Delete removes a posting row (owner or admin)
// DELETE /api/postings/:id
func (h *PostingHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, valid := parsePostingID(c)
	if !valid {
		return
	}

	if err := h.postingService.Delete(user, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Posting deleted",
	})
}

// Mine lists the caller's own postings regardless of status
// GET /api/postings/mine
func (h *PostingHandler) Mine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	postings, err := h.postingService.MyPostings(user)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"postings": postings,
	})
}
