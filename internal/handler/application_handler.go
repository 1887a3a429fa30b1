package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushire/jobboard/internal/middleware"
	"github.com/campushire/jobboard/internal/models"
	"github.com/campushire/jobboard/internal/service"
)

type ApplicationHandler struct {
	applicationService *service.ApplicationService
}

func NewApplicationHandler(applicationService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

type UpdateApplicationRequest struct {
	Status string `json:"status" binding:"required"`
}

// Apply submits an application to a posting
// POST /api/postings/:id/apply
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID, valid := parsePostingID(c)
	if !valid {
		return
	}

	app, err := h.applicationService.Apply(user, jobID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted",
		"application": app,
	})
}

// Mine lists the caller's applications
// GET /api/applications/mine
func (h *ApplicationHandler) Mine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	apps, err := h.applicationService.ListForStudent(user)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
	})
}

// ForPosting lists a posting's applications for its owner
// GET /api/postings/:id/applications
func (h *ApplicationHandler) ForPosting(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID, valid := parsePostingID(c)
	if !valid {
		return
	}

	apps, err := h.applicationService.ListForPosting(user, jobID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
	})
}

// UpdateStatus advances an application through the hiring pipeline
// PUT /api/applications/:id
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application ID"})
		return
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	app, err := h.applicationService.UpdateStatus(user, appID, models.ApplicationStatus(req.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Application updated",
		"application": app,
	})
}
