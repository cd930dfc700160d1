package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerpilot/backend/internal/middleware"
	"github.com/careerpilot/backend/internal/models"
	"github.com/careerpilot/backend/internal/service"
)

// LearningHandler records roadmap milestone progress.
type LearningHandler struct {
	career *service.CareerService
}

func NewLearningHandler(career *service.CareerService) *LearningHandler {
	return &LearningHandler{career: career}
}

type RecordProgressRequest struct {
	RoadmapID        string `json:"roadmap_id" binding:"required"`
	MilestoneID      string `json:"milestone_id" binding:"required"`
	Completed        bool   `json:"completed"`
	TimeSpentMinutes int    `json:"time_spent_minutes"`
}

// RecordProgress upserts the tenant's progress on one milestone. Repeating a
// milestone overwrites the previous record rather than duplicating it.
func (h *LearningHandler) RecordProgress(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req RecordProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	progress := &models.LearningProgress{
		RoadmapID:        req.RoadmapID,
		MilestoneID:      req.MilestoneID,
		Completed:        req.Completed,
		TimeSpentMinutes: req.TimeSpentMinutes,
	}

	if err := h.career.RecordLearningProgress(c.Request.Context(), tenant, progress); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

func (h *LearningHandler) ListProgress(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	progress, err := h.career.ListLearningProgress(c.Request.Context(), tenant)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}
