package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/careerpilot/backend/internal/middleware"
	"github.com/careerpilot/backend/internal/models"
	"github.com/careerpilot/backend/internal/service"
)

// JobHandler manages the tenant's bookmarked job postings.
type JobHandler struct {
	career *service.CareerService
}

func NewJobHandler(career *service.CareerService) *JobHandler {
	return &JobHandler{career: career}
}

type SaveJobRequest struct {
	JobTitle       string         `json:"job_title" binding:"required"`
	Company        string         `json:"company"`
	Location       string         `json:"location"`
	JobURL         string         `json:"job_url"`
	Salary         string         `json:"salary"`
	RequiredSkills datatypes.JSON `json:"required_skills"`
	MatchScore     float64        `json:"match_score"`
	SourcePlatform string         `json:"source_platform"`
}

func (h *JobHandler) SaveJob(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	job := &models.SavedJob{
		JobTitle:       req.JobTitle,
		Company:        req.Company,
		Location:       req.Location,
		JobURL:         req.JobURL,
		Salary:         req.Salary,
		RequiredSkills: req.RequiredSkills,
		MatchScore:     req.MatchScore,
		SourcePlatform: req.SourcePlatform,
	}

	if err := h.career.SaveJob(c.Request.Context(), tenant, job); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) ListSavedJobs(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	jobs, err := h.career.ListSavedJobs(c.Request.Context(), tenant)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) DeleteSavedJob(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	if err := h.career.DeleteSavedJob(c.Request.Context(), tenant, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
