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

// InterviewHandler stores completed mock interview sessions.
type InterviewHandler struct {
	career *service.CareerService
}

func NewInterviewHandler(career *service.CareerService) *InterviewHandler {
	return &InterviewHandler{career: career}
}

type CreateInterviewRequest struct {
	JobTitle      string         `json:"job_title" binding:"required"`
	Company       string         `json:"company"`
	InterviewType string         `json:"interview_type" binding:"required"`
	Questions     datatypes.JSON `json:"questions"`
	Answers       datatypes.JSON `json:"answers"`
	Scores        datatypes.JSON `json:"scores"`
	OverallScore  float64        `json:"overall_score"`
	Feedback      string         `json:"feedback"`
}

func (h *InterviewHandler) CreateSession(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session := &models.InterviewSession{
		JobTitle:      req.JobTitle,
		Company:       req.Company,
		InterviewType: req.InterviewType,
		Questions:     req.Questions,
		Answers:       req.Answers,
		Scores:        req.Scores,
		OverallScore:  req.OverallScore,
		Feedback:      req.Feedback,
	}

	if err := h.career.CreateInterviewSession(c.Request.Context(), tenant, session); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *InterviewHandler) ListSessions(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	sessions, err := h.career.ListInterviewSessions(c.Request.Context(), tenant)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *InterviewHandler) GetSession(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	session, err := h.career.GetInterviewSession(c.Request.Context(), tenant, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}
