package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careerpilot/backend/internal/middleware"
	"github.com/careerpilot/backend/internal/models"
	"github.com/careerpilot/backend/internal/service"
)

// WellnessHandler records daily mood and energy check-ins.
type WellnessHandler struct {
	career *service.CareerService
}

func NewWellnessHandler(career *service.CareerService) *WellnessHandler {
	return &WellnessHandler{career: career}
}

type LogWellnessRequest struct {
	Mood        string  `json:"mood" binding:"required"`
	EnergyLevel int     `json:"energy_level" binding:"required"`
	SleepHours  float64 `json:"sleep_hours"`
	StressLevel int     `json:"stress_level" binding:"required"`
	Notes       string  `json:"notes"`
}

func (h *WellnessHandler) LogWellness(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req LogWellnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry := &models.WellnessLog{
		Mood:        req.Mood,
		EnergyLevel: req.EnergyLevel,
		SleepHours:  req.SleepHours,
		StressLevel: req.StressLevel,
		Notes:       req.Notes,
	}

	if err := h.career.LogWellness(c.Request.Context(), tenant, entry); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetHistory returns the most recent entries, newest first. The limit query
// parameter defaults to a week of daily check-ins.
func (h *WellnessHandler) GetHistory(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	entries, err := h.career.WellnessHistory(c.Request.Context(), tenant, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
