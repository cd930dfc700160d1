package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerpilot/backend/internal/middleware"
	"github.com/careerpilot/backend/internal/service"
)

// DashboardHandler serves derived analytics; nothing here is stored.
type DashboardHandler struct {
	career *service.CareerService
}

func NewDashboardHandler(career *service.CareerService) *DashboardHandler {
	return &DashboardHandler{career: career}
}

// GetStats returns the application funnel counts computed from current rows.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	stats, err := h.career.ApplicationStats(c.Request.Context(), tenant)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetStreak returns the count of consecutive days ending today with learning
// activity. A gap yesterday or today yields zero.
func (h *DashboardHandler) GetStreak(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	streak, err := h.career.LearningStreak(c.Request.Context(), tenant)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"streak_days": streak})
}
