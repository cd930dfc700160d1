package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/careerpilot/backend/internal/middleware"
	"github.com/careerpilot/backend/internal/models"
	"github.com/careerpilot/backend/internal/service"
)

// ApplicationHandler tracks job applications through the funnel and archives
// the documents each application was sent with.
type ApplicationHandler struct {
	career    *service.CareerService
	snapshots *service.SnapshotService
	logger    *logrus.Logger
}

func NewApplicationHandler(career *service.CareerService, snapshots *service.SnapshotService, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{career: career, snapshots: snapshots, logger: logger}
}

type CreateApplicationRequest struct {
	JobTitle string `json:"job_title" binding:"required"`
	Company  string `json:"company" binding:"required"`
	JobURL   string `json:"job_url"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`

	// Optional document texts archived verbatim at submission time.
	ResumeText      string `json:"resume_text"`
	CoverLetterText string `json:"cover_letter_text"`
}

type UpdateApplicationRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	app := &models.Application{
		JobTitle: req.JobTitle,
		Company:  req.Company,
		JobURL:   req.JobURL,
		Status:   req.Status,
		Notes:    req.Notes,
	}

	ctx := c.Request.Context()
	if req.ResumeText != "" || req.CoverLetterText != "" {
		if h.snapshots == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot storage not configured"})
			return
		}
		if req.ResumeText != "" {
			key, err := h.snapshots.StoreSnapshot(ctx, tenant, service.SnapshotResume, []byte(req.ResumeText))
			if err != nil {
				h.logger.WithError(err).Error("resume snapshot upload failed")
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot storage temporarily unavailable"})
				return
			}
			app.ResumeSnapshotKey = key
		}
		if req.CoverLetterText != "" {
			key, err := h.snapshots.StoreSnapshot(ctx, tenant, service.SnapshotCoverLetter, []byte(req.CoverLetterText))
			if err != nil {
				h.logger.WithError(err).Error("cover letter snapshot upload failed")
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot storage temporarily unavailable"})
				return
			}
			app.CoverLetterSnapshotKey = key
		}
	}

	if err := h.career.CreateApplication(ctx, tenant, app); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	apps, err := h.career.ListApplications(c.Request.Context(), tenant)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application id"})
		return
	}

	app, err := h.career.GetApplication(c.Request.Context(), tenant, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application id"})
		return
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	app, err := h.career.UpdateApplication(c.Request.Context(), tenant, id, req.Status, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// GetSnapshotURL returns a short-lived download link for the archived resume
// or cover letter of one application.
func (h *ApplicationHandler) GetSnapshotURL(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application id"})
		return
	}

	app, err := h.career.GetApplication(c.Request.Context(), tenant, id)
	if err != nil {
		respondError(c, err)
		return
	}

	var key string
	switch c.Param("kind") {
	case service.SnapshotResume:
		key = app.ResumeSnapshotKey
	case service.SnapshotCoverLetter:
		key = app.CoverLetterSnapshotKey
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown snapshot kind"})
		return
	}
	if key == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no snapshot stored"})
		return
	}

	if h.snapshots == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot storage not configured"})
		return
	}

	url, err := h.snapshots.SnapshotURL(c.Request.Context(), key)
	if err != nil {
		h.logger.WithError(err).Error("snapshot presign failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot storage temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
