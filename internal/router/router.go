package router

import (
	"github.com/gin-gonic/gin"

	"github.com/careerpilot/backend/internal/api"
	"github.com/careerpilot/backend/internal/middleware"
)

// SetupRouter configures the application routes. Everything except
// registration, login and the health probe sits behind the token middleware.
func SetupRouter(h *api.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(h.AuthService))
	{
		protected.DELETE("/auth/account", h.Auth.DeleteAccount)

		profile := protected.Group("/profile")
		{
			profile.GET("", h.Profile.GetProfile)
			profile.PUT("", h.Profile.UpdateProfile)
		}

		applications := protected.Group("/applications")
		{
			applications.POST("", h.Applications.CreateApplication)
			applications.GET("", h.Applications.ListApplications)
			applications.GET("/:id", h.Applications.GetApplication)
			applications.PATCH("/:id", h.Applications.UpdateApplication)
			applications.GET("/:id/snapshots/:kind", h.Applications.GetSnapshotURL)
		}

		learning := protected.Group("/learning")
		{
			learning.POST("/progress", h.Learning.RecordProgress)
			learning.GET("/progress", h.Learning.ListProgress)
		}

		wellness := protected.Group("/wellness")
		{
			post := h.Wellness.LogWellness
			if h.Redis != nil {
				limiter := middleware.NewWellnessLogRateLimiter(h.Redis)
				wellness.POST("", limiter.RateLimitMiddleware(), post)
			} else {
				wellness.POST("", post)
			}
			wellness.GET("", h.Wellness.GetHistory)
		}

		jobs := protected.Group("/jobs/saved")
		{
			jobs.POST("", h.Jobs.SaveJob)
			jobs.GET("", h.Jobs.ListSavedJobs)
			jobs.DELETE("/:id", h.Jobs.DeleteSavedJob)
		}

		interviews := protected.Group("/interviews")
		{
			post := h.Interviews.CreateSession
			if h.Redis != nil {
				limiter := middleware.NewInterviewSessionRateLimiter(h.Redis)
				interviews.POST("", limiter.RateLimitMiddleware(), post)
			} else {
				interviews.POST("", post)
			}
			interviews.GET("", h.Interviews.ListSessions)
			interviews.GET("/:id", h.Interviews.GetSession)
		}

		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("/stats", h.Dashboard.GetStats)
			dashboard.GET("/streak", h.Dashboard.GetStreak)
		}
	}

	return router
}
