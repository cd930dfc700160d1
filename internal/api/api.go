package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/careerpilot/backend/config"
	"github.com/careerpilot/backend/internal/models"
	"github.com/careerpilot/backend/internal/service"
	"github.com/careerpilot/backend/internal/store"
)

// Handlers bundles all HTTP handlers plus the auth service the router needs
// for its token middleware.
type Handlers struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Applications *ApplicationHandler
	Learning     *LearningHandler
	Wellness     *WellnessHandler
	Jobs         *JobHandler
	Interviews   *InterviewHandler
	Dashboard    *DashboardHandler

	AuthService *service.AuthService
	Redis       *redis.Client
}

// NewHandlers wires services onto handlers. s3Config may be nil when object
// storage is not configured; snapshot endpoints then report unavailable.
func NewHandlers(st *store.Store, redisClient *redis.Client, s3Config *config.S3Config, jwtSecret string, logger *logrus.Logger) *Handlers {
	authService := service.NewAuthService(st, jwtSecret)
	profileService := service.NewProfileService(st)
	careerService := service.NewCareerService(st)

	var snapshotService *service.SnapshotService
	if s3Config != nil {
		snapshotService = service.NewSnapshotService(s3Config)
	}

	return &Handlers{
		Auth:         NewAuthHandler(authService, st, logger),
		Profile:      NewProfileHandler(profileService),
		Applications: NewApplicationHandler(careerService, snapshotService, logger),
		Learning:     NewLearningHandler(careerService),
		Wellness:     NewWellnessHandler(careerService),
		Jobs:         NewJobHandler(careerService),
		Interviews:   NewInterviewHandler(careerService),
		Dashboard:    NewDashboardHandler(careerService),
		AuthService:  authService,
		Redis:        redisClient,
	}
}

// respondError maps store and validation errors onto HTTP statuses. Cross
// tenant reads surface as 404 like any other missing row.
func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, store.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
