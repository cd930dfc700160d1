package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/careerpilot/backend/internal/middleware"
	"github.com/careerpilot/backend/internal/service"
	"github.com/careerpilot/backend/internal/store"
)

// AuthHandler handles registration, login and account deletion.
type AuthHandler struct {
	auth   *service.AuthService
	store  *store.Store
	logger *logrus.Logger
}

func NewAuthHandler(auth *service.AuthService, st *store.Store, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, store: st, logger: logger}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// Register creates the account and its career profile in one step, then
// returns a token so the client is signed in immediately.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		h.logger.WithError(err).Error("registration failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		h.logger.WithError(err).Error("login failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// DeleteAccount removes the tenant and every row it owns.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	tenant, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.store.DeleteTenant(c.Request.Context(), tenant); err != nil {
		h.logger.WithError(err).WithField("user_id", tenant).Error("account deletion failed")
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
