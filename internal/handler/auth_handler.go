package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lostxrotimi/service-studio/internal/common/auth"
	"github.com/lostxrotimi/service-studio/internal/common/response"
)

// LoginRequest is the admin login body.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued admin token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthHandler issues admin tokens.
type AuthHandler struct {
	jwtManager   *auth.JWTManager
	passwordHash string
	logger       *zap.Logger
}

// NewAuthHandler creates a new AuthHandler. An empty passwordHash disables login.
func NewAuthHandler(jwtManager *auth.JWTManager, passwordHash string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{jwtManager: jwtManager, passwordHash: passwordHash, logger: logger}
}

// RegisterRoutes registers the admin login route.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/api/v1/admin/login", h.Login)
}

// Login handles POST /api/v1/admin/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if h.passwordHash == "" {
		response.Unauthorized(c, "admin login is not configured")
		return
	}
	if err := auth.CheckPassword(h.passwordHash, req.Password); err != nil {
		h.logger.Warn("admin login rejected", zap.String("client_ip", c.ClientIP()))
		response.Unauthorized(c, "invalid password")
		return
	}

	token, expiresAt, err := h.jwtManager.Generate("admin", auth.RoleAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.logger.Info("admin logged in", zap.String("client_ip", c.ClientIP()))
	response.Success(c, TokenResponse{AccessToken: token, TokenType: "Bearer", ExpiresAt: expiresAt})
}
