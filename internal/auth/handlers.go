package auth

import (
	"context"
	"net/http"

	apperrors "datawise-backend/internal/errors"
	"datawise-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Authenticator is the part of AuthService used by the HTTP handlers
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Logout() error
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service Authenticator
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service Authenticator) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Verify email and password and issue an access token bound to the user's tenant
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Access token and profile"
// @Failure 400 {object} map[string]interface{} "Malformed request"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Failure 503 {object} map[string]interface{} "Storage unavailable"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "kind": apperrors.KindValidation})
		return
	}

	resp, err := h.service.Login(c, req.Email, req.Password)
	if err != nil {
		switch {
		case apperrors.IsAuthentication(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials", "kind": apperrors.KindUnauthenticated})
		case apperrors.IsStorageUnavailable(err):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable", "kind": apperrors.KindStorageUnavailable})
		default:
			logger.WithContext(c).WithError(err).Error("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed", "kind": apperrors.KindInternal})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ValidateToken handles GET /auth/validate-token
// @Summary Validate access token
// @Description Report whether the bearer token is valid and return its claims
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AuthValidateResponse "Token is valid"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Router /auth/validate-token [get]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "kind": apperrors.KindUnauthenticated})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}

// Logout handles POST /auth/logout
// @Summary Log out
// @Description Stateless logout; clients discard their token
// @Tags authentication
// @Produce json
// @Success 200 {object} AuthLogoutResponse "Logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed", "kind": apperrors.KindInternal})
		return
	}

	c.JSON(http.StatusOK, AuthLogoutResponse{Message: "Logged out successfully"})
}
