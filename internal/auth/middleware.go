package auth

import (
	"net/http"
	"strings"

	apperrors "datawise-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by RequireAuth
const (
	ContextUserID   = "user_id"
	ContextTenantID = "tenant_id"
	ContextEmail    = "email"
	ContextRole     = "role"
	ContextClaims   = "auth_claims"
)

// TokenValidator validates access tokens
type TokenValidator interface {
	ValidateJWT(tokenString string) (*AuthClaims, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": message,
		"kind":  apperrors.KindUnauthenticated,
	})
}

// RequireAuth validates JWT tokens and sets the principal and tenant in the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		// Extract token from Bearer header
		tokenString, found := cutBearer(authHeader)
		if !found || tokenString == "" {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		// Validate token
		claims, err := m.validator.ValidateJWT(tokenString)
		if err != nil {
			unauthorized(c, "Invalid token")
			return
		}

		// Set user context
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextTenantID, claims.TenantID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

func cutBearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// GetTenantID returns the verified tenant of the request.
// It is the only source of tenant identity for handlers.
func GetTenantID(c *gin.Context) (string, bool) {
	tenantID, exists := c.Get(ContextTenantID)
	if !exists {
		return "", false
	}

	id, ok := tenantID.(string)
	return id, ok && id != ""
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ContextEmail)
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetRole is a helper function to extract the principal role from context
func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}

	roleStr, ok := role.(string)
	return roleStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
