package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"datawise-backend/internal/database/models"
	apperrors "datawise-backend/internal/errors"
	"datawise-backend/internal/logger"
	"datawise-backend/internal/metrics"
	"datawise-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// AuthService issues and verifies access tokens for tenant principals
type AuthService struct {
	config   *AuthConfig
	userRepo repository.UserRepositoryInterface
	metrics  *metrics.Metrics
	now      func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   string `json:"user_id" example:"6f1c2d1e-6f0a-4c0e-9a55-2f7f3b2d8c11"`
	TenantID string `json:"tenant_id" example:"tenant-abc"`
	Email    string `json:"email" example:"adm@datawiseservice.com"`
	Role     string `json:"role" example:"admin"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest represents the credentials posted to the login endpoint
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserProfile is the public view of the logged in principal
type UserProfile struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginResponse represents the response of a successful login
type LoginResponse struct {
	Token            string      `json:"token"`
	TokenType        string      `json:"token_type" example:"bearer"`
	ExpiresInSeconds int64       `json:"expires_in_seconds" example:"86400"`
	User             UserProfile `json:"user"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service. m may be nil.
func NewAuthService(config *AuthConfig, userRepo repository.UserRepositoryInterface, m *metrics.Metrics) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:   config,
		userRepo: userRepo,
		metrics:  m,
		now:      time.Now,
	}, nil
}

// Login verifies the credentials of an active principal and issues a token.
// Unknown emails, wrong passwords and inactive users all fail the same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	resp, err := s.login(ctx, email, password)
	if err != nil {
		s.metrics.AuthAttempt("failure")
		return nil, err
	}
	s.metrics.AuthAttempt("success")
	return resp, nil
}

func (s *AuthService) login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.NewStorageUnavailableError("find user", err)
	}

	if !VerifyPassword(user.HashedPassword, password) {
		logger.WithContext(ctx).WithField("user_id", user.ID).Warn("login rejected: wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		logger.WithContext(ctx).WithField("user_id", user.ID).Warn("login rejected: inactive user")
		return nil, apperrors.ErrInactiveUser
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token:            token,
		TokenType:        "bearer",
		ExpiresInSeconds: int64(s.config.TokenTTL.Seconds()),
		User: UserProfile{
			ID:       user.ID,
			TenantID: user.TenantID,
			Email:    user.Email,
			Role:     string(user.Role),
		},
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	if user.TenantID == "" {
		return "", apperrors.ErrMissingTenant
	}

	now := s.now()
	claims := &AuthClaims{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Email:    user.Email,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.SecretKey))
}

// ValidateJWT validates and parses a JWT token. Tokens without a tenant are rejected.
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.TenantID == "" {
		return nil, fmt.Errorf("token carries no tenant")
	}

	return claims, nil
}

// Logout handles user logout (stateless JWT tokens don't require server-side logout)
func (s *AuthService) Logout() error {
	return nil
}
