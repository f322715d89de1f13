package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"datawise-backend/internal/auth"
	"datawise-backend/internal/database/models"
	apperrors "datawise-backend/internal/errors"
	"datawise-backend/internal/logger"
	"datawise-backend/internal/notification"
	"datawise-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	DefaultRootTenant = "ROOT"
	welcomeSubject    = "Bem-vindo ao DataWise (AdminMaster)"
	welcomeBody       = "Seu usuário foi criado. Login: %s  Senha inicial: %s"
	generatedPassLen  = 12
)

// BootstrapService seeds the first tenant and its admin principal
type BootstrapService struct {
	userRepo  repository.UserRepositoryInterface
	sender    notification.Sender
	validator *validator.Validate
}

// NewBootstrapService creates a new bootstrap service. sender may be nil to skip email.
func NewBootstrapService(userRepo repository.UserRepositoryInterface, sender notification.Sender, validator *validator.Validate) *BootstrapService {
	return &BootstrapService{
		userRepo:  userRepo,
		sender:    sender,
		validator: validator,
	}
}

// SeedAdminRequest describes the admin to create.
// An empty Password makes the service generate one.
type SeedAdminRequest struct {
	Email      string  `json:"email" yaml:"email" validate:"required,email,max=255"`
	Password   string  `json:"password" yaml:"password" validate:"omitempty,min=8"`
	TenantName string  `json:"tenant" yaml:"tenant" validate:"omitempty,max=255"`
	LogoURL    *string `json:"logo_url,omitempty" yaml:"logo_url,omitempty"`
}

// SeedAdminResult reports what was created
type SeedAdminResult struct {
	TenantID          string `json:"tenant_id"`
	UserID            string `json:"user_id"`
	Email             string `json:"email"`
	GeneratedPassword string `json:"-"`
	EmailSent         bool   `json:"email_sent"`
}

// SeedAdmin creates the tenant and an active admin in one transaction, then
// sends the welcome email. Email failures are logged and never undo the seed.
func (s *BootstrapService) SeedAdmin(ctx context.Context, req *SeedAdminRequest) (*SeedAdminResult, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("email", "is required")
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorageUnavailableError("find user", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	password := req.Password
	generated := ""
	if password == "" {
		if password, err = auth.GeneratePassword(generatedPassLen); err != nil {
			return nil, err
		}
		generated = password
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	tenantName := req.TenantName
	if tenantName == "" {
		tenantName = DefaultRootTenant
	}

	tenant := &models.Tenant{Name: tenantName, LogoURL: req.LogoURL}
	user := models.NewUser("", req.Email, hashed)
	user.Role = models.UserRoleAdmin

	if err := s.userRepo.CreateTenantWithAdmin(ctx, tenant, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewAlreadyExistsError("tenant or user", "")
		}
		return nil, apperrors.NewStorageUnavailableError("create tenant with admin", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"tenant_id": tenant.ID,
		"user_id":   user.ID,
	})
	log.Info("admin seeded")

	result := &SeedAdminResult{
		TenantID:          tenant.ID,
		UserID:            user.ID,
		Email:             user.Email,
		GeneratedPassword: generated,
	}

	if s.sender != nil {
		body := fmt.Sprintf(welcomeBody, user.Email, password)
		if err := s.sender.Send(ctx, user.Email, welcomeSubject, body); err != nil {
			log.WithError(err).Warn("could not send welcome email")
		} else {
			result.EmailSent = true
		}
	}

	return result, nil
}
