package service

import (
	"context"
	"errors"
	"time"

	apperrors "datawise-backend/internal/errors"
	"datawise-backend/internal/repository"

	"gorm.io/gorm"
)

// TenantService exposes the caller's own tenant
type TenantService struct {
	repo repository.TenantRepositoryInterface
}

// NewTenantService creates a new tenant service
func NewTenantService(repo repository.TenantRepositoryInterface) *TenantService {
	return &TenantService{repo: repo}
}

// TenantResponse represents a tenant as shown to its own principals
type TenantResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	LogoURL   *string `json:"logo_url"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// GetTenant returns the tenant of the authenticated principal.
// A token whose tenant no longer exists is treated as unauthenticated.
func (s *TenantService) GetTenant(ctx context.Context, tenantID string) (*TenantResponse, error) {
	if tenantID == "" {
		return nil, apperrors.ErrMissingTenant
	}

	tenant, err := s.repo.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnknownTenant
		}
		return nil, apperrors.NewStorageUnavailableError("get tenant", err)
	}

	resp := &TenantResponse{
		ID:      tenant.ID,
		Name:    tenant.Name,
		LogoURL: tenant.LogoURL,
	}
	if tenant.CreatedAt != nil {
		resp.CreatedAt = tenant.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp, nil
}
