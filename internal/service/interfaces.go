package service

import (
	"context"

	"datawise-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ItemServiceInterface defines the interface for the tenant-scoped resource store
type ItemServiceInterface interface {
	CreateItem(ctx context.Context, kind models.ResourceKind, req *CreateItemRequest, tenantID string) (*ItemResponse, error)
	GetItem(ctx context.Context, kind models.ResourceKind, tenantID, id string) (*ItemResponse, error)
	ListItems(ctx context.Context, kind models.ResourceKind, tenantID string, page, pageSize int) (*ItemListResponse, error)
}

// TenantServiceInterface defines the interface for reading the caller's tenant
type TenantServiceInterface interface {
	GetTenant(ctx context.Context, tenantID string) (*TenantResponse, error)
}

// BootstrapServiceInterface defines the interface for one-shot admin seeding
type BootstrapServiceInterface interface {
	SeedAdmin(ctx context.Context, req *SeedAdminRequest) (*SeedAdminResult, error)
}
