package repository

import (
	"context"

	"datawise-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ItemRepositoryInterface defines the interface for tenant-scoped item storage.
// Every read filters by tenant; items of other tenants behave as missing.
type ItemRepositoryInterface interface {
	Create(ctx context.Context, kind models.ResourceKind, item *models.Item) error
	GetByID(ctx context.Context, kind models.ResourceKind, tenantID, id string) (*models.Item, error)
	ListByTenant(ctx context.Context, kind models.ResourceKind, tenantID string, limit, offset int) ([]models.Item, int64, error)
}

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	GetByID(ctx context.Context, id string) (*models.Tenant, error)
	GetByName(ctx context.Context, name string) (*models.Tenant, error)
}

// UserRepositoryInterface defines the interface for principal repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CreateTenantWithAdmin(ctx context.Context, tenant *models.Tenant, user *models.User) error
}
