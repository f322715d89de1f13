package testutils

import (
	"fmt"
	"time"

	"datawise-backend/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	created := time.Now().UTC()
	id := uuid.NewString()
	return &models.Tenant{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Tenant " + id[:8],
		CreatedAt: &created,
	}
}

// WithID sets a fixed identifier for the tenant
func (f *TenantFactory) WithID(id string) *models.Tenant {
	tenant := f.Create()
	tenant.ID = id
	tenant.Name = "Tenant " + id
	return tenant
}

// WithName sets a custom name for the tenant
func (f *TenantFactory) WithName(name string) *models.Tenant {
	tenant := f.Create()
	tenant.Name = name
	return tenant
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active test User with default values.
// The password hash is a placeholder; tests that log in hash their own.
func (f *UserFactory) Create() *models.User {
	id := uuid.NewString()
	return &models.User{
		BaseModel:      models.BaseModel{ID: id},
		TenantID:       "tenant-abc",
		Email:          fmt.Sprintf("user-%s@example.com", id[:8]),
		HashedPassword: "$2a$10$placeholderplaceholderplaceholderplaceholderplacehol",
		Role:           models.UserRoleUsuario,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
}

// Admin creates an active admin with the given email
func (f *UserFactory) Admin(email string) *models.User {
	user := f.Create()
	user.Email = email
	user.Role = models.UserRoleAdmin
	return user
}

// ItemFactory provides methods to create test Item data
type ItemFactory struct{}

// NewItemFactory creates a new ItemFactory
func NewItemFactory() *ItemFactory {
	return &ItemFactory{}
}

// Create creates a test Item without an identifier, as a client would submit it
func (f *ItemFactory) Create() *models.Item {
	data := "select * from customers"
	return &models.Item{
		TenantID: "tenant-abc",
		Name:     "Query " + uuid.NewString()[:8],
		Data:     &data,
	}
}

// ForTenant creates a test Item owned by the given tenant
func (f *ItemFactory) ForTenant(tenantID string) *models.Item {
	item := f.Create()
	item.TenantID = tenantID
	return item
}

// FactorySet provides access to all factories
type FactorySet struct {
	Tenant *TenantFactory
	User   *UserFactory
	Item   *ItemFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant: NewTenantFactory(),
		User:   NewUserFactory(),
		Item:   NewItemFactory(),
	}
}
