package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an authenticated principal. It belongs to exactly one tenant for its
// whole life and stores only a password hash.
type User struct {
	BaseModel
	TenantID       string    `json:"tenant_id" gorm:"type:varchar(64);not null;index"`
	Email          string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex" validate:"required,email,max=255"`
	HashedPassword string    `json:"-" gorm:"type:varchar(255);not null"`
	Role           UserRole  `json:"role" gorm:"type:varchar(20);not null"`
	IsActive       bool      `json:"is_active" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`

	Tenant *Tenant `json:"-" gorm:"foreignKey:TenantID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// NewUser returns an active principal of tenantID with the regular user role
func NewUser(tenantID, email, hashedPassword string) *User {
	return &User{
		TenantID:       tenantID,
		Email:          email,
		HashedPassword: hashedPassword,
		Role:           UserRoleUsuario,
		IsActive:       true,
	}
}

// BeforeCreate assigns the identifier and falls back to the regular user role
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if err := u.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if u.Role == "" {
		u.Role = UserRoleUsuario
	}
	return nil
}
