package models

import (
	"time"

	"gorm.io/gorm"
)

// Tenant is an isolated customer organization
type Tenant struct {
	BaseModel
	Name      string     `json:"name" gorm:"type:varchar(255);not null;uniqueIndex" validate:"required,min=1,max=255"`
	LogoURL   *string    `json:"logo_url,omitempty" gorm:"type:text"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// BeforeCreate assigns the identifier and creation timestamp
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if err := t.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if t.CreatedAt == nil {
		ts := now()
		t.CreatedAt = &ts
	}
	return nil
}
