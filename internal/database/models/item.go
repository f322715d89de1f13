package models

import (
	"time"
)

// Item is a record of one resource kind. Every kind shares this shape and is
// stored in its own table (see ResourceKind.TableName).
type Item struct {
	BaseModel
	TenantID  string    `json:"tenant_id" gorm:"type:varchar(64);not null"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Data      *string   `json:"data"`
	CreatedAt time.Time `json:"created_at"`

	Tenant *Tenant `json:"-" gorm:"foreignKey:TenantID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}
