package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides the server generated identifier shared by all models.
// IDs are assigned in Go before the insert so that creation never depends on a
// database default.
type BaseModel struct {
	ID string `json:"id" gorm:"type:varchar(36);primaryKey"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	return nil
}

// now is replaced in tests
var now = func() time.Time { return time.Now().UTC() }
