package repository

import (
	"context"

	"datawise-backend/internal/database/models"

	"gorm.io/gorm"
)

// ItemRepository handles database operations for resource items of every kind
type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserts the item into the table of its kind inside one transaction.
// The transaction is committed on success and rolled back on error or panic.
func (r *ItemRepository) Create(ctx context.Context, kind models.ResourceKind, item *models.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Table(kind.TableName()).Create(item).Error
	})
}

// GetByID retrieves an item of the given tenant by ID
func (r *ItemRepository) GetByID(ctx context.Context, kind models.ResourceKind, tenantID, id string) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).
		Table(kind.TableName()).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByTenant retrieves the items of a tenant with pagination, newest first
func (r *ItemRepository) ListByTenant(ctx context.Context, kind models.ResourceKind, tenantID string, limit, offset int) ([]models.Item, int64, error) {
	var items []models.Item
	var total int64

	scoped := func() *gorm.DB {
		return r.db.WithContext(ctx).Table(kind.TableName()).Where("tenant_id = ?", tenantID)
	}

	// Get total count
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := scoped().Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
