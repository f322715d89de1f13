package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"datawise-backend/internal/database/models"
	apperrors "datawise-backend/internal/errors"
	"datawise-backend/internal/logger"
	"datawise-backend/internal/metrics"
	"datawise-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ItemService implements the tenant-scoped resource store for every resource kind
type ItemService struct {
	repo      repository.ItemRepositoryInterface
	validator *validator.Validate
	metrics   *metrics.Metrics
}

// NewItemService creates a new item service. m may be nil.
func NewItemService(repo repository.ItemRepositoryInterface, validator *validator.Validate, m *metrics.Metrics) *ItemService {
	return &ItemService{
		repo:      repo,
		validator: validator,
		metrics:   m,
	}
}

// CreateItemRequest is the client payload shared by all resource kinds
type CreateItemRequest struct {
	Name string  `json:"name" validate:"required,min=1"`
	Data *string `json:"data,omitempty"`
}

// ItemResponse represents a stored item
type ItemResponse struct {
	ID        string  `json:"id"`
	TenantID  string  `json:"tenant_id"`
	Name      string  `json:"name"`
	Data      *string `json:"data"`
	CreatedAt string  `json:"created_at"`
}

// ItemListResponse represents a paginated list of items
type ItemListResponse struct {
	Items    []ItemResponse `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ValidateCreateItem checks a payload without touching storage
func (s *ItemService) ValidateCreateItem(req *CreateItemRequest) error {
	if req == nil {
		return apperrors.NewValidationError("name", "is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return toValidationError(err)
	}
	return nil
}

// CreateItem validates the payload, stamps it with the authenticated tenant and
// inserts it atomically. On any error nothing is persisted.
func (s *ItemService) CreateItem(ctx context.Context, kind models.ResourceKind, req *CreateItemRequest, tenantID string) (*ItemResponse, error) {
	resp, err := s.createItem(ctx, kind, req, tenantID)
	if err != nil {
		s.metrics.ItemCreateFailed(string(kind), apperrors.Kind(err))
		return nil, err
	}
	s.metrics.ItemCreated(string(kind))
	return resp, nil
}

func (s *ItemService) createItem(ctx context.Context, kind models.ResourceKind, req *CreateItemRequest, tenantID string) (*ItemResponse, error) {
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("kind", apperrors.ErrUnknownResourceKind.Error())
	}
	if tenantID == "" {
		return nil, apperrors.ErrMissingTenant
	}
	if err := s.ValidateCreateItem(req); err != nil {
		return nil, err
	}

	item := &models.Item{
		TenantID: tenantID,
		Name:     req.Name,
		Data:     req.Data,
	}

	if err := s.repo.Create(ctx, kind, item); err != nil {
		log := logger.WithContext(ctx).WithField("kind", kind).WithError(err)
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			log.Warn("item id collision")
			return nil, apperrors.ErrItemExists
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			log.Warn("item references a tenant that does not exist")
			return nil, apperrors.ErrUnknownTenant
		default:
			log.Error("failed to persist item")
			return nil, apperrors.NewStorageUnavailableError(fmt.Sprintf("create %s item", kind), err)
		}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"kind":    kind,
		"item_id": item.ID,
	}).Info("item created")

	return toItemResponse(item), nil
}

// GetItem retrieves one item of the tenant. Items of other tenants are reported as not found.
func (s *ItemService) GetItem(ctx context.Context, kind models.ResourceKind, tenantID, id string) (*ItemResponse, error) {
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("kind", apperrors.ErrUnknownResourceKind.Error())
	}
	if tenantID == "" {
		return nil, apperrors.ErrMissingTenant
	}

	item, err := s.repo.GetByID(ctx, kind, tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, apperrors.NewStorageUnavailableError(fmt.Sprintf("get %s item", kind), err)
	}

	return toItemResponse(item), nil
}

// ListItems retrieves a page of the tenant's items
func (s *ItemService) ListItems(ctx context.Context, kind models.ResourceKind, tenantID string, page, pageSize int) (*ItemListResponse, error) {
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("kind", apperrors.ErrUnknownResourceKind.Error())
	}
	if tenantID == "" {
		return nil, apperrors.ErrMissingTenant
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	items, total, err := s.repo.ListByTenant(ctx, kind, tenantID, pageSize, offset)
	if err != nil {
		return nil, apperrors.NewStorageUnavailableError(fmt.Sprintf("list %s items", kind), err)
	}

	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = *toItemResponse(&items[i])
	}

	return &ItemListResponse{
		Items:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func toItemResponse(item *models.Item) *ItemResponse {
	return &ItemResponse{
		ID:        item.ID,
		TenantID:  item.TenantID,
		Name:      item.Name,
		Data:      item.Data,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
	}
}
