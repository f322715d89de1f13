package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"datawise-backend/internal/auth"
	"datawise-backend/internal/database/models"
	apperrors "datawise-backend/internal/errors"
	"datawise-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ItemHandler serves one resource kind. Every kind shares the same handler code.
type ItemHandler struct {
	service service.ItemServiceInterface
	kind    models.ResourceKind
}

// NewItemHandler creates a handler bound to kind
func NewItemHandler(service service.ItemServiceInterface, kind models.ResourceKind) *ItemHandler {
	return &ItemHandler{service: service, kind: kind}
}

// Kind returns the resource kind served by the handler
func (h *ItemHandler) Kind() models.ResourceKind {
	return h.kind
}

// CreateItem handles POST /{kind}/
// @Summary Create an item
// @Description Create an item of the given resource kind for the caller's tenant. The tenant is taken from the access token, never from the body.
// @Tags items
// @Accept json
// @Produce json
// @Param kind path string true "Resource kind slug" Enums(data-query, lgpd-query, dpo-query, legal-query, db-manage, data-migrate, easy-api, app-gen)
// @Param item body service.CreateItemRequest true "Item data"
// @Success 201 {object} service.ItemResponse "Successfully created item"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 409 {object} ErrorResponse "Item already exists"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /{kind}/ [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingTenant)
		return
	}

	var req service.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	item, err := h.service.CreateItem(c, h.kind, &req, tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetItem handles GET /{kind}/:id
// @Summary Get an item
// @Description Get one item of the caller's tenant. Items of other tenants are reported as not found.
// @Tags items
// @Produce json
// @Param kind path string true "Resource kind slug"
// @Param id path string true "Item ID (UUID)"
// @Success 200 {object} service.ItemResponse "Successfully retrieved item"
// @Failure 400 {object} ErrorResponse "Invalid item ID"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /{kind}/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingTenant)
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, apperrors.NewValidationError("id", "invalid UUID format"))
		return
	}

	item, err := h.service.GetItem(c, h.kind, tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListItems handles GET /{kind}/
// @Summary List items
// @Description List the caller's tenant items of the given kind, newest first
// @Tags items
// @Produce json
// @Param kind path string true "Resource kind slug"
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} service.ItemListResponse "Successfully retrieved items"
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /{kind}/ [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingTenant)
		return
	}

	page, err := queryInt(c, "page", 1)
	if err != nil {
		respondError(c, apperrors.NewValidationError("page", apperrors.ErrInvalidPaginationParams.Error()))
		return
	}
	pageSize, err := queryInt(c, "page_size", 20)
	if err != nil {
		respondError(c, apperrors.NewValidationError("page_size", apperrors.ErrInvalidPaginationParams.Error()))
		return
	}

	items, err := h.service.ListItems(c, h.kind, tenantID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// bindError names the field whose JSON type is wrong. Syntax errors and
// empty bodies are reported against the whole body.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.NewValidationError(typeErr.Field, fmt.Sprintf("must be a %s", typeErr.Type.String()))
	}
	return apperrors.NewValidationError("body", "Invalid request body")
}
