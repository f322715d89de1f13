package handlers

import (
	"net/http"

	"datawise-backend/internal/auth"
	apperrors "datawise-backend/internal/errors"
	"datawise-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler handles HTTP requests for the caller's tenant
type TenantHandler struct {
	service service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(service service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{service: service}
}

// GetCurrentTenant handles GET /tenant
// @Summary Get current tenant
// @Description Get the tenant bound to the access token
// @Tags tenants
// @Produce json
// @Success 200 {object} service.TenantResponse "Successfully retrieved tenant"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /tenant [get]
func (h *TenantHandler) GetCurrentTenant(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingTenant)
		return
	}

	tenant, err := h.service.GetTenant(c, tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}
