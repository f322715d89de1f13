package handlers

import (
	"net/http"
	"testing"

	"datawise-backend/internal/auth"
	apperrors "datawise-backend/internal/errors"
	"datawise-backend/internal/mocks"
	"datawise-backend/internal/service"
	"datawise-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetCurrentTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTenantServiceInterface(ctrl)
	h := NewTenantHandler(svc)

	s := testutils.SetupHTTPTest()
	s.Router.GET("/tenant", func(c *gin.Context) { c.Set(auth.ContextTenantID, testTenant) }, h.GetCurrentTenant)
	s.Router.GET("/anonymous/tenant", h.GetCurrentTenant)

	t.Run("found", func(t *testing.T) {
		svc.EXPECT().GetTenant(gomock.Any(), testTenant).Return(&service.TenantResponse{ID: testTenant, Name: "ROOT"}, nil)

		var resp service.TenantResponse
		testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/tenant", nil), http.StatusOK, &resp)
		assert.Equal(t, "ROOT", resp.Name)
	})

	t.Run("tenant deleted", func(t *testing.T) {
		svc.EXPECT().GetTenant(gomock.Any(), testTenant).Return(nil, apperrors.ErrUnknownTenant)

		var resp ErrorResponse
		testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/tenant", nil), http.StatusUnauthorized, &resp)
		assert.Equal(t, apperrors.KindUnauthenticated, resp.Kind)
	})

	t.Run("no principal", func(t *testing.T) {
		testutils.AssertErrorResponse(t, s.MakeRequest(http.MethodGet, "/anonymous/tenant", nil), http.StatusUnauthorized, "no authenticated tenant")
	})
}
