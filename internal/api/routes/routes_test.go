package routes

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"datawise-backend/internal/auth"
	"datawise-backend/internal/config"
	"datawise-backend/internal/database/models"
	"datawise-backend/internal/metrics"
	"datawise-backend/internal/service"
	"datawise-backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:              "development",
		APIPrefix:                "/api/v1",
		SecretKey:                "routes-secret",
		AccessTokenExpireMinutes: 60,
		CORSOrigins:              []string{"https://app.datawiseservice.com"},
	}
}

func setup(t *testing.T) (*testutils.HTTPTestSuite, sqlmock.Sqlmock, string) {
	t.Helper()
	db, mock := testutils.NewMockGormDB(t)
	cfg := testConfig()

	router, err := SetupRoutes(db, cfg, metrics.New())
	require.NoError(t, err)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), nil, nil)
	require.NoError(t, err)
	token, err := authService.GenerateJWT(&models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		TenantID:  "tenant-abc",
		Email:     "adm@datawiseservice.com",
		Role:      models.UserRoleAdmin,
	})
	require.NoError(t, err)

	return &testutils.HTTPTestSuite{Router: router}, mock, token
}

func TestSetupRoutes_RejectsInvalidAuthConfig(t *testing.T) {
	db, _ := testutils.NewMockGormDB(t)
	cfg := testConfig()
	cfg.SecretKey = ""

	_, err := SetupRoutes(db, cfg, nil)
	assert.Error(t, err)
}

func TestPublicRoutes(t *testing.T) {
	s, _, _ := setup(t)

	rec := s.MakeRequest(http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = s.MakeRequest(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "datawise_http_requests_total")

	rec = s.MakeRequest(http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestNoRoute(t *testing.T) {
	s, _, _ := setup(t)

	rec := s.MakeRequest(http.MethodGet, "/api/v1/unknown-kind/", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(t, rec, http.StatusNotFound, &body)
	assert.Equal(t, "Endpoint not found", body["error"])
	assert.NotEmpty(t, body["request_id"])
}

func TestItemRoutesRequireAuth(t *testing.T) {
	s, _, _ := setup(t)

	for _, kind := range models.AllResourceKinds() {
		t.Run(kind.Slug(), func(t *testing.T) {
			rec := s.MakeRequest(http.MethodPost, "/api/v1/"+kind.Slug()+"/", map[string]string{"name": "x"})
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			rec = s.MakeAuthenticatedRequest(http.MethodPost, "/api/v1/"+kind.Slug()+"/", map[string]string{"name": "x"}, "forged")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestCreateItemThroughRouter(t *testing.T) {
	paths := []string{"/api/v1/easy-api/", "/api/v1/easy-api"}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			s, mock, token := setup(t)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "easy_api_items"`)).
				WithArgs(sqlmock.AnyArg(), "tenant-abc", "Endpoint A", sqlmock.AnyArg(), sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			body := map[string]interface{}{"name": "Endpoint A", "tenant_id": "tenant-evil"}
			rec := s.MakeAuthenticatedRequest(http.MethodPost, path, body, token)

			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			var item service.ItemResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
			assert.Equal(t, "tenant-abc", item.TenantID)
			assert.Nil(t, item.Data)
			assert.Len(t, item.ID, 36)
		})
	}
}

func TestCreateItemValidationNeverTouchesStorage(t *testing.T) {
	s, _, token := setup(t)

	rec := s.MakeAuthenticatedRequest(http.MethodPost, "/api/v1/app-gen/", map[string]string{"name": ""}, token)

	var body map[string]interface{}
	testutils.AssertJSONResponse(t, rec, http.StatusBadRequest, &body)
	assert.Equal(t, "validation", body["kind"])
	assert.Equal(t, "name", body["field"])
}

func TestValidateTokenRoute(t *testing.T) {
	s, _, token := setup(t)

	rec := s.MakeAuthenticatedRequest(http.MethodGet, "/api/v1/auth/validate-token", nil, token)

	var resp auth.AuthValidateResponse
	testutils.AssertJSONResponse(t, rec, http.StatusOK, &resp)
	assert.True(t, resp.Valid)
	assert.Equal(t, "tenant-abc", resp.Claims.TenantID)
}
