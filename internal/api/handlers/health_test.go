package handlers

import (
	"net/http"
	"testing"

	"datawise-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthSuite(t *testing.T, closeDB bool) *testutils.HTTPTestSuite {
	t.Helper()
	db, _ := testutils.NewMockGormDB(t)
	if closeDB {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
	}

	h := NewHealthHandler(db)
	s := testutils.SetupHTTPTest()
	s.Router.GET("/ping", h.Ping)
	s.Router.GET("/health", h.Health)
	s.Router.GET("/health/ready", h.Ready)
	s.Router.GET("/health/live", h.Live)
	return s
}

func TestPing(t *testing.T) {
	s := newHealthSuite(t, false)

	var resp PingResponse
	testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/ping", nil), http.StatusOK, &resp)
	assert.Equal(t, "ok", resp.Status)
}

func TestHealth(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		s := newHealthSuite(t, false)

		var resp HealthResponse
		testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &resp)
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "healthy", resp.Services["database"])
	})

	t.Run("database closed", func(t *testing.T) {
		s := newHealthSuite(t, true)

		var resp HealthResponse
		testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &resp)
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Contains(t, resp.Services["database"], "error:")
	})
}

func TestReadyAndLive(t *testing.T) {
	s := newHealthSuite(t, true)

	var ready map[string]interface{}
	testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusServiceUnavailable, &ready)
	assert.Equal(t, false, ready["ready"])

	var live map[string]interface{}
	testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &live)
	assert.Equal(t, true, live["alive"])
}
