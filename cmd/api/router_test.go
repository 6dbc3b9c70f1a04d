package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-admin-backend/internal/config"
	"course-admin-backend/pkg/container"
	"course-admin-backend/pkg/jwt"
)

func testContainer(authEnabled bool) *container.Container {
	return &container.Container{
		Config: &config.Config{
			App: config.AppConfig{Version: "test", CORSOrigins: []string{"http://localhost:3000"}},
			JWT: config.JWTConfig{Enabled: authEnabled, Secret: "s"},
		},
		JWTManager: jwt.NewManager("s", time.Hour),
	}
}

func TestHealth_DatabaseMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testContainer(false))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body["status"])
	services := body["services"].(map[string]interface{})
	assert.Equal(t, "disconnected", services["database"])
	assert.Equal(t, "disconnected", services["redis"])
}

func TestAdminGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testContainer(true))

	for _, path := range []string{"/api/v1/courses", "/api/v1/users/1", "/api/v1/lessons/1", "/api/v1/chapters/1"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	// health không bị guard
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.NotEqual(t, http.StatusUnauthorized, w.Code)
}
