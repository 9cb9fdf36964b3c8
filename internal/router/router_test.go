package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"social-feed-api/internal/database"
	"social-feed-api/internal/metrics"
)

func setupTestRouter(t *testing.T, basePath string, m *metrics.Metrics) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	require.NoError(t, database.AutoMigrate(db))

	return Setup(Config{
		DB:       db,
		Logger:   zap.NewNop(),
		Metrics:  m,
		BasePath: basePath,
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter(t, "/api/feed", nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	router := setupTestRouter(t, "/api/feed", m)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	body := w.Body.String()
	assert.Contains(t, body, "# HELP")
	assert.Contains(t, body, "# TYPE")
	// Default registry metrics are always exposed via promhttp
	assert.Contains(t, body, "go_goroutines")
}

func TestMetricsRegistryContainsGauges(t *testing.T) {
	registry := prometheus.NewRegistry()
	_ = metrics.NewWithRegistry(registry, zap.NewNop())

	metricFamilies, err := registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range metricFamilies {
		names[mf.GetName()] = true
	}

	expected := []string{
		"social_feed_db_connections_open",
		"social_feed_db_connections_in_use",
		"social_feed_db_connections_idle",
		"social_feed_db_connections_max",
		"social_feed_users_total",
		"social_feed_groups_total",
		"social_feed_posts_total",
		"social_feed_reactions_total",
		"social_feed_post_created_total",
		"social_feed_group_created_total",
		"social_feed_comment_created_total",
		"social_feed_reaction_recorded_total",
	}
	for _, name := range expected {
		assert.True(t, names[name], "Registry should contain metric: %s", name)
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := setupTestRouter(t, "/api/feed", nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// An incoming request ID is preserved
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestUnknownRouteReturns404(t *testing.T) {
	router := setupTestRouter(t, "/api/feed", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/feed/nope", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
