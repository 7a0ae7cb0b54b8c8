package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match/internal/analyses"
	"resume-match/internal/shared/config"
)

func TestBuildDevFallsBackToMemory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := Build(context.Background(), config.Config{Env: "dev", DefaultLocale: "es", MaxUploadBytes: 1 << 20})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Nil(t, app.DB)
	assert.IsType(t, &analyses.MemoryRepo{}, app.AnalysesRepo)
	require.NotNil(t, app.Router)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestBuildProductionRequiresDatabase(t *testing.T) {
	_, err := Build(context.Background(), config.Config{Env: "production"})
	assert.EqualError(t, err, "DATABASE_URL is required")
}

func TestIsDevLike(t *testing.T) {
	assert.True(t, isDevLike(" DEV "))
	assert.True(t, isDevLike("local"))
	assert.False(t, isDevLike("production"))
}
