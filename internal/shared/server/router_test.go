package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match/internal/analyses"
	"resume-match/internal/shared/config"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := analyses.NewService(analyses.NewMemoryRepo(), "es")
	return NewRouter(RouterDeps{
		Config: config.Config{
			Env:            "dev",
			RateLimitRPS:   1,
			RateLimitBurst: 1,
		},
		AnalysisHandler: analyses.NewHandler(svc, 1<<20),
	})
}

func TestHealthIsPublic(t *testing.T) {
	r := newTestRouter()
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"ok":true}`, resp.Body.String())
}

func TestMetricsIsPublic(t *testing.T) {
	r := newTestRouter()
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "resume_analysis_completed_total")
}

func TestAPIRequiresIdentity(t *testing.T) {
	r := newTestRouter()
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/taxonomy", nil))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMeReturnsGuestIdentity(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("X-Guest-Id", "g1")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"userId":"guest:g1","isGuest":true}`, resp.Body.String())
}

func TestAnalyzeRouteIsRateLimited(t *testing.T) {
	r := newTestRouter()
	body, err := json.Marshal(map[string]any{
		"jobId":      "job-1",
		"resumeText": "Experiencia en ventas",
		"job":        map[string]any{"category": "ventas"},
	})
	require.NoError(t, err)

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Guest-Id", "limited")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		return resp.Code
	}

	require.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	// reads stay available while the analyze bucket is empty
	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/job-1/analysis", nil)
	req.Header.Set("X-Guest-Id", "limited")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, strings.Contains(resp.Body.String(), `"jobId":"job-1"`))
}

func TestAddr(t *testing.T) {
	assert.Equal(t, ":8080", Addr(""))
	assert.Equal(t, ":9000", Addr("9000"))
	assert.Equal(t, ":9000", Addr(":9000"))
}
