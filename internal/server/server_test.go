package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/naver2maps/internal/config"
)

// newTestServer creates a server whose place API points at an unroutable
// address, so resolution never leaves the process unless a test overrides it.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Load()
	cfg.PlaceAPIBase = "http://127.0.0.1:9/summary"
	cfg.PlacePageBase = "http://127.0.0.1:9/place"
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestIndexServesHTML(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	s.handleIndex(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "/convert?url=")
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Load()
	cfg.Port = -1
	_, err := New(cfg)
	require.Error(t, err)
}
