package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marcenaria_site/internal/config"
	"marcenaria_site/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: 8080, Mode: gin.TestMode, StaticDir: t.TempDir()},
		Storage:   config.StorageConfig{Driver: "memory"},
		Redis:     config.RedisConfig{LockTTL: time.Second},
		Contact:   config.ContactConfig{Mock: true},
		Analytics: config.AnalyticsConfig{ThrottleWindow: time.Second},
		UI:        config.UIConfig{NotificationDismiss: 5 * time.Second, HeaderOffset: 80},
		Site: config.SiteConfig{
			Name: "Marcenaria Sob Medida",
			Gallery: []config.GalleryImage{
				{Src: "/static/img/galeria/1.jpg", Alt: "Cozinha"},
				{Src: "/static/img/galeria/2.jpg", Alt: "Guarda-roupa"},
			},
		},
	}
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := testConfig(t)
	log := logger.NewTest(t)

	deps, err := buildDependencies(context.Background(), cfg, log)
	require.NoError(t, err)
	t.Cleanup(deps.Close)

	router, err := NewRouter(cfg, deps, log)
	require.NoError(t, err)
	return router
}

func TestRouter_OpsEndpoints(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRouter_Pages(t *testing.T) {
	r := newTestServer(t)

	for _, path := range []string{"/", "/galeria", "/galeria/1", "/orcamento", "/contato"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "Marcenaria Sob Medida", path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nada", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_SessionCookieIsIssued(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "msm_sid" {
			found = true
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found, "expected session cookie")
}

// An estimate computed through the API is readable by the same session only.
func TestRouter_EstimateIsScopedToSession(t *testing.T) {
	r := newTestServer(t)

	body := `{"furniture_type":"wardrobe","material":"standard","handles":"standard","width":2,"height":2.4,"depth":60}`
	req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.InDelta(t, 6796.8, created["total_price"], 1e-9)
	assert.EqualValues(t, 2, created["sheets"])

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req = httptest.NewRequest(http.MethodGet, "/v1/estimates/latest", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var latest map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &latest))
	assert.Equal(t, created["estimate_id"], latest["estimate_id"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/estimates/latest", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_OversizedEstimateIsRejected(t *testing.T) {
	r := newTestServer(t)

	body := `{"furniture_type":"wardrobe","material":"standard","handles":"premium","width":"1e200","height":"1e200","depth":60}`
	req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"code":"DIMENSION_OUT_OF_RANGE","message":"Medidas ou quantidades acima do limite aceito"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/v1/estimates/latest", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_AnalyticsEvent(t *testing.T) {
	r := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/analytics/events", bytes.NewBufferString(`{"event":"nav_click","label":"galeria"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestServe_ReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	srv := &http.Server{Addr: busy.Addr().String(), Handler: http.NotFoundHandler()}
	err = serve(context.Background(), srv, time.Second, logger.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to startup the application")
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, time.Second, logger.NewNop()) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
