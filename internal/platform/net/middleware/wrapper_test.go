package middleware_test

import (
	"compress/flate"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namejar/internal/platform/net/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("田中 太郎 田中 太郎 田中 太郎 田中 太郎 田中 太郎 田中 太郎"))
	})
}

func TestNoCache_SetsHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	middleware.NoCache()(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rr.Header().Get("Cache-Control"), "no-cache")
}

func TestCompress_GzipWhenAccepted(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	middleware.Compress(flate.BestSpeed)(okHandler()).ServeHTTP(rr, req)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}

func TestStripSlashes_RoutesWithoutTrailingSlash(t *testing.T) {
	var seen string
	h := middleware.StripSlashes()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Path
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/names/draw/", nil))
	assert.Equal(t, "/names/draw", seen)
}

func TestHeartbeat_ShortCircuits(t *testing.T) {
	called := false
	h := middleware.Heartbeat("/ping")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, called)
}

func TestThrottle_ZeroIsPassThrough(t *testing.T) {
	rr := httptest.NewRecorder()
	middleware.Throttle(0)(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCORS_PreflightAllowsAcceptLanguage(t *testing.T) {
	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://example.test"}})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/names/draw", nil)
	req.Header.Set("Origin", "https://example.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Accept-Language")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, "https://example.test", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRequestIDAndRealIP(t *testing.T) {
	var addr string
	h := middleware.RealIP()(middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr = r.RemoteAddr
	})))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "203.0.113.7")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "203.0.113.7", addr)
}
