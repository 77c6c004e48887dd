package http_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namejar/internal/platform/config"
	phttp "namejar/internal/platform/net/http"
)

func TestNewServer_Addr(t *testing.T) {
	t.Setenv("T_SRV_ADDR", "")
	t.Setenv("T_SRV_PORT", "")
	assert.Equal(t, ":4000", phttp.NewServer(config.New().Prefix("T_SRV_")).Addr())

	t.Setenv("T_SRV_PORT", "8081")
	assert.Equal(t, ":8081", phttp.NewServer(config.New().Prefix("T_SRV_")).Addr())

	t.Setenv("T_SRV_ADDR", "127.0.0.1:9")
	assert.Equal(t, "127.0.0.1:9", phttp.NewServer(config.New().Prefix("T_SRV_")).Addr())
}

func TestServer_ServeUntilCancelled(t *testing.T) {
	srv := phttp.NewServer(config.New().Prefix("T_SRV_UNSET_"))
	r := srv.Router()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Mw", "1")
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/api", func(api phttp.Router) {
		api.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })
	})
	phttp.MountProfiler(r, "/debug", true)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	base := "http://" + ln.Addr().String()
	res, err := http.Get(base + "/api/ping")
	require.NoError(t, err)
	b, _ := io.ReadAll(res.Body)
	_ = res.Body.Close()
	assert.Equal(t, "pong", string(b))
	assert.Equal(t, "1", res.Header.Get("X-Mw"))

	res, err = http.Get(base + "/debug/pprof/cmdline")
	require.NoError(t, err)
	_ = res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not drain")
	}
}

func TestMountProfiler_Disabled(t *testing.T) {
	srv := phttp.NewServer(config.New())
	phttp.MountProfiler(srv.Router(), "/debug", false)

	rr := httptest.NewRecorder()
	srv.Router().Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
