package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"namejar/internal/core/corpus"
	phttp "namejar/internal/platform/net/http"
	metahttp "namejar/internal/services/api/meta/http"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func get(t *testing.T, d metahttp.Deps, path string) (int, string) {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	metahttp.Register(r, d)

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	b, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return rr.Code, string(b)
}

func TestHealthAndService(t *testing.T) {
	d := metahttp.Deps{ServiceName: "namejar-api", StartedAt: time.Now().Add(-time.Minute)}

	code, body := get(t, d, "/health")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, gjson.Get(body, "data.ok").Bool())
	assert.Equal(t, "namejar-api", gjson.Get(body, "data.service").String())

	code, body = get(t, d, "/service")
	require.Equal(t, http.StatusOK, code)
	assert.GreaterOrEqual(t, gjson.Get(body, "data.uptime").Int(), int64(59))
}

func TestReady(t *testing.T) {
	pack := corpus.MustLoad()

	cases := []struct {
		name       string
		deps       metahttp.Deps
		code       int
		overall    string
		translator string
	}{
		{"corpus only", metahttp.Deps{Corpus: pack}, 200, "ok", "skipped"},
		{"translator up", metahttp.Deps{Corpus: pack, Translator: pinger{}}, 200, "ok", "ok"},
		{"translator down", metahttp.Deps{Corpus: pack, Translator: pinger{err: errors.New("refused")}}, 200, "degraded", "fail"},
		{"translator cannot ping", metahttp.Deps{Corpus: pack, Translator: struct{}{}}, 200, "degraded", "unknown"},
		{"no corpus", metahttp.Deps{Translator: pinger{}}, 503, "fail", "ok"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := get(t, tc.deps, "/ready")
			require.Equal(t, tc.code, code)
			assert.Equal(t, tc.overall, gjson.Get(body, "data.status").String())
			assert.Equal(t, "corpus", gjson.Get(body, "data.checks.0.name").String())
			assert.Equal(t, tc.translator, gjson.Get(body, "data.checks.1.status").String())
		})
	}
}

func TestCorpus(t *testing.T) {
	pack := corpus.MustLoad()

	code, body := get(t, metahttp.Deps{Corpus: pack}, "/corpus")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(pack.Version), gjson.Get(body, "data.version").Int())
	assert.Len(t, gjson.Get(body, "data.locales").Array(), len(pack.Families()))

	_, body = get(t, metahttp.Deps{}, "/corpus")
	assert.Empty(t, gjson.Get(body, "data.locales").Array())
}

func TestVersion(t *testing.T) {
	_, body := get(t, metahttp.Deps{}, "/version")
	assert.Equal(t, "namejar-api", gjson.Get(body, "data.service").String())
}
