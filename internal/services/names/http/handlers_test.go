package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	phttp "namejar/internal/platform/net/http"
	"namejar/internal/services/names/domain"
	nameshttp "namejar/internal/services/names/http"
)

type fakeSvc struct {
	got   domain.DrawInput
	calls int
}

func (f *fakeSvc) Draw(_ context.Context, in domain.DrawInput) (domain.DrawResult, error) {
	f.got = in
	f.calls++
	return domain.DrawResult{BatchID: "b-1", Locale: "jp", Names: []string{"田中 太郎"}, Text: "田中 太郎"}, nil
}

func (f *fakeSvc) Locales(context.Context) ([]domain.LocaleInfo, error) {
	return []domain.LocaleInfo{{Locale: "zh", Pool: "weighted", Surnames: 2, Default: true}}, nil
}

func newServer(t *testing.T) (*fakeSvc, *httptest.Server) {
	t.Helper()
	svc := &fakeSvc{}
	r := phttp.AdaptChi(chi.NewRouter())
	nameshttp.Register(r, svc)
	srv := httptest.NewServer(r.Mux())
	t.Cleanup(srv.Close)
	return svc, srv
}

func do(t *testing.T, req *http.Request) (int, string) {
	t.Helper()
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(b)
}

func TestDrawJSON(t *testing.T) {
	svc, srv := newServer(t)

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/draw", strings.NewReader(`{"locale":"jp","count":3,"seed":7}`))
	req.Header.Set("Content-Type", "application/json")
	code, body := do(t, req)

	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "b-1", gjson.Get(body, "data.batch_id").String())
	assert.Equal(t, "jp", svc.got.Locale)
	require.NotNil(t, svc.got.Count)
	assert.Equal(t, 3, *svc.got.Count)
	require.NotNil(t, svc.got.Seed)
	assert.Equal(t, uint64(7), *svc.got.Seed)
}

func TestDrawJSON_RejectsInvalid(t *testing.T) {
	svc, srv := newServer(t)

	cases := map[string]string{
		"unknown field":    `{"nope":1}`,
		"gender too long":  `{"gender":"` + strings.Repeat("x", 17) + `"}`,
		"bad json":         `{`,
		"malformed locale": `{"locale":"not a tag!"}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodPost, srv.URL+"/draw", strings.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			code, body := do(t, req)
			assert.Equal(t, http.StatusBadRequest, code, body)
		})
	}
	assert.Zero(t, svc.calls)
}

func TestDrawQuery(t *testing.T) {
	svc, srv := newServer(t)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/draw?locale=en&count=4&weights=true&gender=female&seed=9", nil)
	code, body := do(t, req)

	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "en", svc.got.Locale)
	assert.Equal(t, "female", svc.got.Gender)
	require.NotNil(t, svc.got.Weights)
	assert.True(t, *svc.got.Weights)
	assert.Equal(t, 4, *svc.got.Count)
	assert.Equal(t, uint64(9), *svc.got.Seed)
}

func TestDrawQuery_BadParams(t *testing.T) {
	svc, srv := newServer(t)

	for _, q := range []string{"count=many", "weights=maybe", "translate=2x", "seed=-1"} {
		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/draw?"+q, nil)
		code, body := do(t, req)
		assert.Equal(t, http.StatusBadRequest, code, q)
		assert.NotEmpty(t, gjson.Get(body, "error").String(), q)
	}
	assert.Zero(t, svc.calls)
}

func TestDraw_TargetFromAcceptLanguage(t *testing.T) {
	svc, srv := newServer(t)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/draw?translate=true", nil)
	req.Header.Set("Accept-Language", "ja-JP,ja;q=0.9,en;q=0.5")
	code, _ := do(t, req)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "jp", svc.got.Target)

	// an explicit target wins
	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/draw?translate=true&target=en", nil)
	req.Header.Set("Accept-Language", "ja-JP")
	_, _ = do(t, req)
	assert.Equal(t, "en", svc.got.Target)

	// no translation, no target
	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/draw", nil)
	req.Header.Set("Accept-Language", "ja-JP")
	_, _ = do(t, req)
	assert.Empty(t, svc.got.Target)
}

func TestLocales(t *testing.T) {
	_, srv := newServer(t)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/locales", nil)
	code, body := do(t, req)

	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "zh", gjson.Get(body, "data.0.locale").String())
	assert.True(t, gjson.Get(body, "data.0.default").Bool())
}
