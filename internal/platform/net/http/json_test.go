package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

type countIn struct {
	N int `json:"n" validate:"min=1"`
}

func call(h Handler, method, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(method, "/x", strings.NewReader(body)))
	return rr
}

func TestJSONHandler(t *testing.T) {
	called := 0
	h := JSONHandler(func(_ *http.Request, in countIn) (any, error) {
		called++
		return map[string]int{"doubled": in.N * 2}, nil
	})

	rr := call(h, http.MethodPost, `{"n":7}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(14), gjson.Get(rr.Body.String(), "data.doubled").Int())

	rr = call(h, http.MethodPost, `{"n":0}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "n", gjson.Get(rr.Body.String(), "field").String())

	rr = call(h, http.MethodPost, `{`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 1, called)
}

func TestCallHandler(t *testing.T) {
	rr := call(CallHandler(func(*http.Request) (any, error) { return nil, errors.New("boom") }), http.MethodGet, "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "boom", gjson.Get(rr.Body.String(), "error").String())

	// a Response passes through untouched
	rr = call(CallHandler(func(*http.Request) (any, error) {
		return Response{Status: http.StatusAccepted, Body: "queued"}, nil
	}), http.MethodGet, "")
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "queued", gjson.Get(rr.Body.String(), "data").String())
}
