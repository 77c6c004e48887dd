package httpkit

import (
	"net/http"

	phttp "namejar/internal/platform/net/http"
)

// Get mounts a body-less handler; its result is wrapped in the envelope
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.CallHandler(h))
}

// PostJSON mounts a handler whose body is bound into T and validated first
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}
