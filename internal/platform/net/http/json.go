package http

import (
	"net/http"

	"namejar/internal/platform/logger"
	"namejar/internal/platform/net/http/bind"
)

// JSONHandler binds and validates a T from the body, then wraps fn's result
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

// CallHandler wraps a handler that takes no body
func CallHandler(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return result(fn(r)) })
}

// result passes a Response through untouched, anything else becomes OK
func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}

// logErr records server side failures with the full cause chain, the wire only carries the message
func logErr(r *http.Request, status int, err error) {
	logger.C(r.Context()).Error().Err(err).
		Int("status", status).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
}
