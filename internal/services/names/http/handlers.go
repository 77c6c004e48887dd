// Package http provides http transport for the names service
package http

import (
	stdhttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"namejar/internal/core/locale"
	"namejar/internal/modkit/httpkit"
	perr "namejar/internal/platform/errors"
	"namejar/internal/platform/net/http/bind"
	"namejar/internal/services/names/domain"
)

// Register mounts names endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// draw from a JSON body
	httpkit.PostJSON[domain.DrawInput](r, "/draw", h.drawJSON)

	// draw from query params, handy for curl and browsers
	httpkit.Get(r, "/draw", h.drawQuery)

	// loaded corpora
	httpkit.Get(r, "/locales", h.locales)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /names/draw Names namesDraw
// Draw a batch of names
func (h *handlers) drawJSON(r *stdhttp.Request, in domain.DrawInput) (any, error) {
	return h.svc.Draw(r.Context(), withTarget(r, in))
}

// swagger:route GET /names/draw Names namesDrawQuery
// Draw a batch of names from query parameters
func (h *handlers) drawQuery(r *stdhttp.Request) (any, error) {
	in, err := parseQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}
	if err := bind.Validate(in); err != nil {
		return nil, err
	}
	return h.svc.Draw(r.Context(), withTarget(r, in))
}

// swagger:route GET /names/locales Names namesLocales
// Loaded corpora
func (h *handlers) locales(r *stdhttp.Request) (any, error) {
	return h.svc.Locales(r.Context())
}

// withTarget falls back to Accept-Language when a translation has no target
func withTarget(r *stdhttp.Request, in domain.DrawInput) domain.DrawInput {
	if !in.Translate || strings.TrimSpace(in.Target) != "" {
		return in
	}
	if f, ok := locale.FromAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		in.Target = f.String()
	}
	return in
}

func parseQuery(q url.Values) (domain.DrawInput, error) {
	in := domain.DrawInput{
		Locale: q.Get("locale"),
		Gender: q.Get("gender"),
		Target: q.Get("target"),
	}
	if v := q.Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return in, fieldErr("count", "count must be an integer")
		}
		in.Count = &n
	}
	if v := q.Get("weights"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return in, fieldErr("weights", "weights must be a boolean")
		}
		in.Weights = &b
	}
	if v := q.Get("translate"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return in, fieldErr("translate", "translate must be a boolean")
		}
		in.Translate = b
	}
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return in, fieldErr("seed", "seed must be a non-negative integer")
		}
		in.Seed = &n
	}
	return in, nil
}

func fieldErr(field, msg string) error {
	return perr.WithField(perr.New(perr.ErrorCodeValidation, msg), field)
}
