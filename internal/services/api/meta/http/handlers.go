// Package http serves liveness, readiness and build metadata
package http

import (
	"context"
	"net/http"
	"time"

	"namejar/internal/core/corpus"
	"namejar/internal/core/version"
	"namejar/internal/modkit/httpkit"
	phttp "namejar/internal/platform/net/http"
)

// PingTimeout bounds each readiness probe
const PingTimeout = 2 * time.Second

// Pinger is satisfied by adapters that can check their upstream
type Pinger interface {
	Ping(context.Context) error
}

// Deps are what the meta endpoints report on
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Corpus      *corpus.Pack
	// Translator is probed when it is a Pinger, nil means not configured
	Translator any
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := handlers(d)
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/corpus", h.corpus)
}

type handlers Deps

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Service string `json:"service" example:"namejar-api"`
	Started string `json:"started" example:"2026-10-18T09:00:00Z"`
	Now     string `json:"now" example:"2026-10-18T09:05:00Z"`
}

// Check states
const (
	CheckOK      = "ok"
	CheckFail    = "fail"
	CheckSkipped = "skipped"
	CheckUnknown = "unknown"
)

// ReadyCheck is one dependency probe
type ReadyCheck struct {
	Name   string `json:"name" example:"corpus"`
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"translate: ping: connection refused"`
}

// ReadyResponse is ok, degraded (translator down) or fail (no corpus)
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now" example:"2026-10-18T09:05:00Z"`
}

// ServiceResponse is the service name and uptime in seconds
type ServiceResponse struct {
	Name    string `json:"name" example:"namejar-api"`
	Started string `json:"started" example:"2026-10-18T09:00:00Z"`
	Uptime  int64  `json:"uptime" example:"300"`
}

// CorpusResponse is the loaded pack version and per locale sizes
type CorpusResponse struct {
	Version int              `json:"version" example:"1"`
	Meta    map[string]any   `json:"meta,omitempty"`
	Locales []corpus.Summary `json:"locales"`
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// swagger:route GET /meta/health Meta metaHealth
// Liveness
func (h handlers) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.ServiceName, Started: stamp(h.StartedAt), Now: stamp(time.Now())}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// Readiness with dependency checks, 503 when the corpus is missing
func (h handlers) ready(r *http.Request) (any, error) {
	checks := []ReadyCheck{h.checkCorpus(), probe(r.Context(), "translator", h.Translator)}

	res := ReadyResponse{Status: "ok", Checks: checks, Now: stamp(time.Now())}
	status := http.StatusOK
	switch {
	case checks[0].Status == CheckFail:
		res.Status, status = "fail", http.StatusServiceUnavailable
	case checks[1].Status == CheckFail || checks[1].Status == CheckUnknown:
		res.Status = "degraded"
	}
	return phttp.Response{Status: status, Body: res}, nil
}

func (h handlers) checkCorpus() ReadyCheck {
	c := ReadyCheck{Name: "corpus", Status: CheckOK}
	switch {
	case h.Corpus == nil:
		c.Status, c.Error = CheckFail, "corpus not loaded"
	case len(h.Corpus.Families()) == 0:
		c.Status, c.Error = CheckFail, "corpus has no locales"
	}
	return c
}

func probe(ctx context.Context, name string, dep any) ReadyCheck {
	if dep == nil {
		return ReadyCheck{Name: name, Status: CheckSkipped}
	}
	p, ok := dep.(Pinger)
	if !ok {
		return ReadyCheck{Name: name, Status: CheckUnknown}
	}
	ctx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: name, Status: CheckFail, Error: err.Error()}
	}
	return ReadyCheck{Name: name, Status: CheckOK}
}

// swagger:route GET /meta/version Meta metaVersion
// Build and version info
func (h handlers) version(*http.Request) (any, error) { return version.Info(), nil }

// swagger:route GET /meta/service Meta metaService
// Service name and uptime
func (h handlers) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.ServiceName,
		Started: stamp(h.StartedAt),
		Uptime:  int64(time.Since(h.StartedAt) / time.Second),
	}, nil
}

// swagger:route GET /meta/corpus Meta metaCorpus
// Corpus pack version and locale sizes
func (h handlers) corpus(*http.Request) (any, error) {
	if h.Corpus == nil {
		return CorpusResponse{Locales: []corpus.Summary{}}, nil
	}
	return CorpusResponse{Version: h.Corpus.Version, Meta: h.Corpus.Meta, Locales: h.Corpus.Summaries()}, nil
}
