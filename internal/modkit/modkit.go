// Package modkit wires API modules from shared deps and options
package modkit

import (
	"net/http"

	"namejar/internal/core/corpus"
	"namejar/internal/modkit/httpkit"
	"namejar/internal/platform/config"
	"namejar/internal/platform/logger"
	"namejar/internal/platform/metrics"
	str "namejar/internal/platform/strings"
)

// Deps are the process wide collaborators every module may use
// nil Corpus means the embedded pack, nil Metrics means no counters
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Corpus  *corpus.Pack
	Metrics *metrics.Set
}

// Option tweaks how a module is built
type Option func(*Built)

// Built is the resolved module setup
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	// Ports carries collaborators injected by the caller, the module owns the concrete type
	Ports any
}

// Build applies opts in order, later options win
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	return b
}

// WithName sets the module name used in logs and panics
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix sets the mount path, e.g. /names
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends module scoped middleware, first added runs first
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw[:len(b.Mw):len(b.Mw)], mw...) }
}

// WithPorts injects collaborators of type T
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// PortsAs returns the injected ports when they are a T
func PortsAs[T any](b Built) T {
	v, _ := b.Ports.(T)
	return v
}

// Mount routes register under the module prefix with its middleware applied
func (b Built) Mount(r httpkit.Router, register func(httpkit.Router)) {
	r.Route(str.MustPrefix(b.Prefix), func(rr httpkit.Router) {
		if len(b.Mw) > 0 {
			rr.Use(b.Mw...)
		}
		register(rr)
	})
}
