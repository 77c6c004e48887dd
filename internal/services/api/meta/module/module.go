// Package module wires the meta endpoints into the API
package module

import (
	"time"

	"namejar/internal/core/version"
	"namejar/internal/modkit"
	"namejar/internal/modkit/httpkit"
	"namejar/internal/modkit/module"
	str "namejar/internal/platform/strings"

	metahttp "namejar/internal/services/api/meta/http"
)

// Module serves health, readiness and build info
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// Inject carries collaborators owned by other modules
// Translator is probed by /meta/ready when it implements Ping
type Inject struct {
	Translator any
}

// New builds the meta module
func New(deps modkit.Deps, opts ...modkit.Option) module.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)
	return &Module{
		b: b,
		deps: metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   time.Now(),
			Corpus:      deps.Corpus,
			Translator:  modkit.PortsAs[Inject](b).Translator,
		},
	}
}

// MountRoutes mounts the meta routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Ports is empty, meta only consumes
func (m *Module) Ports() any { return nil }
