// Package module wires the names service into the API
package module

import (
	"namejar/internal/adapters/translate"
	"namejar/internal/core/corpus"
	"namejar/internal/modkit"
	"namejar/internal/modkit/httpkit"
	"namejar/internal/modkit/module"
	str "namejar/internal/platform/strings"

	"namejar/internal/services/names/domain"
	nameshttp "namejar/internal/services/names/http"
	namessvc "namejar/internal/services/names/service"
)

// Module is the names API module
type Module struct {
	b     modkit.Built
	ports Ports
}

// Inject carries optional collaborators through modkit.WithPorts
// A nil Translator means "build one from CORE_TRANSLATE_* when configured"
type Inject struct {
	Translator domain.Translator
}

// New builds the names module
// Draw defaults come from CORE_NAMES_*, the translator from CORE_TRANSLATE_*
func New(deps modkit.Deps, opts ...modkit.Option) module.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("names"), modkit.WithPrefix("/names")}, opts...)...)

	pack := deps.Corpus
	if pack == nil {
		pack = corpus.MustLoad()
	}

	tr := modkit.PortsAs[Inject](b).Translator
	if tr == nil {
		if to := translate.FromConfig(deps.Cfg.Prefix("CORE_TRANSLATE_")); to.Enabled() {
			tr = translate.NewClient(to)
			deps.Log.Info().Str("module", b.Name).Str("url", to.BaseURL).Msg("translation enabled")
		}
	}

	svcOpts := []namessvc.Option{namessvc.WithMetrics(deps.Metrics)}
	if tr != nil {
		svcOpts = append(svcOpts, namessvc.WithTranslator(tr))
	}
	svc := namessvc.New(pack, namessvc.FromConfig(deps.Cfg.Prefix("CORE_NAMES_")), svcOpts...)

	return &Module{b: b, ports: Ports{Names: svc, Translator: tr, Doc: docMutator(svc.Options())}}
}

// MountRoutes mounts /draw and /locales under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { nameshttp.Register(rr, m.ports.Names) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
