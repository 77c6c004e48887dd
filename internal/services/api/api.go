// Package api provides the HTTP API for the application
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"namejar/internal/core/corpus"
	"namejar/internal/platform/config"
	"namejar/internal/platform/logger"
	"namejar/internal/platform/metrics"
	phttp "namejar/internal/platform/net/http"

	"namejar/internal/modkit"
	"namejar/internal/modkit/httpkit"
	"namejar/internal/modkit/module"
	"namejar/internal/modkit/swaggerkit"

	metamod "namejar/internal/services/api/meta/module"
	namesmod "namejar/internal/services/names/module"
)

// Options are the API options
type Options struct {
	Config  config.Conf
	Logger  *logger.Logger
	Corpus  *corpus.Pack
	Metrics *metrics.Set

	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool

	// Stack tunes the shared middleware, see httpkit.StackFromConfig
	Stack httpkit.StackOptions
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	l := opt.Logger
	if l == nil {
		l = logger.Get()
	}
	pack := opt.Corpus
	if pack == nil {
		pack = corpus.MustLoad()
	}
	deps := modkit.Deps{
		Log:     *l,
		Cfg:     opt.Config,
		Corpus:  pack,
		Metrics: opt.Metrics,
	}

	// names owns the translator, meta probes it for readiness
	names := namesmod.New(deps)
	namesPorts := module.MustPortsOf[namesmod.Ports](names)
	var probe any
	if tr := namesPorts.Translator; tr != nil {
		probe = tr
	}
	meta := metamod.New(deps, modkit.WithPorts(metamod.Inject{Translator: probe}))

	mods := []module.Module{meta, names}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger, namesPorts.Doc)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			m.MountRoutes(api)
			l.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})

	if opt.EnableMetrics && opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}
}

// Handler builds a standalone chi backed handler with the API mounted
func Handler(opt Options) http.Handler {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, opt)
	return r.Mux()
}
