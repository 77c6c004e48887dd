// @title         Namejar API
// @version       0.1.0
// @description   Synthetic name generation

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"namejar/internal/core/corpus"
	"namejar/internal/platform/config"
	"namejar/internal/platform/logger"
	"namejar/internal/platform/metrics"
	phttp "namejar/internal/platform/net/http"

	"namejar/internal/modkit/httpkit"
	"namejar/internal/services/api"
)

func main() {
	// .env is optional, real env wins
	if err := config.LoadDotEnv(); err != nil {
		logger.Get().Warn().Err(err).Msg("failed to read .env")
	}

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	namesCfg := root.Prefix("CORE_NAMES_")

	// bring up logging early
	l := logger.Get()

	// corpus: a source directory when configured, the embedded pack otherwise
	dir := namesCfg.MayString("CORPUS_DIR", "")
	var (
		pack *corpus.Pack
		err  error
	)
	if dir != "" {
		pack, err = corpus.LoadDir(dir)
	} else {
		pack, err = corpus.Load()
	}
	if err != nil {
		l.Panic().Err(err).Str("dir", dir).Msg("corpus load failed")
	}
	l.Info().Int("version", pack.Version).Int("locales", len(pack.Families())).Msg("corpus loaded")

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         l,
			Corpus:         pack,
			Metrics:        metrics.Default(),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
			Stack:          httpkit.StackFromConfig(apiCfg),
		},
	)

	// run until SIGINT/SIGTERM, then drain
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
