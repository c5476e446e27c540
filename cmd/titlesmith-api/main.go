// @title         titlesmith API
// @version       1.0
// @description   Composes budget-bounded marketplace titles for jewelry listings

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"titlesmith/internal/adapters/storefront"
	"titlesmith/internal/core/lexicon"
	"titlesmith/internal/core/profile"
	"titlesmith/internal/platform/config"
	"titlesmith/internal/platform/logger"
	phttp "titlesmith/internal/platform/net/http"

	"titlesmith/internal/services/api"
)

func main() {
	// engine config lives under CORE_*, HTTP under CORE_API_*
	root := config.New()
	coreCfg := root.Prefix("CORE_")
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	lex, err := lexicon.FromConfig(coreCfg)
	if err != nil {
		l.Panic().Err(err).Msg("lexicon load failed")
	}
	def, err := profile.FromConfig(coreCfg)
	if err != nil {
		l.Panic().Err(err).Msg("title profile config invalid")
	}

	var sf *storefront.Client
	if coreCfg.MayBool("STOREFRONT_ENABLED", true) {
		sf = storefront.NewClient(storefront.OptionsFromConfig(coreCfg))
	}

	l.Info().
		Int("lexicon_version", lex.Version).
		Str("profile", string(def.Name)).
		Int("budget", def.Policy.Budget).
		Bool("storefront", sf != nil).
		Msg("title engine ready")

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(coreCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Lexicon:        lex,
			Profiles:       profile.NewCatalog(def),
			Storefront:     sf,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run until SIGINT/SIGTERM, then drain within CORE_API_SHUTDOWN_GRACE
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
