// Package api provides the HTTP API for the application
package api

import (
	"titlesmith/internal/adapters/storefront"
	"titlesmith/internal/core/lexicon"
	"titlesmith/internal/core/profile"
	"titlesmith/internal/platform/config"
	"titlesmith/internal/platform/logger"
	phttp "titlesmith/internal/platform/net/http"

	"titlesmith/internal/modkit"
	"titlesmith/internal/modkit/httpkit"
	"titlesmith/internal/modkit/module"
	"titlesmith/internal/modkit/swaggerkit"

	listingsmod "titlesmith/internal/services/api/listings/module"
	metamod "titlesmith/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	// Config is the API view, CORE_API_ in titlesmith-api
	Config   config.Conf
	Logger   *logger.Logger
	Lexicon  *lexicon.Lexicon
	Profiles *profile.Catalog
	// Storefront is optional, product lookups answer unavailable without it
	Storefront     *storefront.Client
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:        opt.Config,
		Lexicon:    opt.Lexicon,
		Profiles:   opt.Profiles,
		Storefront: opt.Storefront,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if !deps.Complete() {
		panic("api.Mount requires a lexicon and a profile catalog")
	}

	mods := []module.Module{
		metamod.New(deps),
		listingsmod.New(deps),
	}

	stack := httpkit.StackOptions{
		SlowRequest: opt.Config.MayDuration("SLOW_REQUEST", httpkit.DefaultStackOptions.SlowRequest),
		Timeout:     opt.Config.MayDuration("REQUEST_TIMEOUT", httpkit.DefaultStackOptions.Timeout),
		Origins:     opt.Config.MayCSV("CORS_ORIGINS", nil),
	}

	// unversioned extras
	swaggerkit.Register("profiles", profileDocs(opt.Profiles))
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(stack), func(v1 httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(v1)
		}
	})
}

// profileDocs makes the served document default request profiles to the deployment profile
func profileDocs(c *profile.Catalog) swaggerkit.SpecMutator {
	def := string(c.Default().Name)
	return func(spec map[string]any) {
		comps, _ := spec["components"].(map[string]any)
		schemas, _ := comps["schemas"].(map[string]any)
		for _, name := range []string{"domain.TitleInput", "domain.ProductInput"} {
			schema, _ := schemas[name].(map[string]any)
			props, _ := schema["properties"].(map[string]any)
			if p, ok := props["profile"].(map[string]any); ok {
				p["default"] = def
				p["example"] = def
			}
		}
	}
}
