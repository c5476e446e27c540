// Package modkit wires API modules: the deps they share, build options,
// and the routing base each module embeds
package modkit

import (
	"net/http"

	"titlesmith/internal/modkit/httpkit"
	"titlesmith/internal/modkit/module"
	str "titlesmith/internal/platform/strings"
)

// Module is what api.Mount needs from a module
type Module = module.Module

// Base is the routing half of a module. Embed it and the module only has to supply Ports
type Base struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	attach []func(httpkit.Router)
}

// MountRoutes mounts the module endpoints under its prefix with its middlewares
func (b *Base) MountRoutes(r httpkit.Router) {
	r.Route(b.Prefix(), func(rr httpkit.Router) {
		if len(b.mws) > 0 {
			rr.Use(b.mws...)
		}
		for _, fn := range b.attach {
			fn(rr)
		}
	})
}

// Name is the registry key for the module ports
func (b *Base) Name() string { return str.MustString(b.name, "module name") }

// Prefix is the normalized mount path, eg /listings
func (b *Base) Prefix() string { return str.MustPrefix(b.prefix) }

// Middlewares returns the per module middlewares in mount order
func (b *Base) Middlewares() []func(http.Handler) http.Handler { return b.mws }
