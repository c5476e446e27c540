// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "titlesmith/internal/modkit"
	"titlesmith/internal/modkit/httpkit"

	metahttp "titlesmith/internal/services/api/meta/http"
)

// ServiceName is reported by the health and version endpoints
const ServiceName = "titlesmith-api"

// Module serves health, readiness, version and lexicon introspection
type Module struct {
	modkit.Base
}

// New builds the meta module; uptime counts from this call
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	d := metahttp.Deps{
		ServiceName: ServiceName,
		StartedAt:   time.Now(),
		Lexicon:     deps.Lexicon,
	}
	if deps.Storefront != nil {
		d.StorefrontURL = deps.Storefront.BaseURL()
	}

	m := &Module{}
	m.Base = modkit.Build("meta", "/meta", func(r httpkit.Router) { metahttp.Register(r, d) }, opts...)
	return m
}

// Ports is empty; nothing calls into meta
func (m *Module) Ports() any { return nil }
