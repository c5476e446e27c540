// Package module wires listings into the API using modkit
package module

import (
	modkit "titlesmith/internal/modkit"
	"titlesmith/internal/modkit/httpkit"
	listingshttp "titlesmith/internal/services/api/listings/http"
	listingssvc "titlesmith/internal/services/api/listings/service"
)

// Module mounts the title endpoints and exposes the listings port
type Module struct {
	modkit.Base

	svc   listingssvc.Service
	ports Ports
}

// New builds the listings module. Without a storefront, product lookups answer unavailable
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	// a nil *storefront.Client must stay a nil interface
	var fetch listingssvc.Fetcher
	if deps.Storefront != nil {
		fetch = deps.Storefront
	}

	m := &Module{svc: listingssvc.New(deps.Lexicon, deps.Profiles, fetch)}
	m.ports = Ports{Listings: adaptListingsPort{svc: m.svc}}
	m.Base = modkit.Build("listings", "/listings", func(r httpkit.Router) {
		listingshttp.Register(r, m.svc)
	}, opts...)
	return m
}
