// Package module holds the module contract and the port registry used
// for cross-module lookups during bootstrap
package module

import (
	phttp "titlesmith/internal/platform/net/http"
)

// Module is a mountable unit of the API with an optional port set
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
