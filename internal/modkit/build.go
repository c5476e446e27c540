package modkit

import (
	"net/http"
	"slices"

	"titlesmith/internal/modkit/httpkit"
)

// Build resolves opts over the module defaults name and prefix.
// own attaches the module endpoints and always runs before WithRegister hooks
func Build(name, prefix string, own func(httpkit.Router), opts ...Option) Base {
	c := buildCfg{name: name, prefix: prefix}
	for _, o := range opts {
		o(&c)
	}

	attach := make([]func(httpkit.Router), 0, len(c.register)+1)
	if own != nil {
		attach = append(attach, own)
	}
	attach = append(attach, c.register...)

	return Base{
		name:   c.name,
		prefix: c.prefix,
		mws:    slices.Clone(c.mw),
		attach: attach,
	}
}

// Option overrides part of a module build
type Option func(*buildCfg)

type buildCfg struct {
	name     string
	prefix   string
	mw       []func(http.Handler) http.Handler
	register []func(httpkit.Router)
}
