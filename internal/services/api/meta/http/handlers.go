// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"titlesmith/internal/core/lexicon"
	"titlesmith/internal/core/version"
	"titlesmith/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Lexicon     *lexicon.Lexicon
	// StorefrontURL is empty when product lookups are disabled
	StorefrontURL string
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/lexicon", h.lexicon)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"titlesmith-api"`
	Started string `json:"started"  example:"2026-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2026-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"lexicon"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Detail string `json:"detail,omitempty" example:"https://alamodeonline.com"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"titlesmith-api"`
	Started string `json:"started" example:"2026-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// TableInfo is the size of one lexicon table
type TableInfo struct {
	Name    string `json:"name"    example:"stone_colors"`
	Entries int    `json:"entries" example:"42"`
}

// LexiconResponse reports the loaded vocabulary and build info
type LexiconResponse struct {
	LexiconVersion int               `json:"lexicon_version" example:"1"`
	Tables         []TableInfo       `json:"tables"`
	ProductRules   int               `json:"product_rules"   example:"9"`
	Build          version.BuildInfo `json:"build"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	lex := ReadyCheck{Name: "lexicon", Status: "ok"}
	if h.deps.Lexicon == nil {
		lex.Status = "fail"
	}
	sf := ReadyCheck{Name: "storefront", Status: "skipped"}
	if h.deps.StorefrontURL != "" {
		sf.Status = "ok"
		sf.Detail = h.deps.StorefrontURL
	}

	overall := "ok"
	switch {
	case lex.Status == "fail":
		overall = "fail"
	case sf.Status != "ok":
		overall = "degraded"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{lex, sf},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/lexicon Meta metaLexicon
// @Summary Lexicon version and table sizes
// @Tags Meta
// @Produce json
// @Success 200 {object} LexiconResponse "ok"
// @Router /meta/lexicon [get]
func (h *handlers) lexicon(_ *http.Request) (any, error) {
	out := LexiconResponse{Build: version.Info(h.deps.ServiceName), Tables: []TableInfo{}}
	lex := h.deps.Lexicon
	if lex == nil {
		return out, nil
	}
	out.LexiconVersion = lex.Version
	out.ProductRules = len(lex.ProductTypes)
	for _, t := range lex.Tables() {
		out.Tables = append(out.Tables, TableInfo{Name: t.Name(), Entries: t.Len()})
	}
	return out, nil
}
