package swaggerkit

import (
	"encoding/json"
	"net/http"
	"slices"
	"strings"
	"sync"

	"titlesmith/internal/platform/config"
	perr "titlesmith/internal/platform/errors"
	pnet "titlesmith/internal/platform/net"

	docs "titlesmith/internal/services/api/docs"
)

// SpecMutator adjusts the parsed OpenAPI document before it is served
type SpecMutator func(spec map[string]any)

var (
	mutMu    sync.RWMutex
	mutators = map[string]SpecMutator{}
)

// Register installs m under name, replacing any earlier mutator of that name.
// A nil m removes it. Mutators run in name order
func Register(name string, m SpecMutator) {
	mutMu.Lock()
	defer mutMu.Unlock()
	if m == nil {
		delete(mutators, name)
		return
	}
	mutators[name] = m
}

func applyMutators(spec map[string]any) {
	mutMu.RLock()
	defer mutMu.RUnlock()
	names := make([]string, 0, len(mutators))
	for n := range mutators {
		names = append(names, n)
	}
	slices.Sort(names)
	for _, n := range names {
		mutators[n](spec)
	}
}

// docReader is swapped by tests
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

const apiBase = "/api/v1"

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		downgrade(spec, apiBase)
		if suffix := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", ""); suffix != "" {
			info := obj(spec, "info")
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + suffix
			}
		}

		obj(obj(spec, "components"), "schemas")["ErrorResponse"] = errorSchema
		defaultResponses(spec, map[string]any{
			"400": errorResponse(http.StatusBadRequest, perr.ErrorCodeValidation, "profile must be one of [canonical legacy strict]"),
			"500": errorResponse(http.StatusInternalServerError, perr.ErrorCodePanic, "panic recovered"),
		})
		applyMutators(spec)

		w.Header().Set("Cache-Control", "no-store")
		pnet.WriteJSON(w, http.StatusOK, spec)
	}
}

// obj returns m[key] as an object, creating it when absent
func obj(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	v := map[string]any{}
	m[key] = v
	return v
}

// downgrade serves the document as OpenAPI 3.0.3, which the bundled UI renders,
// and points servers at base when the document names none
func downgrade(spec map[string]any, base string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": base}}
	}
}

// errorSchema mirrors the failure side of pnet.Envelope
var errorSchema = map[string]any{
	"type":        "object",
	"description": "Error envelope",
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer", "format": "int32"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer", "format": "int32"},
		"error":       map[string]any{"type": "string"},
		"field":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
	"required": []any{"status_code", "status"},
}

func errorResponse(status int, code perr.ErrorCode, msg string) map[string]any {
	return map[string]any{
		"description": http.StatusText(status),
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      http.StatusText(status),
					"code":        int(code),
					"error":       msg,
					"request_id":  "titlesmith/abc-000001",
				},
			},
		},
	}
}

// defaultResponses adds each response to every operation that does not declare that status
func defaultResponses(spec map[string]any, defaults map[string]any) {
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range paths {
		item, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, o := range item {
			op, ok := o.(map[string]any)
			if !ok {
				continue
			}
			resps := obj(op, "responses")
			for status, resp := range defaults {
				if _, declared := resps[status]; !declared {
					resps[status] = resp
				}
			}
		}
	}
}
