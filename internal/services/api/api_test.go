package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"titlesmith/internal/core/lexicon"
	"titlesmith/internal/core/profile"
	"titlesmith/internal/modkit/module"
	"titlesmith/internal/platform/config"
	phttp "titlesmith/internal/platform/net/http"
	"titlesmith/internal/platform/testkit"
	listingsmod "titlesmith/internal/services/api/listings/module"
)

func mounted(t *testing.T) *chi.Mux {
	t.Helper()
	def, _ := profile.Lookup("canonical")
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), Options{
		Config:        config.New().Prefix("CORE_API_"),
		Lexicon:       lexicon.MustDefault(),
		Profiles:      profile.NewCatalog(def),
		EnableSwagger: true,
	})
	return mux
}

func TestMount_Routes(t *testing.T) {
	testkit.Serial(t)
	t.Cleanup(module.Reset)
	mux := mounted(t)

	cases := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/api/v1/meta/health", "", http.StatusOK},
		{http.MethodGet, "/api/v1/meta/lexicon", "", http.StatusOK},
		{http.MethodGet, "/api/v1/listings/profiles", "", http.StatusOK},
		{http.MethodPost, "/api/v1/listings/title", `{"title":"Men's Stainless Steel Chain Necklace"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/listings/title", `{"title":"x","profile":"fancy"}`, http.StatusBadRequest},
		{http.MethodPost, "/api/v1/listings/product", `{"product":"TK3180"}`, http.StatusServiceUnavailable},
		{http.MethodGet, "/api/docs/doc.json", "", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		if tc.body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("%s %s: status %d want %d body %s", tc.method, tc.path, rec.Code, tc.want, rec.Body.String())
		}
	}

	if p, ok := module.PortsAs[listingsmod.Ports]("listings"); !ok || p.Listings == nil {
		t.Fatalf("listings ports not registered")
	}
}

func TestMount_ComposesTitle(t *testing.T) {
	testkit.Serial(t)
	t.Cleanup(module.Reset)
	mux := mounted(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/listings/title",
		strings.NewReader(`{"title":"Women's Sterling Silver Earrings with Blue Topaz","tags":["earrings","women"]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var env struct {
		Data struct {
			Title  string `json:"title"`
			Length int    `json:"length"`
			Budget int    `json:"budget"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	testkit.MustContain(t, env.Data.Title, "Women's")
	if env.Data.Length == 0 || env.Data.Length > env.Data.Budget {
		t.Fatalf("unexpected listing %+v", env.Data)
	}
}

func TestMount_RequiresEngine(t *testing.T) {
	testkit.MustPanic(t, func() {
		Mount(phttp.AdaptChi(chi.NewRouter()), Options{})
	})
}

func TestProfileDocs(t *testing.T) {
	legacy, _ := profile.Lookup("legacy")
	spec := map[string]any{
		"components": map[string]any{"schemas": map[string]any{
			"domain.TitleInput": map[string]any{"properties": map[string]any{
				"profile": map[string]any{"type": "string"},
			}},
		}},
	}
	profileDocs(profile.NewCatalog(legacy))(spec)

	p := spec["components"].(map[string]any)["schemas"].(map[string]any)["domain.TitleInput"].(map[string]any)["properties"].(map[string]any)["profile"].(map[string]any)
	if p["default"] != "legacy" || p["example"] != "legacy" {
		t.Fatalf("profile schema %v", p)
	}

	// documents missing the schemas are left alone
	profileDocs(profile.NewCatalog(legacy))(map[string]any{})
}
