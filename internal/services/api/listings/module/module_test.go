package module

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"titlesmith/internal/core/lexicon"
	"titlesmith/internal/core/profile"
	modkit "titlesmith/internal/modkit"
	"titlesmith/internal/modkit/module"
	perr "titlesmith/internal/platform/errors"
	phttp "titlesmith/internal/platform/net/http"
	"titlesmith/internal/services/api/listings/domain"
)

const titleA = "TK3180 - Women's Stainless Steel Ring with Clear Cubic Zirconia, IP Gold (Ion Plating), High Polished"

func testDeps(t *testing.T) modkit.Deps {
	t.Helper()
	def, err := profile.Lookup("canonical")
	if err != nil {
		t.Fatal(err)
	}
	return modkit.Deps{Lexicon: lexicon.MustDefault(), Profiles: profile.NewCatalog(def)}
}

func TestModule_Identity(t *testing.T) {
	m := New(testDeps(t))
	if m.Name() != "listings" {
		t.Fatalf("name %q", m.Name())
	}
	mm := m.(*Module)
	if mm.Prefix() != "/listings" || len(mm.Middlewares()) != 0 {
		t.Fatalf("prefix %q mws %d", mm.Prefix(), len(mm.Middlewares()))
	}

	o := New(testDeps(t), modkit.WithName("titles"), modkit.WithPrefix("/titles"))
	if o.Name() != "titles" || o.(*Module).Prefix() != "/titles" {
		t.Fatalf("options not applied: %s %s", o.Name(), o.(*Module).Prefix())
	}
}

func TestModule_Ports(t *testing.T) {
	m := New(testDeps(t))
	p, ok := module.PortsOf[Ports](m)
	if !ok || p.Listings == nil {
		t.Fatalf("expected listings port, got %+v ok=%v", p, ok)
	}

	l, err := p.Listings.Compose(context.Background(), domain.TitleInput{
		Title: titleA,
		Tags:  []string{"women", "ring", "solitaire", "round"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if l.Title != "Women's Ring, Solitaire, Round Clear Cubic Zirconia, Stainless Steel Gold-Plated" || l.Profile != "canonical" {
		t.Fatalf("unexpected listing %+v", l)
	}
	if got := p.Listings.Profiles(context.Background()); len(got) != 3 {
		t.Fatalf("profiles %d", len(got))
	}

	// no storefront wired
	_, err = p.Listings.FromProduct(context.Background(), domain.ProductInput{Product: "TK3180"})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestModule_MountRoutes(t *testing.T) {
	var extra int
	m := New(testDeps(t), modkit.WithRegister(func(r phttp.Router) {
		extra++
		r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	}))

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	if extra != 1 {
		t.Fatalf("external register called %d times", extra)
	}

	body := `{"title":"` + titleA + `","tags":["women","ring"],"profile":"legacy"}`
	req := httptest.NewRequest(http.MethodPost, "/listings/title", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data domain.Listing `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Data.Profile != "legacy" || env.Data.Length > env.Data.Budget {
		t.Fatalf("unexpected listing %+v", env.Data)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/listings/ping", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("ping status %d", rec.Code)
	}
}
