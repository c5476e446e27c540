package profile

import (
	"testing"

	"titlesmith/internal/core/compose"
	"titlesmith/internal/platform/config"
	perr "titlesmith/internal/platform/errors"
)

func TestBuiltinPolicies(t *testing.T) {
	cases := []struct {
		name   Name
		budget int
		gift   bool
		strict bool
		rescue compose.Rescue
	}{
		{Canonical, 80, false, false, compose.RescueAbbreviate},
		{Legacy, 75, true, false, compose.RescueAbbreviate},
		{Strict, 75, false, true, compose.RescueSlice},
	}
	for _, tc := range cases {
		p, err := Lookup(string(tc.name))
		if err != nil {
			t.Fatalf("lookup %s: %v", tc.name, err)
		}
		if p.Policy.Budget != tc.budget || p.Extract.AppendGift != tc.gift ||
			p.Policy.StrictDescriptors != tc.strict || p.Policy.Rescue != tc.rescue {
			t.Fatalf("%s: unexpected profile %+v", tc.name, p)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("fancy")
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}
	if p, err := Lookup("  LEGACY "); err != nil || p.Name != Legacy {
		t.Fatalf("case-insensitive lookup failed: %v", err)
	}
}

func TestFromConfigDefaults(t *testing.T) {
	p, err := FromConfig(config.New().Prefix("TSTPROF_"))
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if p.Name != Canonical || p.Policy.Budget != compose.BudgetDefault {
		t.Fatalf("unexpected default %+v", p)
	}
}

func TestFromConfigOverrides(t *testing.T) {
	t.Setenv("CORE_TITLE_PROFILE", "legacy")
	t.Setenv("CORE_TITLE_BUDGET", "80")
	t.Setenv("CORE_TITLE_GIFT", "false")
	t.Setenv("CORE_TITLE_STRICT_DESCRIPTORS", "true")
	t.Setenv("CORE_TITLE_RESCUE", "slice")

	p, err := FromConfig(config.New().Prefix("CORE_"))
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if p.Name != Legacy || p.Policy.Budget != 80 || p.Extract.AppendGift ||
		!p.Policy.StrictDescriptors || p.Policy.Rescue != compose.RescueSlice {
		t.Fatalf("overrides not applied: %+v", p)
	}
}

func TestFromConfigRejects(t *testing.T) {
	cases := map[string]map[string]string{
		"TITLE_PROFILE": {"CORE_TITLE_PROFILE": "bespoke"},
		"TITLE_BUDGET":  {"CORE_TITLE_BUDGET": "60"},
		"TITLE_RESCUE":  {"CORE_TITLE_RESCUE": "truncate"},
	}
	for field, env := range cases {
		t.Run(field, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := FromConfig(config.New().Prefix("CORE_"))
			if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
				t.Fatalf("want invalid argument, got %v", err)
			}
			if e, ok := perr.As(err); !ok || e.Field() != field {
				t.Fatalf("want field %s, got %v", field, err)
			}
		})
	}
}

func TestCatalog(t *testing.T) {
	def, _ := Lookup("canonical")
	def.Extract.AppendGift = true
	c := NewCatalog(def)

	if p, _ := c.Resolve(""); !p.Extract.AppendGift {
		t.Fatalf("empty name should resolve to the deployment profile")
	}
	if p, _ := c.Resolve("Canonical"); !p.Extract.AppendGift {
		t.Fatalf("default name should carry overrides")
	}
	if p, err := c.Resolve("strict"); err != nil || p.Name != Strict {
		t.Fatalf("resolve strict: %v", err)
	}
	if _, err := c.Resolve("nope"); err == nil {
		t.Fatalf("expected error")
	}

	all := c.All()
	if len(all) != 3 || all[0].Name != Canonical || !all[0].Extract.AppendGift {
		t.Fatalf("All: %+v", all)
	}
}
