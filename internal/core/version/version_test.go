package version

import "testing"

func TestInfo(t *testing.T) {
	b := Info("titlesmith")
	if b.Service != "titlesmith" {
		t.Fatalf("service got %q", b.Service)
	}
	if b.Version != "dev" || b.Commit != "none" || b.Date != "unknown" {
		t.Fatalf("unexpected defaults %+v", b)
	}
	if got, want := b.String(), "titlesmith dev (none, unknown)"; got != want {
		t.Fatalf("String got %q want %q", got, want)
	}
}
