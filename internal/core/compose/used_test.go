package compose

import (
	"reflect"
	"testing"
)

func TestUsedTerms(t *testing.T) {
	var u UsedTerms

	if got, ok := u.Claim("Gift"); !ok || got != "Gift" {
		t.Fatalf("first claim: %q %v", got, ok)
	}
	if _, ok := u.Claim("gift"); ok {
		t.Fatalf("case-insensitive duplicate accepted")
	}
	if _, ok := u.Claim("  "); ok {
		t.Fatalf("blank term accepted")
	}
	u.Claim("2 Pcs")

	if !u.Has("GIFT") || u.Has("Halo") {
		t.Fatalf("Has mismatch")
	}
	want := []string{"Gift", "2 Pcs"}
	got := u.Order()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order: got %v want %v", got, want)
	}
	got[0] = "mutated"
	if u.Order()[0] != "Gift" {
		t.Fatalf("Order must return a copy")
	}
}
