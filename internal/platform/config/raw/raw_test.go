package raw

import "testing"

func TestConf(t *testing.T) {
	t.Setenv("RAWTEST_LOG_LEVEL", " warn ")
	t.Setenv("RAWTEST_LOG_CALLER", "YES")
	t.Setenv("RAWTEST_LOG_COLOR", "maybe")
	t.Setenv("RAWTEST_LOG_SAMPLE_EVERY", "10")
	t.Setenv("RAWTEST_LOG_NEG", "-3")
	t.Setenv("RAWTEST_LOG_WORD", "ten")

	c := New().Prefix("RAWTEST_").Prefix("LOG_")

	if got := c.Get("LEVEL", "debug"); got != "warn" {
		t.Fatalf("Get = %q", got)
	}
	if got := c.Get("FORMAT", "console"); got != "console" {
		t.Fatalf("Get default = %q", got)
	}

	bools := []struct {
		key  string
		def  bool
		want bool
	}{
		{"CALLER", false, true},
		{"COLOR", true, false},
		{"UNSET", true, true},
	}
	for _, tc := range bools {
		if got := c.GetBool(tc.key, tc.def); got != tc.want {
			t.Fatalf("GetBool(%s) = %v", tc.key, got)
		}
	}

	ints := []struct {
		key  string
		want int
	}{
		{"SAMPLE_EVERY", 10},
		{"NEG", 1},
		{"WORD", 1},
		{"UNSET", 1},
	}
	for _, tc := range ints {
		if got := c.GetInt(tc.key, 1); got != tc.want {
			t.Fatalf("GetInt(%s) = %d", tc.key, got)
		}
	}
}
