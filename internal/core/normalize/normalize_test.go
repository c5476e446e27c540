package normalize

import (
	"testing"
)

// Test table covers each stage and combined pipelines.
func TestNormalize_Table(t *testing.T) {
	n := New()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "identity ascii",
			in:   "cubic zirconia",
			out:  "cubic zirconia",
		},
		{
			name: "utf8 repair drops invalid bytes",
			in:   string([]byte{0xff, 'r', 'i', 'n', 'g', 0x80, ' ', 's', 'e', 't'}),
			out:  "ring set",
		},
		{
			name: "case fold",
			in:   "IP Rose Gold",
			out:  "ip rose gold",
		},
		{
			name: "precomposed accent stripped",
			in:   "Pavé",
			out:  "pave",
		},
		{
			name: "combining accent stripped",
			in:   "pavé",
			out:  "pave",
		},
		{
			name: "mojibake repaired then stripped",
			in:   "pavÃ©",
			out:  "pave",
		},
		{
			name: "remove zero-widths",
			in:   "ha\u200blo",
			out:  "halo",
		},
		{
			name: "width fold fullwidth",
			in:   "ＣＺ ring",
			out:  "cz ring",
		},
		{
			name: "digits survive",
			in:   "TK3180 - 2 Pcs",
			out:  "tk3180 - 2 pcs",
		},
		{
			name: "collapse whitespace",
			in:   "  heart\t\tshape\n ring  ",
			out:  "heart shape ring",
		},
		{
			name: "idempotent",
			in:   n.Normalize("  SOLITAIRE\u200d  Pavé "),
			out:  "solitaire pave",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.in)
			if got != tc.out {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.out)
			}
			// normalize again should be identical
			if got2 := n.Normalize(got); got2 != got {
				t.Fatalf("Normalize not idempotent: %q -> %q", got, got2)
			}
		})
	}
}

func TestRepairMojibake(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"pavÃ©", "pavé"},
		{"pavé", "pavé"},          // already fine, no marker
		{"Ã la carte", "Ã la carte"}, // re-encoding is not valid UTF-8
		{"plain", "plain"},
	}
	for _, c := range cases {
		if got := RepairMojibake(c.in); got != c.want {
			t.Fatalf("RepairMojibake(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	in := " \t a \n b   c \r\n "
	want := "a b c"
	if got := collapseSpaces(in); got != want {
		t.Fatalf("collapseSpaces(%q) = %q, want %q", in, got, want)
	}
}

func TestKeyMatchesText(t *testing.T) {
	if Key("AAA Cubic Zirconia") != Text("aaa  cubic zirconia") {
		t.Fatalf("Key and Text disagree")
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"clean is untouched", "Halo Ring, 925 Silver", "Halo Ring, 925 Silver"},
		{"line breaks become spaces", "Halo\r\nRing\tSet", "Halo  Ring Set"},
		{"nul and del dropped", "Halo\x00 Ring\x7f", "Halo Ring"},
		{"c1 dropped", "Pav\u0085e", "Pave"},
		{"invalid utf8 dropped", "Ring \xff\xfeBand", "Ring Band"},
		{"replacement char dropped", "Ring �Band", "Ring Band"},
		{"accents kept", "pavé", "pavé"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.in); got != tc.want {
				t.Fatalf("Sanitize(%q) = %q want %q", tc.in, got, tc.want)
			}
		})
	}
}
