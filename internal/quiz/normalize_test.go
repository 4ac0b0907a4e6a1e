package quiz

import "testing"

// TestNormalizeCanonicalizes verifies trimming, case folding, whitespace
// collapsing, quote stripping, and trailing punctuation removal.
func TestNormalizeCanonicalizes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "blank", in: "   ", want: ""},
		{name: "trim and lower", in: "  Paris  ", want: "paris"},
		{name: "collapse whitespace", in: "Hello \t  World", want: "hello world"},
		{name: "double quotes", in: `"Paris"`, want: "paris"},
		{name: "single quotes", in: "'Rome'", want: "rome"},
		{name: "quotes then punctuation", in: "'Rome.'", want: "rome"},
		{name: "punctuation after quotes", in: `"foo".`, want: "foo"},
		{name: "comma after quotes", in: "'bar',", want: "bar"},
		{name: "trailing punctuation run", in: "paris . ,;:", want: "paris"},
		{name: "mismatched quotes kept", in: `"Paris'`, want: `"paris'`},
		{name: "inner quotes kept", in: `say "hi" now`, want: `say "hi" now`},
		{name: "spaces inside quotes", in: "' Paris '", want: "paris"},
		{name: "internal punctuation kept", in: "a.b.c", want: "a.b.c"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// TestNormalizeIdempotent verifies normalizing twice changes nothing.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "  ", "Paris", "  Hello   World  ", `"Quoted."`, "'x'",
		"trailing...", "a, b; c:", "' spaced quotes '", "OPTION A: Paris",
		`"foo".`, "'bar',", `"a b" ;`, `."nested".`,
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
