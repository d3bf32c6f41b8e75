package registry

import "testing"

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Chain Rule", "chain rule"},
		{"  the   CHAIN   rule  ", "the chain rule"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Canonicalize(tt.in); got != tt.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSubstringMatcher(t *testing.T) {
	m := SubstringMatcher{}
	candidates := []string{"chain rule", "derivative", "limits"}

	tests := []struct {
		name    string
		want    string
		matched bool
	}{
		{"the chain rule", "chain rule", true},
		{"chain", "chain rule", true},
		{"derivative of a polynomial", "derivative", true},
		{"integration", "", false},
		// Too short to match anything safely.
		{"e", "", false},
		{"lim", "", false},
	}
	for _, tt := range tests {
		got, ok := m.Match(tt.name, candidates)
		if ok != tt.matched || got != tt.want {
			t.Errorf("Match(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.matched)
		}
	}
}

func TestSubstringMatcherSkipsShortCandidates(t *testing.T) {
	m := SubstringMatcher{}
	if got, ok := m.Match("pipeline", []string{"pi"}); ok {
		t.Errorf("matched short candidate %q", got)
	}
}
