package registry

import "strings"

// Matcher decides whether an incoming concept name refers to one of the
// learner's existing nodes.
type Matcher interface {
	// Match returns the matching candidate and true, or false when no
	// candidate is close enough. Candidates are canonical (lowercased)
	// names.
	Match(name string, candidates []string) (string, bool)
}

// SubstringMatcher matches when one canonical name contains the other,
// in either direction. "chain rule" matches "the chain rule";
// "derivative" matches "derivative of a polynomial". Single tokens
// shorter than four runes never match to keep "e" away from "euler".
type SubstringMatcher struct{}

func (SubstringMatcher) Match(name string, candidates []string) (string, bool) {
	name = Canonicalize(name)
	if len([]rune(name)) < 4 {
		return "", false
	}
	for _, c := range candidates {
		if len([]rune(c)) < 4 {
			continue
		}
		if strings.Contains(c, name) || strings.Contains(name, c) {
			return c, true
		}
	}
	return "", false
}

// Canonicalize folds a display name to its registry key: trimmed,
// lowercased, inner whitespace collapsed.
func Canonicalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
