package screen

import (
	"regexp"
	"strings"
)

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9\s]`)

// NormalizeName lowercases a name, replaces punctuation with spaces and collapses whitespace
func NormalizeName(name string) string {
	lower := nonAlnumRe.ReplaceAllString(strings.ToLower(name), " ")
	return strings.Join(strings.Fields(lower), " ")
}

// Matcher compares two normalized, non-empty names
type Matcher interface {
	Name() string
	Match(a, b string) bool
}

// ExactMatcher fires when normalized names are equal
type ExactMatcher struct{}

func (ExactMatcher) Name() string { return "exact" }

func (ExactMatcher) Match(a, b string) bool {
	return a == b
}

// SubstringMatcher fires when either name contains the other
type SubstringMatcher struct{}

func (SubstringMatcher) Name() string { return "substring" }

func (SubstringMatcher) Match(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// InitialSurnameMatcher fires when the last tokens are equal and first tokens share an initial
type InitialSurnameMatcher struct{}

func (InitialSurnameMatcher) Name() string { return "initial_surname" }

func (InitialSurnameMatcher) Match(a, b string) bool {
	aFirst, aLast := firstLast(a)
	bFirst, bLast := firstLast(b)
	if aLast == "" || bLast == "" || aLast != bLast {
		return false
	}
	return aFirst != "" && bFirst != "" && aFirst[0] == bFirst[0]
}

func firstLast(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], parts[len(parts)-1]
}

// DefaultMatchers returns the matchers in evaluation order
func DefaultMatchers() []Matcher {
	return []Matcher{
		ExactMatcher{},
		SubstringMatcher{},
		InitialSurnameMatcher{},
	}
}
