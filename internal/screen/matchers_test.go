package screen

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"John  SMITH", "john smith"},
		{"O'Brien, Patrick", "o brien patrick"},
		{"  Al-Rashid   Trading Co.  ", "al rashid trading co"},
		{"...", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchers(t *testing.T) {
	tests := []struct {
		name    string
		matcher Matcher
		a, b    string
		want    bool
	}{
		{"exact equal", ExactMatcher{}, "john smith", "john smith", true},
		{"exact differ", ExactMatcher{}, "john smith", "jane smith", false},
		{"substring contained", SubstringMatcher{}, "jo", "joseph smith", true},
		{"substring container", SubstringMatcher{}, "joseph smith", "jo", true},
		{"substring none", SubstringMatcher{}, "ivan petrov", "joseph smith", false},
		{"initial surname", InitialSurnameMatcher{}, "j smith", "john smith", true},
		{"initial surname middle name", InitialSurnameMatcher{}, "john q smith", "jack smith", true},
		{"different initial", InitialSurnameMatcher{}, "mary smith", "john smith", false},
		{"different surname", InitialSurnameMatcher{}, "john smyth", "john smith", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.matcher.Match(tt.a, tt.b); got != tt.want {
				t.Errorf("%s.Match(%q, %q) = %v, want %v", tt.matcher.Name(), tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSubstringMatcher_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"jo", "joseph smith"},
		{"acme", "acme holdings"},
		{"ivan petrov", "petrov"},
		{"maria", "john smith"},
	}
	m := SubstringMatcher{}
	for _, p := range pairs {
		if m.Match(p[0], p[1]) != m.Match(p[1], p[0]) {
			t.Errorf("Expected symmetric result for %q / %q", p[0], p[1])
		}
	}
}
