package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var numberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// Magnitude words and suffixes, longest first
var magnitudes = []struct {
	suffix string
	factor float64
}{
	{"thousand", 1e3},
	{"million", 1e6},
	{"billion", 1e9},
	{"mm", 1e6},
	{"bn", 1e9},
	{"k", 1e3},
	{"m", 1e6},
	{"b", 1e9},
}

// ParseNumber parses a monetary token such as "$1,250,000", "1.5M" or "(2,300)".
// Thousands separators, currency symbols and whitespace are ignored.
// Returns false when no number is present.
func ParseNumber(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	negative := strings.HasPrefix(trimmed, "(") || strings.HasPrefix(trimmed, "$(")

	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || r == '$' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, trimmed)

	loc := numberRe.FindStringIndex(cleaned)
	if loc == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned[loc[0]:loc[1]], 64)
	if err != nil {
		return 0, false
	}

	value *= magnitude(strings.ToLower(cleaned[loc[1]:]))

	if negative && value > 0 {
		value = -value
	}
	return value, true
}

// magnitude returns the multiplier for a suffix directly after the number
func magnitude(rest string) float64 {
	for _, m := range magnitudes {
		if !strings.HasPrefix(rest, m.suffix) {
			continue
		}
		after := strings.TrimPrefix(rest, m.suffix)
		if after == "" || !unicode.IsLetter([]rune(after)[0]) {
			return m.factor
		}
	}
	return 1
}
