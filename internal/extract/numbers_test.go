package extract

import "testing"

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"$1,000,000", 1000000, true},
		{" 700,000 ", 700000, true},
		{"$ 50,000.50", 50000.5, true},
		{"1.5M", 1500000, true},
		{"250k", 250000, true},
		{"2b", 2000000000, true},
		{"1.2 million", 1200000, true},
		{"3 bn", 3000000000, true},
		{"(2,300)", -2300, true},
		{"-450", -450, true},
		{"12 months", 12, true},
		{"N/A", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
