package score

import (
	"strings"
	"testing"

	"github.com/ppiankov/dossier/internal/model"
)

func TestScorer_Assess(t *testing.T) {
	tests := []struct {
		name        string
		input       RiskInput
		wantLevel   model.RiskLevel
		wantReasons int
	}{
		{"healthy", RiskInput{DSCR: model.Float(1.75)}, model.RiskLow, 0},
		{"at target", RiskInput{DSCR: model.Float(1.25)}, model.RiskLow, 0},
		{"below target", RiskInput{DSCR: model.Float(1.1)}, model.RiskMedium, 1},
		{"exactly floor", RiskInput{DSCR: model.Float(1.0)}, model.RiskMedium, 1},
		{"below floor", RiskInput{DSCR: model.Float(0.8)}, model.RiskHigh, 1},
		{"unknown dscr", RiskInput{}, model.RiskMedium, 1},
		{"compliance critical", RiskInput{ComplianceCritical: true, DSCR: model.Float(2)}, model.RiskHigh, 1},
		{"prior critical", RiskInput{PriorCritical: true, DSCR: model.Float(2)}, model.RiskHigh, 1},
		{"missing kyb and unknown dscr", RiskInput{MissingKYB: []string{model.FlagMissingState}}, model.RiskHigh, 2},
		{
			"everything wrong",
			RiskInput{MissingKYB: []string{model.FlagNoUBOOver25}, ComplianceCritical: true, DSCR: model.Float(0.5)},
			model.RiskHigh, 3,
		},
	}

	scorer := NewScorer(1.0, 1.25)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Assess(tt.input)
			if got.Level != tt.wantLevel {
				t.Errorf("Expected level %s, got %s", tt.wantLevel, got.Level)
			}
			if len(got.Reasons) != tt.wantReasons {
				t.Errorf("Expected %d reasons, got %d: %v", tt.wantReasons, len(got.Reasons), got.Reasons)
			}
			if len(got.Factors) != len(got.Reasons) {
				t.Errorf("Expected one factor per reason, got %d factors", len(got.Factors))
			}
		})
	}
}

func TestScorer_Assess_ReasonText(t *testing.T) {
	got := NewScorer(1.0, 1.25).Assess(RiskInput{
		MissingKYB: []string{model.FlagMissingEntityName, model.FlagNoUBOOver25},
		DSCR:       model.Float(0.9),
	})

	joined := strings.Join(got.Reasons, "\n")
	for _, want := range []string{"Incomplete", "MISSING_ENTITY_NAME", "NO_UBO_OVER_25", "DSCR 0.90x is below 1.00x"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected reasons to mention %q, got %v", want, got.Reasons)
		}
	}

	for _, f := range got.Factors {
		if f.Type == model.FactorDSCRBelowFloor {
			if f.Data["formula"] == nil {
				t.Error("Expected DSCR factor to carry its formula")
			}
		}
	}
}
