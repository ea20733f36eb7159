package score

import (
	"testing"

	"github.com/ppiankov/dossier/internal/model"
)

func TestEBITDA(t *testing.T) {
	got := EBITDA(model.Float(1000000), model.Float(700000), model.Float(50000))
	if got == nil || *got != 350000 {
		t.Fatalf("Expected EBITDA 350000, got %v", got)
	}

	if got := EBITDA(model.Float(1000000), nil, model.Float(50000)); got != nil {
		t.Errorf("Expected nil EBITDA when opex unknown, got %v", *got)
	}
	if got := EBITDA(model.Float(1000000), model.Float(700000), nil); got != nil {
		t.Errorf("Expected nil EBITDA when depreciation unknown, got %v", *got)
	}
}

func TestDSCR(t *testing.T) {
	tests := []struct {
		name        string
		ebitda      *float64
		debtService *float64
		want        *float64
	}{
		{"normal", model.Float(350000), model.Float(200000), model.Float(1.75)},
		{"zero debt service", model.Float(350000), model.Float(0), nil},
		{"nil debt service", model.Float(350000), nil, nil},
		{"nil ebitda", nil, model.Float(200000), nil},
		{"negative ebitda", model.Float(-100), model.Float(200), model.Float(-0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DSCR(tt.ebitda, tt.debtService)
			if tt.want == nil {
				if got != nil {
					t.Errorf("Expected nil, got %v", *got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Errorf("Expected %v, got %v", *tt.want, got)
			}
		})
	}
}

func TestApplyMetrics(t *testing.T) {
	s := &model.FinancialSnapshot{
		GrossRevenue:      model.Float(1000000),
		OperatingExpenses: model.Float(700000),
		Depreciation:      model.Float(50000),
		AnnualDebtService: model.Float(200000),
		DSCR:              model.Float(9), // stale value is replaced
	}

	ApplyMetrics(s)

	if s.EBITDA == nil || *s.EBITDA != 350000 {
		t.Errorf("Expected EBITDA 350000, got %v", s.EBITDA)
	}
	if s.DSCR == nil || *s.DSCR != 1.75 {
		t.Errorf("Expected DSCR 1.75, got %v", s.DSCR)
	}

	s.AnnualDebtService = model.Float(0)
	ApplyMetrics(s)
	if s.DSCR != nil {
		t.Errorf("Expected nil DSCR with zero debt service, got %v", *s.DSCR)
	}

	ApplyMetrics(nil)
}
