package score

import "github.com/ppiankov/dossier/internal/model"

// EBITDA returns (revenue - opex) + depreciation, or nil unless all three are known.
// Depreciation is a non-cash expense and is added back.
func EBITDA(revenue, opex, depreciation *float64) *float64 {
	if revenue == nil || opex == nil || depreciation == nil {
		return nil
	}
	return model.Float((*revenue - *opex) + *depreciation)
}

// DSCR returns ebitda / debtService, or nil when either is unknown or debt service is zero
func DSCR(ebitda, debtService *float64) *float64 {
	if ebitda == nil || debtService == nil || *debtService == 0 {
		return nil
	}
	return model.Float(*ebitda / *debtService)
}

// ApplyMetrics recomputes EBITDA and DSCR from the snapshot's inputs
func ApplyMetrics(s *model.FinancialSnapshot) {
	if s == nil {
		return
	}
	s.EBITDA = EBITDA(s.GrossRevenue, s.OperatingExpenses, s.Depreciation)
	s.DSCR = DSCR(s.EBITDA, s.AnnualDebtService)
}
