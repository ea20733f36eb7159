package model

// FinancialSnapshot holds normalized financial statement figures.
// Nil means the figure is unknown.
type FinancialSnapshot struct {
	GrossRevenue       *float64 `json:"gross_revenue"`
	OperatingExpenses  *float64 `json:"operating_expenses"`
	Depreciation       *float64 `json:"depreciation"`
	AnnualDebtService  *float64 `json:"annual_debt_service"`
	ProposedLoanAmount *float64 `json:"proposed_loan_amount"`

	EBITDA *float64 `json:"ebitda"` // (revenue - opex) + depreciation
	DSCR   *float64 `json:"dscr"`   // ebitda / annual debt service
}

// Float returns a pointer to v
func Float(v float64) *float64 {
	return &v
}

// Clone returns a deep copy of the snapshot
func (f *FinancialSnapshot) Clone() *FinancialSnapshot {
	if f == nil {
		return nil
	}
	return &FinancialSnapshot{
		GrossRevenue:       cloneFloat(f.GrossRevenue),
		OperatingExpenses:  cloneFloat(f.OperatingExpenses),
		Depreciation:       cloneFloat(f.Depreciation),
		AnnualDebtService:  cloneFloat(f.AnnualDebtService),
		ProposedLoanAmount: cloneFloat(f.ProposedLoanAmount),
		EBITDA:             cloneFloat(f.EBITDA),
		DSCR:               cloneFloat(f.DSCR),
	}
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// FinancialField names a monetary field of the snapshot
type FinancialField string

const (
	FieldGrossRevenue       FinancialField = "gross_revenue"
	FieldOperatingExpenses  FinancialField = "operating_expenses"
	FieldDepreciation       FinancialField = "depreciation"
	FieldAnnualDebtService  FinancialField = "annual_debt_service"
	FieldProposedLoanAmount FinancialField = "proposed_loan_amount"
)

// FinancialFields lists the extracted monetary fields in statement order
var FinancialFields = []FinancialField{
	FieldGrossRevenue,
	FieldOperatingExpenses,
	FieldDepreciation,
	FieldAnnualDebtService,
	FieldProposedLoanAmount,
}

// Get returns the value of a monetary field
func (f *FinancialSnapshot) Get(field FinancialField) *float64 {
	if f == nil {
		return nil
	}
	switch field {
	case FieldGrossRevenue:
		return f.GrossRevenue
	case FieldOperatingExpenses:
		return f.OperatingExpenses
	case FieldDepreciation:
		return f.Depreciation
	case FieldAnnualDebtService:
		return f.AnnualDebtService
	case FieldProposedLoanAmount:
		return f.ProposedLoanAmount
	}
	return nil
}

// Set assigns a monetary field
func (f *FinancialSnapshot) Set(field FinancialField, v *float64) {
	switch field {
	case FieldGrossRevenue:
		f.GrossRevenue = v
	case FieldOperatingExpenses:
		f.OperatingExpenses = v
	case FieldDepreciation:
		f.Depreciation = v
	case FieldAnnualDebtService:
		f.AnnualDebtService = v
	case FieldProposedLoanAmount:
		f.ProposedLoanAmount = v
	}
}
