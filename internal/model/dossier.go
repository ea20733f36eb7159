package model

import "time"

// Dossier is the cumulative onboarding record of one business.
// One pipeline run owns it from load to save.
type Dossier struct {
	EntityName string  `json:"entity_name,omitempty"`
	State      string  `json:"state,omitempty"`
	Industry   string  `json:"industry,omitempty"` // Business type used for industry screening
	UBOList    []Owner `json:"ubo_list,omitempty"`

	KYBStatus KYBStatus `json:"kyb_status,omitempty"`

	Financials        *FinancialSnapshot `json:"financials,omitempty"`
	ComplianceSummary *ComplianceSummary `json:"compliance_summary,omitempty"`
	CreditDecision    CreditDecision     `json:"credit_decision,omitempty"`
	RiskAssessment    *RiskAssessment    `json:"risk_assessment,omitempty"`

	RegulatoryFlags        Flags    `json:"regulatory_flags,omitempty"`         // Insertion-ordered, unique
	CrossSellOpportunities []Signal `json:"cross_sell_opportunities,omitempty"` // Append-only

	LastRun *RunMeta `json:"last_run,omitempty"`
}

// KYBStatus is the know-your-business outcome
type KYBStatus string

const (
	KYBApproved KYBStatus = "APPROVED"
	KYBRejected KYBStatus = "REJECTED"
)

// CreditDecision is the underwriting outcome
type CreditDecision string

const (
	DecisionApprove CreditDecision = "APPROVE"
	DecisionReview  CreditDecision = "REVIEW"
	DecisionDecline CreditDecision = "DECLINE"
	DecisionBlocked CreditDecision = "BLOCKED"
)

// Regulatory flags written by the decision engine
const (
	FlagMissingEntityName  = "MISSING_ENTITY_NAME"
	FlagMissingState       = "MISSING_STATE"
	FlagNoUBOOver25        = "NO_UBO_OVER_25"
	FlagSanctionsHit       = "SANCTIONS_HIT"
	FlagProhibitedIndustry = "PROHIBITED_INDUSTRY"
	FlagCritical           = "CRITICAL"
)

// Flags is an insertion-ordered set of flag names
type Flags []string

// Has reports whether flag is present
func (f Flags) Has(flag string) bool {
	for _, existing := range f {
		if existing == flag {
			return true
		}
	}
	return false
}

// Add appends flags not already present, preserving order
func (f *Flags) Add(flags ...string) {
	for _, flag := range flags {
		if flag == "" || f.Has(flag) {
			continue
		}
		*f = append(*f, flag)
	}
}

// RunMeta records the last pipeline run that wrote the dossier
type RunMeta struct {
	RunID       string    `json:"run_id"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	Inputs      []string  `json:"inputs,omitempty"`
}

// Clone returns a deep copy so a run can work on its own value
func (d *Dossier) Clone() *Dossier {
	if d == nil {
		return &Dossier{}
	}

	c := *d
	if d.UBOList != nil {
		c.UBOList = append([]Owner(nil), d.UBOList...)
		for i, o := range c.UBOList {
			if o.Role != nil {
				c.UBOList[i].Role = String(*o.Role)
			}
		}
	}
	c.Financials = d.Financials.Clone()
	if d.ComplianceSummary != nil {
		cs := *d.ComplianceSummary
		cs.IssuesFound = append([]ComplianceFinding(nil), d.ComplianceSummary.IssuesFound...)
		c.ComplianceSummary = &cs
	}
	if d.RiskAssessment != nil {
		ra := *d.RiskAssessment
		ra.Reasons = append([]string(nil), d.RiskAssessment.Reasons...)
		ra.Factors = append([]RiskFactor(nil), d.RiskAssessment.Factors...)
		c.RiskAssessment = &ra
	}
	if d.RegulatoryFlags != nil {
		c.RegulatoryFlags = append(Flags(nil), d.RegulatoryFlags...)
	}
	if d.CrossSellOpportunities != nil {
		c.CrossSellOpportunities = append([]Signal(nil), d.CrossSellOpportunities...)
	}
	if d.LastRun != nil {
		lr := *d.LastRun
		lr.Inputs = append([]string(nil), d.LastRun.Inputs...)
		c.LastRun = &lr
	}
	return &c
}
