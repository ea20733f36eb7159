package model

// CaseOutcome is the headline of one committed case run in a batch
type CaseOutcome struct {
	RunID          string         `json:"run_id"`
	EntityName     string         `json:"entity_name,omitempty"`
	KYBStatus      KYBStatus      `json:"kyb_status,omitempty"`
	CreditDecision CreditDecision `json:"credit_decision,omitempty"`
	RiskLevel      RiskLevel      `json:"risk_level,omitempty"`
	Signals        int            `json:"signals"`
}
