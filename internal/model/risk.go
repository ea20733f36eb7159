package model

// RiskLevel is the overall risk grade
type RiskLevel string

const (
	RiskHigh   RiskLevel = "HIGH"
	RiskMedium RiskLevel = "MEDIUM"
	RiskLow    RiskLevel = "LOW"
)

// RiskAssessment is the explainable risk grade persisted on the dossier
type RiskAssessment struct {
	Level   RiskLevel    `json:"risk_score"`
	Reasons []string     `json:"reasons"`           // Human-readable, one per contributing condition
	Factors []RiskFactor `json:"factors,omitempty"` // Transparent inputs behind each reason
}

// RiskFactor is a single contributing condition with its scoring data
type RiskFactor struct {
	Type        RiskFactorType         `json:"type"`
	Severity    Severity               `json:"severity"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"` // Inputs and formula
}

// RiskFactorType classifies a risk factor
type RiskFactorType string

const (
	FactorKYBIncomplete      RiskFactorType = "kyb_incomplete"      // Entity, state or owners missing
	FactorComplianceCritical RiskFactorType = "compliance_critical" // Sanctions or industry finding
	FactorDSCRBelowFloor     RiskFactorType = "dscr_below_floor"    // DSCR < 1.0
	FactorDSCRBelowTarget    RiskFactorType = "dscr_below_target"   // 1.0 <= DSCR < 1.25
	FactorDSCRUnavailable    RiskFactorType = "dscr_unavailable"    // Not enough figures
	FactorPriorCritical      RiskFactorType = "prior_critical"      // CRITICAL flag from an earlier run
)

// Severity indicates the importance of a factor
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// LLMSummary contains the optional generated memo narrative.
// It never affects any decision and is rendered in its own section.
type LLMSummary struct {
	Enabled       bool     `json:"enabled"`
	Provider      string   `json:"provider,omitempty"` // openai, anthropic, ollama
	Model         string   `json:"model,omitempty"`
	StrictFigures bool     `json:"strict_figures"` // Whether cited amounts were checked against the dossier
	SummaryMD     string   `json:"summary_md,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
}
