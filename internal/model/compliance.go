package model

// FindingKind discriminates compliance findings
type FindingKind string

const (
	FindingSanctionsHit       FindingKind = "SANCTIONS_HIT"
	FindingProhibitedIndustry FindingKind = "PROHIBITED_INDUSTRY"
)

// ComplianceFinding is either a sanctions hit (OwnerName, MatchedName, Matcher)
// or a prohibited industry (Category, MatchedValue), selected by Kind
type ComplianceFinding struct {
	Kind         FindingKind `json:"type"`
	OwnerName    string      `json:"owner_name,omitempty"`
	MatchedName  string      `json:"matched_name,omitempty"`
	Matcher      string      `json:"matcher,omitempty"` // exact, substring, initial_surname
	Category     string      `json:"category,omitempty"`
	MatchedValue string      `json:"matched_value,omitempty"`
}

// ComplianceStatus is the overall screening outcome
type ComplianceStatus string

const (
	ComplianceClear    ComplianceStatus = "CLEAR"
	ComplianceCritical ComplianceStatus = "CRITICAL"
)

// ComplianceSummary is persisted on the dossier after screening
type ComplianceSummary struct {
	SanctionsChecked          bool                `json:"sanctions_checked"`
	ProhibitedIndustryChecked bool                `json:"prohibited_industry_checked"`
	IssuesFound               []ComplianceFinding `json:"issues_found"`
	Status                    ComplianceStatus    `json:"status"`
}

// StatusFor derives the compliance status from a finding list
func StatusFor(findings []ComplianceFinding) ComplianceStatus {
	if len(findings) > 0 {
		return ComplianceCritical
	}
	return ComplianceClear
}
