package score

import (
	"fmt"
	"strings"

	"github.com/ppiankov/dossier/internal/model"
)

// RiskInput is everything the risk grade depends on
type RiskInput struct {
	MissingKYB         []string // KYB flags raised this run
	ComplianceCritical bool     // Findings this run
	PriorCritical      bool     // CRITICAL flag carried from an earlier run
	DSCR               *float64
}

// Scorer grades risk and explains every contributing condition
type Scorer struct {
	dscrFloor  float64
	dscrTarget float64
}

// NewScorer creates a scorer with the given DSCR floor and target
func NewScorer(dscrFloor, dscrTarget float64) *Scorer {
	return &Scorer{
		dscrFloor:  dscrFloor,
		dscrTarget: dscrTarget,
	}
}

// Assess returns the risk grade with one reason per contributing condition
func (s *Scorer) Assess(in RiskInput) model.RiskAssessment {
	var factors []model.RiskFactor

	if len(in.MissingKYB) > 0 {
		factors = append(factors, model.RiskFactor{
			Type:        model.FactorKYBIncomplete,
			Severity:    model.SeverityCritical,
			Description: "Incomplete KYB/ownership data: " + strings.Join(in.MissingKYB, ", "),
			Data: map[string]interface{}{
				"missing": in.MissingKYB,
			},
		})
	}

	if in.ComplianceCritical {
		factors = append(factors, model.RiskFactor{
			Type:        model.FactorComplianceCritical,
			Severity:    model.SeverityCritical,
			Description: "Critical compliance flag: sanctions or prohibited industry finding",
		})
	} else if in.PriorCritical {
		factors = append(factors, model.RiskFactor{
			Type:        model.FactorPriorCritical,
			Severity:    model.SeverityCritical,
			Description: "Critical compliance flag carried from a previous run",
		})
	}

	factors = append(factors, s.dscrFactors(in.DSCR)...)

	level := model.RiskLow
	reasons := make([]string, 0, len(factors))
	for _, f := range factors {
		reasons = append(reasons, f.Description)
		switch f.Severity {
		case model.SeverityCritical:
			level = model.RiskHigh
		case model.SeverityWarning:
			if level == model.RiskLow {
				level = model.RiskMedium
			}
		}
	}

	return model.RiskAssessment{
		Level:   level,
		Reasons: reasons,
		Factors: factors,
	}
}

// dscrFactors grades debt coverage against the floor and target
func (s *Scorer) dscrFactors(dscr *float64) []model.RiskFactor {
	if dscr == nil {
		return []model.RiskFactor{{
			Type:        model.FactorDSCRUnavailable,
			Severity:    model.SeverityWarning,
			Description: "DSCR unavailable: insufficient financial data",
			Data: map[string]interface{}{
				"formula": "((gross_revenue - operating_expenses) + depreciation) / annual_debt_service",
			},
		}}
	}

	data := map[string]interface{}{
		"dscr":    *dscr,
		"floor":   s.dscrFloor,
		"target":  s.dscrTarget,
		"formula": "((gross_revenue - operating_expenses) + depreciation) / annual_debt_service",
	}

	if *dscr < s.dscrFloor {
		return []model.RiskFactor{{
			Type:        model.FactorDSCRBelowFloor,
			Severity:    model.SeverityCritical,
			Description: fmt.Sprintf("DSCR %.2fx is below %.2fx", *dscr, s.dscrFloor),
			Data:        data,
		}}
	}
	if *dscr < s.dscrTarget {
		return []model.RiskFactor{{
			Type:        model.FactorDSCRBelowTarget,
			Severity:    model.SeverityWarning,
			Description: fmt.Sprintf("DSCR %.2fx is below %.2fx", *dscr, s.dscrTarget),
			Data:        data,
		}}
	}
	return nil
}
