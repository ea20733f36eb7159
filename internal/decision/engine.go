package decision

import (
	"github.com/ppiankov/dossier/internal/extract"
	"github.com/ppiankov/dossier/internal/model"
	"github.com/ppiankov/dossier/internal/score"
	"github.com/ppiankov/dossier/internal/screen"
)

// ComplianceScreener screens owners and industry text
type ComplianceScreener interface {
	Screen(owners []model.Owner, entries []string, industry string) []model.ComplianceFinding
}

// RiskScorer grades the risk of a dossier
type RiskScorer interface {
	Assess(in score.RiskInput) model.RiskAssessment
}

// Input holds the stage outputs of one run. A nil stage output means the input was not supplied.
type Input struct {
	KYB              *extract.KYBExtraction
	Financials       *extract.FinancialExtraction
	Signals          []model.Signal
	SanctionsEntries []string
	SanctionsChecked bool   // A sanctions list was loaded this run
	IndustryOverride string // Operator-supplied industry, treated as explicit
}

// Summary explains what a run decided
type Summary struct {
	KYBStatus        model.KYBStatus           `json:"kyb_status"`
	MissingKYB       []string                  `json:"missing_kyb,omitempty"`
	Findings         []model.ComplianceFinding `json:"findings,omitempty"`
	ComplianceStatus model.ComplianceStatus    `json:"compliance_status"`
	CreditDecision   model.CreditDecision      `json:"credit_decision"`
	DSCR             *float64                  `json:"dscr"`
	Risk             model.RiskAssessment      `json:"risk_assessment"`
	Signals          []model.Signal            `json:"signals,omitempty"`
	Changes          []FieldChange             `json:"changes,omitempty"`
}

// Engine folds stage outputs into a dossier
type Engine struct {
	thresholds model.ThresholdConfig
	screener   ComplianceScreener
	scorer     RiskScorer
}

// NewEngine creates a decision engine
func NewEngine(thresholds model.ThresholdConfig, screener ComplianceScreener, scorer RiskScorer) *Engine {
	return &Engine{
		thresholds: thresholds,
		screener:   screener,
		scorer:     scorer,
	}
}

// NewDefaultEngine wires the stock screener and scorer from config
func NewDefaultEngine(cfg *model.Config) *Engine {
	return NewEngine(
		cfg.Thresholds,
		screen.NewScreener(cfg.Screening.Industries),
		score.NewScorer(cfg.Thresholds.DSCRDecline, cfg.Thresholds.DSCRApprove),
	)
}

// Evaluate applies one run to a copy of prior and returns the updated dossier.
// prior is never modified.
func (e *Engine) Evaluate(prior *model.Dossier, in Input) (*model.Dossier, Summary) {
	d := prior.Clone()
	var sum Summary
	priorCritical := d.RegulatoryFlags.Has(model.FlagCritical)

	// Stage 1: KYB fields and status
	sum.MissingKYB = e.applyKYB(d, in, &sum.Changes)
	sum.KYBStatus = d.KYBStatus

	// Stage 2: compliance screening over the merged owners and industry
	findings := e.screener.Screen(d.UBOList, in.SanctionsEntries, d.Industry)
	compliance := screen.Summarize(findings)
	compliance.SanctionsChecked = in.SanctionsChecked
	d.ComplianceSummary = &compliance
	sum.Findings = compliance.IssuesFound
	sum.ComplianceStatus = compliance.Status
	for _, f := range findings {
		d.RegulatoryFlags.Add(string(f.Kind))
	}
	if len(findings) > 0 {
		d.RegulatoryFlags.Add(model.FlagCritical)
	}

	// Stage 3: financials and metrics
	e.applyFinancials(d, in.Financials)
	var dscr *float64
	if d.Financials != nil {
		dscr = d.Financials.DSCR
	}
	sum.DSCR = dscr

	// Stage 4: credit decision
	d.CreditDecision = e.creditDecision(len(findings) > 0, priorCritical, dscr)
	sum.CreditDecision = d.CreditDecision

	// Stage 5: risk
	risk := e.scorer.Assess(score.RiskInput{
		MissingKYB:         sum.MissingKYB,
		ComplianceCritical: len(findings) > 0,
		PriorCritical:      priorCritical,
		DSCR:               dscr,
	})
	d.RiskAssessment = &risk
	sum.Risk = risk

	// Stage 6: opportunities
	d.CrossSellOpportunities = append(d.CrossSellOpportunities, in.Signals...)
	sum.Signals = in.Signals

	return d, sum
}

// applyKYB merges KYB fields and returns the missing-item flags.
// Status is derived from this run's extraction when articles were supplied,
// otherwise from the fields already on the dossier.
func (e *Engine) applyKYB(d *model.Dossier, in Input, changes *[]FieldChange) []string {
	var name, state, owners bool

	if in.KYB != nil {
		mergeScalar(&d.EntityName, "entity_name", in.KYB.EntityName, changes)
		mergeScalar(&d.State, "state", in.KYB.State, changes)
		mergeScalar(&d.Industry, "industry", in.KYB.Industry, changes)
		d.UBOList = MergeOwners(d.UBOList, in.KYB.Owners)

		name = in.KYB.EntityName.Found()
		state = in.KYB.State.Found()
		owners = len(in.KYB.Owners) > 0
	} else {
		name = d.EntityName != ""
		state = d.State != ""
		owners = len(d.UBOList) > 0
	}

	if in.IndustryOverride != "" {
		mergeScalar(&d.Industry, "industry", model.ExtractedValue{
			Value:      in.IndustryOverride,
			Confidence: model.ConfidenceExplicit,
			Strategy:   "override",
		}, changes)
	}

	var missing []string
	if !name {
		missing = append(missing, model.FlagMissingEntityName)
	}
	if !state {
		missing = append(missing, model.FlagMissingState)
	}
	if !owners {
		missing = append(missing, model.FlagNoUBOOver25)
	}

	d.RegulatoryFlags.Add(missing...)
	if len(missing) > 0 {
		d.KYBStatus = model.KYBRejected
	} else {
		d.KYBStatus = model.KYBApproved
	}
	return missing
}

// applyFinancials merges extracted fields by confidence and recomputes metrics
func (e *Engine) applyFinancials(d *model.Dossier, fin *extract.FinancialExtraction) {
	if fin == nil {
		return
	}
	if d.Financials == nil {
		d.Financials = &model.FinancialSnapshot{}
	}
	for _, field := range model.FinancialFields {
		v := fin.Snapshot.Get(field)
		if v == nil {
			continue
		}
		conf := model.ConfidenceInferred
		if src, ok := fin.Sources[field]; ok && src.Confidence != "" {
			conf = src.Confidence
		}
		d.Financials.Set(field, MergeFloat(d.Financials.Get(field), v, conf))
	}
	score.ApplyMetrics(d.Financials)
}

// creditDecision applies the underwriting rule chain.
// Rule priority (fail-fast):
//  1. Compliance findings this run (hard block)
//  2. CRITICAL flag from an earlier run (hard block)
//  3. DSCR above the approval threshold
//  4. DSCR below the decline threshold
//  5. Everything else, including unknown DSCR, goes to review
func (e *Engine) creditDecision(findings, priorCritical bool, dscr *float64) model.CreditDecision {
	// Rule 1: Sanctions or prohibited industry (hard fail)
	if findings {
		return model.DecisionBlocked
	}

	// Rule 2: Critical flag persists across runs
	if priorCritical {
		return model.DecisionBlocked
	}

	if dscr == nil {
		return model.DecisionReview
	}

	// Rule 3 and 4: exclusive boundaries on both sides
	switch {
	case *dscr > e.thresholds.DSCRApprove:
		return model.DecisionApprove
	case *dscr < e.thresholds.DSCRDecline:
		return model.DecisionDecline
	}
	return model.DecisionReview
}
