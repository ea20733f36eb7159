package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ppiankov/dossier/internal/decision"
	"github.com/ppiankov/dossier/internal/model"
)

const notProvided = "Not provided"

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders "$1,234" (or "$1,234.56" for fractional values)
func FormatMoney(v *float64) string {
	if v == nil {
		return notProvided
	}
	if *v == math.Trunc(*v) {
		return "$" + moneyPrinter.Sprintf("%.0f", *v)
	}
	return "$" + moneyPrinter.Sprintf("%.2f", *v)
}

// FormatRatio renders "1.75x"
func FormatRatio(v *float64) string {
	if v == nil {
		return notProvided
	}
	return fmt.Sprintf("%.2fx", *v)
}

// Renderer produces the memo, the sales brief and the terminal summary
type Renderer struct{}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderMemo renders the credit memo for a decided dossier
func (r *Renderer) RenderMemo(d *model.Dossier, narrative *model.LLMSummary) string {
	name := orDefault(d.EntityName, "Business")
	industry := orDefault(d.Industry, "Not specified")
	fin := d.Financials
	if fin == nil {
		fin = &model.FinancialSnapshot{}
	}

	var b strings.Builder
	b.WriteString("# Credit Memo\n\n")

	b.WriteString("## 1) Executive Summary\n")
	fmt.Fprintf(&b, "%s is requesting commercial credit. Based on the provided financials, the preliminary decision is **%s**.\n\n", name, d.CreditDecision)

	b.WriteString("## 2) Business Overview\n")
	fmt.Fprintf(&b, "- Entity: %s\n", name)
	fmt.Fprintf(&b, "- Industry: %s\n", industry)
	if d.State != "" {
		fmt.Fprintf(&b, "- State of Registration: %s\n", d.State)
	}
	if d.KYBStatus != "" {
		fmt.Fprintf(&b, "- KYB Status: %s\n", d.KYBStatus)
	}
	b.WriteString("\n")

	b.WriteString("## 3) Financial Analysis\n")
	fmt.Fprintf(&b, "- Gross Revenue: %s\n", FormatMoney(fin.GrossRevenue))
	fmt.Fprintf(&b, "- Operating Expenses: %s\n", FormatMoney(fin.OperatingExpenses))
	fmt.Fprintf(&b, "- Depreciation (add-back): %s\n", FormatMoney(fin.Depreciation))
	fmt.Fprintf(&b, "- EBITDA: %s\n", FormatMoney(fin.EBITDA))
	fmt.Fprintf(&b, "- Annual Debt Service: %s\n", FormatMoney(fin.AnnualDebtService))
	fmt.Fprintf(&b, "- Proposed Loan Amount: %s\n", FormatMoney(fin.ProposedLoanAmount))
	fmt.Fprintf(&b, "- DSCR: %s\n\n", FormatRatio(fin.DSCR))
	b.WriteString("Depreciation is treated as a non-cash expense and added back to operating earnings when calculating EBITDA.\n\n")

	b.WriteString("## 4) Strengths\n")
	b.WriteString("- Revenue scale supports ongoing operations (subject to verification).\n")
	b.WriteString("- Documented financial metrics available for spreading.\n\n")

	b.WriteString("## 5) Risks / Weaknesses\n")
	b.WriteString("- Financial inputs are limited to the provided document; additional statements may be required.\n")
	b.WriteString("- Debt service coverage should be monitored against policy thresholds.\n")
	if d.RiskAssessment != nil {
		for _, reason := range d.RiskAssessment.Reasons {
			fmt.Fprintf(&b, "- %s\n", reason)
		}
		fmt.Fprintf(&b, "- Risk score: %s\n", d.RiskAssessment.Level)
	}
	b.WriteString("\n")

	b.WriteString("## 6) Credit Recommendation\n")
	fmt.Fprintf(&b, "**Decision:** %s\n\n", d.CreditDecision)
	b.WriteString("**Suggested Covenant:** Maintain DSCR > 1.25x.\n")

	if narrative != nil && narrative.Enabled && narrative.SummaryMD != "" {
		b.WriteString("\n## Appendix: Narrative\n")
		fmt.Fprintf(&b, "_Generated by %s/%s. Figures are restated from this memo; the narrative never affects the decision._\n\n", narrative.Provider, narrative.Model)
		b.WriteString(strings.TrimSpace(narrative.SummaryMD))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderBrief renders the sales brief for the signals detected in this run
func (r *Renderer) RenderBrief(d *model.Dossier, signals []model.Signal) string {
	entity := orDefault(d.EntityName, "Client")

	var types, products []string
	seenType := map[string]bool{}
	seenProduct := map[string]bool{}
	for _, s := range signals {
		if !seenType[string(s.Signal)] {
			seenType[string(s.Signal)] = true
			types = append(types, string(s.Signal))
		}
		if !seenProduct[s.RecommendedProduct] {
			seenProduct[s.RecommendedProduct] = true
			products = append(products, s.RecommendedProduct)
		}
	}
	sort.Strings(types)
	sort.Strings(products)

	summary := "No signals detected."
	if len(types) > 0 {
		summary = "Signals detected: " + strings.Join(types, ", ")
	}

	var b strings.Builder
	b.WriteString("# Sales Brief\n\n")

	b.WriteString("## 1) Opportunity Summary\n")
	fmt.Fprintf(&b, "- %s\n", summary)
	b.WriteString("- Why it matters now: recent transaction patterns suggest active capital movement and cross-border exposure.\n\n")

	b.WriteString("## 2) Recommended Product(s)\n")
	if len(products) == 0 {
		b.WriteString("- No product recommendations available.\n")
	}
	for _, p := range products {
		fmt.Fprintf(&b, "- %s: improve cash visibility and risk management.\n", p)
	}
	b.WriteString("\n")

	b.WriteString("## 3) Suggested Talking Points\n")
	fmt.Fprintf(&b, "- Reference recent transaction activity for %s without citing raw amounts.\n", entity)
	b.WriteString("- Highlight how proactive treasury tools can stabilize cash flow.\n")
	b.WriteString("- Offer to review FX exposure and hedging options for cross-border activity.\n\n")

	b.WriteString("## 4) Personalized Email Draft\n")
	fmt.Fprintf(&b, "Hi %s Team,\n\n", entity)
	b.WriteString("I wanted to share a few proactive ideas based on your recent transaction activity. ")
	b.WriteString("We are seeing signals that suggest it may be a good time to tighten liquidity visibility and evaluate FX risk management tools. ")
	b.WriteString("Our team can help you optimize cash positioning while reducing exposure from cross-currency activity.\n\n")
	b.WriteString("If it would be helpful, I can arrange a short working session to review your cash flow cadence ")
	b.WriteString("and discuss whether a sweep structure and/or forward contracts could add value right now.\n\n")
	b.WriteString("Best regards,\nSenior Banking Advisor\n")

	return b.String()
}

// RenderSummary prints the run summary to w (stdout in the CLI)
func (r *Renderer) RenderSummary(w io.Writer, res *Result) {
	d := res.Dossier
	sum := res.Summary

	fmt.Fprintf(w, "\n═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "  Dossier: %s\n", orDefault(d.EntityName, "(unnamed entity)"))
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n\n")

	fmt.Fprintf(w, "  KYB Status:       %s\n", sum.KYBStatus)
	if len(sum.MissingKYB) > 0 {
		fmt.Fprintf(w, "    Missing:        %s\n", strings.Join(sum.MissingKYB, ", "))
	}
	fmt.Fprintf(w, "  Compliance:       %s\n", sum.ComplianceStatus)
	for _, f := range sum.Findings {
		fmt.Fprintf(w, "    ⚠ %s\n", describeFinding(f))
	}
	fmt.Fprintf(w, "  DSCR:             %s\n", FormatRatio(sum.DSCR))
	fmt.Fprintf(w, "  Credit Decision:  %s\n", sum.CreditDecision)
	fmt.Fprintf(w, "  Risk Score:       %s\n", sum.Risk.Level)
	for _, reason := range sum.Risk.Reasons {
		fmt.Fprintf(w, "    - %s\n", reason)
	}
	fmt.Fprintf(w, "  Signals:          %d\n", len(sum.Signals))
	for _, s := range sum.Signals {
		fmt.Fprintf(w, "    • %s → %s (trigger %s)\n", s.Signal, s.RecommendedProduct, s.TriggerTransaction)
	}

	fmt.Fprintf(w, "\n  Run ID: %s\n", res.RunID)
	if res.Artifacts.Memo != "" {
		fmt.Fprintf(w, "  Memo:   %s\n", res.Artifacts.Memo)
		fmt.Fprintf(w, "  Brief:  %s\n", res.Artifacts.Brief)
	}
	fmt.Fprintln(w)
}

func describeFinding(f model.ComplianceFinding) string {
	switch f.Kind {
	case model.FindingSanctionsHit:
		return fmt.Sprintf("SANCTIONS_HIT: %s matches %q (%s)", f.OwnerName, f.MatchedName, f.Matcher)
	case model.FindingProhibitedIndustry:
		return fmt.Sprintf("PROHIBITED_INDUSTRY: %s (%q)", f.Category, f.MatchedValue)
	}
	return string(f.Kind)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// RenderSummaryJSON writes the run summary as JSON
func (r *Renderer) RenderSummaryJSON(w io.Writer, res *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summaryView{
		RunID:     res.RunID,
		Entity:    res.Dossier.EntityName,
		Summary:   res.Summary,
		Artifacts: res.Artifacts,
	})
}

// summaryView is the machine-readable run summary
type summaryView struct {
	RunID     string           `json:"run_id"`
	Entity    string           `json:"entity_name"`
	Summary   decision.Summary `json:"summary"`
	Artifacts Artifacts        `json:"artifacts"`
}
