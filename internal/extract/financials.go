package extract

import (
	"math"
	"strings"

	"github.com/ppiankov/dossier/internal/model"
)

// How a financial figure was found
const (
	MethodLabel     = "label"     // Exact "label: value" line
	MethodSuffix    = "suffix"    // Label ending in a multi-word alias
	MethodSubstring = "substring" // Any line mentioning an alias
	MethodFallback  = "fallback"  // Secondary alias (e.g., depreciation & amortization)
	MethodComponent = "component" // Sum of component lines
	MethodComputed  = "computed"  // Derived from other lines
)

// FieldSource records where a financial figure came from
type FieldSource struct {
	Method     string           `json:"method"`
	Confidence model.Confidence `json:"confidence"`
	Line       string           `json:"line,omitempty"`
}

// FinancialExtraction is the parsed statement before metrics
type FinancialExtraction struct {
	Snapshot model.FinancialSnapshot
	Sources  map[model.FinancialField]FieldSource
	Scaled   bool // Values were multiplied by 1,000
}

// FinancialFieldSpec describes how to find one monetary field
type FinancialFieldSpec struct {
	Field      model.FinancialField
	Aliases    []string // Priority order, lowercase
	Fallbacks  []string // Tried after every alias strategy failed
	Components []string // Summed when the field is still missing
}

// Component aliases making up annual debt service
var (
	interestExpenseAliases = []string{"interest expense", "interest paid"}
	debtRepaymentAliases   = []string{"debt repayments", "principal repayments", "repayment of borrowings"}
	leasePrincipalAliases  = []string{"lease principal payments", "principal portion of lease payments"}
)

// Markers meaning the statement is expressed in thousands
var thousandsMarkers = []string{"$000", "$'000", "in thousands", "(000s)"}

// Lines mentioning these are narrative rather than data
var narrativeMarkers = []string{"source note", "profile"}

// DefaultFinancialFields returns the built-in alias table
func DefaultFinancialFields() []FinancialFieldSpec {
	return []FinancialFieldSpec{
		{
			Field:      model.FieldGrossRevenue,
			Aliases:    []string{"gross revenue", "revenue", "total revenue"},
			Components: []string{"linehaul revenue", "warehousing revenue", "customs & other services"},
		},
		{
			Field:      model.FieldOperatingExpenses,
			Aliases:    []string{"operating expenses", "opex", "operating expense"},
			Components: []string{"cost of services", "salaries & wages", "fuel & maintenance", "facility costs", "general & administrative"},
		},
		{
			Field:     model.FieldDepreciation,
			Aliases:   []string{"depreciation"},
			Fallbacks: []string{"depreciation & amortization", "depreciation and amortization"},
		},
		{
			Field:   model.FieldAnnualDebtService,
			Aliases: []string{"total annual debt service", "annual debt service", "debt service"},
		},
		{
			Field:   model.FieldProposedLoanAmount,
			Aliases: []string{"proposed loan amount", "loan amount"},
		},
	}
}

// FinancialParser extracts monetary fields from statement text
type FinancialParser struct {
	fields []FinancialFieldSpec
}

// NewFinancialParser creates a parser using the built-in alias table
func NewFinancialParser() *FinancialParser {
	return &FinancialParser{fields: DefaultFinancialFields()}
}

// statementLine is a line split into its label and value
type statementLine struct {
	raw   string
	lower string
	label string // Normalized; empty when the line has no colon
	value string
}

func parseStatementLines(text string) []statementLine {
	var lines []statementLine
	for _, raw := range splitLines(text) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		l := statementLine{raw: trimmed, lower: strings.ToLower(trimmed)}
		if idx := strings.Index(trimmed, ":"); idx > 0 {
			l.label = normalizeLabel(trimmed[:idx])
			l.value = strings.TrimSpace(trimmed[idx+1:])
		}
		lines = append(lines, l)
	}
	return lines
}

// Parse extracts the pre-metrics snapshot. Unit scaling is applied exactly once.
func (p *FinancialParser) Parse(text string) FinancialExtraction {
	lines := parseStatementLines(text)
	components := p.componentLabels()

	result := FinancialExtraction{
		Sources: make(map[model.FinancialField]FieldSource),
	}

	for _, spec := range p.fields {
		value, source, ok := findField(lines, spec, components)
		if !ok && len(spec.Components) > 0 {
			value, ok = sumComponents(lines, spec.Components)
			source = FieldSource{Method: MethodComponent, Confidence: model.ConfidenceInferred}
		}
		if !ok && spec.Field == model.FieldAnnualDebtService {
			value, ok = computeDebtService(lines)
			source = FieldSource{Method: MethodComputed, Confidence: model.ConfidenceInferred}
		}
		if !ok {
			continue
		}
		result.Snapshot.Set(spec.Field, model.Float(value))
		result.Sources[spec.Field] = source
	}

	if HasThousandsMarker(text) {
		result.Scaled = true
		for _, field := range model.FinancialFields {
			if v := result.Snapshot.Get(field); v != nil {
				result.Snapshot.Set(field, model.Float(*v*1000))
			}
		}
	}

	return result
}

// componentLabels collects every component alias so total scans can skip those lines
func (p *FinancialParser) componentLabels() []string {
	var labels []string
	for _, spec := range p.fields {
		labels = append(labels, spec.Components...)
	}
	labels = append(labels, interestExpenseAliases...)
	labels = append(labels, debtRepaymentAliases...)
	labels = append(labels, leasePrincipalAliases...)
	return labels
}

// findField runs the label, suffix, substring and fallback strategies in order
func findField(lines []statementLine, spec FinancialFieldSpec, components []string) (float64, FieldSource, bool) {
	for _, alias := range spec.Aliases {
		for _, l := range lines {
			if l.label != alias {
				continue
			}
			if v, ok := ParseNumber(l.value); ok {
				return v, FieldSource{Method: MethodLabel, Confidence: model.ConfidenceExplicit, Line: l.raw}, true
			}
		}
	}

	for _, alias := range spec.Aliases {
		if !strings.Contains(alias, " ") {
			continue
		}
		for _, l := range lines {
			if l.label == "" || !strings.HasSuffix(l.label, " "+alias) || labelMatches(l.label, components) {
				continue
			}
			if v, ok := ParseNumber(l.value); ok {
				return v, FieldSource{Method: MethodSuffix, Confidence: model.ConfidenceExplicit, Line: l.raw}, true
			}
		}
	}

	for _, alias := range spec.Aliases {
		for _, l := range lines {
			if !strings.Contains(l.lower, alias) || isNarrative(l.lower) || labelMatches(l.label, components) {
				continue
			}
			if v, ok := ParseNumber(valueAfterSeparator(l.raw)); ok {
				return v, FieldSource{Method: MethodSubstring, Confidence: model.ConfidenceInferred, Line: l.raw}, true
			}
		}
	}

	if v, line, ok := findLabeled(lines, spec.Fallbacks); ok {
		return v, FieldSource{Method: MethodFallback, Confidence: model.ConfidenceInferred, Line: line}, true
	}

	return 0, FieldSource{}, false
}

// findLabeled returns the first line whose label equals or ends with one of aliases
func findLabeled(lines []statementLine, aliases []string) (float64, string, bool) {
	for _, alias := range aliases {
		for _, l := range lines {
			if l.label == "" || !labelMatches(l.label, []string{alias}) {
				continue
			}
			if v, ok := ParseNumber(l.value); ok {
				return v, l.raw, true
			}
		}
	}
	return 0, "", false
}

// labelMatches reports whether label equals an alias or ends with a multi-word alias
func labelMatches(label string, aliases []string) bool {
	if label == "" {
		return false
	}
	for _, alias := range aliases {
		if label == alias {
			return true
		}
		if strings.Contains(alias, " ") && strings.HasSuffix(label, " "+alias) {
			return true
		}
	}
	return false
}

// sumComponents adds the component lines found; missing components count as zero
func sumComponents(lines []statementLine, aliases []string) (float64, bool) {
	total := 0.0
	found := false
	for _, alias := range aliases {
		if v, _, ok := findLabeled(lines, []string{alias}); ok {
			total += v
			found = true
		}
	}
	return total, found
}

// computeDebtService derives interest + |repayments| + |lease principal|
func computeDebtService(lines []statementLine) (float64, bool) {
	interest, _, hasInterest := findLabeled(lines, interestExpenseAliases)
	repayments, _, hasRepayments := findLabeled(lines, debtRepaymentAliases)
	lease, _, hasLease := findLabeled(lines, leasePrincipalAliases)

	if !hasInterest && !hasRepayments && !hasLease {
		return 0, false
	}
	return interest + math.Abs(repayments) + math.Abs(lease), true
}

// valueAfterSeparator returns the text after the first ':' or '-'
func valueAfterSeparator(line string) string {
	idx := strings.IndexAny(line, ":-")
	if idx < 0 {
		return ""
	}
	return line[idx+1:]
}

func isNarrative(lower string) bool {
	for _, marker := range narrativeMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// HasThousandsMarker reports whether the statement declares values in thousands
func HasThousandsMarker(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range thousandsMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
