package llm

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/dossier/internal/extract"
	"github.com/ppiankov/dossier/internal/model"
	"github.com/ppiankov/dossier/internal/pipeline"
)

// Cited figures in generated text
var (
	moneyRe = regexp.MustCompile(`(?i)\$\s?\d[\d,]*(?:\.\d+)?(?:\s?(?:thousand|million|billion|mm|bn|k|m|b)\b)?`)
	ratioRe = regexp.MustCompile(`\b\d+(?:\.\d+)?x\b`)
)

// Relative tolerance for abbreviated amounts such as "$1.75M"
const abbreviatedTolerance = 0.005

var financialLabels = map[model.FinancialField]string{
	model.FieldGrossRevenue:       "Gross Revenue",
	model.FieldOperatingExpenses:  "Operating Expenses",
	model.FieldDepreciation:       "Depreciation",
	model.FieldAnnualDebtService:  "Annual Debt Service",
	model.FieldProposedLoanAmount: "Proposed Loan Amount",
}

// AllowedFigures lists the figures the narrative may cite, as rendered in the memo
func AllowedFigures(d *model.Dossier) []string {
	fin := d.Financials
	if fin == nil {
		return nil
	}

	var out []string
	for _, field := range model.FinancialFields {
		if v := fin.Get(field); v != nil {
			out = append(out, financialLabels[field]+": "+pipeline.FormatMoney(v))
		}
	}
	if fin.EBITDA != nil {
		out = append(out, "EBITDA: "+pipeline.FormatMoney(fin.EBITDA))
	}
	if fin.DSCR != nil {
		out = append(out, "DSCR: "+pipeline.FormatRatio(fin.DSCR))
	}
	return out
}

// CitedFigures returns every monetary amount and ratio in text, in order
func CitedFigures(text string) []string {
	var out []string
	for _, m := range moneyRe.FindAllString(text, -1) {
		out = append(out, strings.TrimRight(m, ","))
	}
	return append(out, ratioRe.FindAllString(text, -1)...)
}

// UnsupportedFigures returns the cited figures that match no dossier value
func UnsupportedFigures(text string, d *model.Dossier) []string {
	var amounts []float64
	var dscr *float64
	if fin := d.Financials; fin != nil {
		for _, field := range model.FinancialFields {
			if v := fin.Get(field); v != nil {
				amounts = append(amounts, *v)
			}
		}
		if fin.EBITDA != nil {
			amounts = append(amounts, *fin.EBITDA)
		}
		dscr = fin.DSCR
	}

	var unsupported []string
	for _, cited := range moneyRe.FindAllString(text, -1) {
		cited = strings.TrimRight(cited, ",")
		v, ok := extract.ParseNumber(cited)
		if !ok || !matchesAmount(v, amounts, isAbbreviated(cited)) {
			unsupported = append(unsupported, strings.TrimSpace(cited))
		}
	}
	for _, cited := range ratioRe.FindAllString(text, -1) {
		v, err := strconv.ParseFloat(strings.TrimSuffix(cited, "x"), 64)
		if err != nil || dscr == nil || math.Abs(v-*dscr) > 0.005 {
			unsupported = append(unsupported, cited)
		}
	}
	return unsupported
}

func matchesAmount(v float64, amounts []float64, abbreviated bool) bool {
	for _, a := range amounts {
		diff := math.Abs(math.Abs(v) - math.Abs(a))
		if abbreviated {
			if diff <= abbreviatedTolerance*math.Abs(a) {
				return true
			}
			continue
		}
		if diff < 0.005 {
			return true
		}
	}
	return false
}

func isAbbreviated(cited string) bool {
	last := cited[len(cited)-1]
	return last < '0' || last > '9'
}

func formatPct(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64)
}
