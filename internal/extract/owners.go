package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/dossier/internal/model"
)

var (
	pctRe        = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	pctAsideRe   = regexp.MustCompile(`\([^)]*%[^)]*\)`)
	ownerLabelRe = regexp.MustCompile(`(?i)\bOWNER\b\s*[:\-]\s*(.+)`)
	pctPhraseRe  = regexp.MustCompile(`(?i)\s*[,:\-\x{2013}\x{2014}]?\s*\d+(?:\.\d+)?\s*%\s*(?:ownership|owner|interest|equity|stake)?`)
)

const nameRoleTrims = " \t,:-–—"

// Name/role separators in priority order
var ownerSeparators = []string{",", " - ", " -- ", " – ", " — "}

// OwnershipExtractor builds the beneficial owner list from ownership statements
type OwnershipExtractor struct {
	minPct float64
}

// NewOwnershipExtractor creates an extractor keeping owners strictly above minPct
func NewOwnershipExtractor(minPct float64) *OwnershipExtractor {
	return &OwnershipExtractor{minPct: minPct}
}

// Extract returns owners in input line order. Duplicates are kept.
func (e *OwnershipExtractor) Extract(text string) []model.Owner {
	var owners []model.Owner
	for _, line := range splitLines(text) {
		if owner, ok := e.parseLine(line); ok {
			owners = append(owners, owner)
		}
	}
	return owners
}

// parseLine turns one ownership statement into an owner
func (e *OwnershipExtractor) parseLine(line string) (model.Owner, bool) {
	m := pctRe.FindStringSubmatch(line)
	if m == nil {
		return model.Owner{}, false
	}
	pct, err := strconv.ParseFloat(m[1], 64)
	if err != nil || pct <= e.minPct {
		return model.Owner{}, false
	}

	cleaned := stripBullets(line)

	// A parenthesized percentage is a restatement, not part of the name
	if loc := pctAsideRe.FindStringIndex(cleaned); loc != nil {
		cleaned = strings.TrimSpace(cleaned[:loc[0]] + cleaned[loc[1]:])
	}

	if lm := ownerLabelRe.FindStringSubmatch(cleaned); lm != nil {
		cleaned = strings.TrimSpace(lm[1])
	}

	if loc := pctPhraseRe.FindStringIndex(cleaned); loc != nil {
		cleaned = strings.TrimSpace(cleaned[:loc[0]] + " " + cleaned[loc[1]:])
	}

	name, role := splitNameRole(cleaned)
	if name == "" {
		return model.Owner{}, false
	}

	owner := model.Owner{Name: name, OwnershipPct: pct}
	if role != "" {
		owner.Role = model.String(role)
	}
	return owner, true
}

// splitNameRole splits on the first separator present, in priority order
func splitNameRole(s string) (string, string) {
	for _, sep := range ownerSeparators {
		if idx := strings.Index(s, sep); idx >= 0 {
			name := strings.Trim(s[:idx], nameRoleTrims)
			role := strings.Trim(s[idx+len(sep):], nameRoleTrims)
			return name, role
		}
	}
	return strings.Trim(s, nameRoleTrims), ""
}
