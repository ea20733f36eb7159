package screen

import (
	"github.com/ppiankov/dossier/internal/model"
)

// Screener checks owners against a sanctions list and an industry against prohibited categories
type Screener struct {
	matchers []Matcher
	industry *IndustryClassifier
}

// NewScreener creates a screener using the default matchers and the given industry table
func NewScreener(industries []model.IndustryCategory) *Screener {
	return &Screener{
		matchers: DefaultMatchers(),
		industry: NewIndustryClassifier(industries),
	}
}

// NameMatch describes the sanctions entry a name matched
type NameMatch struct {
	Entry   string
	Matcher string
}

// MatchName returns the first sanctions entry matching name
func (s *Screener) MatchName(name string, entries []string) (NameMatch, bool) {
	normName := NormalizeName(name)
	if normName == "" {
		return NameMatch{}, false
	}
	for _, entry := range entries {
		normEntry := NormalizeName(entry)
		if normEntry == "" {
			continue
		}
		for _, m := range s.matchers {
			if m.Match(normName, normEntry) {
				return NameMatch{Entry: entry, Matcher: m.Name()}, true
			}
		}
	}
	return NameMatch{}, false
}

// Screen returns one finding per sanctioned owner followed by at most one industry finding
func (s *Screener) Screen(owners []model.Owner, entries []string, industry string) []model.ComplianceFinding {
	var findings []model.ComplianceFinding

	for _, owner := range owners {
		match, ok := s.MatchName(owner.Name, entries)
		if !ok {
			continue
		}
		findings = append(findings, model.ComplianceFinding{
			Kind:        model.FindingSanctionsHit,
			OwnerName:   owner.Name,
			MatchedName: match.Entry,
			Matcher:     match.Matcher,
		})
	}

	if category, ok := s.industry.Classify(industry); ok {
		findings = append(findings, model.ComplianceFinding{
			Kind:         model.FindingProhibitedIndustry,
			Category:     category,
			MatchedValue: industry,
		})
	}

	return findings
}

// Summarize builds the compliance summary persisted on the dossier
func Summarize(findings []model.ComplianceFinding) model.ComplianceSummary {
	issues := findings
	if issues == nil {
		issues = []model.ComplianceFinding{}
	}
	return model.ComplianceSummary{
		SanctionsChecked:          true,
		ProhibitedIndustryChecked: true,
		IssuesFound:               issues,
		Status:                    model.StatusFor(findings),
	}
}
