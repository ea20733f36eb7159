package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/dossier/internal/model"
)

// Strategy is one named way of finding a field value in a single line
type Strategy struct {
	Name       string
	Confidence model.Confidence
	Pattern    *regexp.Regexp        // First capture group is the value
	Reject     func(v string) bool   // Optional filter for false positives
	Clean      func(v string) string // Optional normalization, applied before Reject
}

// FieldExtractor finds a scalar field by trying strategies in priority order.
// Each strategy scans every line; the first line it satisfies wins.
type FieldExtractor struct {
	field      string
	strategies []Strategy
}

// NewFieldExtractor creates an extractor for field with the given strategies
func NewFieldExtractor(field string, strategies ...Strategy) *FieldExtractor {
	return &FieldExtractor{
		field:      field,
		strategies: strategies,
	}
}

// Field returns the name of the extracted field
func (e *FieldExtractor) Field() string {
	return e.field
}

// Extract returns the first match, or the zero value when nothing matched
func (e *FieldExtractor) Extract(text string) model.ExtractedValue {
	lines := splitLines(text)
	for _, s := range e.strategies {
		for _, line := range lines {
			m := s.Pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			value := strings.TrimSpace(m[1])
			if s.Clean != nil {
				value = s.Clean(value)
			}
			if value == "" || (s.Reject != nil && s.Reject(value)) {
				continue
			}
			return model.ExtractedValue{
				Value:      value,
				Confidence: s.Confidence,
				Strategy:   s.Name,
			}
		}
	}
	return model.ExtractedValue{}
}

var (
	entityNameLabelRe  = regexp.MustCompile(`(?i)\bENTITY\s+NAME\b\s*[:\-]\s*(.+)`)
	entityNamePhraseRe = regexp.MustCompile(`(?i)\bname\s+of\s+the\s+(?:corporation|company|entity|limited\s+liability\s+company)\s+(?:is|shall\s+be)\s+(.+?);?\s*$`)
	entityHintRe       = regexp.MustCompile(`(?i)\b([A-Z][A-Za-z0-9&.,'\- ]+\b(?:LLC|L\.L\.C\.|CORP|CORPORATION|INC|INC\.|LTD|L\.T\.D\.))\b`)

	stateLabelRe  = regexp.MustCompile(`(?i)\bSTATE\s+OF\s+REGISTRATION\b\s*[:\-]\s*(.+)`)
	stateLawsRe   = regexp.MustCompile(`\b(?i:under\s+the\s+laws\s+of\s+the\s+state\s+of)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
	statePhraseRe = regexp.MustCompile(`\b(?i:state\s+of)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)

	industryLabelRe  = regexp.MustCompile(`(?i)\b(?:INDUSTRY|BUSINESS\s+TYPE|NATURE\s+OF\s+BUSINESS)\b\s*[:\-]\s*(.+)`)
	industryPhraseRe = regexp.MustCompile(`(?i)\bengaged\s+in\s+the\s+business\s+of\s+(.+?)[.;]?\s*$`)
)

// Words that follow "State of" in headings rather than naming a state
var stateHeadingWords = map[string]bool{
	"registration":  true,
	"incorporation": true,
	"organization":  true,
	"formation":     true,
}

func rejectStateHeading(v string) bool {
	return stateHeadingWords[strings.ToLower(strings.Fields(v)[0])]
}

// Legal suffixes whose trailing period belongs to the name
var suffixAbbreviations = map[string]bool{
	"inc":   true,
	"corp":  true,
	"ltd":   true,
	"co":    true,
	"l.l.c": true,
	"l.t.d": true,
	"l.p":   true,
	"p.c":   true,
}

// trimSentencePeriod drops a sentence-ending period unless it closes a suffix abbreviation
func trimSentencePeriod(v string) string {
	body, ok := strings.CutSuffix(v, ".")
	if !ok {
		return v
	}
	last := body
	if i := strings.LastIndexAny(body, " ,"); i >= 0 {
		last = body[i+1:]
	}
	if suffixAbbreviations[strings.ToLower(last)] {
		return v
	}
	return strings.TrimSpace(body)
}

// NewEntityNameExtractor extracts the registered entity name
func NewEntityNameExtractor() *FieldExtractor {
	return NewFieldExtractor("entity_name",
		Strategy{Name: "label", Confidence: model.ConfidenceExplicit, Pattern: entityNameLabelRe},
		Strategy{Name: "phrase", Confidence: model.ConfidenceInferred, Pattern: entityNamePhraseRe, Clean: trimSentencePeriod},
		Strategy{Name: "entity_suffix", Confidence: model.ConfidenceInferred, Pattern: entityHintRe},
	)
}

// NewStateExtractor extracts the state of registration
func NewStateExtractor() *FieldExtractor {
	return NewFieldExtractor("state",
		Strategy{Name: "label", Confidence: model.ConfidenceExplicit, Pattern: stateLabelRe},
		Strategy{Name: "laws_of_state", Confidence: model.ConfidenceInferred, Pattern: stateLawsRe, Reject: rejectStateHeading},
		Strategy{Name: "state_of", Confidence: model.ConfidenceInferred, Pattern: statePhraseRe, Reject: rejectStateHeading},
	)
}

// NewIndustryExtractor extracts the industry or business type
func NewIndustryExtractor() *FieldExtractor {
	return NewFieldExtractor("industry",
		Strategy{Name: "label", Confidence: model.ConfidenceExplicit, Pattern: industryLabelRe},
		Strategy{Name: "phrase", Confidence: model.ConfidenceInferred, Pattern: industryPhraseRe},
	)
}

// KYBExtraction is everything the articles yield for KYB
type KYBExtraction struct {
	EntityName model.ExtractedValue
	State      model.ExtractedValue
	Industry   model.ExtractedValue
	Owners     []model.Owner
}

// KYBExtractor runs the field and ownership extractors over articles text
type KYBExtractor struct {
	entity   *FieldExtractor
	state    *FieldExtractor
	industry *FieldExtractor
	owners   *OwnershipExtractor
}

// NewKYBExtractor creates a KYB extractor; owners must exceed minPct
func NewKYBExtractor(minPct float64) *KYBExtractor {
	return &KYBExtractor{
		entity:   NewEntityNameExtractor(),
		state:    NewStateExtractor(),
		industry: NewIndustryExtractor(),
		owners:   NewOwnershipExtractor(minPct),
	}
}

// Extract runs every KYB extractor over text
func (e *KYBExtractor) Extract(text string) KYBExtraction {
	return KYBExtraction{
		EntityName: e.entity.Extract(text),
		State:      e.state.Extract(text),
		Industry:   e.industry.Extract(text),
		Owners:     e.owners.Extract(text),
	}
}

// OwnersField names the beneficial owner list when reporting misses
const OwnersField = "ubo_list"

// Missing names the fields absent from kyb, in extractor order
func (e *KYBExtractor) Missing(kyb KYBExtraction) []string {
	var missing []string
	for _, f := range []struct {
		extractor *FieldExtractor
		value     model.ExtractedValue
	}{
		{e.entity, kyb.EntityName},
		{e.state, kyb.State},
		{e.industry, kyb.Industry},
	} {
		if !f.value.Found() {
			missing = append(missing, f.extractor.Field())
		}
	}
	if len(kyb.Owners) == 0 {
		missing = append(missing, OwnersField)
	}
	return missing
}
