package screen

import (
	"strings"

	"github.com/ppiankov/dossier/internal/model"
)

// IndustryClassifier maps an industry description to a prohibited category
type IndustryClassifier struct {
	categories []model.IndustryCategory
}

// NewIndustryClassifier creates a classifier from an ordered category table.
// A nil or empty table uses the built-in one.
func NewIndustryClassifier(categories []model.IndustryCategory) *IndustryClassifier {
	if len(categories) == 0 {
		categories = model.DefaultIndustries()
	}

	normalized := make([]model.IndustryCategory, 0, len(categories))
	for _, c := range categories {
		keywords := make([]string, 0, len(c.Keywords))
		for _, k := range c.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
		normalized = append(normalized, model.IndustryCategory{Name: c.Name, Keywords: keywords})
	}

	return &IndustryClassifier{categories: normalized}
}

// Classify returns the first category with a keyword contained in industry
func (c *IndustryClassifier) Classify(industry string) (string, bool) {
	if industry == "" {
		return "", false
	}
	text := strings.ToLower(industry)
	for _, category := range c.categories {
		for _, keyword := range category.Keywords {
			if strings.Contains(text, keyword) {
				return category.Name, true
			}
		}
	}
	return "", false
}
