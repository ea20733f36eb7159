package decision

import "github.com/ppiankov/dossier/internal/model"

// FieldChange records one merge policy evaluation
type FieldChange struct {
	Field      string           `json:"field"`
	Old        string           `json:"old,omitempty"`
	New        string           `json:"new"`
	Confidence model.Confidence `json:"confidence"`
	Applied    bool             `json:"applied"`
}

// MergeString applies the merge policy to a scalar field.
// An absent field is always set; an existing one is only overwritten by an explicit value.
func MergeString(current string, v model.ExtractedValue) (string, bool) {
	if !v.Found() {
		return current, false
	}
	if current == "" {
		return v.Value, true
	}
	if v.Confidence == model.ConfidenceExplicit {
		return v.Value, v.Value != current
	}
	return current, false
}

// MergeFloat applies the merge policy to a numeric field
func MergeFloat(current, v *float64, confidence model.Confidence) *float64 {
	if v == nil {
		return current
	}
	if current == nil || confidence == model.ConfidenceExplicit {
		return model.Float(*v)
	}
	return current
}

// MergeOwners replaces the owner list wholesale when the new list is non-empty
func MergeOwners(current, owners []model.Owner) []model.Owner {
	if len(owners) == 0 {
		return current
	}
	return append([]model.Owner(nil), owners...)
}

// mergeScalar merges into *dst and records the evaluation
func mergeScalar(dst *string, field string, v model.ExtractedValue, changes *[]FieldChange) {
	if !v.Found() {
		return
	}
	old := *dst
	merged, applied := MergeString(old, v)
	*dst = merged
	*changes = append(*changes, FieldChange{
		Field:      field,
		Old:        old,
		New:        v.Value,
		Confidence: v.Confidence,
		Applied:    applied,
	})
}
