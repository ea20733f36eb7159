package model

// Confidence records how a value was obtained from source text
type Confidence string

const (
	ConfidenceExplicit Confidence = "explicit" // Unambiguous labeled statement (e.g., "ENTITY NAME: ...")
	ConfidenceInferred Confidence = "inferred" // Heuristic guess (phrasing, suffix scan, component sum)
)

// ExtractedValue is the result of a single field extraction.
// A miss is the zero value: empty Value and empty Confidence.
type ExtractedValue struct {
	Value      string     `json:"value,omitempty"`
	Confidence Confidence `json:"confidence,omitempty"`
	Strategy   string     `json:"strategy,omitempty"` // Name of the strategy that matched
}

// Found reports whether the extraction produced a value
func (v ExtractedValue) Found() bool {
	return v.Value != ""
}

// String returns a pointer to v
func String(v string) *string {
	return &v
}

// Owner is a beneficial owner above the ownership threshold
type Owner struct {
	Name         string  `json:"name"`
	Role         *string `json:"role"` // nil when the line names no role
	OwnershipPct float64 `json:"ownership_pct"`
}

// RoleName returns the role, or "" when none was given
func (o Owner) RoleName() string {
	if o.Role == nil {
		return ""
	}
	return *o.Role
}
