package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ppiankov/dossier/internal/model"
)

func explicit(v string) model.ExtractedValue {
	return model.ExtractedValue{Value: v, Confidence: model.ConfidenceExplicit}
}

func inferred(v string) model.ExtractedValue {
	return model.ExtractedValue{Value: v, Confidence: model.ConfidenceInferred}
}

func TestMergeString(t *testing.T) {
	tests := []struct {
		name        string
		current     string
		value       model.ExtractedValue
		want        string
		wantApplied bool
	}{
		{"absent set by inferred", "", inferred("Acme LLC"), "Acme LLC", true},
		{"absent set by explicit", "", explicit("Acme LLC"), "Acme LLC", true},
		{"inferred never overwrites", "Acme LLC", inferred("Other Corp"), "Acme LLC", false},
		{"explicit overwrites", "Acme LLC", explicit("Other Corp"), "Other Corp", true},
		{"same explicit value is a no-op", "Acme LLC", explicit("Acme LLC"), "Acme LLC", false},
		{"miss keeps current", "Acme LLC", model.ExtractedValue{}, "Acme LLC", false},
		{"miss on absent stays absent", "", model.ExtractedValue{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, applied := MergeString(tt.current, tt.value)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantApplied, applied)
		})
	}
}

func TestMergeString_ExplicitValueSurvivesInferredRuns(t *testing.T) {
	current, _ := MergeString("", explicit("Acme LLC"))
	for _, guess := range []string{"Acme Holdings Inc", "Widget Corp", "acme llc"} {
		current, _ = MergeString(current, inferred(guess))
	}
	assert.Equal(t, "Acme LLC", current)

	current, _ = MergeString(current, explicit("Acme Logistics LLC"))
	assert.Equal(t, "Acme Logistics LLC", current)
}

func TestMergeFloat(t *testing.T) {
	assert.Nil(t, MergeFloat(nil, nil, model.ConfidenceExplicit))
	assert.Equal(t, 100.0, *MergeFloat(nil, model.Float(100), model.ConfidenceInferred))
	assert.Equal(t, 100.0, *MergeFloat(model.Float(100), model.Float(200), model.ConfidenceInferred))
	assert.Equal(t, 300.0, *MergeFloat(model.Float(100), model.Float(300), model.ConfidenceExplicit))
	assert.Equal(t, 100.0, *MergeFloat(model.Float(100), nil, model.ConfidenceExplicit))
}

func TestMergeFloat_DoesNotAlias(t *testing.T) {
	v := model.Float(5)
	got := MergeFloat(nil, v, model.ConfidenceExplicit)
	*v = 6
	assert.Equal(t, 5.0, *got)
}

func TestMergeOwners(t *testing.T) {
	current := []model.Owner{{Name: "Jane Doe", OwnershipPct: 60}}

	assert.Equal(t, current, MergeOwners(current, nil))
	assert.Equal(t, current, MergeOwners(current, []model.Owner{}))

	replacement := []model.Owner{
		{Name: "John Roe", OwnershipPct: 40},
		{Name: "Ann Poe", OwnershipPct: 35},
	}
	got := MergeOwners(current, replacement)
	assert.Equal(t, replacement, got)

	replacement[0].Name = "changed"
	assert.Equal(t, "John Roe", got[0].Name)
}
