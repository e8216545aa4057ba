package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacetOptionsSortedLexicographically(t *testing.T) {
	flat := Flatten(sampleInsurers())
	opts := BuildFacetOptions(flat)

	assert.Equal(t, []string{"Acme", "Globex"}, opts.Insurers)
	// string sort puts "100000" before "50000"
	assert.Equal(t, []string{"100000", "50000"}, opts.SumInsured)
	assert.Equal(t, []string{"Basic", "Gold Shield", "Silver"}, opts.Plans)
}

func TestFacetOptionsSkipEmptyValues(t *testing.T) {
	flat := Flatten(sampleInsurers())
	flat[0].SumInsured = ""
	opts := BuildFacetOptions(flat)
	assert.NotContains(t, opts.SumInsured, "")
}

func TestApplyNoFilterReturnsSameSlice(t *testing.T) {
	flat := Flatten(sampleInsurers())
	f := NewFilterState()
	out := f.Apply(flat)
	assert.Len(t, out, len(flat))
	// identical slice, not a copy
	assert.Same(t, &flat[0], &out[0])
}

func TestApplyConjunction(t *testing.T) {
	flat := Flatten(sampleInsurers())
	f := NewFilterState()
	f.Toggle(FacetInsurer, "Acme")
	f.Toggle(FacetSumInsured, "50000")

	out := f.Apply(flat)
	assert.Len(t, out, 1)
	assert.Equal(t, "Silver", out[0].Name)
	for _, p := range out {
		assert.True(t, f.SelectedInsurers[p.InsurerName])
		assert.True(t, f.SelectedSumInsured[p.SumInsured])
	}
}

func TestApplyOrWithinFacet(t *testing.T) {
	flat := Flatten(sampleInsurers())
	f := NewFilterState()
	f.Toggle(FacetPlan, "Silver")
	f.Toggle(FacetPlan, "Basic")

	out := f.Apply(flat)
	assert.Len(t, out, 2)
}

func TestStaleFacetValueMatchesNothing(t *testing.T) {
	flat := Flatten(sampleInsurers())
	f := NewFilterState()
	f.Toggle(FacetInsurer, "Removed Insurer")

	assert.Empty(t, f.Apply(flat))
	// the stale selection stays; no implicit pruning
	assert.True(t, f.SelectedInsurers["Removed Insurer"])
}

func TestToggleAddsAndRemoves(t *testing.T) {
	f := NewFilterState()
	f.Toggle(FacetInsurer, "Acme")
	assert.True(t, f.IsActive())
	assert.Equal(t, 1, f.Count())

	f.Toggle(FacetInsurer, "Acme")
	assert.False(t, f.IsActive())
	assert.Equal(t, 0, f.Count())

	// order of toggles does not matter
	f.Toggle(FacetSumInsured, "50000")
	f.Toggle(FacetPlan, "Silver")
	f.Toggle(FacetSumInsured, "50000")
	assert.Equal(t, 1, f.Count())

	// unknown facet ignored
	f.Toggle("bogus", "x")
	assert.Equal(t, 1, f.Count())
}

func TestClearDropsAllSelections(t *testing.T) {
	f := NewFilterState()
	f.Toggle(FacetInsurer, "Acme")
	f.Toggle(FacetSumInsured, "50000")
	f.Clear()
	assert.False(t, f.IsActive())
}
