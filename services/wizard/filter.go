package wizard

import (
	"sort"

	"covertrip/models"
)

// Facet names accepted by Toggle.
const (
	FacetInsurer    = "insurer"
	FacetSumInsured = "sum_insured"
	FacetPlan       = "plan"
)

// FilterState holds the user's facet selections. Selections are never
// pruned when the catalog changes; a value no longer present in the
// catalog simply matches nothing.
type FilterState struct {
	SelectedInsurers   map[string]bool `json:"selected_insurers"`
	SelectedSumInsured map[string]bool `json:"selected_sum_insured"`
	SelectedPlans      map[string]bool `json:"selected_plans"`
}

// NewFilterState returns an empty filter.
func NewFilterState() *FilterState {
	return &FilterState{
		SelectedInsurers:   map[string]bool{},
		SelectedSumInsured: map[string]bool{},
		SelectedPlans:      map[string]bool{},
	}
}

// FacetOptions are the distinct values available per facet, each sorted
// lexicographically ascending.
type FacetOptions struct {
	Insurers   []string `json:"insurers"`
	SumInsured []string `json:"sum_insured"`
	Plans      []string `json:"plans"`
}

// BuildFacetOptions collects the distinct non-empty facet values from the
// current flattened catalog. Sum-insured values sort as plain strings, so
// "100000" comes before "50000"; the storefront has always shown tiers in
// that order.
func BuildFacetOptions(flat []models.FlattenedPlan) FacetOptions {
	insurers := map[string]bool{}
	sums := map[string]bool{}
	plans := map[string]bool{}
	for _, p := range flat {
		if p.InsurerName != "" {
			insurers[p.InsurerName] = true
		}
		if p.SumInsured != "" {
			sums[p.SumInsured] = true
		}
		if name := p.PlanName(); name != "" {
			plans[name] = true
		}
	}
	return FacetOptions{
		Insurers:   sortedKeys(insurers),
		SumInsured: sortedKeys(sums),
		Plans:      sortedKeys(plans),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Toggle adds the value to the facet's selection set, or removes it when
// already present. Unknown facet names are ignored.
func (f *FilterState) Toggle(facet, value string) {
	var set map[string]bool
	switch facet {
	case FacetInsurer:
		set = f.SelectedInsurers
	case FacetSumInsured:
		set = f.SelectedSumInsured
	case FacetPlan:
		set = f.SelectedPlans
	default:
		return
	}
	if set[value] {
		delete(set, value)
	} else {
		set[value] = true
	}
}

// IsActive reports whether any facet value is selected.
func (f *FilterState) IsActive() bool {
	return f.Count() > 0
}

// Count is the total number of selected facet values across all facets.
func (f *FilterState) Count() int {
	return len(f.SelectedInsurers) + len(f.SelectedSumInsured) + len(f.SelectedPlans)
}

// Apply narrows the flattened catalog to plans matching every facet with
// an active selection (AND across facets, OR within a facet). With no
// selections at all the input slice is returned as is.
func (f *FilterState) Apply(flat []models.FlattenedPlan) []models.FlattenedPlan {
	if !f.IsActive() {
		return flat
	}
	filtered := make([]models.FlattenedPlan, 0)
	for _, p := range flat {
		if len(f.SelectedInsurers) > 0 && !f.SelectedInsurers[p.InsurerName] {
			continue
		}
		if len(f.SelectedSumInsured) > 0 && !f.SelectedSumInsured[p.SumInsured] {
			continue
		}
		if len(f.SelectedPlans) > 0 && !f.SelectedPlans[p.PlanName()] {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Clear drops every facet selection.
func (f *FilterState) Clear() {
	f.SelectedInsurers = map[string]bool{}
	f.SelectedSumInsured = map[string]bool{}
	f.SelectedPlans = map[string]bool{}
}
