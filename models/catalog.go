package models

// AddOnProduct дополнительный продукт к полису (rider)
type AddOnProduct struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Premium string `json:"premium"`
}

// PremiumBand премия для возрастного диапазона
type PremiumBand struct {
	AgeFrom int    `json:"age_from"`
	AgeTo   int    `json:"age_to"`
	Premium string `json:"premium"`
}

// PolicyPlan тарифный план страховщика
type PolicyPlan struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	DisplayName string         `json:"display_name"`
	Type        string         `json:"type"`
	SumInsured  string         `json:"sum_insured"`
	Premiums    []PremiumBand  `json:"premiums"`
	Coverages   []string       `json:"coverages"`
	AddOns      []AddOnProduct `json:"add_ons"`
	Recommended bool           `json:"recommended"`
	BestSelling bool           `json:"best_selling"`
}

// Insurer страховая компания с её планами
type Insurer struct {
	ID    int64        `json:"id"`
	Name  string       `json:"name"`
	Logo  string       `json:"logo"`
	Plans []PolicyPlan `json:"plans"`
}

// FlattenedPlan план, развёрнутый из каталога вместе с данными страховщика.
// IsSelected and AddOnsCount are presentation state for the current traveler,
// they are not part of the insurer catalog itself.
type FlattenedPlan struct {
	PolicyPlan
	InsurerID   int64  `json:"insurer_id"`
	InsurerName string `json:"insurer_name"`
	InsurerLogo string `json:"insurer_logo"`
	IsSelected  bool   `json:"is_selected"`
	AddOnsCount int    `json:"add_ons_count"`
}

// PlanName returns the name used for display and for the plan facet.
func (p FlattenedPlan) PlanName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}
