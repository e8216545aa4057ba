package wizard

import (
	"testing"

	"covertrip/models"

	"github.com/stretchr/testify/assert"
)

func sampleInsurers() []models.Insurer {
	return []models.Insurer{
		{
			ID: 10, Name: "Acme", Logo: "acme.png",
			Plans: []models.PolicyPlan{
				{ID: 1, Name: "Silver", SumInsured: "50000", AddOns: []models.AddOnProduct{{ID: 101, Name: "Adventure Sports"}}},
				{ID: 2, Name: "Gold", DisplayName: "Gold Shield", SumInsured: "100000"},
			},
		},
		{
			ID: 20, Name: "Globex", Logo: "globex.png",
			Plans: []models.PolicyPlan{
				{ID: 3, Name: "Basic", SumInsured: "50000", Recommended: true},
			},
		},
	}
}

func TestFlattenPreservesOrder(t *testing.T) {
	flat := Flatten(sampleInsurers())
	assert.Len(t, flat, 3)
	assert.Equal(t, "Silver", flat[0].Name)
	assert.Equal(t, "Gold", flat[1].Name)
	assert.Equal(t, "Basic", flat[2].Name)
	assert.Equal(t, "Acme", flat[0].InsurerName)
	assert.Equal(t, int64(20), flat[2].InsurerID)
	assert.Equal(t, "globex.png", flat[2].InsurerLogo)
	for _, p := range flat {
		assert.False(t, p.IsSelected)
		assert.Equal(t, 0, p.AddOnsCount)
	}
}

func TestFlattenIdempotent(t *testing.T) {
	insurers := sampleInsurers()
	assert.Equal(t, Flatten(insurers), Flatten(insurers))
}

func TestCatalogLoadReplacesWholesale(t *testing.T) {
	c := NewCatalog()
	c.Load(sampleInsurers(), FetchKey{SlotID: 1, Age: 35, Days: 5, CategoryID: 1})
	assert.Len(t, c.Flat, 3)

	c.Load([]models.Insurer{{ID: 30, Name: "Initech", Plans: []models.PolicyPlan{{ID: 9, Name: "Solo"}}}}, FetchKey{SlotID: 2})
	assert.Len(t, c.Flat, 1)
	assert.Equal(t, "Initech", c.Flat[0].InsurerName)
}

func TestFindPlan(t *testing.T) {
	c := NewCatalog()
	c.Load(sampleInsurers(), FetchKey{})
	plan, ok := c.FindPlan(10, 2)
	assert.True(t, ok)
	assert.Equal(t, "Gold Shield", plan.PlanName())

	_, ok = c.FindPlan(10, 99)
	assert.False(t, ok)
}

func TestCopyFromPrimary(t *testing.T) {
	c := NewCatalog()
	c.Load(sampleInsurers(), FetchKey{})

	// nothing to copy yet
	assert.False(t, c.CopyFromPrimary(2))
	_, ok := c.Selection(2)
	assert.False(t, ok)

	plan, _ := c.FindPlan(10, 1)
	c.Select(1, plan)
	assert.True(t, c.CopyFromPrimary(2))

	copied, ok := c.Selection(2)
	assert.True(t, ok)
	assert.Equal(t, int64(1), copied.ID)

	// traveler 3 stays untouched
	_, ok = c.Selection(3)
	assert.False(t, ok)
}

func TestClearEmptiesEverything(t *testing.T) {
	c := NewCatalog()
	c.Load(sampleInsurers(), FetchKey{SlotID: 1})
	plan, _ := c.FindPlan(20, 3)
	c.Select(1, plan)

	c.Clear()
	assert.Empty(t, c.Insurers)
	assert.Empty(t, c.Flat)
	assert.Empty(t, c.Selections)
	assert.Equal(t, FetchKey{}, c.Key)
}
