package wizard

import (
	"fmt"

	"covertrip/models"
)

// FetchKey identifies which traveler and criteria a catalog fetch was
// issued for. A response is applied only when its key still matches the
// most recently issued one, so a slow fetch for one traveler can never
// overwrite a newer traveler's catalog.
type FetchKey struct {
	SlotID     int    `json:"slot_id"`
	Age        int    `json:"age"`
	Days       int    `json:"days"`
	CategoryID int    `json:"category_id"`
	PartnerID  string `json:"partner_id,omitempty"`
}

func (k FetchKey) String() string {
	return fmt.Sprintf("slot=%d age=%d days=%d category=%d", k.SlotID, k.Age, k.Days, k.CategoryID)
}

// Catalog holds the raw insurer catalog, its flattened projection and the
// per-slot plan selections.
type Catalog struct {
	Insurers   []models.Insurer             `json:"insurers"`
	Flat       []models.FlattenedPlan       `json:"flat"`
	Selections map[int]models.FlattenedPlan `json:"selections"`
	Key        FetchKey                     `json:"key"`
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{Selections: map[int]models.FlattenedPlan{}}
}

// Flatten projects the nested insurer catalog into a single plan list,
// preserving insurer order and plan order within each insurer. Pure and
// idempotent: the same input always yields the same list.
func Flatten(insurers []models.Insurer) []models.FlattenedPlan {
	flat := make([]models.FlattenedPlan, 0)
	for _, ins := range insurers {
		for _, plan := range ins.Plans {
			flat = append(flat, models.FlattenedPlan{
				PolicyPlan:  plan,
				InsurerID:   ins.ID,
				InsurerName: ins.Name,
				InsurerLogo: ins.Logo,
			})
		}
	}
	return flat
}

// Load replaces the catalog wholesale and recomputes the flattened view.
// Existing selections are kept; they refer to plans the travelers already
// chose under their own fetch criteria.
func (c *Catalog) Load(insurers []models.Insurer, key FetchKey) {
	c.Insurers = insurers
	c.Flat = Flatten(insurers)
	c.Key = key
	if c.Selections == nil {
		c.Selections = map[int]models.FlattenedPlan{}
	}
}

// FindPlan looks a plan up in the flattened view by insurer and plan id.
func (c *Catalog) FindPlan(insurerID, planID int64) (models.FlattenedPlan, bool) {
	for _, p := range c.Flat {
		if p.InsurerID == insurerID && p.ID == planID {
			return p, true
		}
	}
	return models.FlattenedPlan{}, false
}

// Select records the plan chosen for the slot, overwriting any previous
// choice. The caller is responsible for checking that the slot exists and
// has finished personal details; see Session.SelectPlan.
func (c *Catalog) Select(slotID int, plan models.FlattenedPlan) {
	if c.Selections == nil {
		c.Selections = map[int]models.FlattenedPlan{}
	}
	plan.IsSelected = true
	c.Selections[slotID] = plan
}

// Selection returns the plan chosen for the slot, if any.
func (c *Catalog) Selection(slotID int) (models.FlattenedPlan, bool) {
	plan, ok := c.Selections[slotID]
	return plan, ok
}

// CopyFromPrimary copies slot 1's selection into slotID. No-op when the
// primary traveler has not selected a plan yet.
func (c *Catalog) CopyFromPrimary(slotID int) bool {
	primary, ok := c.Selections[1]
	if !ok {
		return false
	}
	c.Selections[slotID] = primary
	return true
}

// Clear empties the catalog, the flattened view and all selections. Used
// on wizard reset only, never on per-traveler navigation.
func (c *Catalog) Clear() {
	c.Insurers = nil
	c.Flat = nil
	c.Selections = map[int]models.FlattenedPlan{}
	c.Key = FetchKey{}
}
