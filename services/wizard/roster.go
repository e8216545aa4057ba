package wizard

// Completion tracks the three per-traveler stages of the wizard.
type Completion struct {
	PersonalDetailsDone bool `json:"personal_details_done"`
	PolicySelected      bool `json:"policy_selected"`
	AddOnsSelected      bool `json:"add_ons_selected"`
}

// Done reports whether every stage of this traveler is finished.
func (c Completion) Done() bool {
	return c.PersonalDetailsDone && c.PolicySelected && c.AddOnsSelected
}

// TravelerSlot owns one traveler's form values, validation errors and
// stage completion. Slot IDs are 1-based; slot 1 is the primary traveler.
type TravelerSlot struct {
	SlotID     int               `json:"slot_id"`
	IsPrimary  bool              `json:"is_primary"`
	FormValues map[string]string `json:"form_values"`
	Errors     map[string]string `json:"errors"`
	Completion Completion        `json:"completion"`
}

func newSlot(id int) *TravelerSlot {
	return &TravelerSlot{
		SlotID:     id,
		IsPrimary:  id == 1,
		FormValues: map[string]string{},
		Errors:     map[string]string{},
	}
}

// Roster holds the ordered traveler slots and the explicit focus. Keeping
// the focus on the roster instead of ambient state means independent
// roster instances never interfere.
type Roster struct {
	Slots         []*TravelerSlot `json:"slots"`
	CurrentSlotID int             `json:"current_slot_id"`
}

// NewRoster creates count slots with empty form values and nothing
// completed. Focus starts on slot 1.
func NewRoster(count int) *Roster {
	if count < 1 {
		count = 1
	}
	r := &Roster{CurrentSlotID: 1}
	for i := 1; i <= count; i++ {
		r.Slots = append(r.Slots, newSlot(i))
	}
	return r
}

// Slot returns the slot with the given id, or nil when out of range.
func (r *Roster) Slot(slotID int) *TravelerSlot {
	if slotID < 1 || slotID > len(r.Slots) {
		return nil
	}
	return r.Slots[slotID-1]
}

// SetCurrentTraveler moves focus to slotID. Out-of-range ids are ignored;
// no slot data is touched either way.
func (r *Roster) SetCurrentTraveler(slotID int) {
	if r.Slot(slotID) == nil {
		return
	}
	r.CurrentSlotID = slotID
}

// Resize replaces the whole slot array so the roster covers count
// travelers. Slots with retained ids keep their data; only trailing slots
// are added or dropped.
func (r *Roster) Resize(count int) {
	if count < 1 {
		count = 1
	}
	slots := make([]*TravelerSlot, 0, count)
	for i := 1; i <= count; i++ {
		if existing := r.Slot(i); existing != nil {
			slots = append(slots, existing)
		} else {
			slots = append(slots, newSlot(i))
		}
	}
	r.Slots = slots
	if r.CurrentSlotID > count {
		r.CurrentSlotID = count
	}
}

// UpdateField sets one form value and optimistically clears that field's
// error; the field is re-checked on the next full validation pass.
func (r *Roster) UpdateField(slotID int, field, value string) {
	slot := r.Slot(slotID)
	if slot == nil {
		return
	}
	slot.FormValues[field] = value
	delete(slot.Errors, field)
}

// ValidateSlot runs the full traveler rule set against the slot, replaces
// its error map wholesale and reports whether the form is valid. Unknown
// slots validate as false.
func (r *Roster) ValidateSlot(slotID int) bool {
	slot := r.Slot(slotID)
	if slot == nil {
		return false
	}
	slot.Errors = ValidateTravelerForm(slot.FormValues)
	return len(slot.Errors) == 0
}

// MarkPersonalDetailsComplete idempotently records that the slot passed
// personal-details validation.
func (r *Roster) MarkPersonalDetailsComplete(slotID int) {
	if slot := r.Slot(slotID); slot != nil {
		slot.Completion.PersonalDetailsDone = true
	}
}

// MarkPolicySelected idempotently records that the slot confirmed a plan.
func (r *Roster) MarkPolicySelected(slotID int) {
	if slot := r.Slot(slotID); slot != nil {
		slot.Completion.PolicySelected = true
	}
}

// MarkAddOnsSelected idempotently records that the slot finished the
// add-on step.
func (r *Roster) MarkAddOnsSelected(slotID int) {
	if slot := r.Slot(slotID); slot != nil {
		slot.Completion.AddOnsSelected = true
	}
}

// AllTravelersComplete is the completion gate: true only when every slot
// has all three stages done. Completion flags are only ever cleared by
// reset operations, so once true this stays true until a reset.
func (r *Roster) AllTravelersComplete() bool {
	for _, slot := range r.Slots {
		if !slot.Completion.Done() {
			return false
		}
	}
	return len(r.Slots) > 0
}

// ResetSlot wipes one slot back to its initial empty state.
func (r *Roster) ResetSlot(slotID int) {
	if slot := r.Slot(slotID); slot != nil {
		*slot = *newSlot(slotID)
	}
}

// SeedSampleValues fills every empty required field of the slot with a
// placeholder. Development convenience for walking the wizard quickly;
// wired to a config flag, never on in production.
func (r *Roster) SeedSampleValues(slotID int) {
	slot := r.Slot(slotID)
	if slot == nil {
		return
	}
	samples := map[string]string{
		FieldPassportNumber:        "AB1234567",
		FieldFullName:              "Test Traveler",
		FieldGender:                "male",
		FieldDateOfBirth:           "1990-01-15",
		FieldEmailAddress:          "traveler@example.com",
		FieldMobileNumber:          "9990001122",
		FieldAddressLine1:          "12 Test Street",
		FieldPincode:               "100100",
		FieldCity:                  "Tashkent",
		FieldDistrict:              "Yunusabad",
		FieldState:                 "Tashkent",
		FieldCountry:               "Uzbekistan",
		FieldNomineeName:           "Test Nominee",
		FieldRelationshipNominee:   "spouse",
		FieldEmergencyContactName:  "Test Contact",
		FieldEmergencyEmailAddress: "contact@example.com",
		FieldEmergencyMobileNumber: "9990003344",
	}
	for field, value := range samples {
		if slot.FormValues[field] == "" {
			slot.FormValues[field] = value
		}
	}
}
