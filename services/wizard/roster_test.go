package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fillValidForm sets every required traveler field to a passing value.
func fillValidForm(r *Roster, slotID int) {
	values := map[string]string{
		FieldPassportNumber:        "AB1234567",
		FieldFullName:              "Alisher Usmanov",
		FieldGender:                "male",
		FieldDateOfBirth:           "1990-01-15",
		FieldEmailAddress:          "alisher@example.com",
		FieldMobileNumber:          "9989901122",
		FieldAddressLine1:          "12 Amir Temur Street",
		FieldPincode:               "100100",
		FieldCity:                  "Tashkent",
		FieldDistrict:              "Yunusabad",
		FieldState:                 "Tashkent",
		FieldCountry:               "Uzbekistan",
		FieldNomineeName:           "Dilnoza Usmanova",
		FieldRelationshipNominee:   "spouse",
		FieldEmergencyContactName:  "Bobur Karimov",
		FieldEmergencyEmailAddress: "bobur@example.com",
		FieldEmergencyMobileNumber: "9989903344",
	}
	for field, value := range values {
		r.UpdateField(slotID, field, value)
	}
}

func TestRosterSizing(t *testing.T) {
	r := NewRoster(3)
	assert.Len(t, r.Slots, 3)
	for i, slot := range r.Slots {
		assert.Equal(t, i+1, slot.SlotID)
		assert.Equal(t, Completion{}, slot.Completion)
	}
	assert.True(t, r.Slots[0].IsPrimary)
	assert.False(t, r.Slots[1].IsPrimary)
	assert.Equal(t, 1, r.CurrentSlotID)
}

func TestRosterResizePreservesRetainedSlots(t *testing.T) {
	r := NewRoster(2)
	r.UpdateField(1, FieldFullName, "Alisher")
	r.UpdateField(2, FieldFullName, "Dilnoza")
	r.MarkPersonalDetailsComplete(2)

	r.Resize(4)
	assert.Len(t, r.Slots, 4)
	assert.Equal(t, "Alisher", r.Slot(1).FormValues[FieldFullName])
	assert.Equal(t, "Dilnoza", r.Slot(2).FormValues[FieldFullName])
	assert.True(t, r.Slot(2).Completion.PersonalDetailsDone)
	assert.Empty(t, r.Slot(3).FormValues)

	r.Resize(1)
	assert.Len(t, r.Slots, 1)
	assert.Equal(t, "Alisher", r.Slot(1).FormValues[FieldFullName])
}

func TestSetCurrentTravelerOutOfRangeIsNoop(t *testing.T) {
	r := NewRoster(2)
	r.SetCurrentTraveler(2)
	assert.Equal(t, 2, r.CurrentSlotID)

	r.SetCurrentTraveler(5)
	assert.Equal(t, 2, r.CurrentSlotID)
	r.SetCurrentTraveler(0)
	assert.Equal(t, 2, r.CurrentSlotID)
}

func TestFocusSwitchKeepsInProgressEdits(t *testing.T) {
	r := NewRoster(2)
	r.UpdateField(1, FieldFullName, "Alisher")
	r.SetCurrentTraveler(2)
	r.UpdateField(2, FieldFullName, "Dilnoza")
	r.SetCurrentTraveler(1)

	assert.Equal(t, "Alisher", r.Slot(1).FormValues[FieldFullName])
	assert.Equal(t, "Dilnoza", r.Slot(2).FormValues[FieldFullName])
}

func TestValidateSlotBadEmailOnly(t *testing.T) {
	r := NewRoster(1)
	fillValidForm(r, 1)
	r.UpdateField(1, FieldEmailAddress, "not-an-email")

	assert.False(t, r.ValidateSlot(1))
	assert.Len(t, r.Slot(1).Errors, 1)
	assert.Contains(t, r.Slot(1).Errors, FieldEmailAddress)
}

func TestValidateSlotRequiredFields(t *testing.T) {
	r := NewRoster(1)
	assert.False(t, r.ValidateSlot(1))
	errs := r.Slot(1).Errors
	assert.Contains(t, errs, FieldPassportNumber)
	assert.Contains(t, errs, FieldFullName)
	assert.Contains(t, errs, FieldGender)
	assert.Contains(t, errs, FieldDateOfBirth)
	assert.Contains(t, errs, FieldEmergencyMobileNumber)
	// optional fields never error
	assert.NotContains(t, errs, FieldAddressLine2)
	assert.NotContains(t, errs, FieldRemark)
	assert.NotContains(t, errs, FieldGSTNumber)
}

func TestValidateSlotMobileLength(t *testing.T) {
	r := NewRoster(1)
	fillValidForm(r, 1)
	r.UpdateField(1, FieldMobileNumber, "12345")

	assert.False(t, r.ValidateSlot(1))
	assert.Contains(t, r.Slot(1).Errors, FieldMobileNumber)

	r.UpdateField(1, FieldMobileNumber, "1234567890")
	assert.True(t, r.ValidateSlot(1))
}

func TestUpdateFieldClearsErrorOptimistically(t *testing.T) {
	r := NewRoster(1)
	r.ValidateSlot(1)
	assert.Contains(t, r.Slot(1).Errors, FieldFullName)

	r.UpdateField(1, FieldFullName, "")
	assert.NotContains(t, r.Slot(1).Errors, FieldFullName)
	// next full pass re-checks it
	r.ValidateSlot(1)
	assert.Contains(t, r.Slot(1).Errors, FieldFullName)
}

func TestCompletionGate(t *testing.T) {
	r := NewRoster(2)
	assert.False(t, r.AllTravelersComplete())

	for id := 1; id <= 2; id++ {
		r.MarkPersonalDetailsComplete(id)
		r.MarkPolicySelected(id)
	}
	assert.False(t, r.AllTravelersComplete())

	r.MarkAddOnsSelected(1)
	r.MarkAddOnsSelected(2)
	assert.True(t, r.AllTravelersComplete())

	// unrelated edits never clear completion
	r.UpdateField(1, FieldFullName, "changed")
	r.ValidateSlot(1)
	r.SetCurrentTraveler(2)
	assert.True(t, r.AllTravelersComplete())

	// only reset clears it
	r.ResetSlot(2)
	assert.False(t, r.AllTravelersComplete())
}

func TestMarksIdempotent(t *testing.T) {
	r := NewRoster(1)
	r.MarkPersonalDetailsComplete(1)
	r.MarkPersonalDetailsComplete(1)
	assert.True(t, r.Slot(1).Completion.PersonalDetailsDone)
	// unknown slot is a no-op, not a panic
	r.MarkPolicySelected(9)
}

func TestSeedSampleValuesFillsEmptyOnly(t *testing.T) {
	r := NewRoster(1)
	r.UpdateField(1, FieldFullName, "Keep Me")
	r.SeedSampleValues(1)
	assert.Equal(t, "Keep Me", r.Slot(1).FormValues[FieldFullName])
	assert.True(t, r.ValidateSlot(1))
}
