package wizard

import (
	"context"
	"testing"

	"covertrip/models"

	"github.com/stretchr/testify/assert"
)

func validTripSession() *Session {
	s := NewSession()
	s.Trip.SetDestination(&models.Country{ID: 1, Name: "France", Region: "Europe"})
	s.Trip.SetStartDate(date("2025-05-22"))
	s.Trip.SetEndDate(date("2025-05-26"))
	s.Trip.SetTravelerCount(2)
	return s
}

func TestInitRosterRequiresValidTrip(t *testing.T) {
	s := NewSession()
	assert.Error(t, s.InitRoster())

	s = validTripSession()
	assert.NoError(t, s.InitRoster())
	assert.Len(t, s.Roster.Slots, 2)
}

func TestBeginFetchBuildsCriteria(t *testing.T) {
	s := validTripSession()
	assert.NoError(t, s.InitRoster())
	s.Roster.UpdateField(1, FieldDateOfBirth, "1990-01-15")

	key, err := s.BeginFetch(1, "")
	assert.NoError(t, err)
	assert.Equal(t, 1, key.SlotID)
	assert.Equal(t, 35, key.Age)
	assert.Equal(t, 5, key.Days)
	assert.Equal(t, 1, key.CategoryID)
	assert.True(t, s.Fetch.Loading)
}

func TestBeginFetchWithoutBirthDate(t *testing.T) {
	s := validTripSession()
	assert.NoError(t, s.InitRoster())
	_, err := s.BeginFetch(1, "")
	assert.Error(t, err)
	_, err = s.BeginFetch(9, "")
	assert.Error(t, err)
}

func TestStaleCatalogResponseDiscarded(t *testing.T) {
	s := validTripSession()
	assert.NoError(t, s.InitRoster())
	s.Roster.UpdateField(1, FieldDateOfBirth, "1990-01-15")
	s.Roster.UpdateField(2, FieldDateOfBirth, "1960-01-15")

	keyOld, _ := s.BeginFetch(1, "")
	keyNew, _ := s.BeginFetch(2, "")

	// the older in-flight response lands last but must not win
	assert.False(t, s.ApplyCatalog(keyOld, sampleInsurers()))
	assert.Empty(t, s.Catalog.Flat)

	assert.True(t, s.ApplyCatalog(keyNew, sampleInsurers()))
	assert.Len(t, s.Catalog.Flat, 3)
	assert.False(t, s.Fetch.Loading)
}

func TestFailFetchKeepsCatalog(t *testing.T) {
	s := validTripSession()
	assert.NoError(t, s.InitRoster())
	s.Roster.UpdateField(1, FieldDateOfBirth, "1990-01-15")

	key, _ := s.BeginFetch(1, "")
	assert.True(t, s.ApplyCatalog(key, sampleInsurers()))

	s.Roster.UpdateField(2, FieldDateOfBirth, "1960-01-15")
	key2, _ := s.BeginFetch(2, "")
	s.FailFetch(key2, "external api error")

	assert.Equal(t, "external api error", s.Fetch.Error)
	assert.False(t, s.Fetch.Loading)
	// previous catalog untouched
	assert.Len(t, s.Catalog.Flat, 3)
}

func TestSelectPlanGatedOnPersonalDetails(t *testing.T) {
	s := validTripSession()
	assert.NoError(t, s.InitRoster())
	s.Catalog.Load(sampleInsurers(), FetchKey{})
	plan, _ := s.Catalog.FindPlan(10, 1)

	assert.Error(t, s.SelectPlan(1, plan))
	_, ok := s.Catalog.Selection(1)
	assert.False(t, ok)

	s.Roster.MarkPersonalDetailsComplete(1)
	assert.NoError(t, s.SelectPlan(1, plan))
	selected, ok := s.Catalog.Selection(1)
	assert.True(t, ok)
	assert.True(t, selected.IsSelected)

	assert.Error(t, s.SelectPlan(7, plan))
}

func TestSaveAddOnsKeepsOnlyPlanAddOns(t *testing.T) {
	s := validTripSession()
	assert.NoError(t, s.InitRoster())
	s.Catalog.Load(sampleInsurers(), FetchKey{})
	s.Roster.MarkPersonalDetailsComplete(1)
	plan, _ := s.Catalog.FindPlan(10, 1)
	assert.NoError(t, s.SelectPlan(1, plan))

	assert.NoError(t, s.SaveAddOns(1, []int64{101, 999}))
	assert.Equal(t, []int64{101}, s.AddOnChoices[1])
	selection, _ := s.Catalog.Selection(1)
	assert.Equal(t, 1, selection.AddOnsCount)

	// no selection yet for slot 2
	assert.Error(t, s.SaveAddOns(2, []int64{101}))
}

func TestSessionJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := validTripSession()
	assert.NoError(t, s.InitRoster())
	s.Roster.UpdateField(1, FieldFullName, "Alisher")
	s.Catalog.Load(sampleInsurers(), FetchKey{SlotID: 1, Age: 35, Days: 5, CategoryID: 1})
	s.Filter.Toggle(FacetInsurer, "Acme")
	assert.NoError(t, SaveSession(ctx, store, s))

	loaded, err := LoadSession(ctx, store, s.ID)
	assert.NoError(t, err)
	assert.Equal(t, s.ID, loaded.ID)
	assert.Equal(t, 5, loaded.Trip.TripDays)
	assert.Equal(t, "Alisher", loaded.Roster.Slot(1).FormValues[FieldFullName])
	assert.Len(t, loaded.Catalog.Flat, 3)
	assert.True(t, loaded.Filter.SelectedInsurers["Acme"])

	assert.NoError(t, RemoveSession(ctx, store, s.ID))
	_, err = LoadSession(ctx, store, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewAndReset(t *testing.T) {
	s := validTripSession()
	assert.NoError(t, s.InitRoster())
	s.Catalog.Load(sampleInsurers(), FetchKey{})
	for id := 1; id <= 2; id++ {
		s.Roster.UpdateField(id, FieldFullName, "Traveler")
		s.Roster.MarkPersonalDetailsComplete(id)
		plan, _ := s.Catalog.FindPlan(10, 1)
		assert.NoError(t, s.SelectPlan(id, plan))
		s.Roster.MarkPolicySelected(id)
		assert.NoError(t, s.SaveAddOns(id, nil))
		s.Roster.MarkAddOnsSelected(id)
	}
	assert.True(t, s.Ready())

	review := s.Review()
	assert.Len(t, review, 2)
	assert.Equal(t, "Acme", review[0].InsurerName)
	assert.Equal(t, "Silver", review[0].PlanName)

	id := s.ID
	s.Reset()
	assert.Equal(t, id, s.ID)
	assert.False(t, s.Ready())
	assert.Empty(t, s.Catalog.Flat)
	assert.Len(t, s.Roster.Slots, 1)
	assert.Equal(t, 1, s.Trip.TripDays)
}
