package wizard

import (
	"time"

	"covertrip/models"
)

// Trip form error keys.
const (
	TripFieldDestination   = "destination"
	TripFieldStartDate     = "startDate"
	TripFieldEndDate       = "endDate"
	TripFieldTravelerCount = "travelerCount"
)

// TripState holds the trip configuration step of the wizard. Exactly one of
// the date fields or the day count drives each update; the others are
// recomputed in the same call so they are never stale.
type TripState struct {
	TripType      models.TripType     `json:"trip_type"`
	Destination   *models.Country     `json:"destination"`
	DurationMode  models.DurationMode `json:"duration_mode"`
	StartDate     *time.Time          `json:"start_date"`
	EndDate       *time.Time          `json:"end_date"`
	TripDays      int                 `json:"trip_days"`
	TravelerCount int                 `json:"traveler_count"`
	Errors        map[string]string   `json:"errors"`
}

// NewTripState returns the trip configuration with wizard defaults.
func NewTripState() *TripState {
	return &TripState{
		TripType:      models.TripTypeSingle,
		DurationMode:  models.DurationUpto180,
		TripDays:      1,
		TravelerCount: 1,
		Errors:        map[string]string{},
	}
}

func (t *TripState) clearError(field string) {
	delete(t.Errors, field)
}

// SetTripType changes the trip category.
func (t *TripState) SetTripType(tt models.TripType) {
	t.TripType = tt
}

// SetDestination sets the destination country.
func (t *TripState) SetDestination(c *models.Country) {
	t.Destination = c
	t.clearError(TripFieldDestination)
}

// SetDurationMode changes the coverage duration cap.
func (t *TripState) SetDurationMode(m models.DurationMode) {
	t.DurationMode = m
}

// SetStartDate sets the start date and, when the end date is already
// known, recomputes the trip length from the pair.
func (t *TripState) SetStartDate(d time.Time) {
	day := dateOnly(d)
	t.StartDate = &day
	if t.EndDate != nil {
		t.TripDays = clampDays(DaysBetweenInclusive(day, *t.EndDate))
	}
	t.clearError(TripFieldStartDate)
}

// SetEndDate sets the end date and, when the start date is already known,
// recomputes the trip length from the pair.
func (t *TripState) SetEndDate(d time.Time) {
	day := dateOnly(d)
	t.EndDate = &day
	if t.StartDate != nil {
		t.TripDays = clampDays(DaysBetweenInclusive(*t.StartDate, day))
	}
	t.clearError(TripFieldEndDate)
}

// SetTripDays sets the trip length directly; when a start date is present
// the end date becomes derived from it.
func (t *TripState) SetTripDays(n int) {
	t.TripDays = clampDays(n)
	if t.StartDate != nil {
		end := EndFromStartAndDays(*t.StartDate, t.TripDays)
		t.EndDate = &end
	}
	t.clearError(TripFieldEndDate)
}

// SetTravelerCount sets how many travelers the trip covers, minimum 1.
func (t *TripState) SetTravelerCount(n int) {
	if n < 1 {
		n = 1
	}
	t.TravelerCount = n
	t.clearError(TripFieldTravelerCount)
}

// Validate recomputes the whole error map from current state and returns
// whether the trip configuration is valid. Safe to call repeatedly.
func (t *TripState) Validate() bool {
	errors := map[string]string{}
	if t.Destination == nil {
		errors[TripFieldDestination] = "Destination is required"
	}
	if t.StartDate == nil {
		errors[TripFieldStartDate] = "Start date is required"
	}
	if t.EndDate == nil {
		errors[TripFieldEndDate] = "End date is required"
	}
	if t.StartDate != nil && t.EndDate != nil && !t.EndDate.After(*t.StartDate) {
		errors[TripFieldEndDate] = "End date must be after start date"
	}
	if t.TravelerCount < 1 {
		errors[TripFieldTravelerCount] = "At least one traveler is required"
	}
	t.Errors = errors
	return len(errors) == 0
}

// Reset returns the trip configuration to its initial defaults.
func (t *TripState) Reset() {
	*t = *NewTripState()
}

func clampDays(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
