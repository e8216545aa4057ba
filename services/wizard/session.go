package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"covertrip/models"

	"github.com/google/uuid"
)

// Store is the key-value persistence the wizard needs: get, set with TTL,
// remove. Production uses Redis; tests use an in-memory map.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
}

// ErrNotFound is returned by Store.Get when the key does not exist.
var ErrNotFound = errors.New("wizard: session not found")

// SessionTTL how long an idle wizard session survives in the store.
const SessionTTL = 30 * time.Minute

// SessionKey builds the store key for a session id.
func SessionKey(sessionID string) string {
	return "wizard:session:" + sessionID
}

// categoryMapping translates trip type into the insurer aggregator's
// tariff category id.
var categoryMapping = map[models.TripType]int{
	models.TripTypeSingle:  1,
	models.TripTypeMulti:   2,
	models.TripTypeStudent: 4,
	models.TripTypeSpecial: 5,
}

// FetchState is the tri-state of the single in-flight catalog fetch.
type FetchState struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error"`
}

// Session aggregates one user's whole wizard: trip configuration,
// traveler roster, plan catalog with selections, and filter state. It is
// the unit persisted to the store between requests, and every mutating
// operation runs to completion before the session is saved back.
type Session struct {
	ID           string          `json:"id"`
	Trip         *TripState      `json:"trip"`
	Roster       *Roster         `json:"roster"`
	Catalog      *Catalog        `json:"catalog"`
	Filter       *FilterState    `json:"filter"`
	Fetch        FetchState      `json:"fetch"`
	LastFetchKey FetchKey        `json:"last_fetch_key"`
	AddOnChoices map[int][]int64 `json:"add_on_choices"`
}

// NewSession creates a fresh wizard session with default trip settings.
func NewSession() *Session {
	return &Session{
		ID:           uuid.New().String(),
		Trip:         NewTripState(),
		Roster:       NewRoster(1),
		Catalog:      NewCatalog(),
		Filter:       NewFilterState(),
		AddOnChoices: map[int][]int64{},
	}
}

// InitRoster sizes the roster from the validated trip configuration. The
// resize is atomic and keeps data of surviving slots.
func (s *Session) InitRoster() error {
	if !s.Trip.Validate() {
		return errors.New("wizard: trip configuration is not valid")
	}
	s.Roster.Resize(s.Trip.TravelerCount)
	return nil
}

// BeginFetch records a catalog fetch for the slot and returns its key.
// The key carries the traveler's age, the trip length and the tariff
// category, so a stale response for different criteria is discarded.
func (s *Session) BeginFetch(slotID int, partnerID string) (FetchKey, error) {
	slot := s.Roster.Slot(slotID)
	if slot == nil {
		return FetchKey{}, errors.New("wizard: no such traveler slot")
	}
	birth, err := ParseDate(slot.FormValues[FieldDateOfBirth])
	if err != nil {
		return FetchKey{}, errors.New("wizard: traveler date of birth is not set")
	}
	on := time.Now()
	if s.Trip.StartDate != nil {
		on = *s.Trip.StartDate
	}
	key := FetchKey{
		SlotID:     slotID,
		Age:        AgeAt(birth, on),
		Days:       s.Trip.TripDays,
		CategoryID: categoryMapping[s.Trip.TripType],
		PartnerID:  partnerID,
	}
	s.LastFetchKey = key
	s.Fetch = FetchState{Loading: true}
	return key, nil
}

// ApplyCatalog installs a fetch response. Responses whose key no longer
// matches the most recently issued fetch are dropped; last write wins
// only among fetches for the same key.
func (s *Session) ApplyCatalog(key FetchKey, insurers []models.Insurer) bool {
	if key != s.LastFetchKey {
		return false
	}
	s.Catalog.Load(insurers, key)
	s.Fetch = FetchState{}
	return true
}

// FailFetch records a fetch failure. The existing catalog is left
// untouched; partial data is never merged in.
func (s *Session) FailFetch(key FetchKey, message string) {
	if key != s.LastFetchKey {
		return
	}
	s.Fetch = FetchState{Error: message}
}

// SelectPlan records the plan choice for a slot. Rejected without
// mutation when the slot does not exist or has not finished personal
// details yet. Confirming the choice (MarkPolicySelected) is a separate
// navigation step.
func (s *Session) SelectPlan(slotID int, plan models.FlattenedPlan) error {
	slot := s.Roster.Slot(slotID)
	if slot == nil {
		return errors.New("wizard: no such traveler slot")
	}
	if !slot.Completion.PersonalDetailsDone {
		return errors.New("wizard: traveler details must be completed before selecting a plan")
	}
	s.Catalog.Select(slotID, plan)
	return nil
}

// SaveAddOns stores the add-on choice for a slot's selected plan. Only
// add-on ids that belong to the selected plan are kept.
func (s *Session) SaveAddOns(slotID int, addOnIDs []int64) error {
	slot := s.Roster.Slot(slotID)
	if slot == nil {
		return errors.New("wizard: no such traveler slot")
	}
	selection, ok := s.Catalog.Selection(slotID)
	if !ok {
		return errors.New("wizard: no plan selected for traveler")
	}
	valid := map[int64]bool{}
	for _, a := range selection.AddOns {
		valid[a.ID] = true
	}
	kept := make([]int64, 0, len(addOnIDs))
	for _, id := range addOnIDs {
		if valid[id] {
			kept = append(kept, id)
		}
	}
	if s.AddOnChoices == nil {
		s.AddOnChoices = map[int][]int64{}
	}
	s.AddOnChoices[slotID] = kept
	selection.AddOnsCount = len(kept)
	s.Catalog.Selections[slotID] = selection
	return nil
}

// Ready is the workflow completion gate.
func (s *Session) Ready() bool {
	return s.Roster.AllTravelersComplete()
}

// TravelerSummary is one line of the aggregate review.
type TravelerSummary struct {
	SlotID      int      `json:"slot_id"`
	FullName    string   `json:"full_name"`
	InsurerName string   `json:"insurer_name"`
	PlanName    string   `json:"plan_name"`
	SumInsured  string   `json:"sum_insured"`
	AddOnIDs    []int64  `json:"add_on_ids"`
	Coverages   []string `json:"coverages"`
}

// Review merges every traveler's selection into the aggregate summary
// shown on the final step.
func (s *Session) Review() []TravelerSummary {
	summaries := make([]TravelerSummary, 0, len(s.Roster.Slots))
	for _, slot := range s.Roster.Slots {
		summary := TravelerSummary{
			SlotID:   slot.SlotID,
			FullName: slot.FormValues[FieldFullName],
			AddOnIDs: s.AddOnChoices[slot.SlotID],
		}
		if plan, ok := s.Catalog.Selection(slot.SlotID); ok {
			summary.InsurerName = plan.InsurerName
			summary.PlanName = plan.PlanName()
			summary.SumInsured = plan.SumInsured
			summary.Coverages = plan.Coverages
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// Reset returns the whole wizard to its initial state, keeping the
// session id.
func (s *Session) Reset() {
	s.Trip.Reset()
	s.Roster = NewRoster(1)
	s.Catalog.Clear()
	s.Filter.Clear()
	s.Fetch = FetchState{}
	s.LastFetchKey = FetchKey{}
	s.AddOnChoices = map[int][]int64{}
}

// LoadSession reads and decodes a session from the store.
func LoadSession(ctx context.Context, store Store, sessionID string) (*Session, error) {
	raw, err := store.Get(ctx, SessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSession encodes and writes the session back with a fresh TTL.
func SaveSession(ctx context.Context, store Store, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return store.Set(ctx, SessionKey(s.ID), string(raw), SessionTTL)
}

// RemoveSession deletes the session from the store.
func RemoveSession(ctx context.Context, store Store, sessionID string) error {
	return store.Remove(ctx, SessionKey(sessionID))
}
