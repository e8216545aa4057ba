package controllers

import (
	"net/http"

	"covertrip/config"
	"covertrip/models"
	"covertrip/services"
	"covertrip/services/wizard"
	"covertrip/utils"

	"github.com/gin-gonic/gin"
)

// WizardController drives the multi-traveler purchase wizard. All wizard
// state lives in the session store between requests; every handler loads
// the session, applies one operation to completion and saves it back.
type WizardController struct {
	cfg     *config.Config
	store   wizard.Store
	fetcher services.PlanFetcher
	ref     *services.ReferenceData
}

func NewWizardController(cfg *config.Config, store wizard.Store, fetcher services.PlanFetcher, ref *services.ReferenceData) *WizardController {
	return &WizardController{cfg: cfg, store: store, fetcher: fetcher, ref: ref}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"result": nil, "success": false, "error": message})
}

func (wc *WizardController) loadSession(c *gin.Context, sessionID string) (*wizard.Session, bool) {
	if sessionID == "" {
		respondError(c, http.StatusBadRequest, "session_id is required")
		return nil, false
	}
	s, err := wizard.LoadSession(c.Request.Context(), wc.store, sessionID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "session not found or expired")
		return nil, false
	}
	return s, true
}

func (wc *WizardController) saveSession(c *gin.Context, s *wizard.Session) bool {
	if err := wizard.SaveSession(c.Request.Context(), wc.store, s); err != nil {
		utils.LogError(err, "save wizard session")
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return false
	}
	return true
}

// StartWizard creates a fresh session with default trip settings.
func (wc *WizardController) StartWizard(c *gin.Context) {
	s := wizard.NewSession()
	if !wc.saveSession(c, s) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":  gin.H{"session_id": s.ID, "trip": s.Trip},
		"success": true,
	})
}

// TripUpdateRequest carries the trip fields the user touched. Only fields
// that are present drive the update; dependent fields are re-derived.
type TripUpdateRequest struct {
	SessionID     string  `json:"session_id" binding:"required"`
	TripType      *string `json:"trip_type"`
	DurationMode  *string `json:"duration_mode"`
	DestinationID *int    `json:"destination_id"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	TripDays      *int    `json:"trip_days"`
	TravelerCount *int    `json:"traveler_count"`
}

// UpdateTrip applies one user edit of the trip configuration step.
func (wc *WizardController) UpdateTrip(c *gin.Context) {
	var req TripUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request")
		return
	}
	s, ok := wc.loadSession(c, req.SessionID)
	if !ok {
		return
	}

	if req.TripType != nil {
		s.Trip.SetTripType(models.TripType(*req.TripType))
	}
	if req.DurationMode != nil {
		s.Trip.SetDurationMode(models.DurationMode(*req.DurationMode))
	}
	if req.DestinationID != nil {
		country, found := wc.ref.CountryByID(*req.DestinationID)
		if !found {
			respondError(c, http.StatusBadRequest, "unknown destination country")
			return
		}
		s.Trip.SetDestination(&country)
	}
	if req.StartDate != nil {
		d, err := wizard.ParseDate(*req.StartDate)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD")
			return
		}
		s.Trip.SetStartDate(d)
	}
	if req.EndDate != nil {
		d, err := wizard.ParseDate(*req.EndDate)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid end_date, expected YYYY-MM-DD")
			return
		}
		s.Trip.SetEndDate(d)
	}
	if req.TripDays != nil {
		s.Trip.SetTripDays(*req.TripDays)
	}
	if req.TravelerCount != nil {
		s.Trip.SetTravelerCount(*req.TravelerCount)
	}

	if !wc.saveSession(c, s) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"trip": s.Trip}, "success": true})
}

type sessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// ValidateTrip runs the trip validation pass and reports the error map.
func (wc *WizardController) ValidateTrip(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request")
		return
	}
	s, ok := wc.loadSession(c, req.SessionID)
	if !ok {
		return
	}
	valid := s.Trip.Validate()
	if !wc.saveSession(c, s) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":  gin.H{"valid": valid, "errors": s.Trip.Errors},
		"success": true,
	})
}

// InitTravelers sizes the traveler roster from the validated trip.
func (wc *WizardController) InitTravelers(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request")
		return
	}
	s, ok := wc.loadSession(c, req.SessionID)
	if !ok {
		return
	}
	if err := s.InitRoster(); err != nil {
		respondError(c, http.StatusBadRequest, "trip configuration is not valid")
		return
	}
	if wc.cfg.SeedTravelers {
		for _, slot := range s.Roster.Slots {
			s.Roster.SeedSampleValues(slot.SlotID)
		}
	}
	if !wc.saveSession(c, s) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":  gin.H{"travelers": s.Roster.Slots, "current_slot_id": s.Roster.CurrentSlotID},
		"success": true,
	})
}

type slotRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	SlotID    int    `json:"slot_id" binding:"required"`
}

// SetCurrentTraveler moves focus. Out-of-range slots are ignored.
func (wc *WizardController) SetCurrentTraveler(c *gin.Context) {
	var req slotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request")
		return
	}
	s, ok := wc.loadSession(c, req.SessionID)
	if !ok {
		return
	}
	s.Roster.SetCurrentTraveler(req.SlotID)
	if !wc.saveSession(c, s) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":  gin.H{"current_slot_id": s.Roster.CurrentSlotID},
		"success": true,
	})
}

type fieldUpdateRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	SlotID    int    `json:"slot_id" binding:"required"`
	Field     string `json:"field" binding:"required"`
	Value     string `json:"value"`
}

// UpdateTravelerField edits one form field of one traveler.
func (wc *WizardController) UpdateTravelerField(c *gin.Context) {
	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request")
		return
	}
	s, ok := wc.loadSession(c, req.SessionID)
	if !ok {
		return
	}
	s.Roster.UpdateField(req.SlotID, req.Field, req.Value)
	if !wc.saveSession(c, s) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"slot_id": req.SlotID}, "success": true})
}

// ValidateTraveler runs the full traveler validation pass. On success the
// personal-details stage completes and the plan catalog for this
// traveler's criteria is fetched. A fetch failure keeps the previous
// catalog and surfaces the error; the traveler stays valid.
func (wc *WizardController) ValidateTraveler(c *gin.Context) {
	var req slotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request")
		return
	}
	s, ok := wc.loadSession(c, req.SessionID)
	if !ok {
		return
	}
	slot := s.Roster.Slot(req.SlotID)
	if slot == nil {
		respondError(c, http.StatusBadRequest, "unknown traveler slot")
		return
	}

	if !s.Roster.ValidateSlot(req.SlotID) {
		if !wc.saveSession(c, s) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"result":  gin.H{"valid": false, "errors": slot.Errors},
			"success": true,
		})
		return
	}

	s.Roster.MarkPersonalDetailsComplete(req.SlotID)

	key, err := s.BeginFetch(req.SlotID, wc.cfg.ProviderPartner)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	insurers, err := wc.fetcher.FetchPlans(c.Request.Context(), key)
	if err != nil {
		utils.LogError(err, "fetch plan catalog")
		s.FailFetch(key, "failed to load insurance plans")
		if !wc.saveSession(c, s) {
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"result":  gin.H{"valid": true},
			"success": false,
			"error":   "failed to load insurance plans",
		})
		return
	}

	s.ApplyCatalog(key, insurers)
	if !wc.saveSession(c, s) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":  gin.H{"valid": true, "plans_loaded": len(s.Catalog.Flat)},
		"success": true,
	})
}

// GetPlans returns the filtered catalog for the current traveler along
// with the facet options derived from the current catalog.
func (wc *WizardController) GetPlans(c *gin.Context) {
	s, ok := wc.loadSession(c, c.Query("session_id"))
	if !ok {
		return
	}

	plans := s.Filter.Apply(s.Catalog.Flat)
	selection, hasSelection := s.Catalog.Selection(s.Roster.CurrentSlotID)
	annotated := make([]models.FlattenedPlan, len(plans))
	for i, p := range plans {
		if hasSelection && p.InsurerID == selection.InsurerID && p.ID == selection.ID {
			p.IsSelected = true
			p.AddOnsCount = selection.AddOnsCount
		}
		annotated[i] = p
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"plans":        annotated,
			"facets":       wizard.BuildFacetOptions(s.Catalog.Flat),
			"filter":       s.Filter,
			"filter_count": s.Filter.Count(),
			"fetch":        s.Fetch,
		},
		"success": true,
	})
}

type filterToggleRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Facet     string `json:"facet" binding:"required"`
	Value     string `json:"value" binding:"required"`
}

// ToggleFilter flips one facet value in the filter state.
func (wc *WizardController) ToggleFilter(c *gin.Context) {
	var req filterToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request")
		return
	}
	s, ok := wc.loadSession(c, req.SessionID)
	if !ok {
		return
	}
	s.Filter.Toggle(req.Facet, req.Value)
	if !wc.saveSession(c, s) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":  gin.H{"filter": s.Filter, "filter_count": s.Filter.Count()},
		"success": true,
	})
}

type selectPlanRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	SlotID    int    `json:"slot_id" binding:"required"`
	InsurerID int64  `json:"insurer_id" binding:"required"`
	PlanID    int64  `json:"plan_id" binding:"required"`
}

// SelectPlan records a traveler's plan choice.
func (wc *WizardController) SelectPlan(c *gin.Context) {
	var req selectPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request")
		return
	}
	s, ok := wc.loadSession(c, req.SessionID)
	if !ok {
		return
	}
	plan, found := s.Catalog.FindPlan(req.InsurerID, req.PlanID)
	if !found {
		respondError(c, http.StatusNotFound, "plan not found in catalog")
		return
	}
	if err := s.SelectPlan(req.SlotID, plan); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !wc.saveSession(c, s) {
		return
	}
	selection, _ := s.Catalog.Selection(req.SlotID)
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"selection": selection}, "success": true})
}

// ConfirmPlan completes the policy-selection stage for a traveler. Kept
// separate from SelectPlan so browsing other plans never flips the stage.
func (wc *WizardController) ConfirmPlan(c *gin.Context) {
	var req slotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request")
		return
	}
	s, ok := wc.loadSession(c, req.SessionID)
	if !ok {
		return
	}
	if s.Roster.Slot(req.SlotID) == nil {
		respondError(c, http.StatusBadRequest, "unknown traveler slot")
		return
	}
	if _, selected := s.Catalog.Selection(req.SlotID); !selected {
		respondError(c, http.StatusBadRequest, "no plan selected for traveler")
		return
	}
	s.Roster.MarkPolicySelected(req.SlotID)
	if !wc.saveSession(c, s) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"slot_id": req.SlotID}, "success": true})
}

// CopyPrimaryPlan copies traveler 1's plan choice onto another traveler.
func (wc *WizardController) CopyPrimaryPlan(c *gin.Context) {
	var req slotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request")
		return
	}
	s, ok := wc.loadSession(c, req.SessionID)
	if !ok {
		return
	}
	slot := s.Roster.Slot(req.SlotID)
	if slot == nil {
		respondError(c, http.StatusBadRequest, "unknown traveler slot")
		return
	}
	if !slot.Completion.PersonalDetailsDone {
		respondError(c, http.StatusBadRequest, "traveler details must be completed before selecting a plan")
		return
	}
	if !s.Catalog.CopyFromPrimary(req.SlotID) {
		respondError(c, http.StatusBadRequest, "primary traveler has no plan selected")
		return
	}
	if !wc.saveSession(c, s) {
		return
	}
	selection, _ := s.Catalog.Selection(req.SlotID)
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"selection": selection}, "success": true})
}

type addOnsRequest struct {
	SessionID string  `json:"session_id" binding:"required"`
	SlotID    int     `json:"slot_id" binding:"required"`
	AddOnIDs  []int64 `json:"add_on_ids"`
}

// SaveAddOns stores a traveler's add-on choice and completes the add-on
// stage. An empty choice is a valid choice.
func (wc *WizardController) SaveAddOns(c *gin.Context) {
	var req addOnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request")
		return
	}
	s, ok := wc.loadSession(c, req.SessionID)
	if !ok {
		return
	}
	if err := s.SaveAddOns(req.SlotID, req.AddOnIDs); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	s.Roster.MarkAddOnsSelected(req.SlotID)
	if !wc.saveSession(c, s) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":  gin.H{"slot_id": req.SlotID, "add_on_ids": s.AddOnChoices[req.SlotID]},
		"success": true,
	})
}

// Review reports the completion gate and, when every traveler is done,
// the merged per-traveler summary for the final step.
func (wc *WizardController) Review(c *gin.Context) {
	s, ok := wc.loadSession(c, c.Query("session_id"))
	if !ok {
		return
	}
	result := gin.H{"ready": s.Ready()}
	if s.Ready() {
		result["travelers"] = s.Review()
	}
	c.JSON(http.StatusOK, gin.H{"result": result, "success": true})
}

// ResetWizard returns the session to its initial state.
func (wc *WizardController) ResetWizard(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request")
		return
	}
	s, ok := wc.loadSession(c, req.SessionID)
	if !ok {
		return
	}
	s.Reset()
	if !wc.saveSession(c, s) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"session_id": s.ID}, "success": true})
}

// GetCountries lists the destination lookup.
func (wc *WizardController) GetCountries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": wc.ref.Countries(), "success": true})
}

// GetRegions lists the region lookup.
func (wc *WizardController) GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": wc.ref.Regions(), "success": true})
}
