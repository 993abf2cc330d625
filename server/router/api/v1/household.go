package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hublie/hublie/internal/util"
	"github.com/hublie/hublie/server/service/points"
	"github.com/hublie/hublie/server/timezone"
	"github.com/hublie/hublie/store"
)

type householdResponse struct {
	UID       string `json:"uid"`
	Name      string `json:"name"`
	Timezone  string `json:"timezone"`
	CreatedTs int64  `json:"createdTs"`
	UpdatedTs int64  `json:"updatedTs"`
}

func convertHousehold(household *store.Household) *householdResponse {
	return &householdResponse{
		UID:       household.UID,
		Name:      household.Name,
		Timezone:  household.Timezone,
		CreatedTs: household.CreatedTs,
		UpdatedTs: household.UpdatedTs,
	}
}

type createHouseholdRequest struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

// CreateHousehold creates a new family workspace.
// POST /api/v1/households
func (s *APIV1Service) CreateHousehold(c echo.Context) error {
	ctx := c.Request().Context()
	request := &createHouseholdRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.Name == "" {
		return errorJSON(c, http.StatusBadRequest, "name is required")
	}
	if request.Timezone == "" {
		request.Timezone = "UTC"
	}
	if !timezone.IsValidTimezone(request.Timezone) {
		return errorJSON(c, http.StatusBadRequest, "unknown timezone")
	}

	household, err := s.Store.CreateHousehold(ctx, &store.Household{
		UID:      util.GenUID(),
		Name:     request.Name,
		Timezone: request.Timezone,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to create household")
	}
	return c.JSON(http.StatusOK, convertHousehold(household))
}

// GetHousehold returns one household by uid.
// GET /api/v1/households/:householdUid
func (s *APIV1Service) GetHousehold(c echo.Context) error {
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	return c.JSON(http.StatusOK, convertHousehold(household))
}

type updateHouseholdRequest struct {
	Name     *string `json:"name"`
	Timezone *string `json:"timezone"`
}

// UpdateHousehold updates the household name or timezone.
// PATCH /api/v1/households/:householdUid
func (s *APIV1Service) UpdateHousehold(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	request := &updateHouseholdRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.Timezone != nil && !timezone.IsValidTimezone(*request.Timezone) {
		return errorJSON(c, http.StatusBadRequest, "unknown timezone")
	}

	now := time.Now().Unix()
	updated, err := s.Store.UpdateHousehold(ctx, &store.UpdateHousehold{
		ID:        household.ID,
		UpdatedTs: &now,
		Name:      request.Name,
		Timezone:  request.Timezone,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to update household")
	}
	return c.JSON(http.StatusOK, convertHousehold(updated))
}

// DeleteHousehold archives a household. Rows are kept for a grace period
// and purged out of band.
// DELETE /api/v1/households/:householdUid
func (s *APIV1Service) DeleteHousehold(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	archived := store.Archived
	now := time.Now().Unix()
	if _, err := s.Store.UpdateHousehold(ctx, &store.UpdateHousehold{
		ID:        household.ID,
		UpdatedTs: &now,
		RowStatus: &archived,
	}); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to archive household")
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

type dashboardResponse struct {
	Household    *householdResponse       `json:"household"`
	TodayEvents  []*calendarEventResponse `json:"todayEvents"`
	OpenChores   []*choreResponse         `json:"openChores"`
	UnpaidBills  []*billResponse          `json:"unpaidBills"`
	PinnedNotes  []*noteResponse          `json:"pinnedNotes"`
	Leaderboard  []*points.Standing       `json:"leaderboard"`
	WeeklyMVP    *points.MVPTally         `json:"weeklyMvp,omitempty"`
	MemberOfWeek *memberResponse          `json:"memberOfWeek,omitempty"`
}

// GetDashboard aggregates the landing view: today's calendar, open chores,
// unpaid bills, pinned notes and the weekly points race.
// GET /api/v1/households/:householdUid/dashboard
func (s *APIV1Service) GetDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	location, _ := timezone.ParseTimezone(household.Timezone)
	now := time.Now().In(location)
	dayStart := timezone.StartOfDay(now, location)
	dayStartTs := dayStart.Unix()
	dayEndTs := dayStart.AddDate(0, 0, 1).Unix()

	normal := store.Normal
	events, err := s.Store.ListCalendarEvents(ctx, &store.FindCalendarEvent{
		HouseholdID: &household.ID,
		RowStatus:   &normal,
		StartTs:     &dayStartTs,
		EndTs:       &dayEndTs,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to list events")
	}

	open := store.ChoreStatusOpen
	chores, err := s.Store.ListChores(ctx, &store.FindChore{
		HouseholdID: &household.ID,
		RowStatus:   &normal,
		Status:      &open,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to list chores")
	}

	unpaid := false
	bills, err := s.Store.ListBills(ctx, &store.FindBill{
		HouseholdID: &household.ID,
		RowStatus:   &normal,
		Paid:        &unpaid,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to list bills")
	}

	pinned := true
	notes, err := s.Store.ListNotes(ctx, &store.FindNote{
		HouseholdID: &household.ID,
		RowStatus:   &normal,
		Pinned:      &pinned,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to list notes")
	}

	leaderboard, err := s.PointsService.Leaderboard(ctx, household.ID, now)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to compute leaderboard")
	}

	response := &dashboardResponse{
		Household:   convertHousehold(household),
		TodayEvents: convertCalendarEvents(events),
		OpenChores:  convertChores(chores),
		UnpaidBills: convertBills(bills),
		PinnedNotes: s.convertNotes(notes),
		Leaderboard: leaderboard,
	}

	weekKey := points.WeekKey(now)
	if mvp, err := s.PointsService.WeeklyMVP(ctx, household.ID, weekKey); err == nil && mvp != nil {
		response.WeeklyMVP = mvp
		if member, err := s.Store.GetMember(ctx, &store.FindMember{ID: &mvp.NomineeID}); err == nil && member != nil {
			response.MemberOfWeek = convertMember(member)
		}
	}

	return c.JSON(http.StatusOK, response)
}

// ListActivities returns the most recent feed entries.
// GET /api/v1/households/:householdUid/activities
func (s *APIV1Service) ListActivities(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	limit := 50
	activities, err := s.Store.ListActivities(ctx, &store.FindActivity{
		HouseholdID: &household.ID,
		Limit:       &limit,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to list activities")
	}

	type activityResponse struct {
		ID        int32  `json:"id"`
		CreatedTs int64  `json:"createdTs"`
		ActorID   *int32 `json:"actorId,omitempty"`
		Type      string `json:"type"`
		Payload   string `json:"payload"`
	}
	response := make([]*activityResponse, 0, len(activities))
	for _, activity := range activities {
		response = append(response, &activityResponse{
			ID:        activity.ID,
			CreatedTs: activity.CreatedTs,
			ActorID:   activity.ActorID,
			Type:      activity.Type,
			Payload:   activity.Payload,
		})
	}
	return c.JSON(http.StatusOK, response)
}
