package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hublie/hublie/server/service/points"
	"github.com/hublie/hublie/store"
)

type createNominationRequest struct {
	NominatorUID string `json:"nominatorUid"`
	NomineeUID   string `json:"nomineeUid"`
	Reason       string `json:"reason"`
}

type nominationResponse struct {
	ID          int32  `json:"id"`
	WeekKey     string `json:"weekKey"`
	NominatorID int32  `json:"nominatorId"`
	NomineeID   int32  `json:"nomineeId"`
	Reason      string `json:"reason"`
	CreatedTs   int64  `json:"createdTs"`
}

// CreateMVPNomination records one member's MVP vote for the current week.
// Each member gets one vote per week; self-votes are rejected.
// POST /api/v1/households/:householdUid/nominations
func (s *APIV1Service) CreateMVPNomination(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	request := &createNominationRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.NominatorUID == "" || request.NomineeUID == "" {
		return errorJSON(c, http.StatusBadRequest, "nominatorUid and nomineeUid are required")
	}
	if request.NominatorUID == request.NomineeUID {
		return errorJSON(c, http.StatusBadRequest, "cannot nominate yourself")
	}

	nominator, err := s.Store.GetMember(ctx, &store.FindMember{
		UID:         &request.NominatorUID,
		HouseholdID: &household.ID,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to get nominator")
	}
	if nominator == nil {
		return errorJSON(c, http.StatusNotFound, "nominator not found")
	}
	nominee, err := s.Store.GetMember(ctx, &store.FindMember{
		UID:         &request.NomineeUID,
		HouseholdID: &household.ID,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to get nominee")
	}
	if nominee == nil {
		return errorJSON(c, http.StatusNotFound, "nominee not found")
	}

	nomination, err := s.Store.CreateMVPNomination(ctx, &store.MVPNomination{
		HouseholdID: household.ID,
		WeekKey:     points.WeekKey(time.Now()),
		NominatorID: nominator.ID,
		NomineeID:   nominee.ID,
		Reason:      request.Reason,
	})
	if err != nil {
		// The unique constraint on (household, week, nominator) is the vote
		// dedupe.
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return errorJSON(c, http.StatusConflict, "already nominated this week")
		}
		return errorJSON(c, http.StatusInternalServerError, "failed to create nomination")
	}

	return c.JSON(http.StatusOK, &nominationResponse{
		ID:          nomination.ID,
		WeekKey:     nomination.WeekKey,
		NominatorID: nomination.NominatorID,
		NomineeID:   nomination.NomineeID,
		Reason:      nomination.Reason,
		CreatedTs:   nomination.CreatedTs,
	})
}

// GetLeaderboard returns the current week's points standings.
// GET /api/v1/households/:householdUid/leaderboard
func (s *APIV1Service) GetLeaderboard(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	standings, err := s.PointsService.Leaderboard(ctx, household.ID, time.Now())
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to compute leaderboard")
	}
	return c.JSON(http.StatusOK, standings)
}

// GetWeeklyMVP returns the vote tallies for a week, defaulting to the
// current one.
// GET /api/v1/households/:householdUid/mvp?week=2026-W35
func (s *APIV1Service) GetWeeklyMVP(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	weekKey := c.QueryParam("week")
	if weekKey == "" {
		weekKey = points.WeekKey(time.Now())
	}

	tallies, err := s.PointsService.TallyMVP(ctx, household.ID, weekKey)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to tally nominations")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"weekKey": weekKey,
		"tallies": tallies,
	})
}
