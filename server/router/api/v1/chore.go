package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"

	"github.com/hublie/hublie/internal/util"
	"github.com/hublie/hublie/server/service/gating"
	"github.com/hublie/hublie/store"
)

type choreResponse struct {
	UID         string  `json:"uid"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	AssigneeID  *int32  `json:"assigneeId,omitempty"`
	Points      int32   `json:"points"`
	DueTs       *int64  `json:"dueTs,omitempty"`
	Recurrence  *string `json:"recurrence,omitempty"`
	Status      string  `json:"status"`
	CreatedTs   int64   `json:"createdTs"`
	UpdatedTs   int64   `json:"updatedTs"`
}

func convertChore(chore *store.Chore) *choreResponse {
	return &choreResponse{
		UID:         chore.UID,
		Title:       chore.Title,
		Description: chore.Description,
		AssigneeID:  chore.AssigneeID,
		Points:      chore.Points,
		DueTs:       chore.DueTs,
		Recurrence:  chore.Recurrence,
		Status:      chore.Status,
		CreatedTs:   chore.CreatedTs,
		UpdatedTs:   chore.UpdatedTs,
	}
}

func convertChores(chores []*store.Chore) []*choreResponse {
	response := make([]*choreResponse, 0, len(chores))
	for _, chore := range chores {
		response = append(response, convertChore(chore))
	}
	return response
}

type createChoreRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	AssigneeID  *int32  `json:"assigneeId"`
	Points      int32   `json:"points"`
	DueTs       *int64  `json:"dueTs"`
	Recurrence  *string `json:"recurrence"`
}

// CreateChore creates a chore, optionally recurring on a cron schedule.
// POST /api/v1/households/:householdUid/chores
func (s *APIV1Service) CreateChore(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	if ok, err := s.checkLimit(c, household.ID, gating.FeatureChores); !ok {
		return err
	}

	request := &createChoreRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.Title == "" {
		return errorJSON(c, http.StatusBadRequest, "title is required")
	}
	if request.Points < 0 {
		return errorJSON(c, http.StatusBadRequest, "points cannot be negative")
	}
	if request.Recurrence != nil {
		if _, err := cron.ParseStandard(*request.Recurrence); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid recurrence expression")
		}
	}

	chore, err := s.Store.CreateChore(ctx, &store.Chore{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		Title:       request.Title,
		Description: request.Description,
		AssigneeID:  request.AssigneeID,
		Points:      request.Points,
		DueTs:       request.DueTs,
		Recurrence:  request.Recurrence,
		Status:      store.ChoreStatusOpen,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to create chore")
	}
	return c.JSON(http.StatusOK, convertChore(chore))
}

// ListChores returns chores filtered by status or assignee.
// GET /api/v1/households/:householdUid/chores
func (s *APIV1Service) ListChores(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	normal := store.Normal
	find := &store.FindChore{
		HouseholdID: &household.ID,
		RowStatus:   &normal,
	}
	if status := c.QueryParam("status"); status != "" {
		if status != store.ChoreStatusOpen && status != store.ChoreStatusDone {
			return errorJSON(c, http.StatusBadRequest, "unknown status")
		}
		find.Status = &status
	}

	chores, err := s.Store.ListChores(ctx, find)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to list chores")
	}
	return c.JSON(http.StatusOK, convertChores(chores))
}

func (s *APIV1Service) choreFromPath(c echo.Context, householdID int32) (*store.Chore, error) {
	uid := c.Param("choreUid")
	chore, err := s.Store.GetChore(c.Request().Context(), &store.FindChore{
		UID:         &uid,
		HouseholdID: &householdID,
	})
	if err != nil {
		return nil, errorJSON(c, http.StatusInternalServerError, "failed to get chore")
	}
	if chore == nil {
		return nil, errorJSON(c, http.StatusNotFound, "chore not found")
	}
	return chore, nil
}

type updateChoreRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	AssigneeID  *int32  `json:"assigneeId"`
	Points      *int32  `json:"points"`
	DueTs       *int64  `json:"dueTs"`
	Recurrence  *string `json:"recurrence"`
	Status      *string `json:"status"`
}

// UpdateChore updates chore fields, including reopening a done chore.
// PATCH /api/v1/households/:householdUid/chores/:choreUid
func (s *APIV1Service) UpdateChore(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	chore, err := s.choreFromPath(c, household.ID)
	if chore == nil {
		return err
	}

	request := &updateChoreRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.Status != nil && *request.Status != store.ChoreStatusOpen && *request.Status != store.ChoreStatusDone {
		return errorJSON(c, http.StatusBadRequest, "unknown status")
	}
	if request.Recurrence != nil {
		if _, err := cron.ParseStandard(*request.Recurrence); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid recurrence expression")
		}
	}

	now := time.Now().Unix()
	updated, err := s.Store.UpdateChore(ctx, &store.UpdateChore{
		ID:          chore.ID,
		UpdatedTs:   &now,
		Title:       request.Title,
		Description: request.Description,
		AssigneeID:  request.AssigneeID,
		Points:      request.Points,
		DueTs:       request.DueTs,
		Recurrence:  request.Recurrence,
		Status:      request.Status,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to update chore")
	}
	return c.JSON(http.StatusOK, convertChore(updated))
}

// DeleteChore archives a chore; its completion history stays.
// DELETE /api/v1/households/:householdUid/chores/:choreUid
func (s *APIV1Service) DeleteChore(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	chore, err := s.choreFromPath(c, household.ID)
	if chore == nil {
		return err
	}

	archived := store.Archived
	now := time.Now().Unix()
	if _, err := s.Store.UpdateChore(ctx, &store.UpdateChore{
		ID:        chore.ID,
		UpdatedTs: &now,
		RowStatus: &archived,
	}); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to archive chore")
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

type completeChoreRequest struct {
	MemberUID string `json:"memberUid"`
}

type completeChoreResponse struct {
	Chore         *choreResponse `json:"chore"`
	PointsAwarded int32          `json:"pointsAwarded"`
}

// CompleteChore marks a chore done and credits its points to the completing
// member. Completing an already-done chore is a no-op conflict.
// POST /api/v1/households/:householdUid/chores/:choreUid/complete
func (s *APIV1Service) CompleteChore(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	chore, err := s.choreFromPath(c, household.ID)
	if chore == nil {
		return err
	}
	if chore.Status == store.ChoreStatusDone {
		return errorJSON(c, http.StatusConflict, "chore is already done")
	}

	request := &completeChoreRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.MemberUID == "" {
		return errorJSON(c, http.StatusBadRequest, "memberUid is required")
	}
	member, err := s.Store.GetMember(ctx, &store.FindMember{
		UID:         &request.MemberUID,
		HouseholdID: &household.ID,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to get member")
	}
	if member == nil {
		return errorJSON(c, http.StatusNotFound, "member not found")
	}

	done := store.ChoreStatusDone
	now := time.Now().Unix()
	updated, err := s.Store.UpdateChore(ctx, &store.UpdateChore{
		ID:        chore.ID,
		UpdatedTs: &now,
		Status:    &done,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to complete chore")
	}

	if _, err := s.Store.CreateChoreCompletion(ctx, &store.ChoreCompletion{
		HouseholdID: household.ID,
		ChoreID:     chore.ID,
		MemberID:    member.ID,
		Points:      chore.Points,
		CompletedTs: now,
	}); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to record completion")
	}
	s.recordActivity(ctx, household.ID, &member.ID, store.ActivityChoreCompleted, map[string]any{
		"choreUid": chore.UID,
		"title":    chore.Title,
		"points":   chore.Points,
	})

	return c.JSON(http.StatusOK, &completeChoreResponse{
		Chore:         convertChore(updated),
		PointsAwarded: chore.Points,
	})
}
