package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hublie/hublie/internal/util"
	"github.com/hublie/hublie/server/service/gating"
	"github.com/hublie/hublie/store"
)

type calendarEventResponse struct {
	UID       string `json:"uid"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	StartTs   int64  `json:"startTs"`
	EndTs     *int64 `json:"endTs,omitempty"`
	AllDay    bool   `json:"allDay"`
	Location  string `json:"location"`
	Source    string `json:"source"`
	CreatedTs int64  `json:"createdTs"`
}

func convertCalendarEvent(event *store.CalendarEvent) *calendarEventResponse {
	return &calendarEventResponse{
		UID:       event.UID,
		Title:     event.Title,
		Category:  event.Category,
		StartTs:   event.StartTs,
		EndTs:     event.EndTs,
		AllDay:    event.AllDay,
		Location:  event.Location,
		Source:    event.Source,
		CreatedTs: event.CreatedTs,
	}
}

func convertCalendarEvents(events []*store.CalendarEvent) []*calendarEventResponse {
	response := make([]*calendarEventResponse, 0, len(events))
	for _, event := range events {
		response = append(response, convertCalendarEvent(event))
	}
	return response
}

type createCalendarEventRequest struct {
	CreatorUID string `json:"creatorUid"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	StartTs    int64  `json:"startTs"`
	EndTs      *int64 `json:"endTs"`
	AllDay     bool   `json:"allDay"`
	Location   string `json:"location"`
}

// CreateCalendarEvent creates an event from the manual form.
// POST /api/v1/households/:householdUid/events
func (s *APIV1Service) CreateCalendarEvent(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	if ok, err := s.checkLimit(c, household.ID, gating.FeatureEvents); !ok {
		return err
	}

	request := &createCalendarEventRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.Title == "" {
		return errorJSON(c, http.StatusBadRequest, "title is required")
	}
	if request.StartTs == 0 {
		return errorJSON(c, http.StatusBadRequest, "startTs is required")
	}
	if request.EndTs != nil && *request.EndTs < request.StartTs {
		return errorJSON(c, http.StatusBadRequest, "endTs cannot precede startTs")
	}
	if request.Category == "" {
		request.Category = "general"
	}

	creatorID := int32(0)
	if request.CreatorUID != "" {
		member, err := s.Store.GetMember(ctx, &store.FindMember{
			UID:         &request.CreatorUID,
			HouseholdID: &household.ID,
		})
		if err != nil {
			return errorJSON(c, http.StatusInternalServerError, "failed to get member")
		}
		if member == nil {
			return errorJSON(c, http.StatusNotFound, "creator not found")
		}
		creatorID = member.ID
	}

	event, err := s.Store.CreateCalendarEvent(ctx, &store.CalendarEvent{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		CreatorID:   creatorID,
		Title:       request.Title,
		Category:    request.Category,
		StartTs:     request.StartTs,
		EndTs:       request.EndTs,
		AllDay:      request.AllDay,
		Location:    request.Location,
		Source:      store.EventSourceManual,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to create event")
	}
	s.recordActivity(ctx, household.ID, nil, store.ActivityEventCreated, map[string]any{
		"eventUid": event.UID,
		"title":    event.Title,
		"source":   store.EventSourceManual,
	})
	return c.JSON(http.StatusOK, convertCalendarEvent(event))
}

// ListCalendarEvents returns events overlapping the requested window.
// GET /api/v1/households/:householdUid/events?from=&to=
func (s *APIV1Service) ListCalendarEvents(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	normal := store.Normal
	find := &store.FindCalendarEvent{
		HouseholdID: &household.ID,
		RowStatus:   &normal,
	}
	if from := c.QueryParam("from"); from != "" {
		ts, err := strconv.ParseInt(from, 10, 64)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid from timestamp")
		}
		find.StartTs = &ts
	}
	if to := c.QueryParam("to"); to != "" {
		ts, err := strconv.ParseInt(to, 10, 64)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid to timestamp")
		}
		find.EndTs = &ts
	}
	if category := c.QueryParam("category"); category != "" {
		find.Category = &category
	}

	events, err := s.Store.ListCalendarEvents(ctx, find)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to list events")
	}
	return c.JSON(http.StatusOK, convertCalendarEvents(events))
}

func (s *APIV1Service) eventFromPath(c echo.Context, householdID int32) (*store.CalendarEvent, error) {
	uid := c.Param("eventUid")
	event, err := s.Store.GetCalendarEvent(c.Request().Context(), &store.FindCalendarEvent{
		UID:         &uid,
		HouseholdID: &householdID,
	})
	if err != nil {
		return nil, errorJSON(c, http.StatusInternalServerError, "failed to get event")
	}
	if event == nil {
		return nil, errorJSON(c, http.StatusNotFound, "event not found")
	}
	return event, nil
}

type updateCalendarEventRequest struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	StartTs  *int64  `json:"startTs"`
	EndTs    *int64  `json:"endTs"`
	AllDay   *bool   `json:"allDay"`
	Location *string `json:"location"`
}

// UpdateCalendarEvent updates event fields.
// PATCH /api/v1/households/:householdUid/events/:eventUid
func (s *APIV1Service) UpdateCalendarEvent(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	event, err := s.eventFromPath(c, household.ID)
	if event == nil {
		return err
	}

	request := &updateCalendarEventRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}

	now := time.Now().Unix()
	updated, err := s.Store.UpdateCalendarEvent(ctx, &store.UpdateCalendarEvent{
		ID:        event.ID,
		UpdatedTs: &now,
		Title:     request.Title,
		Category:  request.Category,
		StartTs:   request.StartTs,
		EndTs:     request.EndTs,
		AllDay:    request.AllDay,
		Location:  request.Location,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to update event")
	}
	return c.JSON(http.StatusOK, convertCalendarEvent(updated))
}

// DeleteCalendarEvent archives an event.
// DELETE /api/v1/households/:householdUid/events/:eventUid
func (s *APIV1Service) DeleteCalendarEvent(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	event, err := s.eventFromPath(c, household.ID)
	if event == nil {
		return err
	}

	archived := store.Archived
	now := time.Now().Unix()
	if _, err := s.Store.UpdateCalendarEvent(ctx, &store.UpdateCalendarEvent{
		ID:        event.ID,
		UpdatedTs: &now,
		RowStatus: &archived,
	}); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to archive event")
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
