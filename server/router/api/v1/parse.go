package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hublie/hublie/internal/util"
	"github.com/hublie/hublie/server/eventparser"
	"github.com/hublie/hublie/server/service/gating"
	"github.com/hublie/hublie/store"
)

type parseEventRequest struct {
	Text string `json:"text"`
}

// ParseEvent parses a natural-language phrase into structured event data
// without creating anything.
// POST /api/v1/parse-event
func (s *APIV1Service) ParseEvent(c echo.Context) error {
	request := &parseEventRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}

	// The parser reports its own failures inside the result envelope; the
	// HTTP status is 200 either way.
	return c.JSON(http.StatusOK, eventparser.Parse(request.Text))
}

type createEventFromPhraseRequest struct {
	Text      string `json:"text"`
	CreatorID int32  `json:"creatorId"`
}

type createEventFromPhraseResponse struct {
	Result eventparser.Result     `json:"result"`
	Event  *calendarEventResponse `json:"event,omitempty"`
}

// CreateEventFromPhrase parses a phrase and, when parsing succeeds, creates
// the calendar event in one step.
// POST /api/v1/households/:householdUid/events/parse
func (s *APIV1Service) CreateEventFromPhrase(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	request := &createEventFromPhraseRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}

	result := eventparser.Parse(request.Text)
	if !result.Success {
		return c.JSON(http.StatusOK, createEventFromPhraseResponse{Result: result})
	}

	if ok, err := s.checkLimit(c, household.ID, gating.FeatureEvents); !ok {
		return err
	}

	start, err := time.Parse(time.RFC3339, result.Data.StartDatetime)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to interpret parsed start time")
	}
	end, err := time.Parse(time.RFC3339, result.Data.EndDatetime)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to interpret parsed end time")
	}
	endTs := end.Unix()

	event, err := s.Store.CreateCalendarEvent(ctx, &store.CalendarEvent{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		CreatorID:   request.CreatorID,
		Title:       result.Data.Title,
		Category:    result.Data.Category,
		StartTs:     start.Unix(),
		EndTs:       &endTs,
		Source:      store.EventSourceParsed,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to create event")
	}
	s.recordActivity(ctx, household.ID, &request.CreatorID, store.ActivityEventCreated, map[string]any{
		"eventUid": event.UID,
		"title":    event.Title,
		"source":   store.EventSourceParsed,
	})

	return c.JSON(http.StatusOK, createEventFromPhraseResponse{
		Result: result,
		Event:  convertCalendarEvent(event),
	})
}
