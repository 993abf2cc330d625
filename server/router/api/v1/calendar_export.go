package v1

import (
	"fmt"
	"net/http"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/labstack/echo/v4"

	"github.com/hublie/hublie/store"
)

// ExportCalendar serves the household calendar as an iCalendar feed so it
// can be subscribed to from external calendar apps.
// GET /api/v1/households/:householdUid/calendar.ics
func (s *APIV1Service) ExportCalendar(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	normal := store.Normal
	events, err := s.Store.ListCalendarEvents(ctx, &store.FindCalendarEvent{
		HouseholdID: &household.ID,
		RowStatus:   &normal,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to list events")
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//Hublie//Calendar//EN")
	cal.SetName(household.Name)

	for _, event := range events {
		vevent := cal.AddEvent(fmt.Sprintf("%s@hublie", event.UID))
		vevent.SetCreatedTime(time.Unix(event.CreatedTs, 0))
		vevent.SetDtStampTime(time.Unix(event.UpdatedTs, 0))
		vevent.SetSummary(event.Title)
		if event.Location != "" {
			vevent.SetLocation(event.Location)
		}
		vevent.SetProperty(ical.ComponentProperty(ical.PropertyCategories), event.Category)

		start := event.ParseStartTime().UTC()
		if event.AllDay {
			vevent.SetAllDayStartAt(start)
			if end := event.ParseEndTime(); end != nil {
				vevent.SetAllDayEndAt(end.UTC())
			}
			continue
		}
		vevent.SetStartAt(start)
		if end := event.ParseEndTime(); end != nil {
			vevent.SetEndAt(end.UTC())
		} else {
			vevent.SetEndAt(start.Add(time.Hour))
		}
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="hublie.ics"`)
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
}
