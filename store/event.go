package store

import (
	"context"
	"time"
)

// CalendarEvent source values.
const (
	EventSourceManual = "manual"
	EventSourceParsed = "parsed"
)

// CalendarEvent is an entry on the shared household calendar.
type CalendarEvent struct {
	ID          int32
	UID         string
	HouseholdID int32
	CreatorID   int32
	RowStatus   RowStatus
	CreatedTs   int64
	UpdatedTs   int64
	Title       string
	Category    string
	StartTs     int64
	EndTs       *int64
	AllDay      bool
	Location    string
	// Source records whether the event came from the natural-language
	// parser or a manual form.
	Source string
}

// FindCalendarEvent is the find condition for calendar event.
type FindCalendarEvent struct {
	ID          *int32
	UID         *string
	HouseholdID *int32
	Category    *string
	RowStatus   *RowStatus

	// Time range filters: events overlapping [StartTs, EndTs).
	StartTs *int64
	EndTs   *int64

	Limit  *int
	Offset *int
}

// UpdateCalendarEvent is the update request for calendar event.
type UpdateCalendarEvent struct {
	ID        int32
	UpdatedTs *int64
	RowStatus *RowStatus
	Title     *string
	Category  *string
	StartTs   *int64
	EndTs     *int64
	AllDay    *bool
	Location  *string
}

// DeleteCalendarEvent is the delete request for calendar event.
type DeleteCalendarEvent struct {
	ID int32
}

func (s *Store) CreateCalendarEvent(ctx context.Context, create *CalendarEvent) (*CalendarEvent, error) {
	return s.driver.CreateCalendarEvent(ctx, create)
}

func (s *Store) ListCalendarEvents(ctx context.Context, find *FindCalendarEvent) ([]*CalendarEvent, error) {
	return s.driver.ListCalendarEvents(ctx, find)
}

func (s *Store) GetCalendarEvent(ctx context.Context, find *FindCalendarEvent) (*CalendarEvent, error) {
	list, err := s.driver.ListCalendarEvents(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) UpdateCalendarEvent(ctx context.Context, update *UpdateCalendarEvent) (*CalendarEvent, error) {
	return s.driver.UpdateCalendarEvent(ctx, update)
}

func (s *Store) DeleteCalendarEvent(ctx context.Context, delete *DeleteCalendarEvent) error {
	return s.driver.DeleteCalendarEvent(ctx, delete)
}

// ParseStartTime parses the event start time to time.Time.
func (e *CalendarEvent) ParseStartTime() time.Time {
	return time.Unix(e.StartTs, 0)
}

// ParseEndTime parses the event end time to time.Time.
func (e *CalendarEvent) ParseEndTime() *time.Time {
	if e.EndTs == nil {
		return nil
	}
	t := time.Unix(*e.EndTs, 0)
	return &t
}

// ConflictWith reports whether two events overlap in time.
func (e *CalendarEvent) ConflictWith(other *CalendarEvent) bool {
	eEnd := e.EndTs
	if eEnd == nil {
		eEnd = &e.StartTs
	}
	otherEnd := other.EndTs
	if otherEnd == nil {
		otherEnd = &other.StartTs
	}
	return e.StartTs <= *otherEnd && other.StartTs <= *eEnd
}
