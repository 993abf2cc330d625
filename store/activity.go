package store

import "context"

// Activity types written by services and surfaced on the dashboard feed.
const (
	ActivityChoreCompleted = "chore_completed"
	ActivityBillPaid       = "bill_paid"
	ActivityBillOverdue    = "bill_overdue"
	ActivityMVPAwarded     = "mvp_awarded"
	ActivityEventCreated   = "event_created"
)

// Activity is a lightweight audit row for the household feed.
type Activity struct {
	ID          int32
	HouseholdID int32
	CreatedTs   int64
	ActorID     *int32
	Type        string
	// Payload is a small JSON blob whose shape depends on Type.
	Payload string
}

// FindActivity is the find condition for activity.
type FindActivity struct {
	HouseholdID *int32
	Type        *string
	Limit       *int
}

func (s *Store) CreateActivity(ctx context.Context, create *Activity) (*Activity, error) {
	return s.driver.CreateActivity(ctx, create)
}

func (s *Store) ListActivities(ctx context.Context, find *FindActivity) ([]*Activity, error) {
	return s.driver.ListActivities(ctx, find)
}
