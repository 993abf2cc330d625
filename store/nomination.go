package store

import "context"

// MVPNomination is one member nominating another as the household MVP for a
// given week. WeekKey is an ISO year-week string like "2026-W35"; weeks start
// on Sunday, consistent with the event parser's weekday resolution.
type MVPNomination struct {
	ID          int32
	HouseholdID int32
	CreatedTs   int64
	WeekKey     string
	NominatorID int32
	NomineeID   int32
	Reason      string
}

// FindMVPNomination is the find condition for MVP nomination.
type FindMVPNomination struct {
	ID          *int32
	HouseholdID *int32
	WeekKey     *string
	NominatorID *int32
	NomineeID   *int32
}

// DeleteMVPNomination is the delete request for MVP nomination.
type DeleteMVPNomination struct {
	ID int32
}

func (s *Store) CreateMVPNomination(ctx context.Context, create *MVPNomination) (*MVPNomination, error) {
	return s.driver.CreateMVPNomination(ctx, create)
}

func (s *Store) ListMVPNominations(ctx context.Context, find *FindMVPNomination) ([]*MVPNomination, error) {
	return s.driver.ListMVPNominations(ctx, find)
}

func (s *Store) DeleteMVPNomination(ctx context.Context, delete *DeleteMVPNomination) error {
	return s.driver.DeleteMVPNomination(ctx, delete)
}
