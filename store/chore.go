package store

import "context"

// Chore status values.
const (
	ChoreStatusOpen = "open"
	ChoreStatusDone = "done"
)

// Chore is a household task worth points.
type Chore struct {
	ID          int32
	UID         string
	HouseholdID int32
	RowStatus   RowStatus
	CreatedTs   int64
	UpdatedTs   int64
	Title       string
	Description string
	AssigneeID  *int32
	Points      int32
	DueTs       *int64
	// Recurrence is a cron expression; recurring chores are reopened by the
	// background scheduler when the expression next fires.
	Recurrence *string
	Status     string
}

// FindChore is the find condition for chore.
type FindChore struct {
	ID          *int32
	UID         *string
	HouseholdID *int32
	AssigneeID  *int32
	Status      *string
	RowStatus   *RowStatus
	Recurring   *bool
	Limit       *int
	Offset      *int
}

// UpdateChore is the update request for chore.
type UpdateChore struct {
	ID          int32
	UpdatedTs   *int64
	RowStatus   *RowStatus
	Title       *string
	Description *string
	AssigneeID  *int32
	Points      *int32
	DueTs       *int64
	Recurrence  *string
	Status      *string
}

// DeleteChore is the delete request for chore.
type DeleteChore struct {
	ID int32
}

// ChoreCompletion records who finished a chore and how many points were
// awarded at that moment.
type ChoreCompletion struct {
	ID          int32
	HouseholdID int32
	ChoreID     int32
	MemberID    int32
	Points      int32
	CompletedTs int64
}

// FindChoreCompletion is the find condition for chore completion.
type FindChoreCompletion struct {
	HouseholdID      *int32
	ChoreID          *int32
	MemberID         *int32
	CompletedTsAfter *int64
	CompletedTsBefore *int64
}

func (s *Store) CreateChore(ctx context.Context, create *Chore) (*Chore, error) {
	return s.driver.CreateChore(ctx, create)
}

func (s *Store) ListChores(ctx context.Context, find *FindChore) ([]*Chore, error) {
	return s.driver.ListChores(ctx, find)
}

func (s *Store) GetChore(ctx context.Context, find *FindChore) (*Chore, error) {
	list, err := s.driver.ListChores(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) UpdateChore(ctx context.Context, update *UpdateChore) (*Chore, error) {
	return s.driver.UpdateChore(ctx, update)
}

func (s *Store) DeleteChore(ctx context.Context, delete *DeleteChore) error {
	return s.driver.DeleteChore(ctx, delete)
}

func (s *Store) CreateChoreCompletion(ctx context.Context, create *ChoreCompletion) (*ChoreCompletion, error) {
	return s.driver.CreateChoreCompletion(ctx, create)
}

func (s *Store) ListChoreCompletions(ctx context.Context, find *FindChoreCompletion) ([]*ChoreCompletion, error) {
	return s.driver.ListChoreCompletions(ctx, find)
}
