package store

import "context"

// CaregiverAccess grants a caregiver member time-boxed access to a subset of
// household sections via a shared code. Only the bcrypt hash of the code is
// stored.
type CaregiverAccess struct {
	ID          int32
	HouseholdID int32
	MemberID    int32
	CreatedTs   int64
	CodeHash    string
	// Sections is a comma-separated list of accessible sections
	// (events, chores, notes).
	Sections  string
	ExpiresTs int64
}

// FindCaregiverAccess is the find condition for caregiver access.
type FindCaregiverAccess struct {
	ID          *int32
	HouseholdID *int32
	MemberID    *int32
}

// DeleteCaregiverAccess is the delete request for caregiver access.
type DeleteCaregiverAccess struct {
	ID int32
}

func (s *Store) CreateCaregiverAccess(ctx context.Context, create *CaregiverAccess) (*CaregiverAccess, error) {
	return s.driver.CreateCaregiverAccess(ctx, create)
}

func (s *Store) ListCaregiverAccesses(ctx context.Context, find *FindCaregiverAccess) ([]*CaregiverAccess, error) {
	return s.driver.ListCaregiverAccesses(ctx, find)
}

func (s *Store) DeleteCaregiverAccess(ctx context.Context, delete *DeleteCaregiverAccess) error {
	return s.driver.DeleteCaregiverAccess(ctx, delete)
}
