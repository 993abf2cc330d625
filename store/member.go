package store

import "context"

// Member is a person in a household. Members are domain objects, not
// accounts: credentials and identity live outside this server.
type Member struct {
	ID          int32
	UID         string
	HouseholdID int32
	RowStatus   RowStatus
	CreatedTs   int64
	UpdatedTs   int64
	Name        string
	Role        Role
	Color       string
}

// FindMember is the find condition for member.
type FindMember struct {
	ID          *int32
	UID         *string
	HouseholdID *int32
	Role        *Role
	RowStatus   *RowStatus
}

// UpdateMember is the update request for member.
type UpdateMember struct {
	ID        int32
	UpdatedTs *int64
	RowStatus *RowStatus
	Name      *string
	Role      *Role
	Color     *string
}

// DeleteMember is the delete request for member.
type DeleteMember struct {
	ID int32
}

func (s *Store) CreateMember(ctx context.Context, create *Member) (*Member, error) {
	return s.driver.CreateMember(ctx, create)
}

func (s *Store) ListMembers(ctx context.Context, find *FindMember) ([]*Member, error) {
	return s.driver.ListMembers(ctx, find)
}

func (s *Store) GetMember(ctx context.Context, find *FindMember) (*Member, error) {
	list, err := s.driver.ListMembers(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) UpdateMember(ctx context.Context, update *UpdateMember) (*Member, error) {
	return s.driver.UpdateMember(ctx, update)
}

func (s *Store) DeleteMember(ctx context.Context, delete *DeleteMember) error {
	return s.driver.DeleteMember(ctx, delete)
}
