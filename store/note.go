package store

import "context"

// Note is a shared household note. Content is markdown; rendering happens
// at the API layer.
type Note struct {
	ID          int32
	UID         string
	HouseholdID int32
	CreatorID   int32
	RowStatus   RowStatus
	CreatedTs   int64
	UpdatedTs   int64
	Title       string
	Content     string
	Pinned      bool
	Color       string
}

// FindNote is the find condition for note.
type FindNote struct {
	ID          *int32
	UID         *string
	HouseholdID *int32
	CreatorID   *int32
	Pinned      *bool
	RowStatus   *RowStatus
	Limit       *int
	Offset      *int
}

// UpdateNote is the update request for note.
type UpdateNote struct {
	ID        int32
	UpdatedTs *int64
	RowStatus *RowStatus
	Title     *string
	Content   *string
	Pinned    *bool
	Color     *string
}

// DeleteNote is the delete request for note.
type DeleteNote struct {
	ID int32
}

func (s *Store) CreateNote(ctx context.Context, create *Note) (*Note, error) {
	return s.driver.CreateNote(ctx, create)
}

func (s *Store) ListNotes(ctx context.Context, find *FindNote) ([]*Note, error) {
	return s.driver.ListNotes(ctx, find)
}

func (s *Store) GetNote(ctx context.Context, find *FindNote) (*Note, error) {
	list, err := s.driver.ListNotes(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) UpdateNote(ctx context.Context, update *UpdateNote) (*Note, error) {
	return s.driver.UpdateNote(ctx, update)
}

func (s *Store) DeleteNote(ctx context.Context, delete *DeleteNote) error {
	return s.driver.DeleteNote(ctx, delete)
}
