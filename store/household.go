package store

import "context"

// Household is the object representing a family workspace. Every other
// domain object hangs off a household.
type Household struct {
	ID        int32
	UID       string
	RowStatus RowStatus
	CreatedTs int64
	UpdatedTs int64
	Name      string
	Timezone  string
}

// FindHousehold is the find condition for household.
type FindHousehold struct {
	ID        *int32
	UID       *string
	RowStatus *RowStatus
}

// UpdateHousehold is the update request for household.
type UpdateHousehold struct {
	ID        int32
	UpdatedTs *int64
	RowStatus *RowStatus
	Name      *string
	Timezone  *string
}

// DeleteHousehold is the delete request for household.
type DeleteHousehold struct {
	ID int32
}

func (s *Store) CreateHousehold(ctx context.Context, create *Household) (*Household, error) {
	household, err := s.driver.CreateHousehold(ctx, create)
	if err != nil {
		return nil, err
	}
	s.householdCache.Set(household.UID, household)
	return household, nil
}

func (s *Store) ListHouseholds(ctx context.Context, find *FindHousehold) ([]*Household, error) {
	return s.driver.ListHouseholds(ctx, find)
}

// GetHousehold gets a household by find condition, consulting the cache
// when looking up by UID.
func (s *Store) GetHousehold(ctx context.Context, find *FindHousehold) (*Household, error) {
	if find.UID != nil && find.ID == nil && find.RowStatus == nil {
		if cached, ok := s.householdCache.Get(*find.UID); ok {
			return cached.(*Household), nil
		}
	}
	list, err := s.driver.ListHouseholds(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	household := list[0]
	s.householdCache.Set(household.UID, household)
	return household, nil
}

func (s *Store) UpdateHousehold(ctx context.Context, update *UpdateHousehold) (*Household, error) {
	household, err := s.driver.UpdateHousehold(ctx, update)
	if err != nil {
		return nil, err
	}
	s.householdCache.Set(household.UID, household)
	return household, nil
}

func (s *Store) DeleteHousehold(ctx context.Context, delete *DeleteHousehold) error {
	household, err := s.GetHousehold(ctx, &FindHousehold{ID: &delete.ID})
	if err != nil {
		return err
	}
	if err := s.driver.DeleteHousehold(ctx, delete); err != nil {
		return err
	}
	if household != nil {
		s.householdCache.Delete(household.UID)
	}
	return nil
}
