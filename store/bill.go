package store

import "context"

// Bill is a household expense to track until paid.
type Bill struct {
	ID          int32
	UID         string
	HouseholdID int32
	RowStatus   RowStatus
	CreatedTs   int64
	UpdatedTs   int64
	Name        string
	AmountCents int64
	Currency    string
	Payee       string
	DueTs       int64
	Autopay     bool
	Paid        bool
	PaidTs      *int64
}

// FindBill is the find condition for bill.
type FindBill struct {
	ID          *int32
	UID         *string
	HouseholdID *int32
	Paid        *bool
	DueBefore   *int64
	RowStatus   *RowStatus
	Limit       *int
	Offset      *int
}

// UpdateBill is the update request for bill.
type UpdateBill struct {
	ID          int32
	UpdatedTs   *int64
	RowStatus   *RowStatus
	Name        *string
	AmountCents *int64
	Currency    *string
	Payee       *string
	DueTs       *int64
	Autopay     *bool
	Paid        *bool
	PaidTs      *int64
}

// DeleteBill is the delete request for bill.
type DeleteBill struct {
	ID int32
}

func (s *Store) CreateBill(ctx context.Context, create *Bill) (*Bill, error) {
	return s.driver.CreateBill(ctx, create)
}

func (s *Store) ListBills(ctx context.Context, find *FindBill) ([]*Bill, error) {
	return s.driver.ListBills(ctx, find)
}

func (s *Store) GetBill(ctx context.Context, find *FindBill) (*Bill, error) {
	list, err := s.driver.ListBills(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) UpdateBill(ctx context.Context, update *UpdateBill) (*Bill, error) {
	return s.driver.UpdateBill(ctx, update)
}

func (s *Store) DeleteBill(ctx context.Context, delete *DeleteBill) error {
	return s.driver.DeleteBill(ctx, delete)
}
