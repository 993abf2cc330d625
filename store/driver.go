package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	IsInitialized(ctx context.Context) (bool, error)

	// Household model related methods.
	CreateHousehold(ctx context.Context, create *Household) (*Household, error)
	ListHouseholds(ctx context.Context, find *FindHousehold) ([]*Household, error)
	UpdateHousehold(ctx context.Context, update *UpdateHousehold) (*Household, error)
	DeleteHousehold(ctx context.Context, delete *DeleteHousehold) error

	// Member model related methods.
	CreateMember(ctx context.Context, create *Member) (*Member, error)
	ListMembers(ctx context.Context, find *FindMember) ([]*Member, error)
	UpdateMember(ctx context.Context, update *UpdateMember) (*Member, error)
	DeleteMember(ctx context.Context, delete *DeleteMember) error

	// CaregiverAccess model related methods.
	CreateCaregiverAccess(ctx context.Context, create *CaregiverAccess) (*CaregiverAccess, error)
	ListCaregiverAccesses(ctx context.Context, find *FindCaregiverAccess) ([]*CaregiverAccess, error)
	DeleteCaregiverAccess(ctx context.Context, delete *DeleteCaregiverAccess) error

	// Chore model related methods.
	CreateChore(ctx context.Context, create *Chore) (*Chore, error)
	ListChores(ctx context.Context, find *FindChore) ([]*Chore, error)
	UpdateChore(ctx context.Context, update *UpdateChore) (*Chore, error)
	DeleteChore(ctx context.Context, delete *DeleteChore) error
	CreateChoreCompletion(ctx context.Context, create *ChoreCompletion) (*ChoreCompletion, error)
	ListChoreCompletions(ctx context.Context, find *FindChoreCompletion) ([]*ChoreCompletion, error)

	// Bill model related methods.
	CreateBill(ctx context.Context, create *Bill) (*Bill, error)
	ListBills(ctx context.Context, find *FindBill) ([]*Bill, error)
	UpdateBill(ctx context.Context, update *UpdateBill) (*Bill, error)
	DeleteBill(ctx context.Context, delete *DeleteBill) error

	// Note model related methods.
	CreateNote(ctx context.Context, create *Note) (*Note, error)
	ListNotes(ctx context.Context, find *FindNote) ([]*Note, error)
	UpdateNote(ctx context.Context, update *UpdateNote) (*Note, error)
	DeleteNote(ctx context.Context, delete *DeleteNote) error

	// CalendarEvent model related methods.
	CreateCalendarEvent(ctx context.Context, create *CalendarEvent) (*CalendarEvent, error)
	ListCalendarEvents(ctx context.Context, find *FindCalendarEvent) ([]*CalendarEvent, error)
	UpdateCalendarEvent(ctx context.Context, update *UpdateCalendarEvent) (*CalendarEvent, error)
	DeleteCalendarEvent(ctx context.Context, delete *DeleteCalendarEvent) error

	// MVPNomination model related methods.
	CreateMVPNomination(ctx context.Context, create *MVPNomination) (*MVPNomination, error)
	ListMVPNominations(ctx context.Context, find *FindMVPNomination) ([]*MVPNomination, error)
	DeleteMVPNomination(ctx context.Context, delete *DeleteMVPNomination) error

	// Subscription model related methods.
	UpsertSubscription(ctx context.Context, upsert *UpsertSubscription) (*Subscription, error)
	GetSubscription(ctx context.Context, find *FindSubscription) (*Subscription, error)

	// Activity model related methods.
	CreateActivity(ctx context.Context, create *Activity) (*Activity, error)
	ListActivities(ctx context.Context, find *FindActivity) ([]*Activity, error)
}
