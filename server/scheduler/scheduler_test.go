package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hublie/hublie/internal/util"
	"github.com/hublie/hublie/server/service/points"
	"github.com/hublie/hublie/store"
	storetest "github.com/hublie/hublie/store/test"
)

func TestReopenRecurringChores(t *testing.T) {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	household, _ := storetest.CreateTestingHousehold(ctx, t, ts)
	s := New(ts, points.NewService(ts))

	daily := "0 8 * * *"
	chore, err := ts.CreateChore(ctx, &store.Chore{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		Title:       "Water the plants",
		Recurrence:  &daily,
		Status:      store.ChoreStatusDone,
	})
	require.NoError(t, err)

	// Backdate the completion two days so the daily schedule has fired.
	stale := time.Now().AddDate(0, 0, -2).Unix()
	_, err = ts.UpdateChore(ctx, &store.UpdateChore{ID: chore.ID, UpdatedTs: &stale})
	require.NoError(t, err)

	s.ReopenRecurringChores(ctx)

	reopened, err := ts.GetChore(ctx, &store.FindChore{ID: &chore.ID})
	require.NoError(t, err)
	require.Equal(t, store.ChoreStatusOpen, reopened.Status)
}

func TestReopenSkipsFreshCompletion(t *testing.T) {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	household, _ := storetest.CreateTestingHousehold(ctx, t, ts)
	s := New(ts, points.NewService(ts))

	yearly := "0 0 1 1 *"
	chore, err := ts.CreateChore(ctx, &store.Chore{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		Title:       "Clean the gutters",
		Recurrence:  &yearly,
		Status:      store.ChoreStatusDone,
	})
	require.NoError(t, err)

	s.ReopenRecurringChores(ctx)

	unchanged, err := ts.GetChore(ctx, &store.FindChore{ID: &chore.ID})
	require.NoError(t, err)
	require.Equal(t, store.ChoreStatusDone, unchanged.Status)
}

func TestFlagOverdueBillsOnce(t *testing.T) {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	household, _ := storetest.CreateTestingHousehold(ctx, t, ts)
	s := New(ts, points.NewService(ts))

	_, err := ts.CreateBill(ctx, &store.Bill{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		Name:        "Electric",
		AmountCents: 12050,
		DueTs:       time.Now().Add(-24 * time.Hour).Unix(),
	})
	require.NoError(t, err)

	s.FlagOverdueBills(ctx)
	s.FlagOverdueBills(ctx)

	overdue := store.ActivityBillOverdue
	activities, err := ts.ListActivities(ctx, &store.FindActivity{
		HouseholdID: &household.ID,
		Type:        &overdue,
	})
	require.NoError(t, err)
	require.Len(t, activities, 1)
}
