package gating

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hublie/hublie/internal/util"
	"github.com/hublie/hublie/store"
	storetest "github.com/hublie/hublie/store/test"
)

func TestCheckChoreLimitOnFreePlan(t *testing.T) {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	household, _ := storetest.CreateTestingHousehold(ctx, t, ts)
	svc := NewService(ts)

	limit := LimitsForPlan(store.PlanFree).MaxChores
	for i := 0; i < limit; i++ {
		require.NoError(t, svc.Check(ctx, household.ID, FeatureChores))
		_, err := ts.CreateChore(ctx, &store.Chore{
			UID:         util.GenUID(),
			HouseholdID: household.ID,
			Title:       fmt.Sprintf("Chore %d", i),
			Status:      store.ChoreStatusOpen,
		})
		require.NoError(t, err)
	}

	err := svc.Check(ctx, household.ID, FeatureChores)
	require.Error(t, err)
	require.True(t, IsLimitError(err))

	var limitErr *LimitError
	require.ErrorAs(t, err, &limitErr)
	require.Equal(t, FeatureChores, limitErr.Feature)
	require.Equal(t, limit, limitErr.Limit)
}

func TestCheckUnlimitedOnPremium(t *testing.T) {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	household, _ := storetest.CreateTestingHousehold(ctx, t, ts)
	svc := NewService(ts)

	_, err := ts.UpsertSubscription(ctx, &store.UpsertSubscription{
		HouseholdID: household.ID,
		Plan:        store.PlanPremium,
		Status:      store.SubscriptionActive,
	})
	require.NoError(t, err)

	for i := 0; i < LimitsForPlan(store.PlanFree).MaxChores+5; i++ {
		_, err := ts.CreateChore(ctx, &store.Chore{
			UID:         util.GenUID(),
			HouseholdID: household.ID,
			Title:       fmt.Sprintf("Chore %d", i),
			Status:      store.ChoreStatusOpen,
		})
		require.NoError(t, err)
	}
	require.NoError(t, svc.Check(ctx, household.ID, FeatureChores))
}

func TestCanceledSubscriptionFallsBackToFree(t *testing.T) {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	household, _ := storetest.CreateTestingHousehold(ctx, t, ts)
	svc := NewService(ts)

	_, err := ts.UpsertSubscription(ctx, &store.UpsertSubscription{
		HouseholdID: household.ID,
		Plan:        store.PlanPremium,
		Status:      store.SubscriptionCanceled,
	})
	require.NoError(t, err)

	ok, err := svc.CanUseAICompose(ctx, household.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCaregiverLimitOnFreePlan(t *testing.T) {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	household, member := storetest.CreateTestingHousehold(ctx, t, ts)
	svc := NewService(ts)

	require.NoError(t, svc.Check(ctx, household.ID, FeatureCaregivers))
	_, err := ts.CreateCaregiverAccess(ctx, &store.CaregiverAccess{
		HouseholdID: household.ID,
		MemberID:    member.ID,
		CodeHash:    "$2a$10$fakehashfakehashfakehash",
		Sections:    "events,chores",
		ExpiresTs:   4102444800,
	})
	require.NoError(t, err)

	err = svc.Check(ctx, household.ID, FeatureCaregivers)
	require.True(t, IsLimitError(err))
}
