package test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hublie/hublie/internal/util"
	"github.com/hublie/hublie/store"
)

func TestHouseholdStore(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)
	household, _ := CreateTestingHousehold(ctx, t, ts)

	found, err := ts.GetHousehold(ctx, &store.FindHousehold{UID: &household.UID})
	require.NoError(t, err)
	require.Equal(t, household.ID, found.ID)
	require.Equal(t, "UTC", found.Timezone)

	newName := "The Updated Testers"
	updated, err := ts.UpdateHousehold(ctx, &store.UpdateHousehold{ID: household.ID, Name: &newName})
	require.NoError(t, err)
	require.Equal(t, newName, updated.Name)

	require.NoError(t, ts.DeleteHousehold(ctx, &store.DeleteHousehold{ID: household.ID}))
	found, err = ts.GetHousehold(ctx, &store.FindHousehold{ID: &household.ID})
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestChoreStore(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)
	household, member := CreateTestingHousehold(ctx, t, ts)

	chore, err := ts.CreateChore(ctx, &store.Chore{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		Title:       "Take out the trash",
		AssigneeID:  &member.ID,
		Points:      5,
		Status:      store.ChoreStatusOpen,
	})
	require.NoError(t, err)
	require.Equal(t, store.ChoreStatusOpen, chore.Status)

	done := store.ChoreStatusDone
	updated, err := ts.UpdateChore(ctx, &store.UpdateChore{ID: chore.ID, Status: &done})
	require.NoError(t, err)
	require.Equal(t, store.ChoreStatusDone, updated.Status)

	completion, err := ts.CreateChoreCompletion(ctx, &store.ChoreCompletion{
		HouseholdID: household.ID,
		ChoreID:     chore.ID,
		MemberID:    member.ID,
		Points:      chore.Points,
		CompletedTs: time.Now().Unix(),
	})
	require.NoError(t, err)
	require.Equal(t, int32(5), completion.Points)

	completions, err := ts.ListChoreCompletions(ctx, &store.FindChoreCompletion{HouseholdID: &household.ID})
	require.NoError(t, err)
	require.Len(t, completions, 1)

	future := time.Now().Add(time.Hour).Unix()
	completions, err = ts.ListChoreCompletions(ctx, &store.FindChoreCompletion{
		HouseholdID:      &household.ID,
		CompletedTsAfter: &future,
	})
	require.NoError(t, err)
	require.Empty(t, completions)
}

func TestCalendarEventOverlapQuery(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)
	household, member := CreateTestingHousehold(ctx, t, ts)

	base := time.Date(2026, time.August, 26, 15, 0, 0, 0, time.UTC)
	endTs := base.Add(time.Hour).Unix()
	_, err := ts.CreateCalendarEvent(ctx, &store.CalendarEvent{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		CreatorID:   member.ID,
		Title:       "Dentist",
		Category:    "medical",
		StartTs:     base.Unix(),
		EndTs:       &endTs,
		Source:      store.EventSourceParsed,
	})
	require.NoError(t, err)

	rangeStart := base.Add(30 * time.Minute).Unix()
	rangeEnd := base.Add(2 * time.Hour).Unix()
	events, err := ts.ListCalendarEvents(ctx, &store.FindCalendarEvent{
		HouseholdID: &household.ID,
		StartTs:     &rangeStart,
		EndTs:       &rangeEnd,
	})
	require.NoError(t, err)
	require.Len(t, events, 1)

	rangeStart = base.Add(2 * time.Hour).Unix()
	rangeEnd = base.Add(3 * time.Hour).Unix()
	events, err = ts.ListCalendarEvents(ctx, &store.FindCalendarEvent{
		HouseholdID: &household.ID,
		StartTs:     &rangeStart,
		EndTs:       &rangeEnd,
	})
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestSubscriptionStore(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)
	household, _ := CreateTestingHousehold(ctx, t, ts)

	subscription, err := ts.GetSubscription(ctx, &store.FindSubscription{HouseholdID: &household.ID})
	require.NoError(t, err)
	require.Equal(t, store.PlanFree, subscription.Plan)
	require.Equal(t, store.SubscriptionActive, subscription.Status)

	upserted, err := ts.UpsertSubscription(ctx, &store.UpsertSubscription{
		HouseholdID: household.ID,
		Plan:        store.PlanPremium,
		Status:      store.SubscriptionActive,
	})
	require.NoError(t, err)
	require.Equal(t, store.PlanPremium, upserted.Plan)

	subscription, err = ts.GetSubscription(ctx, &store.FindSubscription{HouseholdID: &household.ID})
	require.NoError(t, err)
	require.Equal(t, store.PlanPremium, subscription.Plan)
}

func TestMVPNominationUniquePerWeek(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)
	household, member := CreateTestingHousehold(ctx, t, ts)
	nominee, err := ts.CreateMember(ctx, &store.Member{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		Name:        "Jamie",
		Role:        store.RoleChild,
	})
	require.NoError(t, err)

	nomination := &store.MVPNomination{
		HouseholdID: household.ID,
		WeekKey:     "2026-W35",
		NominatorID: member.ID,
		NomineeID:   nominee.ID,
		Reason:      "did all the dishes",
	}
	_, err = ts.CreateMVPNomination(ctx, nomination)
	require.NoError(t, err)

	_, err = ts.CreateMVPNomination(ctx, nomination)
	require.Error(t, err)
}
