package points

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hublie/hublie/internal/util"
	"github.com/hublie/hublie/store"
	storetest "github.com/hublie/hublie/store/test"
)

func TestLeaderboard(t *testing.T) {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	household, alex := storetest.CreateTestingHousehold(ctx, t, ts)
	jamie, err := ts.CreateMember(ctx, &store.Member{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		Name:        "Jamie",
		Role:        store.RoleChild,
	})
	require.NoError(t, err)

	now := time.Now()
	svc := NewService(ts)

	record := func(memberID int32, points int32, at time.Time) {
		_, err := ts.CreateChoreCompletion(ctx, &store.ChoreCompletion{
			HouseholdID: household.ID,
			ChoreID:     1,
			MemberID:    memberID,
			Points:      points,
			CompletedTs: at.Unix(),
		})
		require.NoError(t, err)
	}

	record(alex.ID, 5, now)
	record(jamie.ID, 10, now)
	record(jamie.ID, 3, now)
	// Last week's completion must not count.
	record(alex.ID, 100, StartOfWeek(now).Add(-time.Hour))

	standings, err := svc.Leaderboard(ctx, household.ID, now)
	require.NoError(t, err)
	require.Len(t, standings, 2)
	require.Equal(t, jamie.ID, standings[0].MemberID)
	require.Equal(t, int32(13), standings[0].Points)
	require.Equal(t, int32(2), standings[0].Completions)
	require.Equal(t, alex.ID, standings[1].MemberID)
	require.Equal(t, int32(5), standings[1].Points)
}

func TestWeeklyMVP(t *testing.T) {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	household, alex := storetest.CreateTestingHousehold(ctx, t, ts)
	jamie, err := ts.CreateMember(ctx, &store.Member{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		Name:        "Jamie",
		Role:        store.RoleChild,
	})
	require.NoError(t, err)
	sam, err := ts.CreateMember(ctx, &store.Member{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		Name:        "Sam",
		Role:        store.RoleChild,
	})
	require.NoError(t, err)

	svc := NewService(ts)
	weekKey := WeekKey(time.Now())

	winner, err := svc.WeeklyMVP(ctx, household.ID, weekKey)
	require.NoError(t, err)
	require.Nil(t, winner)

	nominate := func(nominator, nominee int32) {
		_, err := ts.CreateMVPNomination(ctx, &store.MVPNomination{
			HouseholdID: household.ID,
			WeekKey:     weekKey,
			NominatorID: nominator,
			NomineeID:   nominee,
		})
		require.NoError(t, err)
	}
	nominate(alex.ID, jamie.ID)
	nominate(sam.ID, jamie.ID)
	nominate(jamie.ID, alex.ID)

	winner, err = svc.WeeklyMVP(ctx, household.ID, weekKey)
	require.NoError(t, err)
	require.Equal(t, jamie.ID, winner.NomineeID)
	require.Equal(t, int32(2), winner.Votes)
}
