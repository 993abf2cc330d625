package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hublie/hublie/store"
	storetest "github.com/hublie/hublie/store/test"
)

func TestCompleteChoreAwardsPoints(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	household, member := storetest.CreateTestingHousehold(ctx, t, svc.Store)

	rec := postJSON(t, svc, svc.CreateChore,
		"/api/v1/households/"+household.UID+"/chores",
		`{"title":"Vacuum the living room","points":8}`,
		map[string]string{"householdUid": household.UID})
	require.Equal(t, http.StatusOK, rec.Code)

	var chore struct {
		UID string `json:"uid"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chore))

	rec = postJSON(t, svc, svc.CompleteChore,
		"/api/v1/households/"+household.UID+"/chores/"+chore.UID+"/complete",
		`{"memberUid":"`+member.UID+`"}`,
		map[string]string{"householdUid": household.UID, "choreUid": chore.UID})
	require.Equal(t, http.StatusOK, rec.Code)

	var completed struct {
		Chore struct {
			Status string `json:"status"`
		} `json:"chore"`
		PointsAwarded int32 `json:"pointsAwarded"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &completed))
	require.Equal(t, store.ChoreStatusDone, completed.Chore.Status)
	require.Equal(t, int32(8), completed.PointsAwarded)

	completions, err := svc.Store.ListChoreCompletions(ctx, &store.FindChoreCompletion{HouseholdID: &household.ID})
	require.NoError(t, err)
	require.Len(t, completions, 1)
	require.Equal(t, member.ID, completions[0].MemberID)

	choreCompleted := store.ActivityChoreCompleted
	activities, err := svc.Store.ListActivities(ctx, &store.FindActivity{
		HouseholdID: &household.ID,
		Type:        &choreCompleted,
	})
	require.NoError(t, err)
	require.Len(t, activities, 1)

	// Completing again conflicts.
	rec = postJSON(t, svc, svc.CompleteChore,
		"/api/v1/households/"+household.UID+"/chores/"+chore.UID+"/complete",
		`{"memberUid":"`+member.UID+`"}`,
		map[string]string{"householdUid": household.UID, "choreUid": chore.UID})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateChoreRejectsBadRecurrence(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	household, _ := storetest.CreateTestingHousehold(ctx, t, svc.Store)

	rec := postJSON(t, svc, svc.CreateChore,
		"/api/v1/households/"+household.UID+"/chores",
		`{"title":"Mow the lawn","recurrence":"not a cron expr"}`,
		map[string]string{"householdUid": household.UID})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
