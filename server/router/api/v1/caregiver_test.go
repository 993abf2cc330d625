package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	storetest "github.com/hublie/hublie/store/test"
)

func TestCaregiverAccessLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	household, _ := storetest.CreateTestingHousehold(ctx, t, svc.Store)

	rec := postJSON(t, svc, svc.CreateCaregiverAccess,
		"/api/v1/households/"+household.UID+"/caregiver-accesses",
		`{"name":"Grandma June","sections":"events,chores"}`,
		map[string]string{"householdUid": household.UID})
	require.Equal(t, http.StatusOK, rec.Code)

	var created struct {
		ID       int32  `json:"id"`
		Code     string `json:"code"`
		Sections string `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Len(t, created.Code, 6)
	require.Equal(t, "events,chores", created.Sections)

	// The right code validates.
	rec = postJSON(t, svc, svc.VerifyCaregiverCode,
		"/api/v1/households/"+household.UID+"/caregiver-accesses/verify",
		`{"code":"`+created.Code+`"}`,
		map[string]string{"householdUid": household.UID})
	require.Equal(t, http.StatusOK, rec.Code)

	var verified struct {
		Valid    bool   `json:"valid"`
		Sections string `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verified))
	require.True(t, verified.Valid)
	require.Equal(t, "events,chores", verified.Sections)

	// A wrong code does not.
	rec = postJSON(t, svc, svc.VerifyCaregiverCode,
		"/api/v1/households/"+household.UID+"/caregiver-accesses/verify",
		`{"code":"000000"}`,
		map[string]string{"householdUid": household.UID})
	require.Equal(t, http.StatusOK, rec.Code)
	verified.Valid = true
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verified))
	require.False(t, verified.Valid)
}

func TestGenerateCaregiverCode(t *testing.T) {
	codePattern := regexp.MustCompile(`^[0-9]{6}$`)
	seen := map[byte]bool{}
	for i := 0; i < 200; i++ {
		code, err := generateCaregiverCode()
		require.NoError(t, err)
		require.Regexp(t, codePattern, code)
		for j := 0; j < len(code); j++ {
			seen[code[j]] = true
		}
	}
	// Every digit 0-9 should show up across 1200 draws.
	for d := byte('0'); d <= '9'; d++ {
		require.True(t, seen[d], "digit %c never drawn", d)
	}
}

func TestCaregiverAccessFreePlanLimit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	household, _ := storetest.CreateTestingHousehold(ctx, t, svc.Store)

	rec := postJSON(t, svc, svc.CreateCaregiverAccess,
		"/api/v1/households/"+household.UID+"/caregiver-accesses",
		`{"name":"Grandma June"}`,
		map[string]string{"householdUid": household.UID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, svc, svc.CreateCaregiverAccess,
		"/api/v1/households/"+household.UID+"/caregiver-accesses",
		`{"name":"Uncle Theo"}`,
		map[string]string{"householdUid": household.UID})
	require.Equal(t, http.StatusPaymentRequired, rec.Code)
}
