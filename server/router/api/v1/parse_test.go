package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/hublie/hublie/internal/profile"
	"github.com/hublie/hublie/server/eventparser"
	storetest "github.com/hublie/hublie/store/test"
)

func newTestService(t *testing.T) *APIV1Service {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	return NewAPIV1Service(&profile.Profile{Mode: "dev", Driver: "sqlite"}, ts)
}

func postJSON(t *testing.T, svc *APIV1Service, handler echo.HandlerFunc, path, body string, params map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	require.NoError(t, handler(c))
	return rec
}

func TestParseEventHandler(t *testing.T) {
	svc := newTestService(t)

	rec := postJSON(t, svc, svc.ParseEvent, "/api/v1/parse-event",
		`{"text":"doctor appointment tomorrow at 2:30pm"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result eventparser.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.True(t, result.Success)
	require.Equal(t, "Doctor appointment", result.Data.Title)
	require.Equal(t, "medical", result.Data.Category)
	require.InDelta(t, 1.0, result.Data.Confidence, 0.001)
}

func TestParseEventHandlerEmptyInput(t *testing.T) {
	svc := newTestService(t)

	rec := postJSON(t, svc, svc.ParseEvent, "/api/v1/parse-event", `{"text":"   "}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result eventparser.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.False(t, result.Success)
	require.Equal(t, eventparser.ErrEmptyInput, result.Error)
	require.Nil(t, result.Data)
}

func TestCreateEventFromPhrase(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	household, _ := storetest.CreateTestingHousehold(ctx, t, svc.Store)

	rec := postJSON(t, svc, svc.CreateEventFromPhrase,
		"/api/v1/households/"+household.UID+"/events/parse",
		`{"text":"soccer practice friday at 4pm"}`,
		map[string]string{"householdUid": household.UID})
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Result eventparser.Result `json:"result"`
		Event  *struct {
			UID    string `json:"uid"`
			Title  string `json:"title"`
			Source string `json:"source"`
		} `json:"event"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.True(t, response.Result.Success)
	require.NotNil(t, response.Event)
	require.Equal(t, "Soccer practice", response.Event.Title)
	require.Equal(t, "parsed", response.Event.Source)
}

func TestCreateEventFromPhraseParseFailure(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	household, _ := storetest.CreateTestingHousehold(ctx, t, svc.Store)

	rec := postJSON(t, svc, svc.CreateEventFromPhrase,
		"/api/v1/households/"+household.UID+"/events/parse",
		`{"text":"tomorrow at 3pm"}`,
		map[string]string{"householdUid": household.UID})
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Result eventparser.Result `json:"result"`
		Event  *json.RawMessage   `json:"event"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.False(t, response.Result.Success)
	require.Equal(t, eventparser.ErrNoTitle, response.Result.Error)
	require.Nil(t, response.Event)
}
