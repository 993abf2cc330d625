package v1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hublie/hublie/server/service/gating"
	"github.com/hublie/hublie/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

// householdFromPath resolves the :householdUid path parameter. A nil
// household with a nil error means the 404 response has been written.
func (s *APIV1Service) householdFromPath(c echo.Context) (*store.Household, error) {
	uid := c.Param("householdUid")
	household, err := s.Store.GetHousehold(c.Request().Context(), &store.FindHousehold{UID: &uid})
	if err != nil {
		return nil, errorJSON(c, http.StatusInternalServerError, "failed to get household")
	}
	if household == nil || household.RowStatus == store.Archived {
		return nil, errorJSON(c, http.StatusNotFound, "household not found")
	}
	return household, nil
}

// checkLimit translates gating failures into HTTP responses. A false return
// means a response has already been written.
func (s *APIV1Service) checkLimit(c echo.Context, householdID int32, feature gating.Feature) (bool, error) {
	err := s.GatingService.Check(c.Request().Context(), householdID, feature)
	if err == nil {
		return true, nil
	}
	if gating.IsLimitError(err) {
		return false, errorJSON(c, http.StatusPaymentRequired, err.Error())
	}
	return false, errorJSON(c, http.StatusInternalServerError, "failed to check plan limits")
}

// recordActivity writes a feed row; failures are logged, never surfaced.
func (s *APIV1Service) recordActivity(ctx context.Context, householdID int32, actorID *int32, activityType string, payload map[string]any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if _, err := s.Store.CreateActivity(ctx, &store.Activity{
		HouseholdID: householdID,
		ActorID:     actorID,
		Type:        activityType,
		Payload:     string(raw),
	}); err != nil {
		slog.Error("failed to record activity", "type", activityType, "error", err)
	}
}
