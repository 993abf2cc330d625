package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hublie/hublie/server/service/gating"
	"github.com/hublie/hublie/store"
)

type subscriptionResponse struct {
	Plan        store.Plan    `json:"plan"`
	Status      string        `json:"status"`
	PeriodEndTs *int64        `json:"periodEndTs,omitempty"`
	Limits      gating.Limits `json:"limits"`
}

// GetSubscription returns the household's plan and its effective limits.
// GET /api/v1/households/:householdUid/subscription
func (s *APIV1Service) GetSubscription(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	subscription, err := s.Store.GetSubscription(ctx, &store.FindSubscription{HouseholdID: &household.ID})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to get subscription")
	}
	plan := subscription.Plan
	if subscription.Status != store.SubscriptionActive {
		plan = store.PlanFree
	}
	return c.JSON(http.StatusOK, &subscriptionResponse{
		Plan:        subscription.Plan,
		Status:      subscription.Status,
		PeriodEndTs: subscription.PeriodEndTs,
		Limits:      gating.LimitsForPlan(plan),
	})
}

type updateSubscriptionRequest struct {
	Plan        store.Plan `json:"plan"`
	Status      string     `json:"status"`
	PeriodEndTs *int64     `json:"periodEndTs"`
}

// UpdateSubscription mirrors an entitlement change from the external billing
// service into the local subscription row.
// PUT /api/v1/households/:householdUid/subscription
func (s *APIV1Service) UpdateSubscription(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	request := &updateSubscriptionRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.Plan != store.PlanFree && request.Plan != store.PlanPremium {
		return errorJSON(c, http.StatusBadRequest, "unknown plan")
	}
	switch request.Status {
	case store.SubscriptionActive, store.SubscriptionCanceled, store.SubscriptionPastDue:
	case "":
		request.Status = store.SubscriptionActive
	default:
		return errorJSON(c, http.StatusBadRequest, "unknown status")
	}

	subscription, err := s.Store.UpsertSubscription(ctx, &store.UpsertSubscription{
		HouseholdID: household.ID,
		Plan:        request.Plan,
		Status:      request.Status,
		PeriodEndTs: request.PeriodEndTs,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to update subscription")
	}

	plan := subscription.Plan
	if subscription.Status != store.SubscriptionActive {
		plan = store.PlanFree
	}
	return c.JSON(http.StatusOK, &subscriptionResponse{
		Plan:        subscription.Plan,
		Status:      subscription.Status,
		PeriodEndTs: subscription.PeriodEndTs,
		Limits:      gating.LimitsForPlan(plan),
	})
}
