package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hublie/hublie/plugin/ai"
)

type composeRequest struct {
	Kind ai.ComposeKind `json:"kind"`
	Text string         `json:"text"`
}

type composeResponse struct {
	Kind ai.ComposeKind `json:"kind"`
	Text string         `json:"text"`
}

// Compose runs an assisted-writing prompt (polish a note, draft a chore
// description, suggest an event title). Premium only.
// POST /api/v1/households/:householdUid/ai/compose
func (s *APIV1Service) Compose(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	if s.AIProvider == nil {
		return errorJSON(c, http.StatusServiceUnavailable, "ai assistance is not configured")
	}

	allowed, err := s.GatingService.CanUseAICompose(ctx, household.ID)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to check plan")
	}
	if !allowed {
		return errorJSON(c, http.StatusPaymentRequired, "ai assistance requires the premium plan")
	}

	request := &composeRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if !ai.ValidComposeKind(request.Kind) {
		return errorJSON(c, http.StatusBadRequest, "unknown compose kind")
	}
	if request.Text == "" {
		return errorJSON(c, http.StatusBadRequest, "text is required")
	}

	if err := s.composeSemaphore.Acquire(ctx, 1); err != nil {
		return errorJSON(c, http.StatusServiceUnavailable, "ai assistance is busy")
	}
	defer s.composeSemaphore.Release(1)

	text, err := s.AIProvider.Compose(ctx, request.Kind, request.Text)
	if err != nil {
		return errorJSON(c, http.StatusBadGateway, "ai assistance failed")
	}
	return c.JSON(http.StatusOK, &composeResponse{Kind: request.Kind, Text: text})
}
