// Package gating enforces subscription-based feature limits.
//
// Billing itself happens in an external payment service; this package only
// reads the entitlement mirrored into the subscription table and compares
// it against current usage.
package gating

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/hublie/hublie/store"
)

// Feature identifies a gated resource type.
type Feature string

const (
	FeatureChores     Feature = "chores"
	FeatureNotes      Feature = "notes"
	FeatureEvents     Feature = "events"
	FeatureCaregivers Feature = "caregivers"
	FeatureAICompose  Feature = "ai_compose"
)

// Unlimited marks a feature with no cap.
const Unlimited = -1

// Limits holds the per-plan caps. Events are capped per calendar month;
// everything else is a cap on live rows.
type Limits struct {
	MaxChores         int  `json:"maxChores"`
	MaxNotes          int  `json:"maxNotes"`
	MaxEventsPerMonth int  `json:"maxEventsPerMonth"`
	MaxCaregivers     int  `json:"maxCaregivers"`
	AICompose         bool `json:"aiCompose"`
}

var planLimits = map[store.Plan]Limits{
	store.PlanFree: {
		MaxChores:         10,
		MaxNotes:          20,
		MaxEventsPerMonth: 30,
		MaxCaregivers:     1,
		AICompose:         false,
	},
	store.PlanPremium: {
		MaxChores:         Unlimited,
		MaxNotes:          Unlimited,
		MaxEventsPerMonth: Unlimited,
		MaxCaregivers:     Unlimited,
		AICompose:         true,
	},
}

// LimitsForPlan returns the limits of a plan, defaulting to free.
func LimitsForPlan(plan store.Plan) Limits {
	if limits, ok := planLimits[plan]; ok {
		return limits
	}
	return planLimits[store.PlanFree]
}

// LimitError reports a plan cap being hit. Handlers translate it to a 402.
type LimitError struct {
	Feature Feature
	Limit   int
	Plan    store.Plan
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s limit of %d reached on the %s plan", e.Feature, e.Limit, e.Plan)
}

// IsLimitError reports whether err is a plan-limit rejection.
func IsLimitError(err error) bool {
	var limitErr *LimitError
	return errors.As(err, &limitErr)
}

// Service checks feature limits against current usage.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Check returns a *LimitError when creating one more instance of feature
// would exceed the household's plan.
func (s *Service) Check(ctx context.Context, householdID int32, feature Feature) error {
	subscription, err := s.store.GetSubscription(ctx, &store.FindSubscription{HouseholdID: &householdID})
	if err != nil {
		return errors.Wrap(err, "failed to get subscription")
	}
	plan := store.PlanFree
	if subscription != nil && subscription.Status == store.SubscriptionActive {
		plan = subscription.Plan
	}
	limits := LimitsForPlan(plan)

	limit, count, err := s.usage(ctx, householdID, feature, limits)
	if err != nil {
		return err
	}
	if limit == Unlimited {
		return nil
	}
	if count >= limit {
		return &LimitError{Feature: feature, Limit: limit, Plan: plan}
	}
	return nil
}

// CanUseAICompose reports whether the household's plan includes AI-assisted
// text generation.
func (s *Service) CanUseAICompose(ctx context.Context, householdID int32) (bool, error) {
	subscription, err := s.store.GetSubscription(ctx, &store.FindSubscription{HouseholdID: &householdID})
	if err != nil {
		return false, errors.Wrap(err, "failed to get subscription")
	}
	plan := store.PlanFree
	if subscription != nil && subscription.Status == store.SubscriptionActive {
		plan = subscription.Plan
	}
	return LimitsForPlan(plan).AICompose, nil
}

func (s *Service) usage(ctx context.Context, householdID int32, feature Feature, limits Limits) (int, int, error) {
	normal := store.Normal
	switch feature {
	case FeatureChores:
		list, err := s.store.ListChores(ctx, &store.FindChore{HouseholdID: &householdID, RowStatus: &normal})
		if err != nil {
			return 0, 0, errors.Wrap(err, "failed to count chores")
		}
		return limits.MaxChores, len(list), nil
	case FeatureNotes:
		list, err := s.store.ListNotes(ctx, &store.FindNote{HouseholdID: &householdID, RowStatus: &normal})
		if err != nil {
			return 0, 0, errors.Wrap(err, "failed to count notes")
		}
		return limits.MaxNotes, len(list), nil
	case FeatureEvents:
		monthStart := startOfMonth(time.Now()).Unix()
		nextMonth := startOfMonth(time.Now()).AddDate(0, 1, 0).Unix()
		list, err := s.store.ListCalendarEvents(ctx, &store.FindCalendarEvent{
			HouseholdID: &householdID,
			RowStatus:   &normal,
			StartTs:     &monthStart,
			EndTs:       &nextMonth,
		})
		if err != nil {
			return 0, 0, errors.Wrap(err, "failed to count events")
		}
		return limits.MaxEventsPerMonth, len(list), nil
	case FeatureCaregivers:
		list, err := s.store.ListCaregiverAccesses(ctx, &store.FindCaregiverAccess{HouseholdID: &householdID})
		if err != nil {
			return 0, 0, errors.Wrap(err, "failed to count caregiver accesses")
		}
		return limits.MaxCaregivers, len(list), nil
	default:
		return Unlimited, 0, nil
	}
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
