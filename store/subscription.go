package store

import "context"

// Subscription status values.
const (
	SubscriptionActive   = "active"
	SubscriptionCanceled = "canceled"
	SubscriptionPastDue  = "past_due"
)

// Subscription is a household's plan record. Payment processing happens in
// an external service; this row only mirrors the resulting entitlement.
type Subscription struct {
	ID          int32
	HouseholdID int32
	UpdatedTs   int64
	Plan        Plan
	Status      string
	PeriodEndTs *int64
}

// FindSubscription is the find condition for subscription.
type FindSubscription struct {
	HouseholdID *int32
}

// UpsertSubscription is the upsert request for subscription.
type UpsertSubscription struct {
	HouseholdID int32
	Plan        Plan
	Status      string
	PeriodEndTs *int64
}

const subscriptionCacheKeyPrefix = "subscription:"

func (s *Store) UpsertSubscription(ctx context.Context, upsert *UpsertSubscription) (*Subscription, error) {
	subscription, err := s.driver.UpsertSubscription(ctx, upsert)
	if err != nil {
		return nil, err
	}
	s.subscriptionCache.Set(subscriptionCacheKey(upsert.HouseholdID), subscription)
	return subscription, nil
}

// GetSubscription returns the household's subscription, or a free-plan
// default when no row exists yet.
func (s *Store) GetSubscription(ctx context.Context, find *FindSubscription) (*Subscription, error) {
	if find.HouseholdID != nil {
		if cached, ok := s.subscriptionCache.Get(subscriptionCacheKey(*find.HouseholdID)); ok {
			return cached.(*Subscription), nil
		}
	}
	subscription, err := s.driver.GetSubscription(ctx, find)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		if find.HouseholdID == nil {
			return nil, nil
		}
		subscription = &Subscription{
			HouseholdID: *find.HouseholdID,
			Plan:        PlanFree,
			Status:      SubscriptionActive,
		}
	}
	if find.HouseholdID != nil {
		s.subscriptionCache.Set(subscriptionCacheKey(*find.HouseholdID), subscription)
	}
	return subscription, nil
}

func subscriptionCacheKey(householdID int32) string {
	return subscriptionCacheKeyPrefix + itoa(householdID)
}
