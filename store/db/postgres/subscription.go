package postgres

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/hublie/hublie/store"
)

func (d *DB) UpsertSubscription(ctx context.Context, upsert *store.UpsertSubscription) (*store.Subscription, error) {
	stmt := `
		INSERT INTO subscription (household_id, plan, status, period_end_ts, updated_ts)
		VALUES ($1, $2, $3, $4, extract(epoch from now()))
		ON CONFLICT (household_id) DO UPDATE SET
			plan = EXCLUDED.plan,
			status = EXCLUDED.status,
			period_end_ts = EXCLUDED.period_end_ts,
			updated_ts = extract(epoch from now())
		RETURNING id, household_id, updated_ts, plan, status, period_end_ts`

	var subscription store.Subscription
	var plan string
	var periodEndTs sql.NullInt64
	if err := d.db.QueryRowContext(ctx, stmt,
		upsert.HouseholdID, string(upsert.Plan), upsert.Status, upsert.PeriodEndTs,
	).Scan(
		&subscription.ID,
		&subscription.HouseholdID,
		&subscription.UpdatedTs,
		&plan,
		&subscription.Status,
		&periodEndTs,
	); err != nil {
		return nil, errors.Wrap(err, "failed to upsert subscription")
	}
	subscription.Plan = store.Plan(plan)
	if periodEndTs.Valid {
		subscription.PeriodEndTs = &periodEndTs.Int64
	}

	return &subscription, nil
}

func (d *DB) GetSubscription(ctx context.Context, find *store.FindSubscription) (*store.Subscription, error) {
	if find.HouseholdID == nil {
		return nil, errors.New("household id is required")
	}

	var subscription store.Subscription
	var plan string
	var periodEndTs sql.NullInt64
	err := d.db.QueryRowContext(ctx, `
		SELECT id, household_id, updated_ts, plan, status, period_end_ts
		FROM subscription
		WHERE household_id = $1`, *find.HouseholdID,
	).Scan(
		&subscription.ID,
		&subscription.HouseholdID,
		&subscription.UpdatedTs,
		&plan,
		&subscription.Status,
		&periodEndTs,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get subscription")
	}
	subscription.Plan = store.Plan(plan)
	if periodEndTs.Valid {
		subscription.PeriodEndTs = &periodEndTs.Int64
	}

	return &subscription, nil
}
