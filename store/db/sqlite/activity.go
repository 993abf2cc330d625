package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/hublie/hublie/store"
)

func (d *DB) CreateActivity(ctx context.Context, create *store.Activity) (*store.Activity, error) {
	fields := []string{"household_id", "actor_id", "type", "payload"}
	args := []any{create.HouseholdID, create.ActorID, create.Type, create.Payload}

	stmt := `INSERT INTO activity (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
	); err != nil {
		return nil, errors.Wrap(err, "failed to create activity")
	}

	return create, nil
}

func (d *DB) ListActivities(ctx context.Context, find *store.FindActivity) ([]*store.Activity, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.HouseholdID; v != nil {
		where, args = append(where, "household_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Type; v != nil {
		where, args = append(where, "type = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, household_id, created_ts, actor_id, type, payload
		FROM activity
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_ts DESC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query activities")
	}
	defer rows.Close()

	list := make([]*store.Activity, 0)
	for rows.Next() {
		var activity store.Activity
		var actorID sql.NullInt32
		if err := rows.Scan(
			&activity.ID,
			&activity.HouseholdID,
			&activity.CreatedTs,
			&actorID,
			&activity.Type,
			&activity.Payload,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan activity")
		}
		if actorID.Valid {
			activity.ActorID = &actorID.Int32
		}
		list = append(list, &activity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
