package postgres

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/hublie/hublie/store"
)

func (d *DB) CreateMVPNomination(ctx context.Context, create *store.MVPNomination) (*store.MVPNomination, error) {
	fields := []string{"household_id", "week_key", "nominator_id", "nominee_id", "reason"}
	args := []any{create.HouseholdID, create.WeekKey, create.NominatorID, create.NomineeID, create.Reason}

	stmt := `INSERT INTO mvp_nomination (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
	); err != nil {
		return nil, errors.Wrap(err, "failed to create mvp nomination")
	}

	return create, nil
}

func (d *DB) ListMVPNominations(ctx context.Context, find *store.FindMVPNomination) ([]*store.MVPNomination, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.HouseholdID; v != nil {
		where, args = append(where, "household_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.WeekKey; v != nil {
		where, args = append(where, "week_key = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.NominatorID; v != nil {
		where, args = append(where, "nominator_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.NomineeID; v != nil {
		where, args = append(where, "nominee_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, household_id, created_ts, week_key, nominator_id, nominee_id, reason
		FROM mvp_nomination
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_ts DESC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query mvp nominations")
	}
	defer rows.Close()

	list := make([]*store.MVPNomination, 0)
	for rows.Next() {
		var nomination store.MVPNomination
		if err := rows.Scan(
			&nomination.ID,
			&nomination.HouseholdID,
			&nomination.CreatedTs,
			&nomination.WeekKey,
			&nomination.NominatorID,
			&nomination.NomineeID,
			&nomination.Reason,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan mvp nomination")
		}
		list = append(list, &nomination)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) DeleteMVPNomination(ctx context.Context, delete *store.DeleteMVPNomination) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM mvp_nomination WHERE id = $1`, delete.ID); err != nil {
		return errors.Wrap(err, "failed to delete mvp nomination")
	}
	return nil
}
