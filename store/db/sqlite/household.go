package sqlite

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/hublie/hublie/store"
)

func (d *DB) CreateHousehold(ctx context.Context, create *store.Household) (*store.Household, error) {
	fields := []string{"uid", "name", "timezone"}
	args := []any{create.UID, create.Name, create.Timezone}

	stmt := `INSERT INTO household (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts, updated_ts, row_status`
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
		&create.RowStatus,
	); err != nil {
		return nil, errors.Wrap(err, "failed to create household")
	}

	return create, nil
}

func (d *DB) ListHouseholds(ctx context.Context, find *store.FindHousehold) ([]*store.Household, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.RowStatus; v != nil {
		where, args = append(where, "row_status = "+placeholder(len(args)+1)), append(args, v.String())
	}

	query := `
		SELECT id, uid, row_status, created_ts, updated_ts, name, timezone
		FROM household
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_ts DESC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query households")
	}
	defer rows.Close()

	list := make([]*store.Household, 0)
	for rows.Next() {
		var household store.Household
		if err := rows.Scan(
			&household.ID,
			&household.UID,
			&household.RowStatus,
			&household.CreatedTs,
			&household.UpdatedTs,
			&household.Name,
			&household.Timezone,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan household")
		}
		list = append(list, &household)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) UpdateHousehold(ctx context.Context, update *store.UpdateHousehold) (*store.Household, error) {
	set, args := []string{}, []any{}
	if v := update.UpdatedTs; v != nil {
		set, args = append(set, "updated_ts = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.RowStatus; v != nil {
		set, args = append(set, "row_status = "+placeholder(len(args)+1)), append(args, v.String())
	}
	if v := update.Name; v != nil {
		set, args = append(set, "name = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Timezone; v != nil {
		set, args = append(set, "timezone = "+placeholder(len(args)+1)), append(args, *v)
	}
	args = append(args, update.ID)

	stmt := `UPDATE household SET ` + strings.Join(set, ", ") + `
		WHERE id = ` + placeholder(len(args)) + `
		RETURNING id, uid, row_status, created_ts, updated_ts, name, timezone`
	var household store.Household
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&household.ID,
		&household.UID,
		&household.RowStatus,
		&household.CreatedTs,
		&household.UpdatedTs,
		&household.Name,
		&household.Timezone,
	); err != nil {
		return nil, errors.Wrap(err, "failed to update household")
	}

	return &household, nil
}

func (d *DB) DeleteHousehold(ctx context.Context, delete *store.DeleteHousehold) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM household WHERE id = ?`, delete.ID); err != nil {
		return errors.Wrap(err, "failed to delete household")
	}
	return nil
}
