package postgres

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/hublie/hublie/store"
)

func (d *DB) CreateMember(ctx context.Context, create *store.Member) (*store.Member, error) {
	fields := []string{"uid", "household_id", "name", "role", "color"}
	args := []any{create.UID, create.HouseholdID, create.Name, string(create.Role), create.Color}

	stmt := `INSERT INTO member (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts, updated_ts, row_status`
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
		&create.RowStatus,
	); err != nil {
		return nil, errors.Wrap(err, "failed to create member")
	}

	return create, nil
}

func (d *DB) ListMembers(ctx context.Context, find *store.FindMember) ([]*store.Member, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.HouseholdID; v != nil {
		where, args = append(where, "household_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Role; v != nil {
		where, args = append(where, "role = "+placeholder(len(args)+1)), append(args, string(*v))
	}
	if v := find.RowStatus; v != nil {
		where, args = append(where, "row_status = "+placeholder(len(args)+1)), append(args, v.String())
	}

	query := `
		SELECT id, uid, household_id, row_status, created_ts, updated_ts, name, role, color
		FROM member
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_ts ASC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query members")
	}
	defer rows.Close()

	list := make([]*store.Member, 0)
	for rows.Next() {
		var member store.Member
		var role string
		if err := rows.Scan(
			&member.ID,
			&member.UID,
			&member.HouseholdID,
			&member.RowStatus,
			&member.CreatedTs,
			&member.UpdatedTs,
			&member.Name,
			&role,
			&member.Color,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan member")
		}
		member.Role = store.Role(role)
		list = append(list, &member)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) UpdateMember(ctx context.Context, update *store.UpdateMember) (*store.Member, error) {
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
	if v := update.Role; v != nil {
		set, args = append(set, "role = "+placeholder(len(args)+1)), append(args, string(*v))
	}
	if v := update.Color; v != nil {
		set, args = append(set, "color = "+placeholder(len(args)+1)), append(args, *v)
	}
	args = append(args, update.ID)

	stmt := `UPDATE member SET ` + strings.Join(set, ", ") + `
		WHERE id = ` + placeholder(len(args)) + `
		RETURNING id, uid, household_id, row_status, created_ts, updated_ts, name, role, color`
	var member store.Member
	var role string
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&member.ID,
		&member.UID,
		&member.HouseholdID,
		&member.RowStatus,
		&member.CreatedTs,
		&member.UpdatedTs,
		&member.Name,
		&role,
		&member.Color,
	); err != nil {
		return nil, errors.Wrap(err, "failed to update member")
	}
	member.Role = store.Role(role)

	return &member, nil
}

func (d *DB) DeleteMember(ctx context.Context, delete *store.DeleteMember) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM member WHERE id = $1`, delete.ID); err != nil {
		return errors.Wrap(err, "failed to delete member")
	}
	return nil
}
