package postgres

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/hublie/hublie/store"
)

func (d *DB) CreateCaregiverAccess(ctx context.Context, create *store.CaregiverAccess) (*store.CaregiverAccess, error) {
	fields := []string{"household_id", "member_id", "code_hash", "sections", "expires_ts"}
	args := []any{create.HouseholdID, create.MemberID, create.CodeHash, create.Sections, create.ExpiresTs}

	stmt := `INSERT INTO caregiver_access (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
	); err != nil {
		return nil, errors.Wrap(err, "failed to create caregiver access")
	}

	return create, nil
}

func (d *DB) ListCaregiverAccesses(ctx context.Context, find *store.FindCaregiverAccess) ([]*store.CaregiverAccess, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.HouseholdID; v != nil {
		where, args = append(where, "household_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.MemberID; v != nil {
		where, args = append(where, "member_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, household_id, member_id, created_ts, code_hash, sections, expires_ts
		FROM caregiver_access
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_ts DESC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query caregiver accesses")
	}
	defer rows.Close()

	list := make([]*store.CaregiverAccess, 0)
	for rows.Next() {
		var access store.CaregiverAccess
		if err := rows.Scan(
			&access.ID,
			&access.HouseholdID,
			&access.MemberID,
			&access.CreatedTs,
			&access.CodeHash,
			&access.Sections,
			&access.ExpiresTs,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan caregiver access")
		}
		list = append(list, &access)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) DeleteCaregiverAccess(ctx context.Context, delete *store.DeleteCaregiverAccess) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM caregiver_access WHERE id = $1`, delete.ID); err != nil {
		return errors.Wrap(err, "failed to delete caregiver access")
	}
	return nil
}
