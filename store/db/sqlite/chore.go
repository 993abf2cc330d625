package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/hublie/hublie/store"
)

func (d *DB) CreateChore(ctx context.Context, create *store.Chore) (*store.Chore, error) {
	fields := []string{"uid", "household_id", "title", "description", "assignee_id", "points", "due_ts", "recurrence", "status"}
	args := []any{create.UID, create.HouseholdID, create.Title, create.Description, create.AssigneeID, create.Points, create.DueTs, create.Recurrence, create.Status}

	stmt := `INSERT INTO chore (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts, updated_ts, row_status`
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
		&create.RowStatus,
	); err != nil {
		return nil, errors.Wrap(err, "failed to create chore")
	}

	return create, nil
}

func (d *DB) ListChores(ctx context.Context, find *store.FindChore) ([]*store.Chore, error) {
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
	if v := find.AssigneeID; v != nil {
		where, args = append(where, "assignee_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Status; v != nil {
		where, args = append(where, "status = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.RowStatus; v != nil {
		where, args = append(where, "row_status = "+placeholder(len(args)+1)), append(args, v.String())
	}
	if v := find.Recurring; v != nil {
		if *v {
			where = append(where, "recurrence IS NOT NULL")
		} else {
			where = append(where, "recurrence IS NULL")
		}
	}

	query := `
		SELECT id, uid, household_id, row_status, created_ts, updated_ts,
			title, description, assignee_id, points, due_ts, recurrence, status
		FROM chore
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY due_ts IS NULL, due_ts ASC, created_ts DESC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query chores")
	}
	defer rows.Close()

	list := make([]*store.Chore, 0)
	for rows.Next() {
		var chore store.Chore
		var assigneeID sql.NullInt32
		var dueTs sql.NullInt64
		var recurrence sql.NullString
		if err := rows.Scan(
			&chore.ID,
			&chore.UID,
			&chore.HouseholdID,
			&chore.RowStatus,
			&chore.CreatedTs,
			&chore.UpdatedTs,
			&chore.Title,
			&chore.Description,
			&assigneeID,
			&chore.Points,
			&dueTs,
			&recurrence,
			&chore.Status,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan chore")
		}
		if assigneeID.Valid {
			chore.AssigneeID = &assigneeID.Int32
		}
		if dueTs.Valid {
			chore.DueTs = &dueTs.Int64
		}
		if recurrence.Valid {
			chore.Recurrence = &recurrence.String
		}
		list = append(list, &chore)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) UpdateChore(ctx context.Context, update *store.UpdateChore) (*store.Chore, error) {
	set, args := []string{}, []any{}
	if v := update.UpdatedTs; v != nil {
		set, args = append(set, "updated_ts = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.RowStatus; v != nil {
		set, args = append(set, "row_status = "+placeholder(len(args)+1)), append(args, v.String())
	}
	if v := update.Title; v != nil {
		set, args = append(set, "title = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Description; v != nil {
		set, args = append(set, "description = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.AssigneeID; v != nil {
		set, args = append(set, "assignee_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Points; v != nil {
		set, args = append(set, "points = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.DueTs; v != nil {
		set, args = append(set, "due_ts = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Recurrence; v != nil {
		set, args = append(set, "recurrence = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Status; v != nil {
		set, args = append(set, "status = "+placeholder(len(args)+1)), append(args, *v)
	}
	args = append(args, update.ID)

	stmt := `UPDATE chore SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args))
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return nil, errors.Wrap(err, "failed to update chore")
	}

	list, err := d.ListChores(ctx, &store.FindChore{ID: &update.ID})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, errors.Errorf("chore %d not found", update.ID)
	}
	return list[0], nil
}

func (d *DB) DeleteChore(ctx context.Context, delete *store.DeleteChore) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM chore WHERE id = ?`, delete.ID); err != nil {
		return errors.Wrap(err, "failed to delete chore")
	}
	return nil
}

func (d *DB) CreateChoreCompletion(ctx context.Context, create *store.ChoreCompletion) (*store.ChoreCompletion, error) {
	fields := []string{"household_id", "chore_id", "member_id", "points"}
	args := []any{create.HouseholdID, create.ChoreID, create.MemberID, create.Points}
	if create.CompletedTs != 0 {
		fields = append(fields, "completed_ts")
		args = append(args, create.CompletedTs)
	}

	stmt := `INSERT INTO chore_completion (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, completed_ts`
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CompletedTs,
	); err != nil {
		return nil, errors.Wrap(err, "failed to create chore completion")
	}

	return create, nil
}

func (d *DB) ListChoreCompletions(ctx context.Context, find *store.FindChoreCompletion) ([]*store.ChoreCompletion, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.HouseholdID; v != nil {
		where, args = append(where, "household_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.ChoreID; v != nil {
		where, args = append(where, "chore_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.MemberID; v != nil {
		where, args = append(where, "member_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.CompletedTsAfter; v != nil {
		where, args = append(where, "completed_ts >= "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.CompletedTsBefore; v != nil {
		where, args = append(where, "completed_ts < "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, household_id, chore_id, member_id, points, completed_ts
		FROM chore_completion
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY completed_ts DESC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query chore completions")
	}
	defer rows.Close()

	list := make([]*store.ChoreCompletion, 0)
	for rows.Next() {
		var completion store.ChoreCompletion
		if err := rows.Scan(
			&completion.ID,
			&completion.HouseholdID,
			&completion.ChoreID,
			&completion.MemberID,
			&completion.Points,
			&completion.CompletedTs,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan chore completion")
		}
		list = append(list, &completion)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
