package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/hublie/hublie/store"
)

func (d *DB) CreateCalendarEvent(ctx context.Context, create *store.CalendarEvent) (*store.CalendarEvent, error) {
	fields := []string{"uid", "household_id", "creator_id", "title", "category", "start_ts", "end_ts", "all_day", "location", "source"}
	args := []any{create.UID, create.HouseholdID, create.CreatorID, create.Title, create.Category, create.StartTs, create.EndTs, create.AllDay, create.Location, create.Source}

	stmt := `INSERT INTO calendar_event (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts, updated_ts, row_status`
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
		&create.RowStatus,
	); err != nil {
		return nil, errors.Wrap(err, "failed to create calendar event")
	}

	return create, nil
}

func (d *DB) ListCalendarEvents(ctx context.Context, find *store.FindCalendarEvent) ([]*store.CalendarEvent, error) {
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
	if v := find.Category; v != nil {
		where, args = append(where, "category = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.RowStatus; v != nil {
		where, args = append(where, "row_status = "+placeholder(len(args)+1)), append(args, v.String())
	}
	// Range filters select events overlapping [StartTs, EndTs).
	if v := find.EndTs; v != nil {
		where, args = append(where, "start_ts < "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.StartTs; v != nil {
		where, args = append(where, "(end_ts > "+placeholder(len(args)+1)+" OR end_ts IS NULL)"), append(args, *v)
	}

	query := `
		SELECT id, uid, household_id, creator_id, row_status, created_ts, updated_ts,
			title, category, start_ts, end_ts, all_day, location, source
		FROM calendar_event
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY start_ts ASC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query calendar events")
	}
	defer rows.Close()

	list := make([]*store.CalendarEvent, 0)
	for rows.Next() {
		var event store.CalendarEvent
		var endTs sql.NullInt64
		if err := rows.Scan(
			&event.ID,
			&event.UID,
			&event.HouseholdID,
			&event.CreatorID,
			&event.RowStatus,
			&event.CreatedTs,
			&event.UpdatedTs,
			&event.Title,
			&event.Category,
			&event.StartTs,
			&endTs,
			&event.AllDay,
			&event.Location,
			&event.Source,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan calendar event")
		}
		if endTs.Valid {
			event.EndTs = &endTs.Int64
		}
		list = append(list, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) UpdateCalendarEvent(ctx context.Context, update *store.UpdateCalendarEvent) (*store.CalendarEvent, error) {
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
	if v := update.Category; v != nil {
		set, args = append(set, "category = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.StartTs; v != nil {
		set, args = append(set, "start_ts = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.EndTs; v != nil {
		set, args = append(set, "end_ts = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.AllDay; v != nil {
		set, args = append(set, "all_day = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Location; v != nil {
		set, args = append(set, "location = "+placeholder(len(args)+1)), append(args, *v)
	}
	args = append(args, update.ID)

	stmt := `UPDATE calendar_event SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args))
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return nil, errors.Wrap(err, "failed to update calendar event")
	}

	list, err := d.ListCalendarEvents(ctx, &store.FindCalendarEvent{ID: &update.ID})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, errors.Errorf("calendar event %d not found", update.ID)
	}
	return list[0], nil
}

func (d *DB) DeleteCalendarEvent(ctx context.Context, delete *store.DeleteCalendarEvent) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM calendar_event WHERE id = $1`, delete.ID); err != nil {
		return errors.Wrap(err, "failed to delete calendar event")
	}
	return nil
}
