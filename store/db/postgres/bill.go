package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/hublie/hublie/store"
)

func (d *DB) CreateBill(ctx context.Context, create *store.Bill) (*store.Bill, error) {
	fields := []string{"uid", "household_id", "name", "amount_cents", "currency", "payee", "due_ts", "autopay", "paid", "paid_ts"}
	args := []any{create.UID, create.HouseholdID, create.Name, create.AmountCents, create.Currency, create.Payee, create.DueTs, create.Autopay, create.Paid, create.PaidTs}

	stmt := `INSERT INTO bill (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts, updated_ts, row_status`
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
		&create.RowStatus,
	); err != nil {
		return nil, errors.Wrap(err, "failed to create bill")
	}

	return create, nil
}

func (d *DB) ListBills(ctx context.Context, find *store.FindBill) ([]*store.Bill, error) {
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
	if v := find.Paid; v != nil {
		where, args = append(where, "paid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.DueBefore; v != nil {
		where, args = append(where, "due_ts < "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.RowStatus; v != nil {
		where, args = append(where, "row_status = "+placeholder(len(args)+1)), append(args, v.String())
	}

	query := `
		SELECT id, uid, household_id, row_status, created_ts, updated_ts,
			name, amount_cents, currency, payee, due_ts, autopay, paid, paid_ts
		FROM bill
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY due_ts ASC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query bills")
	}
	defer rows.Close()

	list := make([]*store.Bill, 0)
	for rows.Next() {
		var bill store.Bill
		var paidTs sql.NullInt64
		if err := rows.Scan(
			&bill.ID,
			&bill.UID,
			&bill.HouseholdID,
			&bill.RowStatus,
			&bill.CreatedTs,
			&bill.UpdatedTs,
			&bill.Name,
			&bill.AmountCents,
			&bill.Currency,
			&bill.Payee,
			&bill.DueTs,
			&bill.Autopay,
			&bill.Paid,
			&paidTs,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan bill")
		}
		if paidTs.Valid {
			bill.PaidTs = &paidTs.Int64
		}
		list = append(list, &bill)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) UpdateBill(ctx context.Context, update *store.UpdateBill) (*store.Bill, error) {
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
	if v := update.AmountCents; v != nil {
		set, args = append(set, "amount_cents = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Currency; v != nil {
		set, args = append(set, "currency = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Payee; v != nil {
		set, args = append(set, "payee = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.DueTs; v != nil {
		set, args = append(set, "due_ts = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Autopay; v != nil {
		set, args = append(set, "autopay = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Paid; v != nil {
		set, args = append(set, "paid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.PaidTs; v != nil {
		set, args = append(set, "paid_ts = "+placeholder(len(args)+1)), append(args, *v)
	}
	args = append(args, update.ID)

	stmt := `UPDATE bill SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args))
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return nil, errors.Wrap(err, "failed to update bill")
	}

	list, err := d.ListBills(ctx, &store.FindBill{ID: &update.ID})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, errors.Errorf("bill %d not found", update.ID)
	}
	return list[0], nil
}

func (d *DB) DeleteBill(ctx context.Context, delete *store.DeleteBill) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM bill WHERE id = $1`, delete.ID); err != nil {
		return errors.Wrap(err, "failed to delete bill")
	}
	return nil
}
