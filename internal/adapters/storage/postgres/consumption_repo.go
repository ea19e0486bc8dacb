package postgres

import (
	"context"
	"database/sql"

	"petmate/internal/domain/consumption"
)

type ConsumptionRepo struct {
	db *sql.DB
}

func NewConsumptionRepo(db *sql.DB) *ConsumptionRepo {
	return &ConsumptionRepo{db: db}
}

func (r *ConsumptionRepo) Append(ctx context.Context, t consumption.Table, e consumption.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO consumption_logs (log_id, tbl, pet_id, log_date, amount, memo)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		e.LogID,
		string(t),
		e.PetID,
		e.Date,
		e.Amount,
		e.Memo,
	)
	return err
}

func (r *ConsumptionRepo) Delete(ctx context.Context, t consumption.Table, logID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM consumption_logs WHERE tbl = $1 AND log_id = $2
	`, string(t), logID)
	return err
}

func (r *ConsumptionRepo) ListRange(ctx context.Context, t consumption.Table, petID, from, to string) ([]consumption.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT log_id, pet_id, log_date, amount, memo
		FROM consumption_logs
		WHERE tbl = $1 AND pet_id = $2 AND log_date >= $3 AND log_date <= $4
		ORDER BY pos ASC
	`, string(t), petID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]consumption.Entry, 0)
	for rows.Next() {
		var e consumption.Entry
		if err := rows.Scan(&e.LogID, &e.PetID, &e.Date, &e.Amount, &e.Memo); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ConsumptionRepo) SumOnDate(ctx context.Context, t consumption.Table, petID, date string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM consumption_logs
		WHERE tbl = $1 AND pet_id = $2 AND log_date = $3
	`, string(t), petID, date)

	var total int
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ConsumptionRepo) Count(ctx context.Context, t consumption.Table) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM consumption_logs WHERE tbl = $1
	`, string(t))

	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *ConsumptionRepo) Reset(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM consumption_logs`)
	return err
}
