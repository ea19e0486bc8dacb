package postgres

import (
	"context"
	"database/sql"

	"petmate/internal/domain/unsafedb"
)

type UnsafeRepo struct {
	db *sql.DB
}

func NewUnsafeRepo(db *sql.DB) *UnsafeRepo {
	return &UnsafeRepo{db: db}
}

func (r *UnsafeRepo) Add(ctx context.Context, it unsafedb.Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO unsafe_items (category, name, risk, why)
		VALUES ($1,$2,$3,$4)
	`, it.Category, it.Name, it.Risk, it.Why)
	return err
}

func (r *UnsafeRepo) List(ctx context.Context) ([]unsafedb.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT category, name, risk, why
		FROM unsafe_items
		ORDER BY pos ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]unsafedb.Item, 0)
	for rows.Next() {
		var it unsafedb.Item
		if err := rows.Scan(&it.Category, &it.Name, &it.Risk, &it.Why); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Reset deja el catálogo con su fila semilla, en una transacción para
// no exponer el catálogo vacío.
func (r *UnsafeRepo) Reset(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM unsafe_items`); err != nil {
		return err
	}
	for _, it := range unsafedb.ResetDefaults() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO unsafe_items (category, name, risk, why)
			VALUES ($1,$2,$3,$4)
		`, it.Category, it.Name, it.Risk, it.Why); err != nil {
			return err
		}
	}
	return tx.Commit()
}
