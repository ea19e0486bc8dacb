package postgres

import (
	"context"
	"database/sql"

	"petmate/internal/domain/hospital"
)

type HospitalRepo struct {
	db *sql.DB
}

func NewHospitalRepo(db *sql.DB) *HospitalRepo {
	return &HospitalRepo{db: db}
}

func (r *HospitalRepo) Create(ctx context.Context, e hospital.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO hospital_events (id, pet_id, title, dt, place, notes)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		e.ID,
		e.PetID,
		e.Title,
		e.DT,
		e.Place,
		e.Notes,
	)
	return err
}

func (r *HospitalRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM hospital_events WHERE id = $1`, id)
	return err
}

func (r *HospitalRepo) ListByPet(ctx context.Context, petID string) ([]hospital.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, title, dt, place, notes
		FROM hospital_events
		WHERE pet_id = $1
		ORDER BY dt ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]hospital.Event, 0)
	for rows.Next() {
		var e hospital.Event
		if err := rows.Scan(&e.ID, &e.PetID, &e.Title, &e.DT, &e.Place, &e.Notes); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *HospitalRepo) Reset(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM hospital_events`)
	return err
}
