package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"petmate/internal/domain/medication"
)

type MedicationRepo struct {
	db *sql.DB
}

func NewMedicationRepo(db *sql.DB) *MedicationRepo {
	return &MedicationRepo{db: db}
}

// times va como JSON en una columna de texto: conserva orden y
// duplicados, que un array normalizado con PK perdería.
func encodeTimes(times []string) (string, error) {
	if times == nil {
		times = []string{}
	}
	raw, err := json.Marshal(times)
	return string(raw), err
}

func decodeTimes(raw string) []string {
	var times []string
	if err := json.Unmarshal([]byte(raw), &times); err != nil || times == nil {
		return []string{}
	}
	return times
}

func (r *MedicationRepo) CreateSchedule(ctx context.Context, s medication.Schedule) error {
	times, err := encodeTimes(s.Times)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO med_schedules (id, pet_id, drug, dose, unit, times, start_date, end_date, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		s.ID,
		s.PetID,
		s.Drug,
		s.Dose,
		s.Unit,
		times,
		s.Start,
		s.End,
		s.Notes,
	)
	return err
}

func (r *MedicationRepo) DeleteSchedule(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM med_schedules WHERE id = $1`, id)
	return err
}

func (r *MedicationRepo) GetSchedule(ctx context.Context, id string) (medication.Schedule, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, drug, dose, unit, times, start_date, end_date, notes
		FROM med_schedules
		WHERE id = $1
	`, id)

	s, err := scanSchedule(row)
	if err == sql.ErrNoRows {
		return medication.Schedule{}, ErrNotFound
	}
	return s, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row rowScanner) (medication.Schedule, error) {
	var s medication.Schedule
	var times string
	if err := row.Scan(
		&s.ID,
		&s.PetID,
		&s.Drug,
		&s.Dose,
		&s.Unit,
		&times,
		&s.Start,
		&s.End,
		&s.Notes,
	); err != nil {
		return medication.Schedule{}, err
	}
	s.Times = decodeTimes(times)
	return s, nil
}

func (r *MedicationRepo) listSchedules(ctx context.Context, query string, args ...any) ([]medication.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medication.Schedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *MedicationRepo) ListByPet(ctx context.Context, petID string) ([]medication.Schedule, error) {
	return r.listSchedules(ctx, `
		SELECT id, pet_id, drug, dose, unit, times, start_date, end_date, notes
		FROM med_schedules
		WHERE pet_id = $1
		ORDER BY pos ASC
	`, petID)
}

func (r *MedicationRepo) ListAll(ctx context.Context) ([]medication.Schedule, error) {
	return r.listSchedules(ctx, `
		SELECT id, pet_id, drug, dose, unit, times, start_date, end_date, notes
		FROM med_schedules
		ORDER BY pos ASC
	`)
}

func (r *MedicationRepo) TakenFor(ctx context.Context, day medication.DayKey) (map[medication.CellKey]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT schedule_id, dose_time, taken_at
		FROM med_adherence
		WHERE pet_id = $1 AND log_date = $2
	`, day.PetID, day.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[medication.CellKey]string{}
	for rows.Next() {
		var cell medication.CellKey
		var stamp string
		if err := rows.Scan(&cell.ScheduleID, &cell.Time, &stamp); err != nil {
			return nil, err
		}
		out[cell] = stamp
	}
	return out, rows.Err()
}

func (r *MedicationRepo) MarkTaken(ctx context.Context, day medication.DayKey, cell medication.CellKey, takenAt string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO med_adherence (pet_id, log_date, schedule_id, dose_time, taken_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (pet_id, log_date, schedule_id, dose_time)
		DO UPDATE SET taken_at = EXCLUDED.taken_at
	`, day.PetID, day.Date, cell.ScheduleID, cell.Time, takenAt)
	return err
}

func (r *MedicationRepo) Unmark(ctx context.Context, day medication.DayKey, cell medication.CellKey) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM med_adherence
		WHERE pet_id = $1 AND log_date = $2 AND schedule_id = $3 AND dose_time = $4
	`, day.PetID, day.Date, cell.ScheduleID, cell.Time)
	return err
}

func (r *MedicationRepo) PurgeAdherence(ctx context.Context, petID, scheduleID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM med_adherence WHERE pet_id = $1 AND schedule_id = $2
	`, petID, scheduleID)
	return err
}

func (r *MedicationRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM med_adherence`); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM med_schedules`)
	return err
}
