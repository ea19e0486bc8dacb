package file

import (
	"context"
	"strings"
	"sync"

	"petmate/internal/domain/medication"
)

const (
	schedulesFile = "med_schedule.json"
	adherenceFile = "med_log.json"
)

type scheduleRow struct {
	ID    string   `json:"id"`
	PetID string   `json:"pet_id"`
	Drug  string   `json:"drug"`
	Dose  string   `json:"dose"`
	Unit  string   `json:"unit"`
	Times []string `json:"times"`
	Start string   `json:"start"`
	End   string   `json:"end"`
	Notes string   `json:"notes"`
}

// adherenceDoc es el formato legado del archivo:
// "{pet_id}_{fecha}" -> "{schedule_id}_{hora}" -> timestamp.
// Los UUID no llevan "_", así que partir en el PRIMER "_" es inequívoco.
type adherenceDoc map[string]map[string]string

type MedicationRepo struct {
	store *Store

	mu        sync.Mutex
	schedules []scheduleRow
	adherence map[medication.DayKey]map[medication.CellKey]string
}

func NewMedicationRepo(store *Store) *MedicationRepo {
	r := &MedicationRepo{
		store:     store,
		schedules: []scheduleRow{},
		adherence: map[medication.DayKey]map[medication.CellKey]string{},
	}
	r.store.LoadJSON(schedulesFile, &r.schedules)
	if r.schedules == nil {
		r.schedules = []scheduleRow{}
	}

	var doc adherenceDoc
	if r.store.LoadJSON(adherenceFile, &doc) {
		r.adherence = fromAdherenceDoc(doc)
	}
	return r
}

func splitLegacyKey(key string) (string, string, bool) {
	i := strings.Index(key, "_")
	if i < 0 {
		return "", "", false
	}
	return key[:i], key[i+1:], true
}

func fromAdherenceDoc(doc adherenceDoc) map[medication.DayKey]map[medication.CellKey]string {
	out := map[medication.DayKey]map[medication.CellKey]string{}
	for dayKey, cells := range doc {
		petID, date, ok := splitLegacyKey(dayKey)
		if !ok {
			continue
		}
		day := medication.DayKey{PetID: petID, Date: date}
		for cellKey, stamp := range cells {
			schedID, tm, ok := splitLegacyKey(cellKey)
			if !ok {
				continue
			}
			if out[day] == nil {
				out[day] = map[medication.CellKey]string{}
			}
			out[day][medication.CellKey{ScheduleID: schedID, Time: tm}] = stamp
		}
	}
	return out
}

func toAdherenceDoc(m map[medication.DayKey]map[medication.CellKey]string) adherenceDoc {
	doc := adherenceDoc{}
	for day, cells := range m {
		dayKey := day.PetID + "_" + day.Date
		inner := map[string]string{}
		for cell, stamp := range cells {
			inner[cell.ScheduleID+"_"+cell.Time] = stamp
		}
		doc[dayKey] = inner
	}
	return doc
}

func (r *MedicationRepo) saveSchedules() error {
	return r.store.SaveJSON(schedulesFile, r.schedules)
}

func (r *MedicationRepo) saveAdherence() error {
	return r.store.SaveJSON(adherenceFile, toAdherenceDoc(r.adherence))
}

func toScheduleRow(s medication.Schedule) scheduleRow {
	return scheduleRow{
		ID:    s.ID,
		PetID: s.PetID,
		Drug:  s.Drug,
		Dose:  s.Dose,
		Unit:  s.Unit,
		Times: s.Times,
		Start: s.Start,
		End:   s.End,
		Notes: s.Notes,
	}
}

func (row scheduleRow) toSchedule() medication.Schedule {
	times := row.Times
	if times == nil {
		times = []string{}
	}
	return medication.Schedule{
		ID:    row.ID,
		PetID: row.PetID,
		Drug:  row.Drug,
		Dose:  row.Dose,
		Unit:  row.Unit,
		Times: times,
		Start: row.Start,
		End:   row.End,
		Notes: row.Notes,
	}
}

func (r *MedicationRepo) CreateSchedule(_ context.Context, s medication.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules = append(r.schedules, toScheduleRow(s))
	return r.saveSchedules()
}

func (r *MedicationRepo) DeleteSchedule(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.schedules {
		if row.ID == id {
			r.schedules = append(r.schedules[:i], r.schedules[i+1:]...)
			return r.saveSchedules()
		}
	}
	return nil
}

func (r *MedicationRepo) GetSchedule(_ context.Context, id string) (medication.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.schedules {
		if row.ID == id {
			return row.toSchedule(), nil
		}
	}
	return medication.Schedule{}, ErrNotFound
}

func (r *MedicationRepo) ListByPet(_ context.Context, petID string) ([]medication.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []medication.Schedule{}
	for _, row := range r.schedules {
		if row.PetID == petID {
			out = append(out, row.toSchedule())
		}
	}
	return out, nil
}

func (r *MedicationRepo) ListAll(_ context.Context) ([]medication.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]medication.Schedule, 0, len(r.schedules))
	for _, row := range r.schedules {
		out = append(out, row.toSchedule())
	}
	return out, nil
}

func (r *MedicationRepo) TakenFor(_ context.Context, day medication.DayKey) (map[medication.CellKey]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[medication.CellKey]string{}
	for cell, stamp := range r.adherence[day] {
		out[cell] = stamp
	}
	return out, nil
}

func (r *MedicationRepo) MarkTaken(_ context.Context, day medication.DayKey, cell medication.CellKey, takenAt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.adherence[day] == nil {
		r.adherence[day] = map[medication.CellKey]string{}
	}
	r.adherence[day][cell] = takenAt
	return r.saveAdherence()
}

func (r *MedicationRepo) Unmark(_ context.Context, day medication.DayKey, cell medication.CellKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cells, ok := r.adherence[day]
	if !ok {
		return nil
	}
	if _, ok := cells[cell]; !ok {
		return nil
	}
	delete(cells, cell)
	if len(cells) == 0 {
		delete(r.adherence, day)
	}
	return r.saveAdherence()
}

func (r *MedicationRepo) PurgeAdherence(_ context.Context, petID, scheduleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	changed := false
	for day, cells := range r.adherence {
		if day.PetID != petID {
			continue
		}
		for cell := range cells {
			if cell.ScheduleID == scheduleID {
				delete(cells, cell)
				changed = true
			}
		}
		if len(cells) == 0 {
			delete(r.adherence, day)
		}
	}
	if !changed {
		return nil
	}
	return r.saveAdherence()
}

func (r *MedicationRepo) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules = []scheduleRow{}
	r.adherence = map[medication.DayKey]map[medication.CellKey]string{}
	if err := r.saveSchedules(); err != nil {
		return err
	}
	return r.saveAdherence()
}
