package file

import (
	"context"
	"sort"
	"sync"

	"petmate/internal/domain/hospital"
)

const eventsFile = "hospital_events.json"

type eventRow struct {
	ID    string `json:"id"`
	PetID string `json:"pet_id"`
	Title string `json:"title"`
	DT    string `json:"dt"`
	Place string `json:"place"`
	Notes string `json:"notes"`
}

type HospitalRepo struct {
	store *Store

	mu   sync.Mutex
	rows []eventRow
}

func NewHospitalRepo(store *Store) *HospitalRepo {
	r := &HospitalRepo{store: store, rows: []eventRow{}}
	r.store.LoadJSON(eventsFile, &r.rows)
	if r.rows == nil {
		r.rows = []eventRow{}
	}
	return r
}

func (r *HospitalRepo) save() error {
	return r.store.SaveJSON(eventsFile, r.rows)
}

func (r *HospitalRepo) Create(_ context.Context, e hospital.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, eventRow{
		ID:    e.ID,
		PetID: e.PetID,
		Title: e.Title,
		DT:    e.DT,
		Place: e.Place,
		Notes: e.Notes,
	})
	return r.save()
}

func (r *HospitalRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return r.save()
		}
	}
	return nil
}

func (r *HospitalRepo) ListByPet(_ context.Context, petID string) ([]hospital.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []hospital.Event{}
	for _, row := range r.rows {
		if row.PetID == petID {
			out = append(out, hospital.Event{
				ID:    row.ID,
				PetID: row.PetID,
				Title: row.Title,
				DT:    row.DT,
				Place: row.Place,
				Notes: row.Notes,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DT < out[j].DT })
	return out, nil
}

func (r *HospitalRepo) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = []eventRow{}
	return r.save()
}
