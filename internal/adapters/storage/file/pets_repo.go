package file

import (
	"context"
	"sync"

	"petmate/internal/domain/pets"
)

const petsFile = "pets.json"

type petRow struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Species  string  `json:"species"`
	Breed    string  `json:"breed"`
	Birth    string  `json:"birth"`
	WeightKg float64 `json:"weight_kg"`
	Notes    string  `json:"notes"`
}

type PetsRepo struct {
	store *Store

	mu   sync.Mutex
	rows []petRow
}

func NewPetsRepo(store *Store) *PetsRepo {
	r := &PetsRepo{store: store, rows: []petRow{}}
	r.store.LoadJSON(petsFile, &r.rows)
	if r.rows == nil {
		r.rows = []petRow{}
	}
	return r
}

func (r *PetsRepo) save() error {
	return r.store.SaveJSON(petsFile, r.rows)
}

func toPetRow(p pets.Pet) petRow {
	return petRow{
		ID:       p.ID,
		Name:     p.Name,
		Species:  p.Species,
		Breed:    p.Breed,
		Birth:    p.Birth,
		WeightKg: p.WeightKg,
		Notes:    p.Notes,
	}
}

func (row petRow) toPet() pets.Pet {
	return pets.Pet{
		ID:       row.ID,
		Name:     row.Name,
		Species:  row.Species,
		Breed:    row.Breed,
		Birth:    row.Birth,
		WeightKg: row.WeightKg,
		Notes:    row.Notes,
	}
}

func (r *PetsRepo) Create(_ context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, toPetRow(p))
	return r.save()
}

func (r *PetsRepo) Update(_ context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == p.ID {
			r.rows[i] = toPetRow(p)
			return r.save()
		}
	}
	return ErrNotFound
}

func (r *PetsRepo) Delete(_ context.Context, id string) error {
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

func (r *PetsRepo) GetByID(_ context.Context, id string) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ID == id {
			return row.toPet(), nil
		}
	}
	return pets.Pet{}, ErrNotFound
}

func (r *PetsRepo) List(_ context.Context) ([]pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]pets.Pet, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, row.toPet())
	}
	return out, nil
}

func (r *PetsRepo) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = []petRow{}
	return r.save()
}
