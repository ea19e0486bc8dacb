package file

import (
	"context"
	"sync"

	"petmate/internal/domain/unsafedb"
)

const unsafeFile = "unsafe_db.json"

type unsafeRow struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Risk     string `json:"risk"`
	Why      string `json:"why"`
}

type UnsafeRepo struct {
	store *Store

	mu   sync.Mutex
	rows []unsafeRow
}

// NewUnsafeRepo siembra el catálogo por defecto si no hay archivo; la
// semilla no se escribe a disco hasta la primera mutación.
func NewUnsafeRepo(store *Store) *UnsafeRepo {
	r := &UnsafeRepo{store: store}
	if !r.store.LoadJSON(unsafeFile, &r.rows) || r.rows == nil {
		r.rows = toUnsafeRows(unsafedb.Defaults())
	}
	return r
}

func toUnsafeRows(items []unsafedb.Item) []unsafeRow {
	rows := make([]unsafeRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, unsafeRow(it))
	}
	return rows
}

func (r *UnsafeRepo) save() error {
	return r.store.SaveJSON(unsafeFile, r.rows)
}

func (r *UnsafeRepo) Add(_ context.Context, it unsafedb.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, unsafeRow(it))
	return r.save()
}

func (r *UnsafeRepo) List(_ context.Context) ([]unsafedb.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]unsafedb.Item, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, unsafedb.Item(row))
	}
	return out, nil
}

func (r *UnsafeRepo) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = toUnsafeRows(unsafedb.ResetDefaults())
	return r.save()
}
