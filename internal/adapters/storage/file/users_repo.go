package file

import (
	"context"
	"sync"

	"petmate/internal/domain/users"
)

const usersFile = "users.json"

// userRow conserva los nombres de campo del archivo original; "password"
// guarda el hash, no la clave en claro.
type userRow struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UsersRepo struct {
	store *Store

	mu   sync.Mutex
	rows []userRow
}

func NewUsersRepo(store *Store) *UsersRepo {
	r := &UsersRepo{store: store, rows: []userRow{}}
	r.store.LoadJSON(usersFile, &r.rows)
	if r.rows == nil {
		r.rows = []userRow{}
	}
	return r
}

func (r *UsersRepo) save() error {
	return r.store.SaveJSON(usersFile, r.rows)
}

func (r *UsersRepo) Create(_ context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Username == u.Username {
			return ErrDuplicate
		}
	}
	r.rows = append(r.rows, userRow{Username: u.Username, Password: u.PasswordHash})
	return r.save()
}

func (r *UsersRepo) GetByUsername(_ context.Context, username string) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Username == username {
			return users.User{Username: row.Username, PasswordHash: row.Password}, nil
		}
	}
	return users.User{}, ErrNotFound
}

func (r *UsersRepo) List(_ context.Context) ([]users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]users.User, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, users.User{Username: row.Username, PasswordHash: row.Password})
	}
	return out, nil
}

func (r *UsersRepo) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.Username == username {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return r.save()
		}
	}
	return nil
}
