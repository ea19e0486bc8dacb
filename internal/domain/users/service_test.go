package users

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	rows []User
}

func newTestRepo() *testRepo {
	return &testRepo{rows: []User{}}
}

func (r *testRepo) Create(_ context.Context, u User) error {
	r.rows = append(r.rows, u)
	return nil
}

func (r *testRepo) GetByUsername(_ context.Context, username string) (User, error) {
	for _, u := range r.rows {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, errRepoNotFound
}

func (r *testRepo) List(_ context.Context) ([]User, error) {
	return append([]User{}, r.rows...), nil
}

func (r *testRepo) Delete(_ context.Context, username string) error {
	for i, u := range r.rows {
		if u.Username == username {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestSignup_TrimsAndHashes(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Signup(ctx, "  mina  ", "secret123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := repo.GetByUsername(ctx, "mina")
	if err != nil {
		t.Fatalf("expected user stored under trimmed name: %v", err)
	}
	if u.PasswordHash == "secret123" {
		t.Fatal("password stored in plain text")
	}
	if !strings.HasPrefix(u.PasswordHash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", u.PasswordHash)
	}
}

func TestSignup_RejectsDuplicates(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	if err := svc.Signup(ctx, "mina", "secret123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Signup(ctx, "mina", "otherpass"); err != ErrDuplicateUsername {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestSignup_RejectsBlankInput(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	for _, tc := range [][2]string{{"", "pw"}, {"  ", "pw"}, {"user", ""}, {"user", "   "}} {
		if err := svc.Signup(ctx, tc[0], tc[1]); err != ErrInvalidInput {
			t.Fatalf("signup(%q, %q): expected ErrInvalidInput, got %v", tc[0], tc[1], err)
		}
	}
}

func TestLogin_BcryptAndLegacyHashes(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Signup(ctx, "mina", "secret123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// usuario legado con sha256 hex sin salt
	sum := sha256.Sum256([]byte("legacy-pw"))
	repo.rows = append(repo.rows, User{Username: "viejo", PasswordHash: hex.EncodeToString(sum[:])})

	if _, err := svc.Login(ctx, "mina", "secret123"); err != nil {
		t.Fatalf("bcrypt login failed: %v", err)
	}
	if _, err := svc.Login(ctx, "viejo", "legacy-pw"); err != nil {
		t.Fatalf("legacy login failed: %v", err)
	}

	if _, err := svc.Login(ctx, "mina", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "nadie", "secret123"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestDelete_UnknownUserIsNotFound(t *testing.T) {
	svc := NewService(newTestRepo())
	if err := svc.Delete(context.Background(), "nadie"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIsAdmin_LiteralUsername(t *testing.T) {
	if !IsAdmin("admin") {
		t.Fatal("admin should be admin")
	}
	for _, name := range []string{"Admin", "admin ", "root", ""} {
		if IsAdmin(name) {
			t.Fatalf("%q should not be admin", name)
		}
	}
}
