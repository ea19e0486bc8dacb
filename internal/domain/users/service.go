package users

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// IsAdmin: único rol del sistema, por username literal.
func IsAdmin(username string) bool { return username == "admin" }

// Signup registra una credencial nueva. El username se guarda recortado;
// el match de duplicados es exacto y case-sensitive.
func (s *Service) Signup(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return ErrInvalidInput
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return ErrDuplicateUsername
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	return s.repo.Create(ctx, User{Username: username, PasswordHash: hash})
}

func (s *Service) Login(ctx context.Context, username, password string) (User, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return User{}, ErrInvalidCredentials
	}
	if !CheckPassword(password, u.PasswordHash) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Delete borra solo la credencial; los datos de dominio del usuario
// quedan huérfanos a propósito (mismo criterio que el borrado de mascotas).
func (s *Service) Delete(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrInvalidInput
	}
	if _, err := s.repo.GetByUsername(ctx, username); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, username)
}
