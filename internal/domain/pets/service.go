package pets

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Input trae todos los campos editables del perfil.
type Input struct {
	Name     string
	Species  string
	Breed    string
	Birth    string
	WeightKg float64
	Notes    string
}

func (s *Service) Create(ctx context.Context, in Input) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.WeightKg < 0 {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(in.Name),
		Species:  strings.TrimSpace(in.Species),
		Breed:    strings.TrimSpace(in.Breed),
		Birth:    strings.TrimSpace(in.Birth),
		WeightKg: in.WeightKg,
		Notes:    strings.TrimSpace(in.Notes),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Update sobreescribe el registro completo; el id es la única clave de lookup.
func (s *Service) Update(ctx context.Context, id string, in Input) (Pet, error) {
	current, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Pet{}, ErrNotFound
	}

	p := Pet{
		ID:       current.ID,
		Name:     strings.TrimSpace(in.Name),
		Species:  strings.TrimSpace(in.Species),
		Breed:    strings.TrimSpace(in.Breed),
		Birth:    strings.TrimSpace(in.Birth),
		WeightKg: in.WeightKg,
		Notes:    strings.TrimSpace(in.Notes),
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Delete borra el perfil; no hay cascada sobre consumos, medicación ni
// hospital. Borrar un id inexistente es éxito silencioso.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}
