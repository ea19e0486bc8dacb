package hospital

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"petmate/internal/platform/civil"
)

var ErrInvalidInput = errors.New("invalid input")

// Hora por defecto del formulario original.
const defaultTime = "10:00"

type Service struct {
	repo  Repository
	today func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		today: civil.Today,
	}
}

type AddInput struct {
	PetID string
	Title string
	Date  string // YYYY-MM-DD; vacío = hoy
	Time  string // HH:MM u HH:MM:SS; vacío = 10:00
	Place string
	Notes string
}

// Add combina fecha y hora en un único string ISO.
func (s *Service) Add(ctx context.Context, in AddInput) (Event, error) {
	title := strings.TrimSpace(in.Title)
	if strings.TrimSpace(in.PetID) == "" || title == "" {
		return Event{}, ErrInvalidInput
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.today()
	}
	tm := strings.TrimSpace(in.Time)
	if tm == "" {
		tm = defaultTime
	}
	dt := date + "T" + tm
	if len(tm) == len("15:04") {
		dt += ":00"
	}

	e := Event{
		ID:    uuid.NewString(),
		PetID: strings.TrimSpace(in.PetID),
		Title: title,
		DT:    dt,
		Place: strings.TrimSpace(in.Place),
		Notes: strings.TrimSpace(in.Notes),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Event, error) {
	return s.repo.ListByPet(ctx, petID)
}

// OnDate filtra por prefijo de fecha sobre el string dt (no por igualdad
// de datetime parseado): mismo criterio que el original en bordes de día.
func (s *Service) OnDate(ctx context.Context, petID, date string) ([]Event, error) {
	if strings.TrimSpace(date) == "" {
		date = s.today()
	}

	items, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}

	out := make([]Event, 0)
	for _, e := range items {
		if strings.HasPrefix(e.DT, date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Service) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}
