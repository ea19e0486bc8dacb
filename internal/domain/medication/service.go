package medication

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"petmate/internal/platform/civil"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo     Repository
	today    func() string
	nowStamp func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		today:    civil.Today,
		nowStamp: civil.NowStamp,
	}
}

type AddInput struct {
	PetID string
	Drug  string
	Dose  string
	Unit  string
	Times string // "08:00, 20:00" separado por comas
	Start string
	End   string
	Notes string
}

// ParseTimes corta la lista por comas, recorta espacios y descarta tokens
// vacíos, conservando el orden (y los duplicados) del ingreso.
func ParseTimes(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (s *Service) AddSchedule(ctx context.Context, in AddInput) (Schedule, error) {
	times := ParseTimes(in.Times)
	if strings.TrimSpace(in.PetID) == "" {
		return Schedule{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Drug) == "" || len(times) == 0 {
		return Schedule{}, ErrInvalidInput
	}

	sch := Schedule{
		ID:    uuid.NewString(),
		PetID: strings.TrimSpace(in.PetID),
		Drug:  strings.TrimSpace(in.Drug),
		Dose:  strings.TrimSpace(in.Dose),
		Unit:  strings.TrimSpace(in.Unit),
		Times: times,
		Start: strings.TrimSpace(in.Start),
		End:   strings.TrimSpace(in.End),
		Notes: strings.TrimSpace(in.Notes),
	}

	if err := s.repo.CreateSchedule(ctx, sch); err != nil {
		return Schedule{}, err
	}
	return sch, nil
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Schedule, error) {
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) ListAll(ctx context.Context) ([]Schedule, error) {
	return s.repo.ListAll(ctx)
}

// DosesOn expande cada pauta activa en la fecha en una fila por hora
// programada, con su estado de toma. Fecha vacía = hoy (hora civil).
func (s *Service) DosesOn(ctx context.Context, petID, date string) ([]Dose, error) {
	if strings.TrimSpace(petID) == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(date) == "" {
		date = s.today()
	}

	scheds, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	taken, err := s.repo.TakenFor(ctx, DayKey{PetID: petID, Date: date})
	if err != nil {
		return nil, err
	}

	out := make([]Dose, 0)
	for _, m := range scheds {
		if !m.ActiveOn(date) {
			continue
		}
		for _, t := range m.Times {
			at, ok := taken[CellKey{ScheduleID: m.ID, Time: t}]
			out = append(out, Dose{Schedule: m, Time: t, Taken: ok, TakenAt: at})
		}
	}
	return out, nil
}

// MarkTaken es idempotente: repetirla solo refresca el timestamp y deja
// una única celda.
func (s *Service) MarkTaken(ctx context.Context, petID, scheduleID, timeStr, date string) (string, error) {
	if strings.TrimSpace(petID) == "" || strings.TrimSpace(scheduleID) == "" || strings.TrimSpace(timeStr) == "" {
		return "", ErrInvalidInput
	}
	if strings.TrimSpace(date) == "" {
		date = s.today()
	}

	stamp := s.nowStamp()
	day := DayKey{PetID: petID, Date: date}
	cell := CellKey{ScheduleID: scheduleID, Time: timeStr}
	if err := s.repo.MarkTaken(ctx, day, cell, stamp); err != nil {
		return "", err
	}
	return stamp, nil
}

// MarkUntaken borra la celda (no es sobrescribir un valor). Sin error si
// ya no estaba; si el día queda vacío, el repo lo poda.
func (s *Service) MarkUntaken(ctx context.Context, petID, scheduleID, timeStr, date string) error {
	if strings.TrimSpace(petID) == "" || strings.TrimSpace(scheduleID) == "" || strings.TrimSpace(timeStr) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(date) == "" {
		date = s.today()
	}

	day := DayKey{PetID: petID, Date: date}
	cell := CellKey{ScheduleID: scheduleID, Time: timeStr}
	return s.repo.Unmark(ctx, day, cell)
}

// DeleteSchedule borra la pauta y purga todas sus tomas registradas
// (cascada completa, a diferencia del borrado de mascotas). Id inexistente
// es éxito silencioso. La purga no es atómica respecto del borrado.
func (s *Service) DeleteSchedule(ctx context.Context, id string) error {
	sch, err := s.repo.GetSchedule(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil
	}

	if err := s.repo.DeleteSchedule(ctx, sch.ID); err != nil {
		return err
	}
	return s.repo.PurgeAdherence(ctx, sch.PetID, sch.ID)
}

func (s *Service) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}
