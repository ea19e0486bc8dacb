package consumption

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"petmate/internal/platform/civil"
)

var ErrInvalidInput = errors.New("invalid input")

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
	PetID  string
	Date   string
	Amount int
	Memo   string
}

// Add agrega una fila al registro. Cantidades <= 0 se omiten sin error,
// igual que el formulario original: devuelve (nil, nil).
func (s *Service) Add(ctx context.Context, t Table, in AddInput) (*Entry, error) {
	if strings.TrimSpace(in.PetID) == "" {
		return nil, ErrInvalidInput
	}
	if in.Amount <= 0 {
		return nil, nil
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.today()
	}

	e := Entry{
		LogID:  uuid.NewString(),
		PetID:  strings.TrimSpace(in.PetID),
		Date:   date,
		Amount: in.Amount,
		Memo:   strings.TrimSpace(in.Memo),
	}

	if err := s.repo.Append(ctx, t, e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Service) Delete(ctx context.Context, t Table, logID string) error {
	return s.repo.Delete(ctx, t, strings.TrimSpace(logID))
}

// SumOnDate suma las cantidades de la mascota en la fecha; fecha vacía = hoy.
func (s *Service) SumOnDate(ctx context.Context, t Table, petID, date string) (int, error) {
	if strings.TrimSpace(date) == "" {
		date = s.today()
	}
	return s.repo.SumOnDate(ctx, t, petID, date)
}

// QueryRange devuelve las filas del rango ordenadas por fecha descendente
// (vista) y los totales por día ascendente (gráfico).
func (s *Service) QueryRange(ctx context.Context, t Table, petID, from, to string) ([]Entry, []DailyTotal, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if from == "" {
		from = "0000-01-01"
	}
	if to == "" {
		to = "9999-12-31"
	}

	entries, err := s.repo.ListRange(ctx, t, petID, from, to)
	if err != nil {
		return nil, nil, err
	}

	byDate := make(map[string]int)
	for _, e := range entries {
		byDate[e.Date] += e.Amount
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	totals := make([]DailyTotal, 0, len(dates))
	for _, d := range dates {
		totals = append(totals, DailyTotal{Date: d, Total: byDate[d]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	return entries, totals, nil
}

func (s *Service) Count(ctx context.Context, t Table) (int, error) {
	return s.repo.Count(ctx, t)
}

func (s *Service) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}
