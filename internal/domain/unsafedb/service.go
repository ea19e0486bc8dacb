package unsafedb

import (
	"context"
	"errors"
	"sort"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search hace substring case-insensitive sobre name, category y why.
// Query vacía devuelve el catálogo completo. El resultado sale ordenado
// por (category, risk) lexicográfico.
func (s *Service) Search(ctx context.Context, query string) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if q == "" || matches(it, q) {
			out = append(out, it)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Risk < out[j].Risk
	})

	return out, nil
}

func matches(it Item, q string) bool {
	return strings.Contains(strings.ToLower(it.Name), q) ||
		strings.Contains(strings.ToLower(it.Category), q) ||
		strings.Contains(strings.ToLower(it.Why), q)
}

// Add agrega una fila. Sin chequeo de duplicados, como el original.
func (s *Service) Add(ctx context.Context, in Item) (Item, error) {
	name := strings.TrimSpace(in.Name)
	why := strings.TrimSpace(in.Why)
	if name == "" || why == "" {
		return Item{}, ErrInvalidInput
	}

	it := Item{
		Category: strings.TrimSpace(in.Category),
		Name:     name,
		Risk:     strings.TrimSpace(in.Risk),
		Why:      why,
	}

	if err := s.repo.Add(ctx, it); err != nil {
		return Item{}, err
	}
	return it, nil
}

func (s *Service) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}
