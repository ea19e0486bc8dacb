package adminops

import (
	"context"
	"errors"

	"petmate/internal/domain/consumption"
	"petmate/internal/domain/hospital"
	"petmate/internal/domain/medication"
	"petmate/internal/domain/pets"
	"petmate/internal/domain/unsafedb"
	"petmate/internal/domain/users"
)

var (
	ErrSelfDelete = errors.New("adminops: cannot delete own account")
	ErrNotFound   = errors.New("adminops: not found")
)

// Stats son los contadores crudos del panel de administración.
type Stats struct {
	Pets        int
	Schedules   int
	FeedLogRows int
}

type Service struct {
	users  *users.Service
	pets   *pets.Service
	cons   *consumption.Service
	meds   *medication.Service
	hosp   *hospital.Service
	unsafe *unsafedb.Service
}

func NewService(u *users.Service, p *pets.Service, c *consumption.Service, m *medication.Service, h *hospital.Service, ud *unsafedb.Service) *Service {
	return &Service{users: u, pets: p, cons: c, meds: m, hosp: h, unsafe: ud}
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	allPets, err := s.pets.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	scheds, err := s.meds.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	feedRows, err := s.cons.Count(ctx, consumption.TableFeed)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Pets:        len(allPets),
		Schedules:   len(scheds),
		FeedLogRows: feedRows,
	}, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]users.User, error) {
	return s.users.List(ctx)
}

// DeleteUser elimina una cuenta. La cuenta propia no se puede borrar
// para no dejar la sesión activa sin dueño.
func (s *Service) DeleteUser(ctx context.Context, actor, username string) error {
	if actor == username {
		return ErrSelfDelete
	}
	if err := s.users.Delete(ctx, username); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ResetConsumption vacía los registros de comida y agua. Mascotas,
// pautas y citas quedan intactas.
func (s *Service) ResetConsumption(ctx context.Context) error {
	return s.cons.Reset(ctx)
}

// ResetDomain borra mascotas, pautas con su adherencia, citas y deja
// el catálogo de sustancias con la fila semilla. Usuarios y registros
// de consumo no se tocan.
func (s *Service) ResetDomain(ctx context.Context) error {
	if err := s.pets.Reset(ctx); err != nil {
		return err
	}
	if err := s.meds.Reset(ctx); err != nil {
		return err
	}
	if err := s.hosp.Reset(ctx); err != nil {
		return err
	}
	return s.unsafe.Reset(ctx)
}
