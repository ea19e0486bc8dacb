package hospital

import "context"

type Repository interface {
	Create(ctx context.Context, e Event) error
	// Delete es silencioso si el id no existe.
	Delete(ctx context.Context, id string) error
	// ListByPet devuelve los eventos ordenados ascendente por dt.
	ListByPet(ctx context.Context, petID string) ([]Event, error)
	Reset(ctx context.Context) error
}
