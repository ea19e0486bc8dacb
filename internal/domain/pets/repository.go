package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	// Delete es silencioso si el id no existe.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Pet, error)
	// List devuelve las mascotas en orden de inserción.
	List(ctx context.Context) ([]Pet, error)
	Reset(ctx context.Context) error
}
