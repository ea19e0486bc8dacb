package unsafedb

import "context"

type Repository interface {
	Add(ctx context.Context, it Item) error
	// List devuelve el catálogo completo en orden de inserción.
	List(ctx context.Context) ([]Item, error)
	// Reset deja el catálogo en ResetDefaults().
	Reset(ctx context.Context) error
}
