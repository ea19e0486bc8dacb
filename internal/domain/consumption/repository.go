package consumption

import "context"

type Repository interface {
	Append(ctx context.Context, t Table, e Entry) error
	// Delete es silencioso si el log_id no existe.
	Delete(ctx context.Context, t Table, logID string) error
	// ListRange filtra por mascota y from<=date<=to (comparación
	// lexicográfica sobre fechas ISO), en orden de inserción.
	ListRange(ctx context.Context, t Table, petID, from, to string) ([]Entry, error)
	SumOnDate(ctx context.Context, t Table, petID, date string) (int, error)
	Count(ctx context.Context, t Table) (int, error)
	// Reset vacía ambas tablas.
	Reset(ctx context.Context) error
}
