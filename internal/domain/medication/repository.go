package medication

import "context"

type Repository interface {
	CreateSchedule(ctx context.Context, s Schedule) error
	// DeleteSchedule es silencioso si el id no existe. No toca las tomas;
	// la cascada la orquesta el service con PurgeAdherence.
	DeleteSchedule(ctx context.Context, id string) error
	GetSchedule(ctx context.Context, id string) (Schedule, error)
	// ListByPet devuelve las pautas en orden de inserción.
	ListByPet(ctx context.Context, petID string) ([]Schedule, error)
	ListAll(ctx context.Context) ([]Schedule, error)

	// TakenFor devuelve las celdas tomadas del día (copia).
	TakenFor(ctx context.Context, day DayKey) (map[CellKey]string, error)
	// MarkTaken setea (o refresca) el timestamp de la celda.
	MarkTaken(ctx context.Context, day DayKey, cell CellKey, takenAt string) error
	// Unmark borra la celda; si el día queda vacío se poda entero.
	// Silencioso si la celda ya no estaba.
	Unmark(ctx context.Context, day DayKey, cell CellKey) error
	// PurgeAdherence borra toda toma de la pauta en todos los días de la
	// mascota, podando días vacíos.
	PurgeAdherence(ctx context.Context, petID, scheduleID string) error

	// Reset vacía pautas y tomas.
	Reset(ctx context.Context) error
}
