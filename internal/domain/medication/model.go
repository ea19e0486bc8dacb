package medication

// Schedule es una pauta de medicación recurrente de una mascota.
type Schedule struct {
	ID    string
	PetID string

	Drug string
	Dose string
	Unit string // "정", "mg", "ml", etc.

	// Horas "HH:MM" en el orden ingresado; se permiten duplicados.
	// La capa de presentación ordena aparte.
	Times []string

	Start string // YYYY-MM-DD; vacío = sin límite hacia el pasado
	End   string // YYYY-MM-DD; vacío = sin límite hacia el futuro

	Notes string
}

// ActiveOn indica si la pauta aplica en la fecha (comparación
// lexicográfica, válida sobre fechas ISO).
func (s Schedule) ActiveOn(date string) bool {
	startOK := s.Start == "" || s.Start <= date
	endOK := s.End == "" || date <= s.End
	return startOK && endOK
}

// DayKey identifica el registro de tomas de una mascota en un día.
// Claves compuestas tipadas en lugar del "{pet_id}_{date}" original:
// el separador solo sobrevive en el formato de archivo legado.
type DayKey struct {
	PetID string
	Date  string
}

// CellKey identifica una toma concreta dentro de un día.
type CellKey struct {
	ScheduleID string
	Time       string
}

// Dose es una fila expandida (pauta, hora) de la vista diaria.
// Presencia del registro de toma = tomada; ausencia = pendiente.
// No hay estado "perdida": una fecha pasada sin registro sigue
// leyéndose como no tomada.
type Dose struct {
	Schedule Schedule
	Time     string
	Taken    bool
	TakenAt  string // "YYYY-MM-DD HH:MM:SS" hora civil, vacío si no tomada
}
