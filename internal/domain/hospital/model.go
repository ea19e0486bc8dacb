package hospital

// Event es una cita u ocurrencia médica puntual de una mascota.
type Event struct {
	ID    string
	PetID string

	Title string
	// DT es "YYYY-MM-DDTHH:MM:SS". ISO-8601 ordena lexicográfica =
	// cronológica, así que las vistas comparan strings directo.
	DT string

	Place string
	Notes string
}
