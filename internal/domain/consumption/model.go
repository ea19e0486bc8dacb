package consumption

import "strings"

// Table identifica una de las dos tablas del registro de consumo.
type Table string

const (
	TableFeed  Table = "feed"  // cantidades en gramos
	TableWater Table = "water" // cantidades en mililitros
)

func ParseTable(s string) (Table, bool) {
	switch Table(strings.ToLower(strings.TrimSpace(s))) {
	case TableFeed:
		return TableFeed, true
	case TableWater:
		return TableWater, true
	}
	return "", false
}

// Entry es una fila del registro. El registro es append-only salvo
// borrado explícito por LogID; no existe edición in-place.
type Entry struct {
	LogID  string
	PetID  string // FK a Pet, sin validar (igual que el original)
	Date   string // YYYY-MM-DD
	Amount int
	Memo   string
}

// DailyTotal agrega cantidades por fecha, para graficar.
type DailyTotal struct {
	Date  string
	Total int
}
