package pets

// Species define las especies que ofrece la UI.
// Datos legados pueden traer texto libre; se acepta tal cual.
// @Enum 개, 고양이, 기타
type Species string

const (
	SpeciesDog   Species = "개"
	SpeciesCat   Species = "고양이"
	SpeciesOther Species = "기타"
)

// Pet es el perfil de una mascota, entidad raíz a la que referencian
// consumos, medicación y eventos de hospital (FK sin validar).
// Borrar una mascota NO borra esos registros hijos.
type Pet struct {
	ID string

	Name    string
	Species string
	Breed   string

	Birth    string // YYYY-MM-DD o vacío
	WeightKg float64

	Notes string
}
