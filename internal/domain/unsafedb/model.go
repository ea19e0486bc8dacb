package unsafedb

// Item es una fila del catálogo de sustancias peligrosas. No tiene
// identificador: el catálogo solo soporta alta, búsqueda y reset, y no
// se chequean duplicados.
type Item struct {
	Category string // 음식, 식물, 물품
	Name     string
	Risk     string // 주의, 중간-고위험, 고위험
	Why      string
}

// Defaults son las filas sembradas cuando no hay catálogo guardado.
func Defaults() []Item {
	return []Item{
		{Category: "음식", Name: "초콜릿", Risk: "고위험", Why: "카카오 테오브로민 독성"},
		{Category: "음식", Name: "포도", Risk: "고위험", Why: "급성 신장손상"},
		{Category: "식물", Name: "스파티필름", Risk: "주의", Why: "독성 수산칼슘"},
	}
}

// ResetDefaults es el contenido tras un reset global de datos: solo la
// fila de chocolate, igual que el original.
func ResetDefaults() []Item {
	return []Item{
		{Category: "음식", Name: "초콜릿", Risk: "고위험", Why: "카카오 테오브로민 독성"},
	}
}
