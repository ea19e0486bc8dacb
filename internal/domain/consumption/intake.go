package consumption

import (
	"math"
	"strings"
)

// Alias de especie que cuentan como perro para la fórmula RER.
var dogAliases = map[string]struct{}{
	"개":   {},
	"강아지": {},
	"dog": {},
}

// RecommendedFoodGrams calcula la ración diaria y el tope de snacks.
// Perros: RER = 30*kg + 70. Resto: RER = 60*kg. gramos = RER/3.5.
// Redondeo: mitad lejos de cero (math.Round), determinista.
func RecommendedFoodGrams(species string, weightKg float64) (grams, snackLimit int) {
	if weightKg <= 0 {
		return 0, 0
	}

	var kcal float64
	if _, ok := dogAliases[strings.ToLower(strings.TrimSpace(species))]; ok {
		kcal = 30*weightKg + 70
	} else {
		kcal = 60 * weightKg
	}

	grams = int(math.Round(kcal / 3.5))
	snackLimit = int(math.Round(float64(grams) * 0.1))
	return grams, snackLimit
}

// RecommendedWaterML trunca, no redondea: int(kg*60).
func RecommendedWaterML(weightKg float64) int {
	if weightKg <= 0 {
		return 0
	}
	return int(weightKg * 60)
}
