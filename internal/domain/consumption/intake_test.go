package consumption

import "testing"

func TestRecommendedFoodGrams_Dog(t *testing.T) {
	// RER perro 5kg = 30*5+70 = 220 kcal => 220/3.5 = 62.857 => 63g
	grams, snack := RecommendedFoodGrams("개", 5)
	if grams != 63 {
		t.Fatalf("expected 63g for 5kg dog, got %d", grams)
	}
	if snack != 6 {
		t.Fatalf("expected snack limit 6g, got %d", snack)
	}
}

func TestRecommendedFoodGrams_DogAliases(t *testing.T) {
	base, _ := RecommendedFoodGrams("개", 8)
	for _, sp := range []string{"강아지", "dog", "DOG", "  개  "} {
		got, _ := RecommendedFoodGrams(sp, 8)
		if got != base {
			t.Fatalf("alias %q: expected %d, got %d", sp, base, got)
		}
	}
}

func TestRecommendedFoodGrams_NonDog(t *testing.T) {
	// RER gato 4kg = 60*4 = 240 kcal => 240/3.5 = 68.571 => 69g
	grams, snack := RecommendedFoodGrams("고양이", 4)
	if grams != 69 {
		t.Fatalf("expected 69g for 4kg cat, got %d", grams)
	}
	if snack != 7 {
		t.Fatalf("expected snack limit 7g, got %d", snack)
	}
}

func TestRecommendedFoodGrams_NonPositiveWeight(t *testing.T) {
	for _, w := range []float64{0, -1} {
		grams, snack := RecommendedFoodGrams("개", w)
		if grams != 0 || snack != 0 {
			t.Fatalf("weight %v: expected 0/0, got %d/%d", w, grams, snack)
		}
	}
}

func TestRecommendedWaterML(t *testing.T) {
	if got := RecommendedWaterML(5); got != 300 {
		t.Fatalf("expected 300ml for 5kg, got %d", got)
	}
	// trunca, no redondea
	if got := RecommendedWaterML(4.99); got != 299 {
		t.Fatalf("expected 299ml for 4.99kg, got %d", got)
	}
	if got := RecommendedWaterML(0); got != 0 {
		t.Fatalf("expected 0ml for 0kg, got %d", got)
	}
	if got := RecommendedWaterML(-2); got != 0 {
		t.Fatalf("expected 0ml for negative weight, got %d", got)
	}
}
