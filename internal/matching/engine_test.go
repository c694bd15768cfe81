package matching

import (
	"testing"

	"pantrykit/internal/models"
)

func testRecipe(id, name string, ingredients ...models.RecipeIngredient) models.Recipe {
	return models.Recipe{
		RecipeID:    id,
		Name:        name,
		Ingredients: ingredients,
	}
}

func stirFry() models.Recipe {
	return testRecipe("2", "Chicken Stir Fry",
		models.RecipeIngredient{Name: "chicken breast", Quantity: 500, Unit: "g"},
		models.RecipeIngredient{Name: "bell peppers", Quantity: 2, Unit: "pieces"},
		models.RecipeIngredient{Name: "onion", Quantity: 1, Unit: "pieces"},
		models.RecipeIngredient{Name: "soy sauce", Quantity: 3, Unit: "tbsp"},
		models.RecipeIngredient{Name: "garlic", Quantity: 3, Unit: "cloves"},
		models.RecipeIngredient{Name: "vegetable oil", Quantity: 2, Unit: "tbsp"},
	)
}

func TestMatchSingleIngredientCoverage(t *testing.T) {
	engine := NewEngine(nil)
	pantry := []models.PantryItem{
		{ItemID: "p1", Name: "chicken breast", Quantity: 500, Unit: "g"},
	}

	matches := engine.Match(pantry, []models.Recipe{stirFry()})

	if len(matches) != 1 {
		t.Fatalf("Match() returned %d matches, want 1", len(matches))
	}

	m := matches[0]
	if m.MatchedIngredients != 1 {
		t.Errorf("MatchedIngredients = %d, want 1", m.MatchedIngredients)
	}
	if m.TotalIngredients != 6 {
		t.Errorf("TotalIngredients = %d, want 6", m.TotalIngredients)
	}
	if m.MatchPercentage != 17 {
		t.Errorf("MatchPercentage = %d, want 17", m.MatchPercentage)
	}
	if len(m.MissingIngredients) != 5 {
		t.Errorf("len(MissingIngredients) = %d, want 5", len(m.MissingIngredients))
	}
	if engine.CanCook(pantry, stirFry()) {
		t.Error("CanCook() = true, want false")
	}
}

func TestMatchedPlusMissingEqualsTotal(t *testing.T) {
	engine := NewEngine(nil)
	pantry := []models.PantryItem{
		{Name: "chicken breast", Quantity: 500},
		{Name: "onion", Quantity: 2},
		{Name: "garlic", Quantity: 1}, // insufficient
	}
	recipes := []models.Recipe{
		stirFry(),
		testRecipe("9", "Garlic Bread",
			models.RecipeIngredient{Name: "bread", Quantity: 1},
			models.RecipeIngredient{Name: "garlic", Quantity: 2},
		),
	}

	for _, m := range engine.Match(pantry, recipes) {
		if m.MatchedIngredients+len(m.MissingIngredients) != m.TotalIngredients {
			t.Errorf("recipe %q: matched %d + missing %d != total %d",
				m.Recipe.Name, m.MatchedIngredients, len(m.MissingIngredients), m.TotalIngredients)
		}
		if m.MatchPercentage < 0 || m.MatchPercentage > 100 {
			t.Errorf("recipe %q: MatchPercentage = %d out of range", m.Recipe.Name, m.MatchPercentage)
		}
	}
}

func TestMatchInsufficientQuantityIsMissing(t *testing.T) {
	engine := NewEngine(nil)
	pantry := []models.PantryItem{
		{Name: "garlic", Quantity: 1, Unit: "cloves"},
	}
	recipe := testRecipe("9", "Garlic Confit",
		models.RecipeIngredient{Name: "garlic", Quantity: 20, Unit: "cloves"},
	)

	m := engine.Match(pantry, []models.Recipe{recipe})[0]

	if m.MatchedIngredients != 0 {
		t.Errorf("MatchedIngredients = %d, want 0", m.MatchedIngredients)
	}
	if len(m.MissingIngredients) != 1 {
		t.Fatalf("len(MissingIngredients) = %d, want 1", len(m.MissingIngredients))
	}
	// Missing entries carry the full required quantity, not the shortfall
	if m.MissingIngredients[0].Quantity != 20 {
		t.Errorf("missing quantity = %v, want 20", m.MissingIngredients[0].Quantity)
	}
}

func TestMatchPercentageExtremes(t *testing.T) {
	engine := NewEngine(nil)
	recipe := testRecipe("9", "Scrambled Eggs",
		models.RecipeIngredient{Name: "eggs", Quantity: 3, Unit: "pieces"},
		models.RecipeIngredient{Name: "butter", Quantity: 20, Unit: "g"},
	)

	empty := []models.PantryItem{}
	m := engine.Match(empty, []models.Recipe{recipe})[0]
	if m.MatchPercentage != 0 {
		t.Errorf("empty pantry: MatchPercentage = %d, want 0", m.MatchPercentage)
	}

	full := []models.PantryItem{
		{Name: "eggs", Quantity: 12},
		{Name: "butter", Quantity: 250},
	}
	m = engine.Match(full, []models.Recipe{recipe})[0]
	if m.MatchPercentage != 100 {
		t.Errorf("full pantry: MatchPercentage = %d, want 100", m.MatchPercentage)
	}
	if !engine.CanCook(full, recipe) {
		t.Error("CanCook() = false for fully stocked pantry, want true")
	}
}

func TestMatchSortStability(t *testing.T) {
	engine := NewEngine(nil)
	pantry := []models.PantryItem{
		{Name: "eggs", Quantity: 12},
	}
	// Both recipes match 1 of 2 ingredients; a third matches nothing and
	// must sort last.
	recipes := []models.Recipe{
		testRecipe("a", "Omelette",
			models.RecipeIngredient{Name: "eggs", Quantity: 2},
			models.RecipeIngredient{Name: "cheddar", Quantity: 50},
		),
		testRecipe("b", "Frittata",
			models.RecipeIngredient{Name: "eggs", Quantity: 4},
			models.RecipeIngredient{Name: "zucchini", Quantity: 1},
		),
		testRecipe("c", "Beef Stew",
			models.RecipeIngredient{Name: "beef", Quantity: 500},
			models.RecipeIngredient{Name: "carrots", Quantity: 3},
		),
	}

	matches := engine.Match(pantry, recipes)

	want := []string{"Omelette", "Frittata", "Beef Stew"}
	for i, name := range want {
		if matches[i].Recipe.Name != name {
			t.Errorf("Match()[%d] = %q, want %q", i, matches[i].Recipe.Name, name)
		}
	}
}

func TestMatchBindsFirstPantryItem(t *testing.T) {
	engine := NewEngine(nil)
	// Both pantry items reconcile with "chicken"; only the first in
	// pantry order is consulted, even though the second has enough.
	pantry := []models.PantryItem{
		{Name: "chicken stock", Quantity: 1, Unit: "l"},
		{Name: "chicken breast", Quantity: 500, Unit: "g"},
	}
	recipe := testRecipe("9", "Roast Chicken",
		models.RecipeIngredient{Name: "chicken", Quantity: 400},
	)

	m := engine.Match(pantry, []models.Recipe{recipe})[0]
	if m.MatchedIngredients != 0 {
		t.Errorf("MatchedIngredients = %d, want 0 (first reconciled item has insufficient quantity)", m.MatchedIngredients)
	}
}

func TestCookSubtractsAndPrunes(t *testing.T) {
	engine := NewEngine(nil)
	pantry := []models.PantryItem{
		{ItemID: "p1", Name: "chicken breast", Quantity: 500, Unit: "g"},
		{ItemID: "p2", Name: "soy sauce", Quantity: 5, Unit: "tbsp"},
		{ItemID: "p3", Name: "flour", Quantity: 1000, Unit: "g"},
	}

	updated := engine.Cook(pantry, stirFry())

	if len(updated) != 2 {
		t.Fatalf("Cook() returned %d items, want 2", len(updated))
	}
	if updated[0].Name != "soy sauce" || updated[0].Quantity != 2 {
		t.Errorf("soy sauce after cook = %+v, want quantity 2", updated[0])
	}
	if updated[1].Name != "flour" || updated[1].Quantity != 1000 {
		t.Errorf("unrelated item changed: %+v", updated[1])
	}
}

func TestCookClampsAtZero(t *testing.T) {
	engine := NewEngine(nil)
	pantry := []models.PantryItem{
		{Name: "chicken breast", Quantity: 100, Unit: "g"},
	}

	updated := engine.Cook(pantry, stirFry())

	// 100 - 500 clamps to zero and the item is pruned, never negative.
	if len(updated) != 0 {
		t.Fatalf("Cook() returned %d items, want 0: %+v", len(updated), updated)
	}
}

func TestCookIsMonotonic(t *testing.T) {
	engine := NewEngine(nil)
	pantry := []models.PantryItem{
		{ItemID: "p1", Name: "chicken breast", Quantity: 600},
		{ItemID: "p2", Name: "onion", Quantity: 3},
		{ItemID: "p3", Name: "rice", Quantity: 500},
	}

	before := make(map[string]float64, len(pantry))
	for _, item := range pantry {
		before[item.ItemID] = item.Quantity
	}

	for _, item := range engine.Cook(pantry, stirFry()) {
		if item.Quantity < 0 {
			t.Errorf("item %q has negative quantity %v", item.Name, item.Quantity)
		}
		if item.Quantity > before[item.ItemID] {
			t.Errorf("item %q grew from %v to %v", item.Name, before[item.ItemID], item.Quantity)
		}
	}
}

func TestCookTwiceLeavesExhaustedItemsAbsent(t *testing.T) {
	engine := NewEngine(nil)
	pantry := []models.PantryItem{
		{Name: "chicken breast", Quantity: 500},
		{Name: "soy sauce", Quantity: 3},
	}

	once := engine.Cook(pantry, stirFry())
	twice := engine.Cook(once, stirFry())

	for _, item := range twice {
		if item.Quantity < 0 {
			t.Errorf("second cook produced negative quantity for %q: %v", item.Name, item.Quantity)
		}
	}
	// Both items deplete to exactly zero on the first cook; the second
	// cook sees an empty snapshot, not negative leftovers.
	if len(once) != 0 || len(twice) != 0 {
		t.Errorf("cook twice: len(once) = %d, len(twice) = %d, want 0 and 0", len(once), len(twice))
	}
}

func TestCookWithoutFullIngredientsPartiallyDepletes(t *testing.T) {
	engine := NewEngine(nil)
	pantry := []models.PantryItem{
		{Name: "soy sauce", Quantity: 10, Unit: "tbsp"},
	}
	recipe := stirFry()

	if engine.CanCook(pantry, recipe) {
		t.Fatal("CanCook() = true, want false")
	}

	// Cook is not gated on cookability: it silently applies what it can.
	updated := engine.Cook(pantry, recipe)
	if len(updated) != 1 || updated[0].Quantity != 7 {
		t.Errorf("partial cook result = %+v, want soy sauce at 7", updated)
	}
}

func TestCookDoesNotMutateInput(t *testing.T) {
	engine := NewEngine(nil)
	pantry := []models.PantryItem{
		{Name: "chicken breast", Quantity: 500},
		{Name: "onion", Quantity: 2},
	}

	engine.Cook(pantry, stirFry())

	if pantry[0].Quantity != 500 || pantry[1].Quantity != 2 {
		t.Errorf("Cook() mutated its input: %+v", pantry)
	}
}

type exactReconciler struct{}

func (exactReconciler) Matches(pantryName, ingredientName string) bool {
	return pantryName == ingredientName
}

func TestEngineUsesInjectedReconciler(t *testing.T) {
	engine := NewEngine(exactReconciler{})
	pantry := []models.PantryItem{
		{Name: "chicken breast", Quantity: 500},
	}
	recipe := testRecipe("9", "Roast Chicken",
		models.RecipeIngredient{Name: "chicken", Quantity: 400},
	)

	// Substring matching would reconcile these; exact matching must not.
	if engine.CanCook(pantry, recipe) {
		t.Error("CanCook() = true with exact reconciler, want false")
	}
}
