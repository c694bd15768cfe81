package catalog

import (
	"testing"

	"pantrykit/internal/models"
)

func TestStarterRecipesAreValid(t *testing.T) {
	recipes := StarterRecipes()

	if len(recipes) == 0 {
		t.Fatal("StarterRecipes() returned no recipes")
	}

	seen := make(map[string]bool)
	for i := range recipes {
		recipe := &recipes[i]
		if err := Validate(recipe); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", recipe.Name, err)
		}
		if seen[recipe.RecipeID] {
			t.Errorf("duplicate recipe id %q", recipe.RecipeID)
		}
		seen[recipe.RecipeID] = true

		if len(recipe.Instructions) == 0 {
			t.Errorf("recipe %q has no instructions", recipe.Name)
		}
	}
}

func TestStarterRecipesRoundTripIngredients(t *testing.T) {
	for _, recipe := range StarterRecipes() {
		// Drop the transient copy and force a decode from the stored JSON
		recipe.Ingredients = nil
		ingredients, err := recipe.GetIngredients()
		if err != nil {
			t.Fatalf("GetIngredients(%q) error: %v", recipe.Name, err)
		}
		if len(ingredients) == 0 {
			t.Errorf("recipe %q decoded to no ingredients", recipe.Name)
		}
	}
}

func TestValidateRejectsEmptyIngredients(t *testing.T) {
	recipe := models.Recipe{RecipeID: "x", Name: "Empty Plate"}
	if err := recipe.SetIngredients([]models.RecipeIngredient{}); err != nil {
		t.Fatalf("SetIngredients() error: %v", err)
	}

	if err := Validate(&recipe); err == nil {
		t.Error("Validate() accepted a recipe with no ingredients")
	}
}

func TestValidateRejectsMissingID(t *testing.T) {
	recipe := models.Recipe{Name: "Anonymous"}
	_ = recipe.SetIngredients([]models.RecipeIngredient{{Name: "salt", Quantity: 1}})

	if err := Validate(&recipe); err == nil {
		t.Error("Validate() accepted a recipe without an id")
	}
}

func TestValidateRejectsNegativeQuantity(t *testing.T) {
	recipe := models.Recipe{RecipeID: "x", Name: "Antimatter Soup"}
	_ = recipe.SetIngredients([]models.RecipeIngredient{{Name: "water", Quantity: -1}})

	if err := Validate(&recipe); err == nil {
		t.Error("Validate() accepted a negative ingredient quantity")
	}
}
