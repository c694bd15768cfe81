package catalog

import (
	"fmt"

	"pantrykit/internal/models"
)

// Validate rejects catalog entries the matching engine cannot score.
// A recipe with no ingredients has no defined match percentage, so it is
// refused at the catalog boundary rather than handled inside the matcher.
func Validate(recipe *models.Recipe) error {
	if recipe.RecipeID == "" {
		return fmt.Errorf("recipe %q has no id", recipe.Name)
	}
	ingredients, err := recipe.GetIngredients()
	if err != nil {
		return fmt.Errorf("recipe %q has malformed ingredients: %w", recipe.Name, err)
	}
	if len(ingredients) == 0 {
		return fmt.Errorf("recipe %q has no ingredients", recipe.Name)
	}
	for _, ingredient := range ingredients {
		if ingredient.Name == "" {
			return fmt.Errorf("recipe %q has an unnamed ingredient", recipe.Name)
		}
		if ingredient.Quantity < 0 {
			return fmt.Errorf("recipe %q requires a negative quantity of %s", recipe.Name, ingredient.Name)
		}
	}
	return nil
}

// StarterRecipes returns the built-in catalog seeded into an empty
// database.
func StarterRecipes() []models.Recipe {
	return []models.Recipe{
		newRecipe(models.Recipe{
			RecipeID:    "1",
			Name:        "Spaghetti Carbonara",
			Description: "Classic Italian pasta dish with eggs, cheese, and bacon",
			Category:    "Pasta",
			CookingTime: 20,
			Servings:    4,
			Difficulty:  models.DifficultyMedium,
			Image:       "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg?auto=compress&cs=tinysrgb&w=300",
			Instructions: models.StringSlice{
				"Cook spaghetti according to package instructions",
				"Fry bacon until crispy",
				"Beat eggs with grated parmesan",
				"Combine hot pasta with bacon",
				"Add egg mixture and toss quickly",
				"Season with pepper and serve immediately",
			},
		}, []models.RecipeIngredient{
			{Name: "spaghetti", Quantity: 400, Unit: "g"},
			{Name: "eggs", Quantity: 4, Unit: "pieces"},
			{Name: "parmesan cheese", Quantity: 100, Unit: "g"},
			{Name: "bacon", Quantity: 200, Unit: "g"},
			{Name: "black pepper", Quantity: 1, Unit: "tsp"},
			{Name: "salt", Quantity: 1, Unit: "tsp"},
		}),
		newRecipe(models.Recipe{
			RecipeID:    "2",
			Name:        "Chicken Stir Fry",
			Description: "Quick and healthy stir-fried chicken with vegetables",
			Category:    "Asian",
			CookingTime: 15,
			Servings:    3,
			Difficulty:  models.DifficultyEasy,
			Image:       "https://images.pexels.com/photos/2233351/pexels-photo-2233351.jpeg?auto=compress&cs=tinysrgb&w=300",
			Instructions: models.StringSlice{
				"Cut chicken into bite-sized pieces",
				"Heat oil in wok or large pan",
				"Stir-fry chicken until cooked through",
				"Add vegetables and cook until tender-crisp",
				"Add soy sauce and garlic",
				"Serve immediately over rice",
			},
		}, []models.RecipeIngredient{
			{Name: "chicken breast", Quantity: 500, Unit: "g"},
			{Name: "bell peppers", Quantity: 2, Unit: "pieces"},
			{Name: "onion", Quantity: 1, Unit: "pieces"},
			{Name: "soy sauce", Quantity: 3, Unit: "tbsp"},
			{Name: "garlic", Quantity: 3, Unit: "cloves"},
			{Name: "vegetable oil", Quantity: 2, Unit: "tbsp"},
		}),
		newRecipe(models.Recipe{
			RecipeID:    "3",
			Name:        "Caesar Salad",
			Description: "Fresh romaine lettuce with classic Caesar dressing",
			Category:    "Salad",
			CookingTime: 10,
			Servings:    2,
			Difficulty:  models.DifficultyEasy,
			Image:       "https://images.pexels.com/photos/2533348/pexels-photo-2533348.jpeg?auto=compress&cs=tinysrgb&w=300",
			Instructions: models.StringSlice{
				"Wash and chop romaine lettuce",
				"Toss lettuce with Caesar dressing",
				"Add grated parmesan cheese",
				"Top with croutons",
				"Squeeze fresh lemon juice over salad",
				"Serve immediately",
			},
		}, []models.RecipeIngredient{
			{Name: "romaine lettuce", Quantity: 2, Unit: "heads"},
			{Name: "parmesan cheese", Quantity: 50, Unit: "g"},
			{Name: "croutons", Quantity: 1, Unit: "cup"},
			{Name: "caesar dressing", Quantity: 4, Unit: "tbsp"},
			{Name: "lemon", Quantity: 1, Unit: "pieces"},
		}),
		newRecipe(models.Recipe{
			RecipeID:    "4",
			Name:        "Beef Tacos",
			Description: "Spicy ground beef tacos with fresh toppings",
			Category:    "Mexican",
			CookingTime: 25,
			Servings:    4,
			Difficulty:  models.DifficultyEasy,
			Image:       "https://images.pexels.com/photos/4958792/pexels-photo-4958792.jpeg?auto=compress&cs=tinysrgb&w=300",
			Instructions: models.StringSlice{
				"Brown ground beef in large skillet",
				"Season with taco seasoning",
				"Warm taco shells in oven",
				"Prepare fresh toppings",
				"Fill shells with beef and toppings",
				"Serve with salsa and sour cream",
			},
		}, []models.RecipeIngredient{
			{Name: "ground beef", Quantity: 500, Unit: "g"},
			{Name: "taco shells", Quantity: 8, Unit: "pieces"},
			{Name: "tomatoes", Quantity: 2, Unit: "pieces"},
			{Name: "lettuce", Quantity: 1, Unit: "head"},
			{Name: "cheese", Quantity: 200, Unit: "g"},
			{Name: "onion", Quantity: 1, Unit: "pieces"},
		}),
		newRecipe(models.Recipe{
			RecipeID:    "5",
			Name:        "Vegetable Curry",
			Description: "Aromatic curry with mixed vegetables and coconut milk",
			Category:    "Indian",
			CookingTime: 30,
			Servings:    4,
			Difficulty:  models.DifficultyMedium,
			Image:       "https://images.pexels.com/photos/2474661/pexels-photo-2474661.jpeg?auto=compress&cs=tinysrgb&w=300",
			Instructions: models.StringSlice{
				"Sauté onion, garlic, and ginger",
				"Add curry powder and cook until fragrant",
				"Add chopped vegetables",
				"Pour in coconut milk",
				"Simmer until vegetables are tender",
				"Serve with rice or naan bread",
			},
		}, []models.RecipeIngredient{
			{Name: "coconut milk", Quantity: 400, Unit: "ml"},
			{Name: "potatoes", Quantity: 3, Unit: "pieces"},
			{Name: "carrots", Quantity: 2, Unit: "pieces"},
			{Name: "curry powder", Quantity: 2, Unit: "tbsp"},
			{Name: "onion", Quantity: 1, Unit: "pieces"},
			{Name: "garlic", Quantity: 4, Unit: "cloves"},
			{Name: "ginger", Quantity: 1, Unit: "inch"},
		}),
	}
}

func newRecipe(recipe models.Recipe, ingredients []models.RecipeIngredient) models.Recipe {
	// Marshaling a static ingredient list cannot fail.
	_ = recipe.SetIngredients(ingredients)
	return recipe
}
