package matching

import (
	"github.com/google/uuid"

	"pantrykit/internal/models"
)

// DefaultShoppingCategory is stamped on shopping list items synthesized
// from a recipe gap, where the ingredient has no category of its own.
const DefaultShoppingCategory = "Other"

type shoppingKey struct {
	name     string
	recipeID string
}

// Synthesize maps the missing ingredients of a match into shopping list
// items stamped with the originating recipe. Ingredients already queued
// for the same recipe are skipped; the same ingredient queued for a
// different recipe is added again. Returns only the net-new items, which
// the caller appends to the persisted list.
func (e *Engine) Synthesize(match RecipeMatch, existing []models.ShoppingListItem) []models.ShoppingListItem {
	queued := make(map[shoppingKey]struct{}, len(existing))
	for _, item := range existing {
		queued[shoppingKey{item.Name, item.RecipeID}] = struct{}{}
	}

	added := make([]models.ShoppingListItem, 0, len(match.MissingIngredients))
	for _, ingredient := range match.MissingIngredients {
		key := shoppingKey{ingredient.Name, match.Recipe.RecipeID}
		if _, ok := queued[key]; ok {
			continue
		}
		queued[key] = struct{}{}

		added = append(added, models.ShoppingListItem{
			ItemID:     uuid.NewString(),
			Name:       ingredient.Name,
			Quantity:   ingredient.Quantity,
			Unit:       ingredient.Unit,
			Category:   DefaultShoppingCategory,
			Purchased:  false,
			RecipeID:   match.Recipe.RecipeID,
			RecipeName: match.Recipe.Name,
		})
	}
	return added
}
