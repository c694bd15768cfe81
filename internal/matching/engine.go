package matching

import (
	"math"
	"sort"

	"pantrykit/internal/models"
)

// RecipeMatch summarizes how well the current pantry covers a single
// recipe. Derived on every query, never persisted.
type RecipeMatch struct {
	Recipe             models.Recipe             `json:"recipe"`
	MatchedIngredients int                       `json:"matchedIngredients"`
	TotalIngredients   int                       `json:"totalIngredients"`
	MissingIngredients []models.RecipeIngredient `json:"missingIngredients"`
	MatchPercentage    int                       `json:"matchPercentage"`
}

// Engine runs recipe matching and pantry depletion over caller-owned
// snapshots. All methods treat their inputs as read-only and return new
// collections; the caller commits the result as the new authoritative
// state.
type Engine struct {
	reconciler Reconciler
}

// NewEngine creates a matching engine. A nil reconciler falls back to the
// substring heuristic.
func NewEngine(reconciler Reconciler) *Engine {
	if reconciler == nil {
		reconciler = SubstringReconciler{}
	}
	return &Engine{reconciler: reconciler}
}

// findPantryItem returns the first pantry item whose name reconciles with
// the ingredient name, in pantry order. Ties are resolved by pantry order,
// not by best match or remaining quantity.
func (e *Engine) findPantryItem(pantry []models.PantryItem, ingredientName string) *models.PantryItem {
	for i := range pantry {
		if e.reconciler.Matches(pantry[i].Name, ingredientName) {
			return &pantry[i]
		}
	}
	return nil
}

// Match computes a RecipeMatch for every recipe in the catalog and ranks
// the results by descending match percentage. An ingredient counts as
// matched only when a reconciled pantry item holds at least the required
// quantity; units are not compared. Recipes with equal percentages keep
// their catalog order.
func (e *Engine) Match(pantry []models.PantryItem, recipes []models.Recipe) []RecipeMatch {
	matches := make([]RecipeMatch, 0, len(recipes))
	for _, recipe := range recipes {
		matched := 0
		missing := make([]models.RecipeIngredient, 0)
		for _, ingredient := range recipe.Ingredients {
			item := e.findPantryItem(pantry, ingredient.Name)
			if item != nil && item.Quantity >= ingredient.Quantity {
				matched++
			} else {
				// Missing entries carry the full required quantity,
				// not a partial delta.
				missing = append(missing, ingredient)
			}
		}

		total := len(recipe.Ingredients)
		percentage := 0
		if total > 0 {
			percentage = int(math.Round(float64(matched) / float64(total) * 100))
		}

		matches = append(matches, RecipeMatch{
			Recipe:             recipe,
			MatchedIngredients: matched,
			TotalIngredients:   total,
			MissingIngredients: missing,
			MatchPercentage:    percentage,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})
	return matches
}

// CanCook reports whether every ingredient of the recipe reconciles to a
// pantry item holding at least the required quantity. Recomputed from the
// live pantry, not derived from a cached RecipeMatch.
func (e *Engine) CanCook(pantry []models.PantryItem, recipe models.Recipe) bool {
	for _, ingredient := range recipe.Ingredients {
		item := e.findPantryItem(pantry, ingredient.Name)
		if item == nil || item.Quantity < ingredient.Quantity {
			return false
		}
	}
	return true
}

// Cook returns a new pantry snapshot with the recipe's ingredient
// quantities subtracted. Each pantry item is reduced by at most one
// ingredient (the first that reconciles), subtraction is clamped at zero,
// and items depleted to exactly zero are dropped. Cook does not verify
// CanCook: cooking a recipe the pantry cannot fully satisfy silently
// applies partial depletion. The input slice is not mutated.
func (e *Engine) Cook(pantry []models.PantryItem, recipe models.Recipe) []models.PantryItem {
	remaining := make([]models.PantryItem, 0, len(pantry))
	for _, item := range pantry {
		for _, ingredient := range recipe.Ingredients {
			if e.reconciler.Matches(item.Name, ingredient.Name) {
				item.Quantity = math.Max(0, item.Quantity-ingredient.Quantity)
				break
			}
		}
		if item.Quantity > 0 {
			remaining = append(remaining, item)
		}
	}
	return remaining
}
