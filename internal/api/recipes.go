package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"pantrykit/internal/models"
)

// ListRecipes returns the live recipe catalog.
func (p *PantryAPI) ListRecipes(c *gin.Context) {
	recipes, err := p.store.Recipes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// GetMatches runs the matching engine over the user's pantry and the live
// catalog, returning recipes ranked by match percentage.
func (p *PantryAPI) GetMatches(c *gin.Context) {
	userID := currentUser(c)

	pantry, err := p.store.Pantry(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	recipes, err := p.store.Recipes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	matches := p.engine.Match(pantry, recipes)

	percentages := make([]int, len(matches))
	for i, match := range matches {
		percentages[i] = match.MatchPercentage
	}
	p.collector.RecordMatchRun(percentages)

	p.monitor.RecordMetric("last_match_recipes", len(matches))
	if len(matches) > 0 {
		p.monitor.RecordMetric("last_match_best_percentage", matches[0].MatchPercentage)
	}

	c.JSON(http.StatusOK, matches)
}

// GetCookable reports whether the pantry can fully satisfy the recipe
// right now.
func (p *PantryAPI) GetCookable(c *gin.Context) {
	recipe, err := p.store.RecipeByID(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pantry, err := p.store.Pantry(currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"canCook": p.engine.CanCook(pantry, *recipe)})
}

// CookRecipe depletes the pantry by the recipe's ingredient quantities and
// commits the resulting snapshot. The executor is not gated on
// cookability; the client decides whether to offer the action.
func (p *PantryAPI) CookRecipe(c *gin.Context) {
	userID := currentUser(c)

	recipe, err := p.store.RecipeByID(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pantry, err := p.store.Pantry(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated := p.engine.Cook(pantry, *recipe)
	if err := p.store.ReplacePantry(userID, updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	depleted := len(pantry) - len(updated)
	p.collector.RecordCook(recipe.Name, depleted)
	p.monitor.RecordMetric("last_cooked_recipe", recipe.Name)
	p.hub.Broadcast(PantryEvent{
		Type:      EventRecipeCooked,
		UserID:    userID,
		Recipe:    recipe.Name,
		Timestamp: p.now(),
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe cooked, pantry updated",
		"pantry":  updated,
	})
}

// AddToShoppingList synthesizes shopping list entries from the recipe's
// missing ingredients, skipping ingredients already queued for the same
// recipe, and appends the net-new items.
func (p *PantryAPI) AddToShoppingList(c *gin.Context) {
	userID := currentUser(c)

	recipe, err := p.store.RecipeByID(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pantry, err := p.store.Pantry(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	matches := p.engine.Match(pantry, []models.Recipe{*recipe})
	match := matches[0]

	existing, err := p.store.ShoppingList(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	added := p.engine.Synthesize(match, existing)
	if len(added) > 0 {
		if err := p.store.AddShoppingItems(userID, added); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	p.collector.RecordShoppingAdditions(len(added))

	c.JSON(http.StatusOK, gin.H{
		"added": len(added),
		"items": added,
	})
}
