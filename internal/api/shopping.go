package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// ListShopping returns the user's shopping list.
func (p *PantryAPI) ListShopping(c *gin.Context) {
	items, err := p.store.ShoppingList(currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// ToggleShoppingItem flips the purchased flag on a shopping list item.
func (p *PantryAPI) ToggleShoppingItem(c *gin.Context) {
	if err := p.store.TogglePurchased(currentUser(c), c.Param("id")); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shopping list item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shopping list item updated"})
}

// DeleteShoppingItem removes a shopping list item.
func (p *PantryAPI) DeleteShoppingItem(c *gin.Context) {
	if err := p.store.DeleteShoppingItem(currentUser(c), c.Param("id")); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shopping list item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shopping list item removed"})
}

// ClearCompletedShopping removes every purchased item from the list.
func (p *PantryAPI) ClearCompletedShopping(c *gin.Context) {
	if err := p.store.ClearPurchased(currentUser(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Completed items cleared"})
}
