package models

import (
	"time"
)

// ShoppingListItem represents an entry on a user's shopping list.
// Items created from a recipe gap carry the originating recipe's id and
// name so repeated synthesis for the same recipe can be deduplicated.
type ShoppingListItem struct {
	ID        uint       `gorm:"primary_key" json:"-"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
	DeletedAt *time.Time `sql:"index" json:"-"`

	ItemID     string  `gorm:"unique_index" json:"id"`
	UserID     string  `gorm:"index" json:"-"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Category   string  `json:"category"`
	Purchased  bool    `json:"purchased"`
	RecipeID   string  `json:"recipeId,omitempty"`
	RecipeName string  `json:"recipeName,omitempty"`
}

// TableName sets the table name for ShoppingListItem
func (ShoppingListItem) TableName() string {
	return "shopping_list_items"
}
