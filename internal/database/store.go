package database

import (
	"fmt"
	"log"
	"time"

	"github.com/jinzhu/gorm"

	"pantrykit/internal/catalog"
	"pantrykit/internal/models"
)

// Store persists pantry and shopping list collections keyed by user
// identity, and supplies the recipe catalog. The matching engine never
// touches the store; handlers load a snapshot, transform it, and commit
// the result back.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on top of an open database connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Seed populates the recipe catalog with the starter recipes when the
// recipes table is empty.
func (s *Store) Seed() error {
	var count int64
	if err := s.db.Model(&models.Recipe{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, recipe := range catalog.StarterRecipes() {
		if err := catalog.Validate(&recipe); err != nil {
			log.Printf("Skipping starter recipe: %v", err)
			continue
		}
		if err := s.db.Create(&recipe).Error; err != nil {
			return fmt.Errorf("failed to seed recipe %q: %w", recipe.Name, err)
		}
	}
	return nil
}

// Pantry returns the user's pantry snapshot in insertion order.
func (s *Store) Pantry(userID string) ([]models.PantryItem, error) {
	var items []models.PantryItem
	err := s.db.Where("user_id = ?", userID).Order("id asc").Find(&items).Error
	return items, err
}

// AddPantryItem inserts a new pantry item.
func (s *Store) AddPantryItem(item *models.PantryItem) error {
	return s.db.Create(item).Error
}

// UpdatePantryItem overwrites the mutable attributes of an existing item.
func (s *Store) UpdatePantryItem(item *models.PantryItem) error {
	var existing models.PantryItem
	err := s.db.Where("user_id = ? AND item_id = ?", item.UserID, item.ItemID).First(&existing).Error
	if err != nil {
		return err
	}

	existing.Name = item.Name
	existing.Quantity = item.Quantity
	existing.Unit = item.Unit
	existing.Category = item.Category
	existing.ExpiryDate = item.ExpiryDate
	return s.db.Save(&existing).Error
}

// DeletePantryItem removes a pantry item by its external id.
func (s *Store) DeletePantryItem(userID, itemID string) error {
	result := s.db.Unscoped().Where("user_id = ? AND item_id = ?", userID, itemID).Delete(&models.PantryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplacePantry commits a new pantry snapshot for the user, replacing the
// previous one atomically.
func (s *Store) ReplacePantry(userID string, items []models.PantryItem) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.PantryItem{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	for i := range items {
		item := items[i]
		// Items carried over from the previous snapshot keep their
		// external ItemID but get fresh rows.
		item.ID = 0
		item.CreatedAt = time.Time{}
		item.UpdatedAt = time.Time{}
		item.DeletedAt = nil
		item.UserID = userID
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// Recipes loads the live catalog, decoding each recipe's ingredient list.
// Entries that fail catalog validation are skipped. The catalog is
// re-read on every call; it is never cached.
func (s *Store) Recipes() ([]models.Recipe, error) {
	var stored []models.Recipe
	if err := s.db.Order("id asc").Find(&stored).Error; err != nil {
		return nil, err
	}

	recipes := make([]models.Recipe, 0, len(stored))
	for i := range stored {
		if err := catalog.Validate(&stored[i]); err != nil {
			log.Printf("Skipping catalog entry: %v", err)
			continue
		}
		recipes = append(recipes, stored[i])
	}
	return recipes, nil
}

// RecipeByID loads a single catalog entry by its external id.
func (s *Store) RecipeByID(recipeID string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.Where("recipe_id = ?", recipeID).First(&recipe).Error; err != nil {
		return nil, err
	}
	if err := catalog.Validate(&recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ShoppingList returns the user's shopping list in insertion order.
func (s *Store) ShoppingList(userID string) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	err := s.db.Where("user_id = ?", userID).Order("id asc").Find(&items).Error
	return items, err
}

// AddShoppingItems appends items to the user's shopping list.
func (s *Store) AddShoppingItems(userID string, items []models.ShoppingListItem) error {
	for i := range items {
		item := items[i]
		item.UserID = userID
		if err := s.db.Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}

// TogglePurchased flips the purchased flag on a shopping list item.
func (s *Store) TogglePurchased(userID, itemID string) error {
	var item models.ShoppingListItem
	if err := s.db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&item).Error; err != nil {
		return err
	}
	return s.db.Model(&item).Update("purchased", !item.Purchased).Error
}

// DeleteShoppingItem removes a shopping list item by its external id.
func (s *Store) DeleteShoppingItem(userID, itemID string) error {
	result := s.db.Unscoped().Where("user_id = ? AND item_id = ?", userID, itemID).Delete(&models.ShoppingListItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearPurchased removes every purchased item from the user's list.
func (s *Store) ClearPurchased(userID string) error {
	return s.db.Unscoped().Where("user_id = ? AND purchased = ?", userID, true).Delete(&models.ShoppingListItem{}).Error
}
