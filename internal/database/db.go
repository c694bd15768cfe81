package database

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"pantrykit/internal/models"
)

var DB *gorm.DB

// InitDB opens the database connection. Supported drivers are "sqlite3"
// and "postgres".
func InitDB(driver, dsn string) error {
	switch driver {
	case "sqlite3", "postgres":
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	var err error
	DB, err = gorm.Open(driver, dsn)
	if err != nil {
		return err
	}
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// Migrate creates or updates the schema for all persisted collections.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.PantryItem{},
		&models.Recipe{},
		&models.ShoppingListItem{},
	).Error
}
