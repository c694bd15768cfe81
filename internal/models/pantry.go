package models

import (
	"time"
)

// PantryItem represents a perishable item in a user's pantry.
// Quantity is tracked in the item's own stored unit; the matching engine
// compares raw quantities without unit conversion.
// ORM bookkeeping fields are spelled out instead of embedding gorm.Model
// so they stay out of API payloads; ItemID is the only id on the wire.
type PantryItem struct {
	ID        uint       `gorm:"primary_key" json:"-"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
	DeletedAt *time.Time `sql:"index" json:"-"`

	ItemID     string    `gorm:"unique_index" json:"id"`
	UserID     string    `gorm:"index" json:"-"`
	Name       string    `json:"name"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	Category   string    `json:"category"`
	ExpiryDate time.Time `json:"expiryDate"`
	AddedDate  time.Time `json:"addedDate"`
}

// TableName sets the table name for PantryItem
func (PantryItem) TableName() string {
	return "pantry_items"
}

// PantryCategory represents the category of a pantry item
type PantryCategory string

const (
	// Pantry categories
	CategoryProtein    PantryCategory = "protein"
	CategoryProduce    PantryCategory = "produce"
	CategoryDairy      PantryCategory = "dairy"
	CategoryDryGoods   PantryCategory = "dry_goods"
	CategorySpices     PantryCategory = "spices"
	CategoryCondiments PantryCategory = "condiments"
	CategoryBeverages  PantryCategory = "beverages"
	CategoryOther      PantryCategory = "other"
)

// PantryUnit represents the unit of measurement for a pantry item.
// Units are display-only; the core never converts between them.
type PantryUnit string

const (
	// Weight units
	UnitGram     PantryUnit = "g"
	UnitKilogram PantryUnit = "kg"
	UnitOunce    PantryUnit = "oz"
	UnitPound    PantryUnit = "lb"

	// Volume units
	UnitMilliliter PantryUnit = "ml"
	UnitLiter      PantryUnit = "l"
	UnitTeaspoon   PantryUnit = "tsp"
	UnitTablespoon PantryUnit = "tbsp"
	UnitCup        PantryUnit = "cup"

	// Count units
	UnitPiece PantryUnit = "pieces"
	UnitHead  PantryUnit = "head"
	UnitClove PantryUnit = "cloves"
)
