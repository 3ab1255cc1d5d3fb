// Package model contains the core domain types for the grocer application.
package model

import "github.com/shopspring/decimal"

// InventoryItem represents a single stocked grocery item.
// It has no identity beyond its field values.
type InventoryItem struct {
	Name     string          `validate:"notblank"`
	Price    decimal.Decimal `validate:"positive"`
	Quantity int             `validate:"gt=0"`
	Category string          `validate:"notblank"`
}

// Equal reports whether two items hold the same values.
// Prices are compared numerically, so 1.5 equals 1.50.
func (i InventoryItem) Equal(other InventoryItem) bool {
	return i.Name == other.Name &&
		i.Category == other.Category &&
		i.Quantity == other.Quantity &&
		i.Price.Equal(other.Price)
}

// Matches reports whether the item has exactly the given name and category.
// The comparison is case-sensitive.
func (i InventoryItem) Matches(name, category string) bool {
	return i.Name == name && i.Category == category
}

// CategoryGroup is a snapshot of one category and its items in insertion order.
type CategoryGroup struct {
	Name  string
	Items []InventoryItem
}
