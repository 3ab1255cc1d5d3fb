// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/grocer/internal/model"
)

// Inventory defines the contract for an inventory backend.
type Inventory interface {
	// AddItem appends the item to its category, creating the category if needed.
	AddItem(ctx context.Context, item model.InventoryItem) error
	// RemoveItem removes the first item equal to the given one.
	// It is a no-op when the category or item is absent.
	RemoveItem(ctx context.Context, item model.InventoryItem) error
	// FindItem returns the first item in category with exactly the given name,
	// or nil when there is none.
	FindItem(ctx context.Context, name, category string) (*model.InventoryItem, error)
	// Categories returns every category in creation order with its items.
	Categories(ctx context.Context) ([]model.CategoryGroup, error)
	Close() error
}
