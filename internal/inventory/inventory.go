// Package inventory holds the in-memory grocery inventory, item validation and reporting.
package inventory

import (
	"context"
	"log/slog"
	"slices"

	"github.com/Veraticus/grocer/internal/model"
	"github.com/Veraticus/grocer/internal/service"
)

var _ service.Inventory = (*Inventory)(nil)

// Inventory maps each category to its items in insertion order.
// It is owned by a single session and is not safe for concurrent use.
type Inventory struct {
	items map[string][]model.InventoryItem
	order []string
}

// New creates an empty inventory.
func New() *Inventory {
	return &Inventory{
		items: make(map[string][]model.InventoryItem),
	}
}

// AddItem appends item to its category. The item is assumed to be valid.
func (inv *Inventory) AddItem(_ context.Context, item model.InventoryItem) error {
	if _, ok := inv.items[item.Category]; !ok {
		inv.order = append(inv.order, item.Category)
	}
	inv.items[item.Category] = append(inv.items[item.Category], item)

	slog.Debug("added item", "name", item.Name, "category", item.Category)
	return nil
}

// RemoveItem removes the first item equal to item. Absent items are ignored.
// An emptied category stays in place.
func (inv *Inventory) RemoveItem(_ context.Context, item model.InventoryItem) error {
	items, ok := inv.items[item.Category]
	if !ok {
		return nil
	}

	idx := slices.IndexFunc(items, item.Equal)
	if idx < 0 {
		return nil
	}

	inv.items[item.Category] = slices.Delete(items, idx, idx+1)
	slog.Debug("removed item", "name", item.Name, "category", item.Category)
	return nil
}

// FindItem returns the first item in category named name, or nil.
func (inv *Inventory) FindItem(_ context.Context, name, category string) (*model.InventoryItem, error) {
	for _, item := range inv.items[category] {
		if item.Matches(name, category) {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

// Categories returns a copy of every category in creation order.
func (inv *Inventory) Categories(_ context.Context) ([]model.CategoryGroup, error) {
	groups := make([]model.CategoryGroup, 0, len(inv.order))
	for _, name := range inv.order {
		groups = append(groups, model.CategoryGroup{
			Name:  name,
			Items: slices.Clone(inv.items[name]),
		})
	}
	return groups, nil
}

// Close is a no-op; the inventory is discarded with the process.
func (inv *Inventory) Close() error {
	return nil
}
