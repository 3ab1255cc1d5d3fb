// Package testutil provides helpers for running the same test against every inventory backend.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/grocer/internal/inventory"
	"github.com/Veraticus/grocer/internal/model"
	"github.com/Veraticus/grocer/internal/service"
	"github.com/Veraticus/grocer/internal/storage"
	"github.com/shopspring/decimal"
)

// Backend is a named, ready-to-use inventory.
type Backend struct {
	Inventory service.Inventory
	Name      string
}

// SetupBackends returns a fresh in-memory inventory and a fresh migrated
// SQLite store. Both are closed when the test ends.
func SetupBackends(t *testing.T) []Backend {
	t.Helper()

	store, err := storage.NewSQLiteStorage(context.Background())
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	backends := []Backend{
		{Name: "memory", Inventory: inventory.New()},
		{Name: "sqlite", Inventory: store},
	}

	t.Cleanup(func() {
		for _, b := range backends {
			if err := b.Inventory.Close(); err != nil {
				t.Logf("failed to close %s inventory: %v", b.Name, err)
			}
		}
	})

	return backends
}

// ForEachBackend runs fn as a subtest against every backend.
func ForEachBackend(t *testing.T, fn func(t *testing.T, inv service.Inventory)) {
	t.Helper()

	for _, b := range SetupBackends(t) {
		t.Run(b.Name, func(t *testing.T) {
			fn(t, b.Inventory)
		})
	}
}

// Item builds an inventory item, failing the test on a malformed price.
func Item(t *testing.T, name, price string, quantity int, category string) model.InventoryItem {
	t.Helper()

	amount, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("invalid price %q: %v", price, err)
	}

	return model.InventoryItem{
		Name:     name,
		Price:    amount,
		Quantity: quantity,
		Category: category,
	}
}

// MustAdd adds items to inv or fails the test.
func MustAdd(t *testing.T, inv service.Inventory, items ...model.InventoryItem) {
	t.Helper()

	for _, item := range items {
		if err := inv.AddItem(context.Background(), item); err != nil {
			t.Fatalf("failed to add %q: %v", item.Name, err)
		}
	}
}
