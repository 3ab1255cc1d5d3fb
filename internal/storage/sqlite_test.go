package storage

import (
	"context"
	"testing"

	"github.com/Veraticus/grocer/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func newItem(name, price string, quantity int, category string) model.InventoryItem {
	return model.InventoryItem{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Quantity: quantity,
		Category: category,
	}
}

func TestNewSQLiteStorage_SchemaVersion(t *testing.T) {
	store := createTestStorage(t)

	var version int
	err := store.db.QueryRow("PRAGMA user_version").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)

	// Re-running migrations is a no-op.
	assert.NoError(t, store.Migrate(context.Background()))
}

func TestNewSQLiteStorage_IsolatedDatabases(t *testing.T) {
	ctx := context.Background()
	first := createTestStorage(t)
	second := createTestStorage(t)

	require.NoError(t, first.AddItem(ctx, newItem("Apple", "1.50", 10, "Produce")))

	found, err := second.FindItem(ctx, "Apple", "Produce")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSQLiteStorage_AddThenFind(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	apple := newItem("Apple", "1.50", 10, "Produce")
	require.NoError(t, store.AddItem(ctx, apple))

	found, err := store.FindItem(ctx, "Apple", "Produce")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, apple.Equal(*found))
	assert.Equal(t, "1.5", found.Price.String())

	missing, err := store.FindItem(ctx, "apple", "Produce")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSQLiteStorage_FindReturnsFirstMatch(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.AddItem(ctx, newItem("Apple", "1.50", 10, "Produce")))
	require.NoError(t, store.AddItem(ctx, newItem("Apple", "2.00", 3, "Produce")))

	found, err := store.FindItem(ctx, "Apple", "Produce")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 10, found.Quantity)
}

func TestSQLiteStorage_RemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("removes first equal item only", func(t *testing.T) {
		store := createTestStorage(t)
		apple := newItem("Apple", "1.50", 10, "Produce")
		require.NoError(t, store.AddItem(ctx, apple))
		require.NoError(t, store.AddItem(ctx, newItem("Banana", "0.50", 5, "Produce")))
		require.NoError(t, store.AddItem(ctx, apple))

		require.NoError(t, store.RemoveItem(ctx, apple))

		groups, err := store.Categories(ctx)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		require.Len(t, groups[0].Items, 2)
		assert.Equal(t, "Banana", groups[0].Items[0].Name)
		assert.Equal(t, "Apple", groups[0].Items[1].Name)
	})

	t.Run("matches price by value", func(t *testing.T) {
		store := createTestStorage(t)
		require.NoError(t, store.AddItem(ctx, newItem("Apple", "1.50", 10, "Produce")))

		require.NoError(t, store.RemoveItem(ctx, newItem("Apple", "1.5", 10, "Produce")))

		found, err := store.FindItem(ctx, "Apple", "Produce")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("absent item is a no-op", func(t *testing.T) {
		store := createTestStorage(t)
		require.NoError(t, store.AddItem(ctx, newItem("Apple", "1.50", 10, "Produce")))

		require.NoError(t, store.RemoveItem(ctx, newItem("Apple", "1.50", 9, "Produce")))
		require.NoError(t, store.RemoveItem(ctx, newItem("Apple", "1.50", 10, "Dairy")))

		found, err := store.FindItem(ctx, "Apple", "Produce")
		require.NoError(t, err)
		assert.NotNil(t, found)
	})
}

func TestSQLiteStorage_Categories(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	groups, err := store.Categories(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)

	milk := newItem("Milk", "3.25", 2, "Dairy")
	require.NoError(t, store.AddItem(ctx, milk))
	require.NoError(t, store.AddItem(ctx, newItem("Apple", "1.50", 10, "Produce")))
	require.NoError(t, store.AddItem(ctx, newItem("Cheese", "5.00", 1, "Dairy")))
	require.NoError(t, store.RemoveItem(ctx, milk))
	require.NoError(t, store.RemoveItem(ctx, newItem("Cheese", "5.00", 1, "Dairy")))

	groups, err = store.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "Dairy", groups[0].Name)
	assert.Empty(t, groups[0].Items, "emptied category remains in place")
	assert.Equal(t, "Produce", groups[1].Name)
	require.Len(t, groups[1].Items, 1)
	assert.Equal(t, "Apple", groups[1].Items[0].Name)
	assert.Equal(t, "Produce", groups[1].Items[0].Category)
}

func TestSQLiteStorage_Validation(t *testing.T) {
	store := createTestStorage(t)

	//nolint:staticcheck // nil context is the case under test
	err := store.AddItem(nil, newItem("Apple", "1.50", 10, "Produce"))
	assert.ErrorIs(t, err, ErrNilContext)

	err = store.AddItem(context.Background(), newItem("Apple", "1.50", 10, " "))
	assert.ErrorIs(t, err, ErrEmptyString)

	err = store.AddItem(context.Background(), newItem("", "1.50", 10, "Produce"))
	assert.ErrorIs(t, err, ErrEmptyString)
}
