package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Idempotent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, newItem("Apple", "1.50", 10, "Produce")))

	// Running again must not touch existing data.
	require.NoError(t, store.Migrate(ctx))

	found, err := store.FindItem(ctx, "Apple", "Produce")
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestMigrate_CreatesSchema(t *testing.T) {
	store := createTestStorage(t)

	tests := []struct {
		kind string
		name string
	}{
		{kind: "table", name: "categories"},
		{kind: "table", name: "items"},
		{kind: "index", name: "idx_items_category_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var count int
			err := store.db.QueryRow(
				`SELECT COUNT(*) FROM sqlite_master WHERE type = ? AND name = ?`,
				tt.kind, tt.name,
			).Scan(&count)
			require.NoError(t, err)
			assert.Equal(t, 1, count)
		})
	}
}

func TestMigrate_VersionsAreSequential(t *testing.T) {
	for i, migration := range migrations {
		assert.Equal(t, i+1, migration.Version, "migration %q", migration.Description)
		assert.NotNil(t, migration.Up)
	}
	assert.Equal(t, ExpectedSchemaVersion, migrations[len(migrations)-1].Version)
}

func TestMigrate_NilContext(t *testing.T) {
	store := createTestStorage(t)

	//nolint:staticcheck // exercising nil context validation
	err := store.Migrate(nil)
	assert.ErrorIs(t, err, ErrNilContext)
}
