package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/grocer/internal/common"
	"github.com/Veraticus/grocer/internal/config"
	"github.com/Veraticus/grocer/internal/inventory"
	"github.com/Veraticus/grocer/internal/money"
	"github.com/Veraticus/grocer/internal/service"
	"github.com/Veraticus/grocer/internal/storage"
	"github.com/spf13/viper"
)

// loadSettings reads and validates the merged configuration.
func loadSettings() (*config.Settings, error) {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, common.NewUserError("Invalid configuration", err)
	}
	return settings, nil
}

// newFormatter builds the price formatter for a session and logs the session setup.
func newFormatter(settings *config.Settings) (*money.Formatter, error) {
	formatter, err := settings.Formatter()
	if err != nil {
		return nil, common.NewUserError("Invalid configuration", err)
	}

	common.LogInfo("Starting inventory session", common.Fields{
		"storage":  settings.StorageDriver,
		"currency": formatter.Currency(),
		"locale":   settings.Locale,
	})
	return formatter, nil
}

// initInventory creates the inventory backend selected by settings.
func initInventory(ctx context.Context, settings *config.Settings) (service.Inventory, error) {
	switch settings.StorageDriver {
	case config.DriverSQLite:
		store, err := storage.NewSQLiteStorage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		common.LogDebug("using sqlite inventory", common.Fields{"schema_version": storage.ExpectedSchemaVersion})
		return store, nil
	default:
		common.LogDebug("using in-memory inventory", nil)
		return inventory.New(), nil
	}
}

// closeInventory releases the backend, logging any failure.
func closeInventory(inv service.Inventory) {
	if err := inv.Close(); err != nil {
		common.LogError(err, "Failed to close inventory", nil)
	}
}
