package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/Veraticus/grocer/internal/common"
	"github.com/Veraticus/grocer/internal/config"
	"github.com/Veraticus/grocer/internal/inventory"
	"github.com/Veraticus/grocer/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T, values map[string]string) {
	t.Helper()

	viper.Reset()
	config.SetDefaults(viper.GetViper())
	for key, value := range values {
		viper.Set(key, value)
	}
	t.Cleanup(viper.Reset)
}

func TestInitInventory(t *testing.T) {
	tests := []struct {
		check  func(t *testing.T, inv any)
		name   string
		driver string
	}{
		{
			name:   "memory",
			driver: config.DriverMemory,
			check: func(t *testing.T, inv any) {
				t.Helper()
				assert.IsType(t, &inventory.Inventory{}, inv)
			},
		},
		{
			name:   "sqlite",
			driver: config.DriverSQLite,
			check: func(t *testing.T, inv any) {
				t.Helper()
				assert.IsType(t, &storage.SQLiteStorage{}, inv)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &config.Settings{Currency: "USD", Locale: "en-US", StorageDriver: tt.driver}

			inv, err := initInventory(context.Background(), settings)
			require.NoError(t, err)
			defer closeInventory(inv)

			tt.check(t, inv)
		})
	}
}

func TestNewFormatter_LogsSession(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var logs bytes.Buffer
	require.NoError(t, common.SetupLogger("info", common.FormatJSON, &logs))

	settings := &config.Settings{Currency: "EUR", Locale: "de-DE", StorageDriver: config.DriverMemory}
	formatter, err := newFormatter(settings)
	require.NoError(t, err)
	assert.Contains(t, formatter.Format(decimal.RequireFromString("1234.5")), "1.234,50")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "EUR", entry["currency"])
	assert.Equal(t, config.DriverMemory, entry["storage"])
}

func TestNewFormatter_Invalid(t *testing.T) {
	_, err := newFormatter(&config.Settings{Currency: "NOPE", Locale: "en-US"})

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestLoadSettings_Invalid(t *testing.T) {
	resetViper(t, map[string]string{config.KeyStorageDriver: "postgres"})

	_, err := loadSettings()
	require.Error(t, err)

	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestRunMenu(t *testing.T) {
	for _, driver := range []string{config.DriverMemory, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			resetViper(t, map[string]string{config.KeyStorageDriver: driver})

			input := strings.Join([]string{
				"1", "Apple", "1.50", "10", "Produce",
				"1", "Banana", "0.50", "5", "Produce",
				"2", "Apple", "Produce",
				"3",
				"4",
			}, "\n") + "\n"

			var output bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetContext(context.Background())
			cmd.SetIn(strings.NewReader(input))
			cmd.SetOut(&output)

			require.NoError(t, runMenu(cmd, nil))

			out := output.String()
			assert.Contains(t, out, "Category: Produce")
			assert.Contains(t, out, "0.50, Quantity: 5")
			assert.NotContains(t, out, "Name: Apple")
			assert.Contains(t, out, "Exiting the program.")
		})
	}
}

func TestVersionCmd(t *testing.T) {
	var output bytes.Buffer
	cmd := versionCmd()
	cmd.SetOut(&output)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "grocer version dev\n", output.String())
}
