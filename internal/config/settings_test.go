package config

import (
	"testing"

	"github.com/Veraticus/grocer/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	settings, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "USD", settings.Currency)
	assert.Equal(t, "en-US", settings.Locale)
	assert.Equal(t, DriverMemory, settings.StorageDriver)
	assert.Equal(t, DefaultTheme, settings.Theme)
}

func TestLoad_EmptyValuesFallBackToDefaults(t *testing.T) {
	settings, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "USD", settings.Currency)
	assert.Equal(t, DriverMemory, settings.StorageDriver)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		values      map[string]string
		expected    *Settings
		name        string
		expectError bool
	}{
		{
			name: "normalizes case",
			values: map[string]string{
				KeyCurrency:      " eur ",
				KeyLocale:        "de-DE",
				KeyStorageDriver: "SQLite",
			},
			expected: &Settings{Currency: "EUR", Locale: "de-DE", StorageDriver: DriverSQLite, Theme: DefaultTheme},
		},
		{
			name:     "theme",
			values:   map[string]string{KeyTheme: " Catppuccin "},
			expected: &Settings{Currency: "USD", Locale: "en-US", StorageDriver: DriverMemory, Theme: "catppuccin"},
		},
		{
			name:        "unknown driver",
			values:      map[string]string{KeyStorageDriver: "postgres"},
			expectError: true,
		},
		{
			name:        "unknown currency",
			values:      map[string]string{KeyCurrency: "ZZZZ"},
			expectError: true,
		},
		{
			name:        "malformed locale",
			values:      map[string]string{KeyLocale: "!!"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			for key, value := range tt.values {
				v.Set(key, value)
			}

			settings, err := Load(v)
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, settings)
		})
	}
}

func TestSettings_Formatter(t *testing.T) {
	settings := &Settings{Currency: "USD", Locale: "en-US", StorageDriver: DriverMemory}

	f, err := settings.Formatter()
	require.NoError(t, err)
	assert.Equal(t, "USD", f.Currency())
}
