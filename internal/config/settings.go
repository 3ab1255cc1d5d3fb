package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/grocer/internal/common"
	"github.com/Veraticus/grocer/internal/money"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Viper keys.
const (
	KeyCurrency      = "display.currency"
	KeyLocale        = "display.locale"
	KeyStorageDriver = "storage.driver"
	KeyTheme         = "tui.theme"
)

// DefaultTheme is the TUI theme used when none is configured.
const DefaultTheme = "default"

// Settings holds the validated runtime configuration.
type Settings struct {
	Currency      string
	Locale        string
	StorageDriver string
	Theme         string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCurrency, money.DefaultCurrency)
	v.SetDefault(KeyLocale, money.DefaultLocale)
	v.SetDefault(KeyStorageDriver, DriverMemory)
	v.SetDefault(KeyTheme, DefaultTheme)
}

// Load reads settings from v (config file, GROCER_ env vars or flags) and validates them.
func Load(v *viper.Viper) (*Settings, error) {
	settings := &Settings{
		Currency:      strings.ToUpper(strings.TrimSpace(v.GetString(KeyCurrency))),
		Locale:        strings.TrimSpace(v.GetString(KeyLocale)),
		StorageDriver: strings.ToLower(strings.TrimSpace(v.GetString(KeyStorageDriver))),
		Theme:         strings.ToLower(strings.TrimSpace(v.GetString(KeyTheme))),
	}

	if settings.Currency == "" {
		settings.Currency = money.DefaultCurrency
	}
	if settings.Locale == "" {
		settings.Locale = money.DefaultLocale
	}
	if settings.StorageDriver == "" {
		settings.StorageDriver = DriverMemory
	}
	if settings.Theme == "" {
		settings.Theme = DefaultTheme
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate checks that every setting is usable.
func (s *Settings) Validate() error {
	switch s.StorageDriver {
	case DriverMemory, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown storage driver %q (want %s or %s)",
			common.ErrInvalidConfig, s.StorageDriver, DriverMemory, DriverSQLite)
	}

	if _, err := s.Formatter(); err != nil {
		return err
	}
	return nil
}

// Formatter builds the price formatter for the configured currency and locale.
func (s *Settings) Formatter() (*money.Formatter, error) {
	f, err := money.NewFormatter(s.Currency, s.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	return f, nil
}
