package tui

import (
	"github.com/Veraticus/grocer/internal/inventory"
	"github.com/Veraticus/grocer/internal/money"
	"github.com/Veraticus/grocer/internal/service"
	"github.com/Veraticus/grocer/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Inventory service.Inventory
	Formatter inventory.PriceFormatter
	Width     int
	Height    int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Width:  80,
		Height: 24,
	}
}

// WithInventory sets the inventory the TUI manages.
func WithInventory(inv service.Inventory) Option {
	return func(c *Config) {
		c.Inventory = inv
	}
}

// WithFormatter sets the price formatter used in the report.
func WithFormatter(formatter inventory.PriceFormatter) Option {
	return func(c *Config) {
		c.Formatter = formatter
	}
}

// WithTheme sets the color theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

func (c *Config) fillDefaults() {
	if c.Formatter == nil {
		c.Formatter = money.MustFormatter(money.DefaultCurrency, money.DefaultLocale)
	}
}
