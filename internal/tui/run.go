// Package tui provides a terminal user interface for managing the inventory.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/grocer/internal/cli"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoInventory is returned when Run is called without an inventory.
var ErrNoInventory = errors.New("inventory is required")

// Run starts the TUI and blocks until the user exits.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Inventory == nil {
		return ErrNoInventory
	}
	cfg.fillDefaults()

	program := tea.NewProgram(
		newModel(ctx, cfg),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return cli.ErrInputCancelled
		}
		return fmt.Errorf("TUI error: %w", err)
	}

	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
