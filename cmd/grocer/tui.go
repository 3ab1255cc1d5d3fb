package main

import (
	"errors"

	"github.com/Veraticus/grocer/internal/cli"
	"github.com/Veraticus/grocer/internal/common"
	"github.com/Veraticus/grocer/internal/tui"
	"github.com/Veraticus/grocer/internal/tui/themes"
	"github.com/spf13/cobra"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Manage the inventory in a full-screen terminal UI",
		Long: `Open the inventory in an interactive full-screen interface.

Use the arrow keys or the number keys to pick an action, Tab to move between
form fields and Enter to submit. Esc goes back, q quits.`,
		RunE: runTUI,
	}

	cmd.Flags().String("theme", "", "color theme (default, catppuccin)")
	return cmd
}

func runTUI(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	theme := settings.Theme
	if flagTheme, _ := cmd.Flags().GetString("theme"); flagTheme != "" {
		theme = flagTheme
	}

	formatter, err := newFormatter(settings)
	if err != nil {
		return err
	}

	inv, err := initInventory(cmd.Context(), settings)
	if err != nil {
		return err
	}
	defer closeInventory(inv)

	err = tui.Run(cmd.Context(),
		tui.WithInventory(inv),
		tui.WithFormatter(formatter),
		tui.WithTheme(themes.ByName(theme)),
	)
	if err != nil {
		if errors.Is(err, cli.ErrInputCancelled) {
			return nil
		}
		common.LogError(err, "TUI session failed", nil)
		return common.NewUserError("Inventory session ended unexpectedly", err)
	}

	cmd.Println(cli.MsgExiting)
	return nil
}
