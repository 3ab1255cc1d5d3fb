package main

import (
	"errors"

	"github.com/Veraticus/grocer/internal/cli"
	"github.com/Veraticus/grocer/internal/common"
	"github.com/spf13/cobra"
)

// runMenu runs the numbered text menu on stdin and stdout.
func runMenu(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
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

	handler := cli.NewInterruptHandler(cmd.OutOrStdout())
	ctx := handler.HandleInterrupts(cmd.Context())

	menu := cli.NewMenu(cmd.InOrStdin(), cmd.OutOrStdout(), inv, formatter)
	if err := menu.Run(ctx); err != nil {
		if errors.Is(err, cli.ErrInputCancelled) && handler.WasInterrupted() {
			return nil
		}
		common.LogError(err, "Menu session failed", nil)
		return common.NewUserError("Inventory session ended unexpectedly", err)
	}

	return nil
}
