package tui

import "github.com/Veraticus/grocer/internal/model"

// Inventory operation results.
type itemAddedMsg struct {
	err  error
	item model.InventoryItem
}

type itemRemovedMsg struct {
	err   error
	item  model.InventoryItem
	found bool
}

type reportLoadedMsg struct {
	err   error
	lines []string
}
