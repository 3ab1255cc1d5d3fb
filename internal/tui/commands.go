package tui

import (
	"slices"

	"github.com/Veraticus/grocer/internal/inventory"
	"github.com/Veraticus/grocer/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// addItem stores item in the inventory.
func (m Model) addItem(item model.InventoryItem) tea.Cmd {
	return func() tea.Msg {
		err := m.inventory.AddItem(m.ctx, item)
		return itemAddedMsg{item: item, err: err}
	}
}

// removeItem removes the first item in category named name.
func (m Model) removeItem(name, category string) tea.Cmd {
	return func() tea.Msg {
		item, err := m.inventory.FindItem(m.ctx, name, category)
		if err != nil {
			return itemRemovedMsg{err: err}
		}
		if item == nil {
			return itemRemovedMsg{item: model.InventoryItem{Name: name, Category: category}}
		}

		if err := m.inventory.RemoveItem(m.ctx, *item); err != nil {
			return itemRemovedMsg{item: *item, err: err}
		}
		return itemRemovedMsg{item: *item, found: true}
	}
}

// loadReport renders the current inventory report.
func (m Model) loadReport() tea.Cmd {
	return func() tea.Msg {
		groups, err := m.inventory.Categories(m.ctx)
		if err != nil {
			return reportLoadedMsg{err: err}
		}
		return reportLoadedMsg{lines: slices.Collect(inventory.ReportLines(groups, m.formatter))}
	}
}
