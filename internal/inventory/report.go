package inventory

import (
	"context"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/Veraticus/grocer/internal/model"
	"github.com/Veraticus/grocer/internal/service"
	"github.com/shopspring/decimal"
)

// EmptyMessage is reported when the inventory has no categories.
const EmptyMessage = "Inventory is empty."

var separator = strings.Repeat("-", 28)

// PriceFormatter renders a price for display.
type PriceFormatter interface {
	Format(price decimal.Decimal) string
}

// ReportLines yields the inventory report one line at a time: a header and
// separator per category, one line per item, then a blank line.
func ReportLines(groups []model.CategoryGroup, formatter PriceFormatter) iter.Seq[string] {
	return func(yield func(string) bool) {
		if len(groups) == 0 {
			yield(EmptyMessage)
			return
		}

		for _, group := range groups {
			if !yield("Category: " + group.Name) {
				return
			}
			if !yield(separator) {
				return
			}
			for _, item := range group.Items {
				if !yield(FormatItem(item, formatter)) {
					return
				}
			}
			if !yield("") {
				return
			}
		}
	}
}

// FormatItem renders a single item line.
func FormatItem(item model.InventoryItem, formatter PriceFormatter) string {
	return fmt.Sprintf("Name: %s, Price: %s, Quantity: %d", item.Name, formatter.Format(item.Price), item.Quantity)
}

// Display writes the report for inv to w.
func Display(ctx context.Context, w io.Writer, inv service.Inventory, formatter PriceFormatter) error {
	groups, err := inv.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	for line := range ReportLines(groups, formatter) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}
