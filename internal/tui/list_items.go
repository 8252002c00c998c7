package tui

import (
	"strings"

	"wishlist-cli/internal/model"
	"wishlist-cli/internal/store"

	xansi "github.com/charmbracelet/x/ansi"
)

// itemRow wraps a wishlist item as a bubbles list row.
type itemRow struct {
	item model.Item
}

func (r itemRow) FilterValue() string {
	return r.item.Name + " " + r.item.Category
}

// Table column widths. Name takes whatever is left.
const (
	priceColW     = 10
	categoryColW  = 13
	urlColW       = 30
	colGapW       = 2
	minTableWidth = 60
)

func nameColWidth(total int) int {
	w := total - priceColW - categoryColW - urlColW - 3*colGapW
	if w < 12 {
		w = 12
	}
	return w
}

func itemDisplayName(it model.Item) string {
	n := strings.TrimSpace(it.Name)
	if n == "" {
		return "(unnamed)"
	}
	return n
}

// renderItemColumns renders one row's cells, fixed-width and gap-joined,
// in the same order as the header.
func renderItemColumns(it model.Item, totalW int) string {
	gap := strings.Repeat(" ", colGapW)
	cols := []string{
		fixedWidthLine(itemDisplayName(it), nameColWidth(totalW)),
		fixedWidthLine(store.FormatPrice(it.Price), priceColW),
		fixedWidthLine(renderCategoryChip(it.Category), categoryColW),
		fixedWidthLine(it.URL, urlColW),
	}
	return strings.Join(cols, gap)
}

func renderColumnsHeader(totalW int) string {
	gap := strings.Repeat(" ", colGapW)
	cols := []string{
		fixedWidthLine("Name", nameColWidth(totalW)),
		fixedWidthLine("Price", priceColW),
		fixedWidthLine("Category", categoryColW),
		fixedWidthLine("Link", urlColW),
	}
	return styleMuted().Render(strings.Join(cols, gap))
}

func fixedWidthLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) > width {
		// Ensure any open ANSI styling is terminated.
		return xansi.Cut(s, 0, width) + "\x1b[0m"
	}
	if pad := width - xansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
