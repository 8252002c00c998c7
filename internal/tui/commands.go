package tui

import (
	"context"

	"wishlist-cli/internal/api"
	"wishlist-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Network requests run as background commands; the matching state mutation
// happens when the response message reaches Update, so all view-model
// changes stay on the single update loop.

func loadItemsCmd(c store.Client) tea.Cmd {
	return func() tea.Msg {
		items, err := c.List(context.Background())
		return itemsLoadedMsg{items: items, err: err}
	}
}

func createItemCmd(c store.Client, d api.Draft) tea.Cmd {
	return func() tea.Msg {
		it, err := c.Create(context.Background(), d)
		return itemCreatedMsg{item: it, err: err}
	}
}

func updateItemCmd(c store.Client, id int64, p api.Patch, token string) tea.Cmd {
	return func() tea.Msg {
		it, err := c.Update(context.Background(), id, p)
		return itemUpdatedMsg{item: it, token: token, err: err}
	}
}

func removeItemCmd(c store.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		err := c.Delete(context.Background(), id)
		return itemRemovedMsg{id: id, err: err}
	}
}
