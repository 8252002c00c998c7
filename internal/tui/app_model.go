package tui

import (
	"wishlist-cli/internal/model"
	"wishlist-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
)

type appModel struct {
	store *store.Store

	width  int
	height int

	// We treat the very first WindowSizeMsg as "initial sizing" rather than a
	// user-driven resize, so the table sizes itself before the first paint.
	seenWindowSize bool

	itemsList list.Model

	modal     modalKind
	formFocus int
	nameInput  textinput.Model
	urlInput   textinput.Model
	priceInput textinput.Model
	// catIdx indexes model.Categories for the selector row in the add/edit modals.
	catIdx       int
	confirmFocus confirmModalFocus

	// deleteID/deleteLabel identify the row pending delete confirmation.
	deleteID    int64
	deleteLabel string

	// committing blocks a second save while an update request is in flight.
	committing bool

	loading   bool
	statusMsg string
	statusErr bool
}

func newAppModel(s *store.Store) appModel {
	m := appModel{
		store:   s,
		loading: true,
	}

	m.itemsList = newItemsList()

	m.urlInput = textinput.New()
	m.urlInput.Placeholder = "https://…"
	m.urlInput.CharLimit = 500
	m.urlInput.Width = 48

	m.priceInput = textinput.New()
	m.priceInput.Placeholder = "0.00"
	m.priceInput.CharLimit = 16
	m.priceInput.Width = 12

	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "Name"
	m.nameInput.CharLimit = 200
	m.nameInput.Width = 48

	return m
}

func newItemsList() list.Model {
	l := list.New([]list.Item{}, newItemRowDelegate(), 0, 0)
	l.Title = "Wishlist"
	// We render our own header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetStatusBarItemName("item", "items")
	// Bubble list defaults to quitting on ESC; here ESC is "close/cancel".
	l.KeyMap.Quit.SetKeys("q")
	return l
}

func (m *appModel) refreshItems() {
	var curID int64
	if it, ok := m.itemsList.SelectedItem().(itemRow); ok {
		curID = it.item.ID
	}
	rows := make([]list.Item, 0, len(m.store.Items))
	for _, it := range m.store.Items {
		rows = append(rows, itemRow{item: it})
	}
	m.itemsList.SetItems(rows)
	if curID != 0 {
		selectItemRowByID(&m.itemsList, curID)
	}
}

func selectItemRowByID(l *list.Model, id int64) {
	for i, li := range l.Items() {
		if it, ok := li.(itemRow); ok && it.item.ID == id {
			l.Select(i)
			return
		}
	}
}

func (m *appModel) selectedItem() (model.Item, bool) {
	it, ok := m.itemsList.SelectedItem().(itemRow)
	if !ok {
		return model.Item{}, false
	}
	return it.item, true
}

func (m *appModel) resizeList() {
	// Leave room for header, column titles, status line and footer.
	h := m.height - 7
	if h < 5 {
		h = 5
	}
	w := m.width
	if w < minTableWidth {
		w = minTableWidth
	}
	m.itemsList.SetSize(w, h)
}

// catIdxFor maps a category name to its selector index. Unknown names
// (server-side categories this build does not know) pin to the default.
func catIdxFor(name string) int {
	for i, c := range model.Categories {
		if c.Name == name {
			return i
		}
	}
	return 0
}
