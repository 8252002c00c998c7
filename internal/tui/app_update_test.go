package tui

import (
	"context"
	"errors"
	"testing"

	"wishlist-cli/internal/api"
	"wishlist-cli/internal/model"
	"wishlist-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeClient struct {
	items []model.Item
}

func (c *fakeClient) List(context.Context) ([]model.Item, error) { return c.items, nil }

func (c *fakeClient) Create(_ context.Context, d api.Draft) (model.Item, error) {
	return model.Item{ID: 100, Name: "Created", Price: d.Price, Category: d.Category, URL: d.URL}, nil
}

func (c *fakeClient) Update(_ context.Context, id int64, p api.Patch) (model.Item, error) {
	return model.Item{ID: id, Name: p.Name, Price: p.Price, Category: p.Category, URL: p.URL}, nil
}

func (c *fakeClient) Delete(context.Context, int64) error { return nil }

func seededModel(items ...model.Item) appModel {
	s := store.New(&fakeClient{items: items})
	m := newAppModel(s)
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = mm.(appModel)
	mm, _ = m.Update(itemsLoadedMsg{items: items})
	return mm.(appModel)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testItems() []model.Item {
	return []model.Item{
		{ID: 1, Name: "Libro", Price: 12.5, Category: "Libri", URL: "http://b"},
		{ID: 2, Name: "Lampada", Price: 25, Category: "Casa", URL: "http://l"},
	}
}

func TestLoadedMsgPopulatesTable(t *testing.T) {
	m := seededModel(testItems()...)

	if m.loading {
		t.Fatalf("loading flag should clear after the load message")
	}
	if len(m.itemsList.Items()) != 2 {
		t.Fatalf("list has %d rows, want 2", len(m.itemsList.Items()))
	}
}

func TestLoadFailureKeepsRowsAndSurfacesError(t *testing.T) {
	m := seededModel(testItems()...)

	mm, _ := m.Update(itemsLoadedMsg{err: errors.New("network down")})
	m = mm.(appModel)

	if len(m.itemsList.Items()) != 2 {
		t.Fatalf("rows changed on failed load")
	}
	if !m.statusErr || m.statusMsg == "" {
		t.Fatalf("failure must surface in the status line; got %q", m.statusMsg)
	}
}

func TestAddFlowAppendsAndClosesModal(t *testing.T) {
	m := seededModel(testItems()...)

	mm, _ := m.Update(keyMsg("a"))
	m = mm.(appModel)
	if m.modal != modalAdd {
		t.Fatalf("expected add modal to open")
	}

	m.urlInput.SetValue("http://x")
	m.priceInput.SetValue("12.5")
	m.catIdx = catIdxFor("Svago")

	mm, cmd := m.Update(keyMsg("enter"))
	m = mm.(appModel)
	if cmd == nil {
		t.Fatalf("submit should issue a create request")
	}

	// The command runs the request against the fake client.
	msg := cmd()
	created, ok := msg.(itemCreatedMsg)
	if !ok {
		t.Fatalf("got %T, want itemCreatedMsg", msg)
	}

	mm, _ = m.Update(created)
	m = mm.(appModel)
	if m.modal != modalNone {
		t.Fatalf("modal should close after a successful add")
	}
	if len(m.store.Items) != 3 || m.store.Items[2].ID != 100 {
		t.Fatalf("created item not appended: %+v", m.store.Items)
	}
	if m.store.AddForm.URL != "" || m.store.AddForm.Category != model.DefaultCategory {
		t.Fatalf("add form should reset after a successful add: %+v", m.store.AddForm)
	}
}

func TestAddValidationErrorKeepsModalOpen(t *testing.T) {
	m := seededModel()

	mm, _ := m.Update(keyMsg("a"))
	m = mm.(appModel)
	// No url, no price.
	mm, cmd := m.Update(keyMsg("enter"))
	m = mm.(appModel)

	if cmd != nil {
		t.Fatalf("invalid form must not reach the network")
	}
	if m.modal != modalAdd {
		t.Fatalf("modal should stay open on validation failure")
	}
	if !m.statusErr {
		t.Fatalf("validation failure should surface in the status line")
	}
}

func TestAddFailurePreservesEntryForResubmission(t *testing.T) {
	m := seededModel(testItems()...)

	mm, _ := m.Update(keyMsg("a"))
	m = mm.(appModel)
	m.urlInput.SetValue("http://x")
	m.priceInput.SetValue("9.99")

	mm, _ = m.Update(itemCreatedMsg{err: errors.New("503")})
	m = mm.(appModel)

	if m.modal != modalAdd {
		t.Fatalf("modal should stay open after a failed add")
	}
	if m.urlInput.Value() != "http://x" || m.priceInput.Value() != "9.99" {
		t.Fatalf("form entry must be preserved for resubmission")
	}
	if len(m.store.Items) != 2 {
		t.Fatalf("items changed on failed add")
	}
}

func TestEditFlowReplacesRowInPlace(t *testing.T) {
	m := seededModel(testItems()...)
	m.itemsList.Select(1)

	mm, _ := m.Update(keyMsg("e"))
	m = mm.(appModel)
	if m.modal != modalEdit || m.store.EditingID != 2 {
		t.Fatalf("edit session not opened for the selected row")
	}

	m.nameInput.SetValue("Lampada LED")
	m.priceInput.SetValue("19.9")

	mm, cmd := m.Update(keyMsg("enter"))
	m = mm.(appModel)
	if cmd == nil {
		t.Fatalf("save should issue an update request")
	}

	msg := cmd()
	updated, ok := msg.(itemUpdatedMsg)
	if !ok {
		t.Fatalf("got %T, want itemUpdatedMsg", msg)
	}
	mm, _ = m.Update(updated)
	m = mm.(appModel)

	if m.modal != modalNone {
		t.Fatalf("modal should close after a successful save")
	}
	if m.store.Items[1].Name != "Lampada LED" || m.store.Items[1].Price != 19.9 {
		t.Fatalf("row not replaced in place: %+v", m.store.Items[1])
	}
	if m.store.Items[0].Name != "Libro" {
		t.Fatalf("other rows must not change")
	}
}

func TestStaleSaveAfterCancelIsDiscarded(t *testing.T) {
	m := seededModel(testItems()...)

	mm, _ := m.Update(keyMsg("e"))
	m = mm.(appModel)
	token := m.store.EditToken()

	// Cancel while the (imaginary) save request is still in flight.
	mm, _ = m.Update(keyMsg("esc"))
	m = mm.(appModel)
	if m.store.Editing() {
		t.Fatalf("esc should cancel the edit session")
	}

	// The save response lands afterwards and must be ignored.
	mm, _ = m.Update(itemUpdatedMsg{item: model.Item{ID: 1, Name: "late"}, token: token})
	m = mm.(appModel)

	if m.store.Items[0].Name != "Libro" {
		t.Fatalf("stale save mutated items: %+v", m.store.Items[0])
	}
}

func TestDeleteFlowRemovesRowAfterConfirm(t *testing.T) {
	m := seededModel(testItems()...)

	mm, _ := m.Update(keyMsg("d"))
	m = mm.(appModel)
	if m.modal != modalConfirmDelete || m.deleteID != 1 {
		t.Fatalf("confirm modal not armed for the selected row")
	}

	mm, cmd := m.Update(keyMsg("y"))
	m = mm.(appModel)
	if cmd == nil {
		t.Fatalf("confirm should issue a delete request")
	}

	msg := cmd()
	removed, ok := msg.(itemRemovedMsg)
	if !ok {
		t.Fatalf("got %T, want itemRemovedMsg", msg)
	}
	mm, _ = m.Update(removed)
	m = mm.(appModel)

	if len(m.store.Items) != 1 || m.store.Items[0].ID != 2 {
		t.Fatalf("row not removed: %+v", m.store.Items)
	}
}

func TestDeleteDefaultsToCancel(t *testing.T) {
	m := seededModel(testItems()...)

	mm, _ := m.Update(keyMsg("d"))
	m = mm.(appModel)
	// Enter with the default focus (Cancel) must not delete.
	mm, cmd := m.Update(keyMsg("enter"))
	m = mm.(appModel)

	if cmd != nil {
		t.Fatalf("cancel must not issue a delete request")
	}
	if len(m.store.Items) != 2 {
		t.Fatalf("items changed on canceled delete")
	}
}

func TestHelpModalToggle(t *testing.T) {
	m := seededModel()

	mm, _ := m.Update(keyMsg("?"))
	m = mm.(appModel)
	if m.modal != modalHelp {
		t.Fatalf("? should open the help overlay")
	}
	mm, _ = m.Update(keyMsg("esc"))
	m = mm.(appModel)
	if m.modal != modalNone {
		t.Fatalf("esc should close the help overlay")
	}
}
