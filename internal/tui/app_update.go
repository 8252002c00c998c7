package tui

import (
	"fmt"

	"wishlist-cli/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd {
	// One load per view activation; afterwards the server is only re-read
	// on an explicit reload.
	return loadItemsCmd(m.store.Client())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.seenWindowSize = true
		m.resizeList()
		return m, nil

	case itemsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.setError("load failed: " + msg.err.Error())
			return m, nil
		}
		m.store.ApplyLoaded(msg.items)
		m.refreshItems()
		return m, nil

	case itemCreatedMsg:
		if msg.err != nil {
			// The form (and the store's add form) keeps the user's entry
			// so it can be resubmitted.
			m.setError("add failed: " + msg.err.Error())
			return m, nil
		}
		m.store.ApplyCreated(msg.item)
		m.refreshItems()
		selectItemRowByID(&m.itemsList, msg.item.ID)
		if m.modal == modalAdd {
			m.closeModal()
		}
		m.setStatus(fmt.Sprintf("Added %s", itemDisplayName(msg.item)))
		return m, nil

	case itemUpdatedMsg:
		m.committing = false
		if msg.err != nil {
			// Session stays open for another attempt.
			m.setError("save failed: " + msg.err.Error())
			return m, nil
		}
		if m.store.ApplyUpdated(msg.item, msg.token) {
			m.refreshItems()
			if m.modal == modalEdit {
				m.closeModal()
			}
			m.setStatus(fmt.Sprintf("Saved %s", itemDisplayName(msg.item)))
		}
		// A stale token means the session was canceled or superseded while
		// the request was in flight; the response is dropped on the floor.
		return m, nil

	case itemRemovedMsg:
		if msg.err != nil {
			m.setError("delete failed: " + msg.err.Error())
			return m, nil
		}
		m.store.ApplyRemoved(msg.id)
		m.refreshItems()
		m.setStatus("Deleted")
		return m, nil

	case urlOpenDoneMsg:
		if msg.err != nil {
			m.setError("open link failed: " + msg.err.Error())
		}
		return m, nil

	case tea.KeyMsg:
		switch m.modal {
		case modalAdd, modalEdit:
			return m.updateFormModal(msg)
		case modalConfirmDelete:
			return m.updateConfirmModal(msg)
		case modalHelp:
			switch msg.String() {
			case "esc", "?", "q", "enter":
				m.modal = modalNone
			}
			return m, nil
		default:
			return m.updateBrowse(msg)
		}
	}

	var cmd tea.Cmd
	m.itemsList, cmd = m.itemsList.Update(msg)
	return m, cmd
}

func (m appModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter prompt is active, every key belongs to the list.
	if m.itemsList.SettingFilter() {
		var cmd tea.Cmd
		m.itemsList, cmd = m.itemsList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "r":
		m.clearStatus()
		m.loading = true
		return m, loadItemsCmd(m.store.Client())

	case "a":
		m.clearStatus()
		m.openAddModal()
		return m, textinput.Blink

	case "e":
		m.clearStatus()
		if it, ok := m.selectedItem(); ok {
			m.openEditModal(it)
			return m, textinput.Blink
		}
		return m, nil

	case "d":
		m.clearStatus()
		if it, ok := m.selectedItem(); ok {
			m.modal = modalConfirmDelete
			m.confirmFocus = confirmFocusCancel
			m.deleteID = it.ID
			m.deleteLabel = itemDisplayName(it)
		}
		return m, nil

	case "o", "enter":
		m.clearStatus()
		if it, ok := m.selectedItem(); ok {
			return m, openURL(it.URL)
		}
		return m, nil

	case "?":
		m.modal = modalHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.itemsList, cmd = m.itemsList.Update(msg)
	return m, cmd
}

func (m appModel) updateFormModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	editing := m.modal == modalEdit

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if editing {
			// Discards the session; an in-flight save resolves against a
			// dead token and is ignored when it lands.
			m.store.CancelEdit()
		} else {
			// The add form survives closing; only a successful submit
			// resets it.
			m.syncAddForm()
		}
		m.closeModal()
		return m, nil

	case "tab", "down":
		m.cycleFormFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.cycleFormFocus(-1)
		return m, nil

	case "left", "right":
		if m.formFocus == fieldCategory {
			delta := 1
			if msg.String() == "left" {
				delta = len(model.Categories) - 1
			}
			m.catIdx = (m.catIdx + delta) % len(model.Categories)
			return m, nil
		}

	case "enter":
		if editing {
			return m.submitEdit()
		}
		return m.submitAdd()
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case fieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case fieldURL:
		m.urlInput, cmd = m.urlInput.Update(msg)
	case fieldPrice:
		m.priceInput, cmd = m.priceInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) submitAdd() (tea.Model, tea.Cmd) {
	m.syncAddForm()
	d, err := m.store.Draft()
	if err != nil {
		m.setError(err.Error())
		return m, nil
	}
	return m, createItemCmd(m.store.Client(), d)
}

func (m appModel) submitEdit() (tea.Model, tea.Cmd) {
	if m.committing {
		// One save at a time; the session token would discard the loser
		// anyway, but double submits are just confusing.
		return m, nil
	}
	m.syncEditForm()
	patch, err := m.store.EditPatch()
	if err != nil {
		m.setError(err.Error())
		return m, nil
	}
	m.committing = true
	return m, updateItemCmd(m.store.Client(), m.store.EditingID, patch, m.store.EditToken())
}

func (m appModel) updateConfirmModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "n":
		m.closeModal()
		return m, nil

	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil

	case "y":
		id := m.deleteID
		m.closeModal()
		return m, removeItemCmd(m.store.Client(), id)

	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			id := m.deleteID
			m.closeModal()
			return m, removeItemCmd(m.store.Client(), id)
		}
		m.closeModal()
		return m, nil
	}
	return m, nil
}

func (m *appModel) openAddModal() {
	f := m.store.AddForm
	m.nameInput.SetValue("")
	m.urlInput.SetValue(f.URL)
	m.priceInput.SetValue(f.Price)
	m.catIdx = catIdxFor(f.Category)
	m.modal = modalAdd
	m.setFormFocus(fieldURL)
}

func (m *appModel) openEditModal(it model.Item) {
	m.store.BeginEdit(it)
	f := m.store.EditForm
	m.nameInput.SetValue(f.Name)
	m.urlInput.SetValue(f.URL)
	m.priceInput.SetValue(f.Price)
	m.catIdx = catIdxFor(f.Category)
	m.modal = modalEdit
	m.setFormFocus(fieldName)
}

// syncAddForm copies the inputs back into the store's add form.
func (m *appModel) syncAddForm() {
	m.store.AddForm.URL = m.urlInput.Value()
	m.store.AddForm.Price = m.priceInput.Value()
	m.store.AddForm.Category = model.Categories[m.catIdx].Name
}

// syncEditForm copies the inputs back into the store's edit form.
func (m *appModel) syncEditForm() {
	m.store.EditForm.Name = m.nameInput.Value()
	m.store.EditForm.URL = m.urlInput.Value()
	m.store.EditForm.Price = m.priceInput.Value()
	m.store.EditForm.Category = model.Categories[m.catIdx].Name
}

func (m *appModel) cycleFormFocus(delta int) {
	fields := []int{fieldURL, fieldPrice, fieldCategory}
	if m.modal == modalEdit {
		fields = []int{fieldName, fieldURL, fieldPrice, fieldCategory}
	}
	cur := 0
	for i, f := range fields {
		if f == m.formFocus {
			cur = i
			break
		}
	}
	next := fields[(cur+delta+len(fields))%len(fields)]
	m.setFormFocus(next)
}

func (m *appModel) setFormFocus(field int) {
	m.formFocus = field
	m.nameInput.Blur()
	m.urlInput.Blur()
	m.priceInput.Blur()
	switch field {
	case fieldName:
		m.nameInput.Focus()
	case fieldURL:
		m.urlInput.Focus()
	case fieldPrice:
		m.priceInput.Focus()
	}
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.confirmFocus = confirmFocusCancel
	m.deleteID = 0
	m.deleteLabel = ""
	m.committing = false
	m.nameInput.Blur()
	m.urlInput.Blur()
	m.priceInput.Blur()
}

func (m *appModel) setStatus(s string) {
	m.statusMsg = s
	m.statusErr = false
}

func (m *appModel) setError(s string) {
	m.statusMsg = s
	m.statusErr = true
}

func (m *appModel) clearStatus() {
	m.statusMsg = ""
	m.statusErr = false
}
