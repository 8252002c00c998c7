package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if !m.seenWindowSize {
		return "Loading…"
	}

	header := lipgloss.NewStyle().Bold(true).Render("Wishlist Tracker")
	count := styleMuted().Render(fmt.Sprintf("%d items", len(m.store.Items)))
	if m.loading {
		count = styleMuted().Render("loading…")
	}
	top := header + "  " + count

	var body string
	switch m.modal {
	case modalAdd:
		body = m.placeCentered(m.renderFormModal("Add item", false))
	case modalEdit:
		body = m.placeCentered(m.renderFormModal("Edit item", true))
	case modalConfirmDelete:
		body = m.placeCentered(renderConfirmModal(
			m.width,
			"Delete item",
			fmt.Sprintf("Delete %q? The server copy is removed as well.", m.deleteLabel),
			"Delete", "Cancel",
			m.confirmFocus,
		))
	case modalHelp:
		body = m.placeCentered(renderHelpModal(m.width))
	default:
		body = m.viewTable()
	}

	status := m.viewStatusLine()
	footer := styleMuted().Render("a: add  e: edit  d: delete  o/enter: open link  r: reload  /: filter  ?: help  q: quit")

	return strings.Join([]string{top, body, status, footer}, "\n\n")
}

func (m appModel) viewTable() string {
	w := m.itemsList.Width()
	if w <= 0 {
		w = minTableWidth
	}
	if len(m.store.Items) == 0 && !m.loading {
		empty := styleMuted().Render("Nothing wished for yet. Press a to add the first item.")
		return renderColumnsHeader(w) + "\n" + empty
	}
	return renderColumnsHeader(w) + "\n" + m.itemsList.View()
}

func (m appModel) viewStatusLine() string {
	if m.statusMsg == "" {
		return ""
	}
	if m.statusErr {
		return lipgloss.NewStyle().Foreground(colorErrorFg).Render(m.statusMsg)
	}
	return styleMuted().Render(m.statusMsg)
}

func (m appModel) placeCentered(box string) string {
	h := m.height - 7
	if h < lipgloss.Height(box) {
		h = lipgloss.Height(box)
	}
	return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, box)
}
