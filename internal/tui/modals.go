package tui

import (
	"strings"

	"wishlist-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func modalBodyWidth(width int) int {
	w := width - 8
	if w > 72 {
		w = 72
	}
	if w < 30 {
		w = 30
	}
	return w
}

func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Width(bodyW + 2).
		Padding(0, 1).
		Render(title)

	body := lipgloss.NewStyle().
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Width(bodyW + 2).
		Padding(1, 1).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func renderConfirmModal(width int, title string, body string, confirmLabel string, cancelLabel string, focus confirmModalFocus) string {
	// Avoid borders here: some terminals show background artifacts when nesting bordered
	// components inside a modal with a background color.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render(confirmLabel)
	cancel := btnBase.Render(cancelLabel)
	if focus == confirmFocusConfirm {
		confirm = btnActive.Render(confirmLabel)
	}
	if focus == confirmFocusCancel {
		cancel = btnActive.Render(cancelLabel)
	}

	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, sep, cancel)

	bodyW := modalBodyWidth(width)
	help := styleMuted().Width(bodyW).Render("tab: focus   enter: select   esc: cancel")

	content := strings.Join([]string{
		body,
		"",
		controls,
		"",
		help,
	}, "\n")
	return renderModalBox(width, title, content)
}

// renderFormModal draws the add/edit form. The add form has no name field
// (the server assigns names on create); editing exposes all four fields.
func (m appModel) renderFormModal(title string, withName bool) string {
	label := func(txt string, focused bool) string {
		st := styleMuted()
		if focused {
			st = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
		}
		return st.Render(fixedWidthLine(txt, 10))
	}

	var rows []string
	if withName {
		rows = append(rows, label("Name", m.formFocus == fieldName)+m.nameInput.View())
	}
	rows = append(rows, label("Link", m.formFocus == fieldURL)+m.urlInput.View())
	rows = append(rows, label("Price €", m.formFocus == fieldPrice)+m.priceInput.View())
	rows = append(rows, label("Category", m.formFocus == fieldCategory)+renderCategorySelector(m.catIdx, m.formFocus == fieldCategory))

	bodyW := modalBodyWidth(m.width)
	help := styleMuted().Width(bodyW).Render("tab: next field   ←/→: category   enter: save   esc: cancel")

	content := strings.Join(rows, "\n") + "\n\n" + help
	return renderModalBox(m.width, title, content)
}

func renderCategorySelector(idx int, focused bool) string {
	if idx < 0 || idx >= len(model.Categories) {
		idx = 0
	}
	chip := categoryChipStyle(model.Categories[idx]).Render(model.Categories[idx].Name)
	if !focused {
		return chip
	}
	arrow := lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	return arrow.Render("◀ ") + chip + arrow.Render(" ▶")
}
