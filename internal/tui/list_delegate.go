package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type itemRowDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newItemRowDelegate() itemRowDelegate {
	return itemRowDelegate{
		normal: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
	}
}

func (d itemRowDelegate) Height() int  { return 1 }
func (d itemRowDelegate) Spacing() int { return 0 }
func (d itemRowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d itemRowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	r, ok := item.(itemRow)
	if !ok {
		fmt.Fprint(w, fmt.Sprint(item))
		return
	}

	line := renderItemColumns(r.item, contentW)
	style := d.normal
	if index == m.Index() {
		style = d.selected
	}
	fmt.Fprint(w, style.Render(fixedWidthLine(line, contentW)))
}
