// Package tasklist renders task rows: a status marker, the label and a
// delete control on the row's trailing edge.
package tasklist

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/today/pkg/locale"
	"tableflip.dev/today/pkg/task"
	"tableflip.dev/today/pkg/tui/theme"
)

const (
	markerOpen = "○"
	markerDone = "●"
	trash      = "✕"
)

// Line is one rendered row and the columns of its clickable parts.
type Line struct {
	ID        string
	Text      string
	MarkerCol int
	TrashCol  int
}

// Model renders rows at a fixed width.
type Model struct {
	theme theme.RowTheme
	width int
}

// New returns a row renderer.
func New(th theme.RowTheme) *Model {
	return &Model{theme: th, width: 20}
}

// SetWidth sets the row width in cells.
func (m *Model) SetWidth(width int) {
	m.width = max(width, 6)
}

// Render lays out every row. The delete control sits where the row's Align
// puts it: the right edge for ml-auto, the left edge for mr-auto.
func (m *Model) Render(rows []task.Row, selected int) []Line {
	out := make([]Line, 0, len(rows))
	for i, r := range rows {
		out = append(out, m.renderRow(r, i == selected))
	}
	return out
}

func (m *Model) renderRow(r task.Row, selected bool) Line {
	marker := m.theme.Marker.Render(markerOpen)
	text := m.theme.Text
	if r.Completed {
		marker = m.theme.MarkerDone.Render(markerDone)
		text = m.theme.TextDone
	}
	if selected {
		text = text.Inherit(m.theme.Selected)
	}

	labelWidth := m.width - 4
	label := truncate.StringWithTail(r.Text, uint(labelWidth), "…")
	pad := strings.Repeat(" ", max(labelWidth-lipgloss.Width(label), 0))
	label = text.Render(label)
	del := m.theme.Trash.Render(trash)

	if r.Align == locale.AlignStart {
		return Line{
			ID:        r.ID,
			Text:      del + " " + pad + label + " " + marker,
			MarkerCol: m.width - 1,
			TrashCol:  0,
		}
	}
	return Line{
		ID:        r.ID,
		Text:      marker + " " + label + pad + " " + del,
		MarkerCol: 0,
		TrashCol:  m.width - 1,
	}
}
