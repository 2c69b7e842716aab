package teaui

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/today/pkg/app"
	"tableflip.dev/today/pkg/locale"
)

type action int

const (
	actNone action = iota
	actLocale
	actShowComposer
	actAdd
	actMarker
	actTrash
)

// zone is a clickable span on one screen line.
type zone struct {
	x, y, w int
	act     action
	rowID   string
}

// placed is a rendered block and where it sits on screen.
type placed struct {
	x, y  int
	lines []string
}

type screen struct {
	blocks []placed
	zones  []zone
}

func (s screen) hit(x, y int) (zone, bool) {
	for _, z := range s.zones {
		if y == z.y && x >= z.x && x < z.x+z.w {
			return z, true
		}
	}
	return zone{}, false
}

// contentWidth is the width inside the card's border and padding.
func contentWidth(termWidth int) int {
	return min(max(termWidth-12, 24), 56)
}

// layout positions the language switch, the card and the help line for the
// current snapshot. View and mouse hit testing share it.
func (m *Model) layout(snap app.Snapshot) screen {
	var scr screen
	doc := snap.Document
	rtl := doc.Dir == locale.RTL
	cw := contentWidth(m.termWidth)

	// Language switch, pinned to a top corner.
	icon := m.theme.Panel.LangIcon.Render(" " + strings.ToUpper(string(doc.Lang)) + " ")
	iw := lipgloss.Width(icon)
	ix := 4
	if doc.SwitchAnchor == locale.AnchorRight {
		ix = max(m.termWidth-4-iw, 0)
	}
	scr.blocks = append(scr.blocks, placed{x: ix, y: 0, lines: []string{icon}})
	scr.zones = append(scr.zones, zone{x: ix, y: 0, w: iw, act: actLocale})

	align := lipgloss.Left
	if rtl {
		align = lipgloss.Right
	}
	line := lipgloss.NewStyle().Width(cw).MaxWidth(cw).Align(align)

	type inner struct {
		text  string
		zones []zone // x relative to the content origin
	}
	var body []inner

	title := truncate.StringWithTail(doc.Title, uint(cw), "…")
	body = append(body, inner{text: line.Render(m.theme.Panel.Title.Render(title))}, inner{text: ""})

	for _, l := range m.rows.Render(snap.Rows, m.selected) {
		body = append(body, inner{text: l.Text, zones: []zone{
			{x: l.MarkerCol, w: 1, act: actMarker, rowID: l.ID},
			{x: l.TrashCol, w: 1, act: actTrash, rowID: l.ID},
		}})
	}
	if len(snap.Rows) > 0 {
		body = append(body, inner{text: ""})
	}

	show := m.theme.Panel.ShowButton.Render(truncate.String(doc.ShowButton, uint(cw)))
	sw := lipgloss.Width(show)
	sx := 0
	if rtl {
		sx = cw - sw
	}
	body = append(body, inner{text: line.Render(show), zones: []zone{{x: sx, w: sw, act: actShowComposer}}})

	for i, l := range m.composer.View(snap.CanSubmit, rtl) {
		in := inner{text: l}
		if i == 1 {
			bx, bw := m.composer.ButtonSpan(rtl)
			in.zones = []zone{{x: bx, w: bw, act: actAdd}}
		}
		body = append(body, in)
	}

	texts := make([]string, len(body))
	for i, b := range body {
		texts[i] = pad(b.text, cw)
	}
	card := strings.Split(m.theme.Panel.Frame.Render(strings.Join(texts, "\n")), "\n")
	cardW := 0
	for _, l := range card {
		cardW = max(cardW, lipgloss.Width(l))
	}
	cx := max((m.termWidth-cardW)/2, 0)
	cy := max((m.termHeight-len(card))/2, 1)
	scr.blocks = append(scr.blocks, placed{x: cx, y: cy, lines: card})

	// border plus one column of padding
	ox, oy := cx+2, cy+1
	for i, b := range body {
		for _, z := range b.zones {
			z.x += ox
			z.y = oy + i
			scr.zones = append(scr.zones, z)
		}
	}

	help := "n new · l language · j/k move · space done · d delete · q quit"
	if snap.ComposerOpen {
		help = "enter add · esc cancel"
	}
	if m.termHeight > 0 {
		scr.blocks = append(scr.blocks, placed{x: 1, y: m.termHeight - 1, lines: []string{m.theme.Footer.Help.Render(help)}})
	}
	return scr
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// View renders the particle background with the card on top.
func (m *Model) View() string {
	if m.err != nil {
		return "error: " + m.err.Error() + "\n"
	}
	if m.termWidth == 0 || m.termHeight == 0 {
		return ""
	}
	snap, err := m.svc.Snapshot()
	if err != nil {
		return "error: " + err.Error() + "\n"
	}
	grid := m.bg.Cells(m.frame)
	for _, b := range m.layout(snap).blocks {
		for i, l := range b.lines {
			overlay(grid, b.x, b.y+i, l)
		}
	}
	out := make([]string, len(grid))
	for i, row := range grid {
		out[i] = strings.Join(row, "")
	}
	return strings.Join(out, "\n")
}

// overlay writes s over the grid starting at cell (x, y). Cells covered by s
// are emptied so the joined row keeps its width.
func overlay(grid [][]string, x, y int, s string) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	row := grid[y]
	avail := len(row) - x
	w := lipgloss.Width(s)
	if w > avail {
		s = truncate.String(s, uint(avail))
		w = lipgloss.Width(s)
	}
	if w == 0 {
		return
	}
	row[x] = s
	for i := x + 1; i < x+w; i++ {
		row[i] = ""
	}
}
