// Package background draws the particle field onto the terminal cell grid.
package background

import (
	"image/color"
	"math"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/today/pkg/app"
	"tableflip.dev/today/pkg/particle"
)

// Model maps canvas units to terminal cells. Each cell covers CellWidth x
// CellHeight canvas units.
type Model struct {
	cellWidth  float64
	cellHeight float64
	bg         colorful.Color
	cols       int
	rows       int
	styles     map[string]lipgloss.Style
}

// New returns a background renderer. bg is the colour translucent particles
// are blended against.
func New(cellWidth, cellHeight float64, bg color.Color) *Model {
	base, ok := colorful.MakeColor(bg)
	if !ok {
		base = colorful.Color{}
	}
	return &Model{
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		bg:         base,
		styles:     make(map[string]lipgloss.Style),
	}
}

// SetSize records the terminal size in cells.
func (m *Model) SetSize(cols, rows int) {
	m.cols, m.rows = max(cols, 0), max(rows, 0)
}

// CanvasSize is the canvas, in particle units, covered by the grid.
func (m *Model) CanvasSize() (float64, float64) {
	return float64(m.cols) * m.cellWidth, float64(m.rows) * m.cellHeight
}

// CellToCanvas returns the canvas point at the centre of cell (x, y).
func (m *Model) CellToCanvas(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * m.cellWidth, (float64(y) + 0.5) * m.cellHeight
}

// CanvasToCell returns the cell containing canvas point (x, y) and whether it
// is on screen.
func (m *Model) CanvasToCell(x, y float64) (int, int, bool) {
	cx := int(math.Floor(x / m.cellWidth))
	cy := int(math.Floor(y / m.cellHeight))
	if cx < 0 || cy < 0 || cx >= m.cols || cy >= m.rows {
		return 0, 0, false
	}
	return cx, cy, true
}

// Glyph picks a dot whose visual weight follows the particle radius.
func Glyph(radius float64) string {
	switch {
	case radius < 2:
		return "·"
	case radius < 3.5:
		return "•"
	default:
		return "●"
	}
}

// Cells renders a frame into a rows x cols grid of single-width cells.
// Particles are painted in field order, so a later particle covers an
// earlier one sharing its cell.
func (m *Model) Cells(frame app.Frame) [][]string {
	grid := make([][]string, m.rows)
	for y := range grid {
		row := make([]string, m.cols)
		for x := range row {
			row[x] = " "
		}
		grid[y] = row
	}
	for _, p := range frame.Particles {
		x, y, ok := m.CanvasToCell(p.X, p.Y)
		if !ok {
			continue
		}
		grid[y][x] = m.paint(p)
	}
	return grid
}

func (m *Model) paint(p particle.Particle) string {
	hex := m.Blend(p.Color).Hex()
	st, ok := m.styles[hex]
	if !ok {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		m.styles[hex] = st
	}
	return st.Render(Glyph(p.Radius))
}

// Blend composites a translucent particle colour over the background.
func (m *Model) Blend(c color.RGBA) colorful.Color {
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return m.bg.BlendRgb(fg, float64(c.A)/255).Clamped()
}
