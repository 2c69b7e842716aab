// Package composer renders the collapsible new-task panel. Opening and
// closing animate the panel's height with a critically damped spring.
package composer

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/today/pkg/tui/theme"
)

// Height is the fully expanded panel height in lines.
const Height = 3

const settleEpsilon = 0.01

// Model holds the input and the open/close animation state.
type Model struct {
	input  textinput.Model
	theme  theme.ComposerTheme
	spring harmonica.Spring

	open     bool
	scale    float64
	velocity float64

	width    int
	addLabel string
}

// New constructs a collapsed composer animated at fps frames per second.
func New(th theme.ComposerTheme, fps int) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Styles.Cursor.Color = theme.Accent

	return &Model{
		input:  ti,
		theme:  th,
		spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), 8.0, 1.0),
	}
}

// SetLabels applies the localized placeholder and add-button text.
func (m *Model) SetLabels(placeholder, add string) {
	m.input.Placeholder = placeholder
	m.addLabel = add
}

// SetWidth sets the full panel width including its border.
func (m *Model) SetWidth(width int) {
	m.width = max(width, 12)
	m.input.SetWidth(m.inputWidth() - 1)
}

// SetOpen shows or hides the panel. Hiding clears the input.
func (m *Model) SetOpen(open bool) tea.Cmd {
	m.open = open
	if !open {
		m.input.Reset()
		m.input.Blur()
		return nil
	}
	return m.input.Focus()
}

// Open reports whether the panel is shown or opening.
func (m *Model) Open() bool {
	return m.open
}

// Value returns the current input text.
func (m *Model) Value() string {
	return m.input.Value()
}

// Update forwards input while the panel is open.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// Animate advances the spring by one frame.
func (m *Model) Animate() {
	target := 0.0
	if m.open {
		target = 1.0
	}
	if m.Settled() {
		m.scale, m.velocity = target, 0
		return
	}
	m.scale, m.velocity = m.spring.Update(m.scale, m.velocity, target)
	if math.Abs(m.scale-target) < settleEpsilon && math.Abs(m.velocity) < settleEpsilon {
		m.scale, m.velocity = target, 0
	}
}

// Settled reports whether the animation has reached its target.
func (m *Model) Settled() bool {
	target := 0.0
	if m.open {
		target = 1.0
	}
	return m.scale == target && m.velocity == 0
}

// Scale is the current vertical scale in [0, 1].
func (m *Model) Scale() float64 {
	return math.Min(1, math.Max(0, m.scale))
}

// VisibleLines is how many of the panel's lines the animation reveals.
func (m *Model) VisibleLines() int {
	return int(math.Round(m.Scale() * Height))
}

func (m *Model) inputWidth() int {
	return max(m.width-2-1-lipgloss.Width(m.button(true)), 4)
}

func (m *Model) button(enabled bool) string {
	label := m.addLabel
	if label == "" {
		label = "Add"
	}
	if enabled {
		return m.theme.Button.Render(label)
	}
	return m.theme.ButtonDisabled.Render(label)
}

// ButtonSpan returns the add button's column offset and width on the middle
// line, relative to the panel's left edge.
func (m *Model) ButtonSpan(rtl bool) (int, int) {
	w := lipgloss.Width(m.button(true))
	if rtl {
		return 1, w
	}
	return m.width - 1 - w, w
}

// View renders the visible part of the panel, top first. Right-to-left
// layouts put the button before the input.
func (m *Model) View(canSubmit, rtl bool) []string {
	n := m.VisibleLines()
	if n == 0 {
		return nil
	}
	iw := m.inputWidth()
	field := lipgloss.NewStyle().MaxWidth(iw).Render(m.input.View())
	if pad := iw - lipgloss.Width(field); pad > 0 {
		field += strings.Repeat(" ", pad)
	}
	btn := m.button(canSubmit)
	mid := field + " " + btn
	if rtl {
		mid = btn + " " + field
	}
	box := m.theme.Frame.Render(mid)
	lines := strings.Split(box, "\n")
	if n < len(lines) {
		lines = lines[:n]
	}
	return lines
}
