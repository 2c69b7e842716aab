package eventviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/today/pkg/tui/events"
)

// Level indicates the severity of a logged event.
type Level int

const (
	// LevelInfo is the default severity.
	LevelInfo Level = iota
	// LevelWarn highlights potential issues.
	LevelWarn
	// LevelError highlights failures.
	LevelError
)

// Entry captures a rendered event.
type Entry struct {
	Timestamp time.Time
	Source    string
	Summary   string
	Detail    string
	Level     Level
}

// Model renders a streaming event log, newest first.
type Model struct {
	viewport viewport.Model
	entries  []Entry

	maxEntries int

	width  int
	height int

	styles Styles
}

// Styles controls the log's presentation.
type Styles struct {
	Frame     lipgloss.Style
	Header    lipgloss.Style
	Info      lipgloss.Style
	Warn      lipgloss.Style
	Error     lipgloss.Style
	Timestamp lipgloss.Style
	Source    lipgloss.Style
}

// DefaultStyles returns the stock styling used by the testbed.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB347")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Source:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// NewModel constructs an event viewer capped at the provided entry count.
func NewModel(maxEntries int) *Model {
	if maxEntries <= 0 {
		maxEntries = 200
	}
	return &Model{
		viewport:   viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		maxEntries: maxEntries,
		styles:     DefaultStyles(),
	}
}

// SetSize resizes the viewport while keeping the header and border intact.
func (m *Model) SetSize(width, height int) {
	width = max(width, 4)
	height = max(height, 3)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height
	m.viewport.SetWidth(max(1, width-2))
	m.viewport.SetHeight(max(1, height-3))
	m.refreshContent()
}

// View renders the bordered viewport.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.styles.Header.Render("Events")
	body := lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
	return m.styles.Frame.Width(m.width).Height(m.height).Render(body)
}

// Record appends an entry describing msg. Frame ticks are too chatty to log
// and are skipped; it reports whether anything was recorded.
func (m *Model) Record(msg tea.Msg) bool {
	if _, ok := msg.(events.FrameMsg); ok {
		return false
	}
	level := LevelInfo
	if change, ok := msg.(events.TaskChangeMsg); ok && change.Action == events.ChangeDelete {
		level = LevelWarn
	}
	m.Append(Entry{
		Source:  Source(msg),
		Summary: fmt.Sprintf("%T", msg),
		Detail:  Describe(msg),
		Level:   level,
	})
	return true
}

// Append inserts a new entry at the top of the log.
func (m *Model) Append(entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.Source == "" {
		entry.Source = "tea"
	}
	if entry.Summary == "" {
		entry.Summary = "event"
	}
	m.entries = append([]Entry{entry}, m.entries...)
	if len(m.entries) > m.maxEntries {
		m.entries = m.entries[:m.maxEntries]
	}
	m.refreshContent()
	m.viewport.SetYOffset(0)
}

// Entries returns the logged entries, newest first.
func (m *Model) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Clear drops all logged entries.
func (m *Model) Clear() {
	m.entries = nil
	m.refreshContent()
}

// Describe summarises msg for the log.
func Describe(msg tea.Msg) string {
	if d, ok := msg.(events.Describer); ok {
		return d.Describe()
	}
	switch v := msg.(type) {
	case tea.KeyPressMsg:
		return fmt.Sprintf("key=%q", v.String())
	case tea.WindowSizeMsg:
		return fmt.Sprintf("size=%dx%d", v.Width, v.Height)
	case tea.MouseMsg:
		return fmt.Sprintf("mouse=%s", v)
	default:
		return ""
	}
}

// Source names the component that emitted msg, falling back to "tea".
func Source(msg tea.Msg) string {
	switch v := msg.(type) {
	case events.TaskChangeMsg:
		return string(v.Component)
	case events.LocaleChangeMsg:
		return string(v.Component)
	case events.ComposerToggleMsg:
		return string(v.Component)
	default:
		return "tea"
	}
}

func (m *Model) refreshContent() {
	lines := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		lines = append(lines, m.renderEntry(entry))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = m.styles.Timestamp.Render("No events yet")
	}
	m.viewport.SetContent(content)
}

func (m *Model) renderEntry(entry Entry) string {
	ts := m.styles.Timestamp.Render(entry.Timestamp.Format("15:04:05.000"))
	source := m.styles.Source.Render(fmt.Sprintf("[%s]", entry.Source))
	msg := entry.Summary
	if entry.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, entry.Detail)
	}
	switch entry.Level {
	case LevelWarn:
		msg = m.styles.Warn.Render(msg)
	case LevelError:
		msg = m.styles.Error.Render(msg)
	default:
		msg = m.styles.Info.Render(msg)
	}
	return fmt.Sprintf("%s %s %s", ts, source, msg)
}
