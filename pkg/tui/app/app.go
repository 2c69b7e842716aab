// Package teaui hosts the Bubble Tea program for the today widget.
package teaui

import (
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/today/pkg/app"
	"tableflip.dev/today/pkg/locale"
	"tableflip.dev/today/pkg/tui/components/background"
	"tableflip.dev/today/pkg/tui/components/composer"
	"tableflip.dev/today/pkg/tui/components/tasklist"
	"tableflip.dev/today/pkg/tui/events"
	"tableflip.dev/today/pkg/tui/theme"
)

const componentID = events.ComponentID("today")

// Options configure the UI.
type Options struct {
	FPS        int
	CellWidth  float64
	CellHeight float64
}

// Model contains UI state
type Model struct {
	svc      *app.Service
	theme    theme.Theme
	interval time.Duration

	bg       *background.Model
	composer *composer.Model
	rows     *tasklist.Model

	termWidth  int
	termHeight int
	frame      app.Frame
	selected   int

	err error
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service, opts Options) *Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 16
	}
	th := theme.Default()
	m := &Model{
		svc:      svc,
		theme:    th,
		interval: time.Second / time.Duration(opts.FPS),
		bg:       background.New(opts.CellWidth, opts.CellHeight, th.Background),
		composer: composer.New(th.Composer, opts.FPS),
		rows:     tasklist.New(th.Row),
	}
	if snap, err := svc.Snapshot(); err == nil {
		m.composer.SetLabels(snap.Document.Placeholder, snap.Document.AddButton)
	} else {
		m.err = err
	}
	return m
}

// Err returns the error that stopped the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Init starts the animation loop.
func (m *Model) Init() tea.Cmd {
	return events.FrameCmd(m.interval)
}

// Update handles messages and keybindings
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case events.FrameMsg:
		m.frame = m.svc.Frame()
		m.composer.Animate()
		cmds = append(cmds, events.FrameCmd(m.interval))
	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		m.svc.PointerMove(m.bg.CellToCanvas(mouse.X, mouse.Y))
	case tea.BlurMsg:
		m.svc.PointerLeave()
	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button == tea.MouseLeft {
			m.handleClick(mouse.X, mouse.Y, &cmds)
		}
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	case events.Describer:
		log.Printf("event %T %s", msg, msg.Describe())
	default:
		// Pastes and cursor blinks reach the input here.
		if cmd := m.composer.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.composer.Open() {
			m.svc.SetDraftText(m.composer.Value())
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) resize(width, height int) {
	m.termWidth, m.termHeight = width, height
	m.bg.SetSize(width, height)
	m.svc.Resize(m.bg.CanvasSize())
	cw := contentWidth(width)
	m.rows.SetWidth(cw)
	m.composer.SetWidth(cw)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		*cmds = append(*cmds, tea.Quit)
		return
	}
	if m.composer.Open() {
		switch key {
		case "esc":
			m.hideComposer(cmds)
		case "enter":
			m.addTask(cmds)
		default:
			if cmd := m.composer.Update(msg); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
			m.svc.SetDraftText(m.composer.Value())
		}
		return
	}

	switch key {
	case "q":
		*cmds = append(*cmds, tea.Quit)
	case "n", "+":
		m.toggleComposer(cmds)
	case "l":
		m.advanceLocale(cmds)
	case "j", "down":
		m.moveSelection(1)
	case "k", "up":
		m.moveSelection(-1)
	case "space", "x", "enter":
		if id := m.selectedID(); id != "" {
			m.toggleCompleted(id, cmds)
		}
	case "d", "delete":
		if id := m.selectedID(); id != "" {
			m.deleteTask(id, cmds)
		}
	}
}

func (m *Model) handleClick(x, y int, cmds *[]tea.Cmd) {
	snap, err := m.svc.Snapshot()
	if err != nil {
		m.fail(err, cmds)
		return
	}
	z, ok := m.layout(snap).hit(x, y)
	if !ok {
		return
	}
	switch z.act {
	case actLocale:
		m.advanceLocale(cmds)
	case actShowComposer:
		m.toggleComposer(cmds)
	case actAdd:
		m.addTask(cmds)
	case actMarker:
		m.toggleCompleted(z.rowID, cmds)
	case actTrash:
		m.deleteTask(z.rowID, cmds)
	}
}

func (m *Model) toggleComposer(cmds *[]tea.Cmd) {
	open := m.svc.ToggleComposer()
	if cmd := m.composer.SetOpen(open); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, events.ComposerToggleCmd(componentID, open))
}

func (m *Model) hideComposer(cmds *[]tea.Cmd) {
	m.svc.HideComposer()
	m.composer.SetOpen(false)
	*cmds = append(*cmds, events.ComposerToggleCmd(componentID, false))
}

func (m *Model) addTask(cmds *[]tea.Cmd) {
	m.svc.SetDraftText(m.composer.Value())
	row, ok := m.svc.AddTask()
	if !ok {
		return
	}
	m.composer.SetOpen(false)
	*cmds = append(*cmds,
		events.TaskChangeCmd(componentID, events.ChangeCreate, row),
		events.ComposerToggleCmd(componentID, false),
	)
}

func (m *Model) toggleCompleted(id string, cmds *[]tea.Cmd) {
	row, err := m.svc.ToggleCompleted(id)
	if err != nil {
		log.Printf("toggle %s: %v", id, err)
		return
	}
	*cmds = append(*cmds, events.TaskChangeCmd(componentID, events.ChangeUpdate, row))
}

func (m *Model) deleteTask(id string, cmds *[]tea.Cmd) {
	row, err := m.svc.DeleteTask(id)
	if err != nil {
		log.Printf("delete %s: %v", id, err)
		return
	}
	m.moveSelection(0)
	*cmds = append(*cmds, events.TaskChangeCmd(componentID, events.ChangeDelete, row))
}

func (m *Model) advanceLocale(cmds *[]tea.Cmd) {
	doc, err := m.svc.AdvanceLocale()
	if err != nil {
		m.fail(err, cmds)
		return
	}
	m.composer.SetLabels(doc.Placeholder, doc.AddButton)
	*cmds = append(*cmds, events.LocaleChangeCmd(componentID, doc))
}

// fail stops the program; a dictionary gap is a configuration error, not
// something to render around.
func (m *Model) fail(err error, cmds *[]tea.Cmd) {
	if locale.IsConfigError(err) {
		log.Printf("configuration error: %v", err)
	}
	m.err = err
	*cmds = append(*cmds, tea.Quit)
}

func (m *Model) moveSelection(delta int) {
	snap, err := m.svc.Snapshot()
	if err != nil || len(snap.Rows) == 0 {
		m.selected = 0
		return
	}
	m.selected = min(max(m.selected+delta, 0), len(snap.Rows)-1)
}

func (m *Model) selectedID() string {
	snap, err := m.svc.Snapshot()
	if err != nil || m.selected < 0 || m.selected >= len(snap.Rows) {
		return ""
	}
	return snap.Rows[m.selected].ID
}

// Run starts the program. Set TODAY_DEBUG to log events to today-debug.log.
func Run(svc *app.Service, opts Options) error {
	prev := log.Writer()
	defer log.SetOutput(prev)
	if os.Getenv("TODAY_DEBUG") != "" {
		f, err := tea.LogToFile("today-debug.log", "today")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := New(svc, opts)
	if m.err != nil {
		return m.err
	}
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.err
}
