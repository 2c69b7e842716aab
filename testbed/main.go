package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/today/pkg/app"
	"tableflip.dev/today/pkg/config"
	"tableflip.dev/today/pkg/locale"
	teaui "tableflip.dev/today/pkg/tui/app"
	"tableflip.dev/today/pkg/tui/components/eventviewer"
)

type options struct {
	lang   string
	seed   bool
	events int
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Run the widget inside a harness that logs every message",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.lang, "lang", "", "starting language (en, zh, ar)")
	rootCmd.PersistentFlags().BoolVar(&opts.seed, "seed", true, "start with the four sample rows")
	rootCmd.PersistentFlags().IntVar(&opts.events, "events", 400, "number of events to keep in the log")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	v := viper.New()
	if opts.lang != "" {
		v.Set(config.KeyLocale, opts.lang)
	}
	v.Set(config.KeySeed, opts.seed)
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	svc, err := app.New(app.Options{
		Dictionary: locale.Default(),
		Locale:     cfg.Locale,
		Particles:  cfg.ParticleOptions(),
		Seed:       cfg.Seed,
	})
	if err != nil {
		return err
	}

	widget := teaui.New(svc, teaui.Options{
		FPS:        cfg.FPS,
		CellWidth:  cfg.CellWidth,
		CellHeight: cfg.CellHeight,
	})
	base := newTestbedModel(widget, opts.events)
	p := tea.NewProgram(base,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return err
	}
	return widget.Err()
}

// testbedModel hosts the widget above an event log. The widget keeps the
// top of the terminal so mouse coordinates need no translation.
type testbedModel struct {
	widget *teaui.Model
	events *eventviewer.Model

	termWidth   int
	termHeight  int
	eventHeight int
}

func newTestbedModel(widget *teaui.Model, maxEvents int) *testbedModel {
	return &testbedModel{
		widget: widget,
		events: eventviewer.NewModel(maxEvents),
	}
}

func (m *testbedModel) Init() tea.Cmd { return m.widget.Init() }

func (m *testbedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.events.Record(msg)

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.termWidth = size.Width
		m.termHeight = size.Height
		m.eventHeight = eventHeight(size.Height)
		m.events.SetSize(size.Width, m.eventHeight)
		msg = tea.WindowSizeMsg{Width: size.Width, Height: size.Height - m.eventHeight}
	}

	_, cmd := m.widget.Update(msg)
	return m, cmd
}

func (m *testbedModel) View() string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "Resizing…"
	}
	if m.eventHeight == 0 {
		return m.widget.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.widget.View(), m.events.View())
}

// eventHeight gives the log a quarter of the terminal, but never squeezes
// the widget below minWidgetHeight rows.
func eventHeight(termHeight int) int {
	available := termHeight - minWidgetHeight
	if available < minEventHeight {
		return 0
	}
	return min(max(termHeight/4, minEventHeight), maxEventHeight, available)
}

const (
	minWidgetHeight = 12
	minEventHeight  = 5
	maxEventHeight  = 12
)
