package teaui

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/today/pkg/app"
	"tableflip.dev/today/pkg/locale"
	"tableflip.dev/today/pkg/particle"
	"tableflip.dev/today/pkg/tui/events"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// cellColumn returns the screen column where sub starts in a plain line.
func cellColumn(line, sub string) int {
	i := strings.Index(line, sub)
	if i < 0 {
		return -1
	}
	return ansi.PrintableRuneWidth(line[:i])
}

func newTestModel(t *testing.T) (*Model, *app.Service) {
	t.Helper()
	svc, err := app.New(app.Options{
		Dictionary: locale.Default(),
		Locale:     locale.English,
		Particles:  particle.Options{Rand: rand.New(rand.NewPCG(5, 5))},
		Seed:       true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := New(svc, Options{FPS: 60})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, svc
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		switch k {
		case "enter":
			m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		case "esc":
			m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
		default:
			for _, r := range k {
				m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
			}
		}
	}
}

func rows(t *testing.T, svc *app.Service) []string {
	t.Helper()
	snap, err := svc.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	out := make([]string, len(snap.Rows))
	for i, r := range snap.Rows {
		out[i] = r.Text
	}
	return out
}

func TestViewRendersCardOverBackground(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(m.Init()())

	view := stripANSI(m.View())
	lines := strings.Split(view, "\n")
	if len(lines) != 30 {
		t.Fatalf("expected 30 lines, got %d", len(lines))
	}
	for _, want := range []string{"What Should I Do Today?", "Create a style guide", "+ New Task", " EN "} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if col := cellColumn(lines[0], "EN"); col != 5 {
		t.Fatalf("expected language switch in the top-left corner, found at %d: %q", col, lines[0])
	}
}

func TestLocaleSwitchMirrorsLayout(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "l", "l")
	if svc.Locale() != locale.Arabic {
		t.Fatalf("expected ar, got %s", svc.Locale())
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "إيش حسوي اليوم؟") {
		t.Fatalf("expected Arabic title:\n%s", view)
	}
	top := strings.Split(view, "\n")[0]
	if col := cellColumn(top, "AR"); col != 100-4-4+1 {
		t.Fatalf("expected language switch in the top-right corner, found at %d: %q", col, top)
	}
	found := false
	for _, l := range strings.Split(view, "\n") {
		if strings.Contains(l, "إنشاء دليل الأسلوب") {
			found = true
			if strings.Index(l, "✕") > strings.Index(l, "إنشاء") {
				t.Fatalf("expected delete control on the left in rtl: %q", l)
			}
		}
	}
	if !found {
		t.Fatalf("expected translated seed row:\n%s", view)
	}
	press(m, "l")
	if svc.Locale() != locale.English {
		t.Fatalf("expected cycle back to en, got %s", svc.Locale())
	}
}

func TestComposerKeyFlow(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n", "   ", "enter")
	if got := len(rows(t, svc)); got != 4 {
		t.Fatalf("blank input must not add a row, got %d rows", got)
	}
	press(m, "Buy milk", "enter")
	got := rows(t, svc)
	if len(got) != 5 || got[4] != "Buy milk" {
		t.Fatalf("expected Buy milk appended, got %v", got)
	}
	if m.composer.Open() {
		t.Fatalf("expected composer hidden after add")
	}

	press(m, "l")
	got = rows(t, svc)
	if got[0] != "创建风格指南" || got[4] != "Buy milk" {
		t.Fatalf("expected seeded rows translated and typed row kept, got %v", got)
	}
}

// collect runs cmd and any batched commands it expands to.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestPasteEnablesAddButton(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n")
	m.Update(tea.PasteMsg("Buy milk"))
	snap, err := svc.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if m.composer.Value() != "Buy milk" || snap.Draft != "Buy milk" || !snap.CanSubmit {
		t.Fatalf("expected pasted draft to enable add: input=%q draft=%q canSubmit=%t",
			m.composer.Value(), snap.Draft, snap.CanSubmit)
	}
	press(m, "enter")
	if got := rows(t, svc); len(got) != 5 || got[4] != "Buy milk" {
		t.Fatalf("expected pasted task appended, got %v", got)
	}
}

func TestAddAnnouncesComposerClose(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "n", "Call mum")
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	var created, closed bool
	for _, msg := range collect(cmd) {
		switch msg := msg.(type) {
		case events.TaskChangeMsg:
			created = msg.Action == events.ChangeCreate && msg.Row.Text == "Call mum"
		case events.ComposerToggleMsg:
			closed = !msg.Open
		}
	}
	if !created || !closed {
		t.Fatalf("expected create and close events, got created=%t closed=%t", created, closed)
	}
}

func TestComposerEscapeClearsDraft(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "n", "draft", "esc")
	snap, _ := svc.Snapshot()
	if snap.ComposerOpen || snap.Draft != "" {
		t.Fatalf("expected composer closed and cleared: %+v", snap)
	}
	press(m, "n")
	if m.composer.Value() != "" {
		t.Fatalf("expected empty input on reopen, got %q", m.composer.Value())
	}
}

func TestKeyboardToggleAndDelete(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "j", "x")
	snap, _ := svc.Snapshot()
	if !snap.Rows[1].Completed || snap.Rows[0].Completed {
		t.Fatalf("expected only the second row completed: %+v", snap.Rows)
	}
	press(m, "d")
	got := rows(t, svc)
	if len(got) != 3 || got[1] != `Review "About" page legibility` {
		t.Fatalf("unexpected rows after delete: %v", got)
	}
}

func TestMouseClicksHitControls(t *testing.T) {
	m, svc := newTestModel(t)
	snap, _ := svc.Snapshot()
	first := snap.Rows[0].ID

	click := func(act action, rowID string) {
		t.Helper()
		snap, _ := svc.Snapshot()
		for _, z := range m.layout(snap).zones {
			if z.act == act && z.rowID == rowID {
				m.Update(tea.MouseClickMsg{X: z.x, Y: z.y, Button: tea.MouseLeft})
				return
			}
		}
		t.Fatalf("no zone for action %d row %q", act, rowID)
	}

	click(actMarker, first)
	if r, _ := svc.Snapshot(); !r.Rows[0].Completed {
		t.Fatalf("expected marker click to complete the row")
	}
	click(actTrash, first)
	if got := rows(t, svc); len(got) != 3 {
		t.Fatalf("expected trash click to delete the row, got %v", got)
	}
	click(actLocale, "")
	if svc.Locale() != locale.Chinese {
		t.Fatalf("expected locale click to advance, got %s", svc.Locale())
	}
	click(actShowComposer, "")
	if !m.composer.Open() {
		t.Fatalf("expected composer open after show click")
	}
}

func TestPointerFollowsMouse(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.MouseMotionMsg{X: 10, Y: 5})
	m.Update(tea.BlurMsg{})
	m.Update(m.Init()())
	if len(m.frame.Particles) == 0 {
		t.Fatalf("expected a populated frame")
	}
}
