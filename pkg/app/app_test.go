package app

import (
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"tableflip.dev/today/pkg/locale"
	"tableflip.dev/today/pkg/particle"
	"tableflip.dev/today/pkg/task"
)

func newTestService(t *testing.T, seed bool) *Service {
	t.Helper()
	s, err := New(Options{
		Dictionary: locale.Default(),
		Locale:     locale.English,
		Particles:  particle.Options{Rand: rand.New(rand.NewPCG(1, 1))},
		Seed:       seed,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func mustSnapshot(t *testing.T, s *Service) Snapshot {
	t.Helper()
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	return snap
}

func TestNewRequiresDictionary(t *testing.T) {
	if _, err := New(Options{}); !errors.Is(err, ErrNoDictionary) {
		t.Fatalf("expected ErrNoDictionary, got %v", err)
	}
}

func TestNewSeedsRows(t *testing.T) {
	snap := mustSnapshot(t, newTestService(t, true))
	if len(snap.Rows) != 4 {
		t.Fatalf("expected 4 seed rows, got %d", len(snap.Rows))
	}
	if snap.Rows[0].Text != "Create a style guide" || snap.Rows[0].Key != locale.KeyTask1 {
		t.Fatalf("unexpected first seed row: %+v", snap.Rows[0])
	}
}

func TestAddTaskFlow(t *testing.T) {
	s := newTestService(t, false)
	s.ShowComposer()
	if s.SetDraftText("   ") {
		t.Fatalf("blank draft must disable add")
	}
	if _, ok := s.AddTask(); ok {
		t.Fatalf("blank draft must not add")
	}
	if !s.SetDraftText("Buy milk") {
		t.Fatalf("expected add to be enabled")
	}
	r, ok := s.AddTask()
	if !ok || r.Text != "Buy milk" || r.Completed {
		t.Fatalf("unexpected row %+v", r)
	}
	snap := mustSnapshot(t, s)
	if snap.ComposerOpen || snap.Draft != "" || snap.CanSubmit {
		t.Fatalf("expected composer reset after add: %+v", snap)
	}
	if len(snap.Rows) != 1 {
		t.Fatalf("expected one row, got %d", len(snap.Rows))
	}
}

func TestAddTaskUsesCurrentDirection(t *testing.T) {
	s := newTestService(t, false)
	for i := 0; i < 2; i++ {
		if _, err := s.AdvanceLocale(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	if s.Locale() != locale.Arabic {
		t.Fatalf("expected ar, got %s", s.Locale())
	}
	s.ShowComposer()
	s.SetDraftText("مهمة")
	r, _ := s.AddTask()
	if r.Align != locale.AlignStart {
		t.Fatalf("expected rtl alignment, got %s", r.Align)
	}
}

func TestAdvanceLocaleRetranslatesSeededRowsOnly(t *testing.T) {
	s := newTestService(t, true)
	s.ShowComposer()
	s.SetDraftText("Buy milk")
	typed, _ := s.AddTask()

	doc, err := s.AdvanceLocale()
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if doc.Lang != locale.Chinese || doc.Title != "我今天应该做什么？🤔" {
		t.Fatalf("unexpected document %+v", doc)
	}
	snap := mustSnapshot(t, s)
	if snap.Rows[0].Text != "创建风格指南" {
		t.Fatalf("expected seeded row in Chinese, got %q", snap.Rows[0].Text)
	}
	last := snap.Rows[len(snap.Rows)-1]
	if last.ID != typed.ID || last.Text != "Buy milk" {
		t.Fatalf("typed row must keep its text, got %+v", last)
	}

	doc, _ = s.AdvanceLocale()
	snap = mustSnapshot(t, s)
	for _, r := range snap.Rows {
		if r.Align != doc.TrashAlign || r.Align != locale.AlignStart {
			t.Fatalf("expected rtl alignment on every row, got %+v", r)
		}
	}
}

func TestToggleAndDelete(t *testing.T) {
	s := newTestService(t, true)
	rows := mustSnapshot(t, s).Rows
	if _, err := s.ToggleCompleted(rows[1].ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := s.DeleteTask(rows[2].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	after := mustSnapshot(t, s).Rows
	if len(after) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(after))
	}
	if !after[1].Completed || after[0].Completed || after[2].Completed {
		t.Fatalf("unexpected completion flags %+v", after)
	}
	if after[2].ID != rows[3].ID {
		t.Fatalf("expected order preserved, got %+v", after)
	}
	if _, err := s.DeleteTask("nope"); !errors.Is(err, task.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFrameAdvancesField(t *testing.T) {
	s := newTestService(t, false)
	s.Resize(900, 900)
	s.PointerMove(450, 450)
	a := s.Frame()
	b := s.Frame()
	if len(a.Particles) != 90 || len(b.Particles) != 90 {
		t.Fatalf("expected 90 particles, got %d and %d", len(a.Particles), len(b.Particles))
	}
	if a.Particles[0] == b.Particles[0] {
		t.Fatalf("expected particles to move between frames")
	}
	s.PointerLeave()
	if a.Width != 900 || a.Height != 900 {
		t.Fatalf("unexpected frame size %vx%v", a.Width, a.Height)
	}
}

func TestConcurrentAccessIsSerialised(t *testing.T) {
	s := newTestService(t, true)
	s.Resize(800, 600)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.PointerMove(float64(i*10), float64(j))
				s.Frame()
				if j%25 == 0 {
					if _, err := s.AdvanceLocale(); err != nil {
						t.Errorf("advance: %v", err)
					}
				}
			}
		}(i)
	}
	wg.Wait()
	// 16 advances from en
	if s.Locale() != locale.Chinese {
		t.Fatalf("expected zh after 16 advances, got %s", s.Locale())
	}
}
