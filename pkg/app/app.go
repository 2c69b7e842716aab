// Package app owns the widget state shared by every front end: the particle
// field, the pointer, the language switcher, the task list and the composer.
package app

import (
	"errors"
	"sync"

	"tableflip.dev/today/pkg/locale"
	"tableflip.dev/today/pkg/particle"
	"tableflip.dev/today/pkg/task"
)

// ErrNoDictionary is returned by New when Options carries no dictionary.
var ErrNoDictionary = errors.New("app: no dictionary configured")

// Options configure a Service.
type Options struct {
	Dictionary *locale.Dictionary
	Locale     locale.Locale
	Particles  particle.Options
	// Seed adds the dictionary's seed rows to the list at start.
	Seed bool
}

// Service provides the widget operations. Every method takes the same lock, so
// a front end that renders from another goroutine (the ebiten window) and one
// that renders from the Bubble Tea loop see consistent frames.
type Service struct {
	mu       sync.Mutex
	dict     *locale.Dictionary
	switcher *locale.Switcher
	field    *particle.Field
	pointer  particle.Pointer
	list     *task.List
	composer task.Composer
}

// New builds a Service. The field is empty until the first Resize.
func New(opts Options) (*Service, error) {
	if opts.Dictionary == nil {
		return nil, ErrNoDictionary
	}
	sw, err := locale.NewSwitcher(opts.Dictionary, opts.Locale)
	if err != nil {
		return nil, err
	}
	s := &Service{
		dict:     opts.Dictionary,
		switcher: sw,
		field:    particle.NewField(opts.Particles),
		list:     task.NewList(),
	}
	if opts.Seed {
		if err := s.list.Seed(s.dict, sw.Current(), locale.SeedKeys...); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Resize regenerates the particle field for a width x height canvas.
func (s *Service) Resize(width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.field.Resize(width, height)
}

// PointerMove records the pointer position in canvas units.
func (s *Service) PointerMove(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pointer.Move(x, y)
}

// PointerLeave marks the pointer as absent.
func (s *Service) PointerLeave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pointer.Leave()
}

// Frame is one rendered animation frame.
type Frame struct {
	Width, Height float64
	Particles     []particle.Particle
}

// Frame advances every particle once and returns a copy of the field to draw.
func (s *Service) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.field.Step(&s.pointer)
	w, h := s.field.Size()
	ps := s.field.Particles()
	out := make([]particle.Particle, len(ps))
	copy(out, ps)
	return Frame{Width: w, Height: h, Particles: out}
}

// AdvanceLocale switches to the next language. Static text, seeded rows and
// every row's delete alignment change together; on error nothing changes.
func (s *Service) AdvanceLocale() (locale.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.switcher.Next()
	doc, err := locale.Resolve(s.dict, next)
	if err != nil {
		return locale.Document{}, err
	}
	if err := s.list.Retranslate(s.dict, next, doc.TrashAlign); err != nil {
		return locale.Document{}, err
	}
	if _, err := s.switcher.Advance(); err != nil {
		return locale.Document{}, err
	}
	return doc, nil
}

// Locale returns the active locale.
func (s *Service) Locale() locale.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.switcher.Current()
}

// ShowComposer reveals the new-task panel.
func (s *Service) ShowComposer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.composer.Show()
}

// HideComposer collapses the panel and clears the draft.
func (s *Service) HideComposer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.composer.Hide()
}

// ToggleComposer flips the panel, as the "+ New Task" control does.
func (s *Service) ToggleComposer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.composer.Toggle()
	return s.composer.Open()
}

// SetDraftText updates the pending input and returns whether it can be added.
func (s *Service) SetDraftText(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.composer.SetDraft(text)
	return s.composer.CanSubmit()
}

// AddTask appends the draft as a new row aligned for the current direction.
// A blank draft is ignored.
func (s *Service) AddTask() (task.Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	align := s.switcher.Current().Direction().TrashAlign()
	return s.composer.Submit(s.list, align)
}

// ToggleCompleted flips one row's completed flag.
func (s *Service) ToggleCompleted(id string) (task.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Toggle(id)
}

// DeleteTask removes one row.
func (s *Service) DeleteTask(id string) (task.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Delete(id)
}

// Snapshot is the state a front end needs to render the page.
type Snapshot struct {
	Document     locale.Document
	Rows         []task.Row
	ComposerOpen bool
	Draft        string
	CanSubmit    bool
}

// Snapshot resolves the current page state.
func (s *Service) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.switcher.Document()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Document:     doc,
		Rows:         s.list.Rows(),
		ComposerOpen: s.composer.Open(),
		Draft:        s.composer.Draft(),
		CanSubmit:    s.composer.CanSubmit(),
	}, nil
}
