package task

import (
	"strings"

	"tableflip.dev/today/pkg/locale"
)

// Composer is the collapsible panel holding the new-task input.
type Composer struct {
	open  bool
	draft string
}

// Open reports whether the panel is visible.
func (c *Composer) Open() bool {
	return c.open
}

// Show reveals the panel.
func (c *Composer) Show() {
	c.open = true
}

// Hide collapses the panel and clears the draft.
func (c *Composer) Hide() {
	c.open = false
	c.draft = ""
}

// Toggle shows a hidden panel or hides a visible one.
func (c *Composer) Toggle() {
	if c.open {
		c.Hide()
		return
	}
	c.Show()
}

// SetDraft replaces the pending input.
func (c *Composer) SetDraft(s string) {
	c.draft = s
}

// Draft returns the pending input as typed.
func (c *Composer) Draft() string {
	return c.draft
}

// CanSubmit reports whether the add button is enabled: the trimmed draft
// must be non-empty.
func (c *Composer) CanSubmit() bool {
	return strings.TrimSpace(c.draft) != ""
}

// Submit adds the draft to the list. On success the draft is cleared and the
// panel hidden; an empty draft changes nothing.
func (c *Composer) Submit(l *List, align locale.Align) (Row, bool) {
	r, ok := l.Add(c.draft, align)
	if !ok {
		return Row{}, false
	}
	c.Hide()
	return r, true
}
