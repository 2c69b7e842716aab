// Package task is the in-memory, insertion-ordered to-do list and the
// composer used to type new rows.
package task

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/today/pkg/locale"
)

// ErrNotFound is returned when a row id is not in the list.
var ErrNotFound = errors.New("task: row not found")

// Row is one to-do item. Rows seeded from the dictionary carry a Key and are
// re-translated on every language switch; rows typed by the user carry only
// their literal Text.
type Row struct {
	ID        string
	Text      string
	Key       locale.Key
	Completed bool
	Align     locale.Align
}

// Label returns the text to display for the row in locale l.
func (r Row) Label(dict *locale.Dictionary, l locale.Locale) (string, error) {
	if r.Key == "" {
		return r.Text, nil
	}
	return dict.Lookup(l, r.Key)
}

// Seeded reports whether the row was created from a dictionary key.
func (r Row) Seeded() bool {
	return r.Key != ""
}

// List is an ordered collection of rows.
type List struct {
	rows    []Row
	counter int
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

func (l *List) newID() string {
	l.counter++
	return fmt.Sprintf("task-%d", l.counter)
}

// Add appends a row with the trimmed text. Empty or whitespace-only text is
// ignored and reported with ok=false.
func (l *List) Add(text string, align locale.Align) (Row, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Row{}, false
	}
	r := Row{ID: l.newID(), Text: text, Align: align}
	l.rows = append(l.rows, r)
	return r, true
}

// Seed appends one row per dictionary key, with its text resolved in loc.
func (l *List) Seed(dict *locale.Dictionary, loc locale.Locale, keys ...locale.Key) error {
	align := loc.Direction().TrashAlign()
	for _, k := range keys {
		text, err := dict.Lookup(loc, k)
		if err != nil {
			return err
		}
		l.rows = append(l.rows, Row{ID: l.newID(), Text: text, Key: k, Align: align})
	}
	return nil
}

// Toggle flips the completed flag of one row.
func (l *List) Toggle(id string) (Row, error) {
	i := l.index(id)
	if i < 0 {
		return Row{}, ErrNotFound
	}
	l.rows[i].Completed = !l.rows[i].Completed
	return l.rows[i], nil
}

// Delete removes one row, keeping the order of the rest.
func (l *List) Delete(id string) (Row, error) {
	i := l.index(id)
	if i < 0 {
		return Row{}, ErrNotFound
	}
	r := l.rows[i]
	l.rows = append(l.rows[:i], l.rows[i+1:]...)
	return r, nil
}

// Retranslate rewrites the text of seeded rows into loc and moves every
// row's delete control to align. Typed rows keep their text.
func (l *List) Retranslate(dict *locale.Dictionary, loc locale.Locale, align locale.Align) error {
	texts := make([]string, len(l.rows))
	for i, r := range l.rows {
		text, err := r.Label(dict, loc)
		if err != nil {
			return err
		}
		texts[i] = text
	}
	for i := range l.rows {
		l.rows[i].Text = texts[i]
		l.rows[i].Align = align
	}
	return nil
}

// Get returns the row with id.
func (l *List) Get(id string) (Row, bool) {
	i := l.index(id)
	if i < 0 {
		return Row{}, false
	}
	return l.rows[i], true
}

// Rows returns a copy of the rows in order.
func (l *List) Rows() []Row {
	out := make([]Row, len(l.rows))
	copy(out, l.rows)
	return out
}

// Len returns the number of rows.
func (l *List) Len() int {
	return len(l.rows)
}

func (l *List) index(id string) int {
	for i, r := range l.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}
