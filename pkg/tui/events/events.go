// Package events defines the Bubble Tea messages exchanged between the
// widget's components.
package events

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/today/pkg/locale"
	"tableflip.dev/today/pkg/task"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// FrameMsg drives one animation frame.
type FrameMsg struct {
	At time.Time
}

// FrameCmd schedules the next animation frame after interval.
func FrameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}

// ChangeType enumerates supported change actions across components.
type ChangeType string

const (
	// ChangeCreate indicates a new row was created.
	ChangeCreate ChangeType = "create"
	// ChangeUpdate indicates an existing row changed.
	ChangeUpdate ChangeType = "update"
	// ChangeDelete indicates a row was removed.
	ChangeDelete ChangeType = "delete"
)

// TaskChangeMsg announces a change to one row.
type TaskChangeMsg struct {
	Component ComponentID
	Action    ChangeType
	Row       task.Row
}

// Describe renders the change in a human-friendly format for logs.
func (m TaskChangeMsg) Describe() string {
	return fmt.Sprintf(`action:%q id:%q completed:%t text:%q`, m.Action, m.Row.ID, m.Row.Completed, m.Row.Text)
}

// TaskChangeCmd wraps TaskChangeMsg into a tea.Cmd.
func TaskChangeCmd(component ComponentID, action ChangeType, row task.Row) tea.Cmd {
	return func() tea.Msg {
		return TaskChangeMsg{Component: component, Action: action, Row: row}
	}
}

// LocaleChangeMsg announces that the active language changed.
type LocaleChangeMsg struct {
	Component ComponentID
	Document  locale.Document
}

// Describe implements the logging helper.
func (m LocaleChangeMsg) Describe() string {
	return fmt.Sprintf(`lang:%q dir:%q font:%q`, m.Document.Lang, m.Document.Dir, m.Document.FontFamily)
}

// LocaleChangeCmd wraps LocaleChangeMsg into a tea.Cmd.
func LocaleChangeCmd(component ComponentID, doc locale.Document) tea.Cmd {
	return func() tea.Msg {
		return LocaleChangeMsg{Component: component, Document: doc}
	}
}

// ComposerToggleMsg reports the composer opening or closing.
type ComposerToggleMsg struct {
	Component ComponentID
	Open      bool
}

// Describe implements the logging helper.
func (m ComposerToggleMsg) Describe() string {
	return fmt.Sprintf(`open:%t`, m.Open)
}

// ComposerToggleCmd wraps ComposerToggleMsg into a tea.Cmd.
func ComposerToggleCmd(component ComponentID, open bool) tea.Cmd {
	return func() tea.Msg {
		return ComposerToggleMsg{Component: component, Open: open}
	}
}

// Describer is implemented by messages that can summarise themselves for the
// debug log.
type Describer interface {
	Describe() string
}
