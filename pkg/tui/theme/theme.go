package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
)

// Accent is the purple used for the add button and the particle tint.
var Accent = lipgloss.Color("#9b70e5")

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Background color.Color
	Panel      PanelTheme
	Row        RowTheme
	Composer   ComposerTheme
	Footer     FooterTheme
}

// PanelTheme styles the centred card holding the list.
type PanelTheme struct {
	Frame      lipgloss.Style
	Title      lipgloss.Style
	ShowButton lipgloss.Style
	LangIcon   lipgloss.Style
}

// RowTheme styles one task row.
type RowTheme struct {
	Marker     lipgloss.Style
	MarkerDone lipgloss.Style
	Text       lipgloss.Style
	TextDone   lipgloss.Style
	Trash      lipgloss.Style
	Selected   lipgloss.Style
}

// ComposerTheme styles the new-task panel.
type ComposerTheme struct {
	Frame          lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
}

// FooterTheme groups styles used by the bottom help line.
type FooterTheme struct {
	Help lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Background: lipgloss.Color("#111018"),
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Accent).
				Padding(0, 1),
			Title:      lipgloss.NewStyle().Bold(true),
			ShowButton: lipgloss.NewStyle().Foreground(Accent).Bold(true),
			LangIcon:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Reverse(true),
		},
		Row: RowTheme{
			Marker:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			MarkerDone: lipgloss.NewStyle().Foreground(Accent),
			Text:       lipgloss.NewStyle(),
			TextDone:   lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("244")),
			Trash:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Selected:   lipgloss.NewStyle().Bold(true),
		},
		Composer: ComposerTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")),
			Button:         lipgloss.NewStyle().Background(Accent).Foreground(lipgloss.Color("255")).Padding(0, 1),
			ButtonDisabled: lipgloss.NewStyle().Background(lipgloss.Color("245")).Foreground(lipgloss.Color("236")).Padding(0, 1),
		},
		Footer: FooterTheme{
			Help: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}
