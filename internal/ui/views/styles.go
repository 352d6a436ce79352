package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title           lipgloss.Style
	Section         lipgloss.Style
	TableBorder     lipgloss.Style
	Cell            lipgloss.Style
	Check           lipgloss.Style
	Dim             lipgloss.Style
	Heading         lipgloss.Style
	Key             lipgloss.Style
	Prompt          lipgloss.Style
	Message         lipgloss.Style
	StatusInstalled lipgloss.Style
	StatusMissing   lipgloss.Style
	StatusRunner    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("51")).
			Padding(0, 1).
			MarginBottom(1),
		Section:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		TableBorder:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Cell:            lipgloss.NewStyle().Padding(0, 1),
		Check:           lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Dim:             lipgloss.NewStyle().Faint(true),
		Heading:         lipgloss.NewStyle().Bold(true),
		Key:             lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		Prompt:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		Message:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusInstalled: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusMissing:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusRunner:    lipgloss.NewStyle().Faint(true),
	}
}
