package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"envinstall/internal/presence"
)

// Row is one registry entry as shown in the menu
type Row struct {
	Number   int // 1-based, what the user types
	Name     string
	Selected bool
	Status   presence.Status
}

// Section is one category table
type Section struct {
	Title string
	Rows  []Row
}

// MenuState contains everything needed to draw the menu
type MenuState struct {
	Title    string
	Sections []Section
	Selected int
	Message  string // transient status line, may be empty
	Width    int
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	keys   KeyMap
	help   help.Model
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	h := help.New()
	h.ShowAll = true
	return &Renderer{
		styles: NewStyles(),
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Keys exposes the renderer's key map
func (r *Renderer) Keys() KeyMap {
	return r.keys
}

// Render produces the menu: title, one table per section, and the legend
func (r *Renderer) Render(state MenuState) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(state.Title))
	b.WriteString("\n")

	for _, section := range state.Sections {
		if len(section.Rows) == 0 {
			continue
		}
		b.WriteString(r.styles.Section.Render(section.Title))
		b.WriteString("\n")
		b.WriteString(r.renderTable(section.Rows))
		b.WriteString("\n\n")
	}

	b.WriteString(r.styles.Heading.Render("Quick Select:"))
	if state.Selected > 0 {
		b.WriteString(r.styles.Dim.Render("  (" + strconv.Itoa(state.Selected) + " selected)"))
	}
	b.WriteString("\n")
	if state.Width > 0 {
		r.help.Width = state.Width
	}
	b.WriteString(r.help.View(r.keys))
	b.WriteString("\n")

	if state.Message != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Message.Render(state.Message))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderTable(rows []Row) string {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		check := " "
		if row.Selected {
			check = r.styles.Check.Render("x")
		}
		data = append(data, []string{
			"[" + check + "]",
			strconv.Itoa(row.Number),
			row.Name,
			r.renderStatus(row.Status),
		})
	}

	widths := []int{5, 4, 17, 11}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.TableBorder).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col < len(widths) {
				return r.styles.Cell.Width(widths[col])
			}
			return r.styles.Cell
		}).
		Rows(data...)
	return t.Render()
}

func (r *Renderer) renderStatus(s presence.Status) string {
	switch s {
	case presence.StatusInstalled:
		return r.styles.StatusInstalled.Render(s.String())
	case presence.StatusRunner:
		return r.styles.StatusRunner.Render(s.String())
	default:
		return r.styles.StatusMissing.Render(s.String())
	}
}

// Prompt renders the choice prompt label
func (r *Renderer) Prompt() string {
	return r.styles.Prompt.Render("Choice") + ": "
}
