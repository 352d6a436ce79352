// Package menu interprets menu commands against the selection state.
//
// The controller is shared by the full-screen TUI and the plain line-based
// loop; both feed it one line of input at a time.
package menu

import (
	"strconv"
	"strings"

	"envinstall/internal/domain"
	"envinstall/internal/presence"
	"envinstall/internal/registry"
	"envinstall/internal/selection"
	"envinstall/internal/ui/views"
)

// Title is shown at the top of the menu
const Title = "envinstall Installer"

// Action tells the caller what to do after a command was handled
type Action int

const (
	ActionNone Action = iota // re-render
	ActionInstall
	ActionShowHistory
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionInstall:
		return "install"
	case ActionShowHistory:
		return "history"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Checker is the presence information the menu needs
type Checker interface {
	IsPresent(d domain.Descriptor) bool
	Status(d domain.Descriptor) presence.Status
}

// Controller owns the selection state for one session
type Controller struct {
	registry  *registry.Registry
	checker   Checker
	selection *selection.State
}

// NewController creates a controller with nothing selected
func NewController(reg *registry.Registry, checker Checker) *Controller {
	return &Controller{
		registry:  reg,
		checker:   checker,
		selection: selection.New(reg.Len()),
	}
}

// Selection exposes the selection state
func (c *Controller) Selection() *selection.State {
	return c.selection
}

// Selected returns the selected indices in registry order
func (c *Controller) Selected() []int {
	return c.selection.Selected()
}

// Handle applies one line of input. Surrounding whitespace is ignored.
// Anything unrecognized, including out-of-range numbers, is a no-op.
func (c *Controller) Handle(line string) Action {
	choice := strings.TrimSpace(line)

	if n, ok := parseNumber(choice); ok {
		if n >= 1 && n <= c.registry.Len() {
			c.selection.Toggle(n - 1)
		}
		return ActionNone
	}

	switch choice {
	case "":
		return ActionInstall
	case "a":
		c.selection.Select(c.registry.IndicesByCategory(domain.CategoryBase))
	case "v":
		c.selection.Select(c.registry.IndicesByCategory(domain.CategoryVibe))
	case "A":
		c.selection.SelectAll()
	case "c":
		c.selection.Clear()
	case "m":
		c.selection.Select(c.missing())
	case "l":
		return ActionShowHistory
	case "q", "Q":
		return ActionQuit
	}
	return ActionNone
}

// missing returns every index that is not present, including entries with
// no presence check
func (c *Controller) missing() []int {
	var out []int
	for i, d := range c.registry.All() {
		if !c.checker.IsPresent(d) {
			out = append(out, i)
		}
	}
	return out
}

// parseNumber accepts only plain ASCII digits
func parseNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// State builds the view state for the current selection. Presence is
// re-checked on every call so installs made in this session show up.
func (c *Controller) State() views.MenuState {
	state := views.MenuState{
		Title:    Title,
		Selected: c.selection.Count(),
	}
	for _, cat := range domain.Categories {
		section := views.Section{Title: cat.Title()}
		for _, i := range c.registry.IndicesByCategory(cat) {
			d := c.registry.At(i)
			section.Rows = append(section.Rows, views.Row{
				Number:   i + 1,
				Name:     d.Name,
				Selected: c.selection.IsSelected(i),
				Status:   c.checker.Status(d),
			})
		}
		state.Sections = append(state.Sections, section)
	}
	return state
}
