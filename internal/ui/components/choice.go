package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/ui/theme"
)

// Choice is a single-select list. The cursor moves with ←/→ when Horizontal
// is set and with ↑/↓ otherwise; enter commits the cursor as the choice.
type Choice struct {
	Options    []string
	Cursor     int
	Chosen     int
	Horizontal bool
	Focused    bool
}

// NewChoice creates a choice with the first option chosen.
func NewChoice(options []string, horizontal bool) Choice {
	return Choice{Options: options, Horizontal: horizontal}
}

// ChoiceMadeMsg reports a committed choice.
type ChoiceMadeMsg struct {
	Index int
}

// Update handles cursor movement and selection while focused.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if !c.Focused {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	prev, next := "up", "down"
	if c.Horizontal {
		prev, next = "left", "right"
	}

	switch kmsg.String() {
	case prev:
		if c.Cursor > 0 {
			c.Cursor--
		}
	case next:
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter":
		if c.Cursor >= 0 && c.Cursor < len(c.Options) {
			c.Chosen = c.Cursor
			idx := c.Chosen
			return c, func() tea.Msg { return ChoiceMadeMsg{Index: idx} }
		}
	}
	return c, nil
}

// View renders the options, marking the chosen one and, when focused, the
// cursor.
func (c Choice) View() string {
	parts := make([]string, len(c.Options))
	for i, opt := range c.Options {
		mark := "○ "
		if i == c.Chosen {
			mark = "● "
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case c.Focused && i == c.Cursor:
			style = theme.Selected.Underline(true)
		case i == c.Chosen:
			style = theme.Selected
		}
		parts[i] = style.Render(mark + opt)
	}
	if c.Horizontal {
		return strings.Join(parts, "    ")
	}
	return strings.Join(parts, "\n")
}
