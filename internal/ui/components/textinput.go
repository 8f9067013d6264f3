package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with Pathwise styling.
type TextInput struct {
	Model textinput.Model
	Label string
}

// NewTextInput creates a new styled, unfocused text input.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti, Label: label}
}

// Focus focuses the field and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

func (t *TextInput) Blur() {
	t.Model.Blur()
}

func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update forwards messages to the underlying model.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// SetWidth sets the visible width of the field.
func (t *TextInput) SetWidth(w int) {
	t.Model.SetWidth(max(w, 10))
}

// View renders the text input.
func (t TextInput) View() string {
	border := theme.Border
	if t.Model.Focused() {
		border = theme.Primary
	}
	field := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(t.Model.View())
	if t.Label == "" {
		return field
	}
	return theme.Subtitle.Render(t.Label) + "\n" + field
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Reset clears the field.
func (t *TextInput) Reset() {
	t.Model.Reset()
}
