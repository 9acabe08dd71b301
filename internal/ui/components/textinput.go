package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/valodiag/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with an inline validation message.
type TextInput struct {
	Model    textinput.Model
	errorMsg string
}

// NewTextInput creates a focused text input. charLimit <= 0 means no limit.
func NewTextInput(placeholder, value string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()
	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Typing clears any validation message.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		t.errorMsg = ""
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input and, below it, the validation message if any.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.errorMsg != "" {
		view += "\n" + theme.ErrorText.Render(t.errorMsg)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetError shows msg under the input until the next key press.
func (t *TextInput) SetError(msg string) {
	t.errorMsg = msg
}

// Error returns the current validation message.
func (t TextInput) Error() string {
	return t.errorMsg
}
