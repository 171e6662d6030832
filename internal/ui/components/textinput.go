package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and EduVision styling.
type TextInput struct {
	Label    string
	Model    textinput.Model
	Required bool
}

// NewTextInput creates a new blurred, labelled text input. A positive
// charLimit caps the input length.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(theme.Text),
			Placeholder: lipgloss.NewStyle().Foreground(theme.TextDim),
			Prompt:      lipgloss.NewStyle().Foreground(theme.Primary),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(theme.TextDim),
			Placeholder: lipgloss.NewStyle().Foreground(theme.Border),
			Prompt:      lipgloss.NewStyle().Foreground(theme.Border),
		},
		Cursor: textinput.CursorStyle{
			Color: theme.Secondary,
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	ti.SetWidth(48)
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Label: label, Model: ti}
}

// Mask hides typed characters, for secrets.
func (t *TextInput) Mask() {
	t.Model.EchoMode = textinput.EchoPassword
	t.Model.EchoCharacter = '•'
}

// SetWidth sets the visible input width.
func (t *TextInput) SetWidth(w int) {
	t.Model.SetWidth(w)
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label above the input.
func (t TextInput) View() string {
	label := t.Label
	if t.Required {
		label += lipgloss.NewStyle().Foreground(theme.Error).Render(" *")
	}
	style := theme.Label
	if !t.Focused() {
		style = lipgloss.NewStyle().Foreground(theme.TextDim)
	}
	return style.Render(label) + "\n" + t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}
