package components

import (
	"github.com/abhisek/eduvision/internal/ui/theme"
)

// Button is a styled action label. While Busy it shows BusyLabel and is
// not pressable.
type Button struct {
	Key       string
	Label     string
	BusyLabel string
	Busy      bool
	Disabled  bool
	Focused   bool
}

// NewButton creates a new button bound to key.
func NewButton(key, label, busyLabel string) Button {
	return Button{
		Key:       key,
		Label:     label,
		BusyLabel: busyLabel,
	}
}

// Pressable reports whether the button accepts a press.
func (b Button) Pressable() bool {
	return !b.Busy && !b.Disabled
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Busy && b.BusyLabel != "" {
		label = b.BusyLabel
	}
	if b.Key != "" {
		label = "[" + b.Key + "] " + label
	}

	switch {
	case !b.Pressable():
		return theme.ButtonDisabled.Render(label)
	case b.Focused:
		return theme.ButtonActive.Render("▸ " + label)
	default:
		return theme.ButtonInactive.Render(label)
	}
}
