package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/ui/theme"
)

// ChecklistItem is one toggleable row.
type ChecklistItem struct {
	ID          string
	Label       string
	Description string
}

// Checklist is a cursor over toggleable rows. It does not own the checked
// set; callers pass it to View.
type Checklist struct {
	Items  []ChecklistItem
	Cursor int
}

// NewChecklist creates a checklist with the cursor on the first row.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items}
}

// Update moves the cursor.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	}
	return c, nil
}

// Current returns the id under the cursor.
func (c Checklist) Current() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Items) {
		return ""
	}
	return c.Items[c.Cursor].ID
}

// View renders every row; checked reports whether a row id is selected.
func (c Checklist) View(checked func(id string) bool, width int) string {
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Width(max(width-8, 10))

	var b strings.Builder
	for i, item := range c.Items {
		box := "[ ]"
		style := theme.Unselected
		if checked(item.ID) {
			box = "[✓]"
			style = theme.Done
		}
		cursor := "  "
		if i == c.Cursor {
			cursor = "▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(cursor + box + " " + item.ID + "  " + item.Label))
		b.WriteString("\n")
		if item.Description != "" {
			b.WriteString(lipgloss.NewStyle().PaddingLeft(8).Render(desc.Render(item.Description)))
			b.WriteString("\n")
		}
	}
	return b.String()
}
