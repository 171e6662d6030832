package components

import (
	"image"
	"image/color"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
		{Label: "c", Disabled: true},
		{Label: "d"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(key("down"))
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(key("down"))
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(key("up"))
	assert.Equal(t, 1, m.Selected)
}

func TestMenu_EnterRunsAction(t *testing.T) {
	type picked struct{ label string }
	m := NewMenu([]MenuItem{
		{Label: "理解", Action: func() tea.Cmd { return func() tea.Msg { return picked{"理解"} } }},
	})
	_, cmd := m.Update(key("enter"))
	if assert.NotNil(t, cmd) {
		assert.Equal(t, picked{"理解"}, cmd())
	}

	m.Focused = false
	_, cmd = m.Update(key("enter"))
	assert.Nil(t, cmd, "blurred menu ignores keys")
}

func TestMenu_Choose(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "x"}, {Label: "y"}})
	m.Choose("y")
	assert.Equal(t, 1, m.Chosen)
	assert.Equal(t, 1, m.Selected)
	assert.Contains(t, m.View(), "● y")

	m.Choose("")
	assert.Equal(t, -1, m.Chosen)
}

func TestChecklist(t *testing.T) {
	c := NewChecklist([]ChecklistItem{{ID: "A", Label: "教材視覺化"}, {ID: "B", Label: "視覺化工作單"}})
	assert.Equal(t, "A", c.Current())
	c, _ = c.Update(key("down"))
	c, _ = c.Update(key("down"))
	assert.Equal(t, "B", c.Current())

	view := c.View(func(id string) bool { return id == "A" }, 60)
	assert.Contains(t, view, "[✓] A")
	assert.Contains(t, view, "[ ] B")
}

func TestButton(t *testing.T) {
	b := NewButton("p", "下載教學計畫 (PDF)", "製作中...")
	assert.True(t, b.Pressable())
	assert.Contains(t, b.View(), "下載教學計畫")

	b.Busy = true
	assert.False(t, b.Pressable())
	assert.Contains(t, b.View(), "製作中...")
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar("圖卡", 1, 4, 40)
	assert.InDelta(t, 0.25, p.Percent(), 1e-9)
	assert.Contains(t, p.View(), "1/4")
	assert.Zero(t, NewProgressBar("", 3, 0, 10).Percent())
}

func TestThumbnail(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}

	out := Thumbnail(img, 20, 20)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 5, "40x20 fits 20 columns and 10 pixel rows")
	assert.Equal(t, 20, lipgloss.Width(lines[0]))

	assert.Empty(t, Thumbnail(nil, 10, 10))
	assert.Empty(t, Thumbnail(img, 0, 10))
}

func TestFit(t *testing.T) {
	w, h := fit(1600, 900, 64, 40)
	assert.Equal(t, 64, w)
	assert.Equal(t, 36, h)

	w, h = fit(900, 1600, 64, 40)
	assert.Equal(t, 22, w)
	assert.Equal(t, 40, h)
}
