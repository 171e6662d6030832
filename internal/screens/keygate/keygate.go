// Package keygate holds the screen that blocks the studio until a provider
// key is available.
package keygate

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/apikey"
	"github.com/abhisek/eduvision/internal/router"
	"github.com/abhisek/eduvision/internal/screen"
	"github.com/abhisek/eduvision/internal/ui/components"
	"github.com/abhisek/eduvision/internal/ui/layout"
	"github.com/abhisek/eduvision/internal/ui/theme"
)

const (
	checkTimeout  = 10 * time.Second
	selectTimeout = 30 * time.Second

	billingURL = "https://ai.google.dev/gemini-api/docs/billing"
)

type phase int

const (
	phaseChecking phase = iota
	phaseInput
	phaseSelecting
)

type keyCheckedMsg struct {
	HasKey bool
	Err    error
}

type keySelectedMsg struct {
	Err error
}

// Screen checks for a key on start and, when none is found, asks for one.
// Once a key is available it replaces itself with the screen built by next.
type Screen struct {
	keys    apikey.Manager
	next    func() (screen.Screen, error)
	phase   phase
	input   components.TextInput
	spinner spinner.Model
	errMsg  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the key gate.
func New(keys apikey.Manager, next func() (screen.Screen, error)) *Screen {
	input := components.NewTextInput("Gemini API 金鑰", "AIza...", 0)
	input.Mask()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return &Screen{
		keys:    keys,
		next:    next,
		input:   input,
		spinner: sp,
	}
}

func (s *Screen) Init() tea.Cmd {
	keys := s.keys
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
		defer cancel()
		ok, err := keys.HasKey(ctx)
		return keyCheckedMsg{HasKey: ok, Err: err}
	})
}

func (s *Screen) Title() string {
	return ""
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.phase != phaseInput {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "連結 API 金鑰"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case keyCheckedMsg:
		if msg.HasKey {
			return s, s.proceed()
		}
		// A failed check is treated like a missing key.
		s.phase = phaseInput
		return s, s.input.Focus()

	case keySelectedMsg:
		if msg.Err != nil {
			s.phase = phaseInput
			s.errMsg = apikey.Describe(msg.Err)
			return s, s.input.Focus()
		}
		return s, s.proceed()

	case spinner.TickMsg:
		if s.phase == phaseInput {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if s.phase != phaseInput {
			return s, nil
		}
		if msg.String() == "enter" {
			return s, s.selectKey()
		}
	}

	if s.phase == phaseInput {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) selectKey() tea.Cmd {
	key := strings.TrimSpace(s.input.Value())
	if key == "" {
		s.errMsg = apikey.Describe(apikey.ErrEmptyKey)
		return nil
	}

	s.phase = phaseSelecting
	s.errMsg = ""
	s.input.Blur()
	keys := s.keys
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), selectTimeout)
		defer cancel()
		return keySelectedMsg{Err: keys.SelectKey(ctx, key)}
	})
}

func (s *Screen) proceed() tea.Cmd {
	next, err := s.next()
	if err != nil {
		s.phase = phaseInput
		s.errMsg = apikey.Describe(err)
		return s.input.Focus()
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *Screen) View(width, height int) string {
	if s.phase == phaseChecking {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			s.spinner.View()+" "+theme.Hint.Render("檢查 API 金鑰..."))
	}

	body := lipgloss.NewStyle().Foreground(theme.TextDim).Width(min(width-8, 64))

	sections := []string{
		lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render("🔑  需要設定 API 金鑰"),
		"",
		body.Render("為了提供高品質的教學視覺化生成服務，本應用程式需要您連結 Google Cloud 專案的付費 Gemini API 金鑰。金鑰會儲存在全域設定檔中。"),
		"",
		s.input.View(),
		"",
	}

	if s.phase == phaseSelecting {
		sections = append(sections, s.spinner.View()+" "+theme.Hint.Render("驗證中..."))
	} else {
		btn := components.NewButton("Enter", "連結 API 金鑰", "")
		btn.Focused = true
		sections = append(sections, btn.View())
	}

	if s.errMsg != "" {
		sections = append(sections, "", theme.Failed.Render(s.errMsg))
	}

	sections = append(sections, "", theme.Hint.Render("尚未設定計費專案？請參考 "+billingURL))

	card := theme.Card.Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
