package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/apikey"
	"github.com/abhisek/eduvision/internal/config"
	"github.com/abhisek/eduvision/internal/logger"
	"github.com/abhisek/eduvision/internal/router"
	"github.com/abhisek/eduvision/internal/screen"
	"github.com/abhisek/eduvision/internal/screens/keygate"
	"github.com/abhisek/eduvision/internal/screens/studio"
	"github.com/abhisek/eduvision/internal/screens/welcome"
	"github.com/abhisek/eduvision/internal/store"
	"github.com/abhisek/eduvision/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Config    *config.Config
	EventRepo store.EventRepo
	Log       *logger.Logger
	// Keys gates the studio. Defaults to a config-backed manager.
	Keys apikey.Manager
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the screen chain splash → key gate → studio.
// Providers are built only after the gate passes, so a key entered on the
// gate is picked up.
func newAppModel(opts Options) AppModel {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	if opts.Keys == nil {
		opts.Keys = apikey.NewConfigManager(opts.Config)
	}

	openStudio := func() (screen.Screen, error) {
		svc, err := NewServices(context.Background(), opts.Config, opts.EventRepo, opts.Log)
		if err != nil {
			opts.Log.Error("studio unavailable", "error", err)
			return nil, err
		}
		return studio.New(studio.Deps{
			Planner:   svc.Planner,
			Images:    svc.Images,
			PDF:       svc.PDF,
			OutputDir: opts.Config.OutputDir,
			Log:       opts.Log,
		}), nil
	}
	gate := func() screen.Screen {
		return keygate.New(opts.Keys, openStudio)
	}

	return AppModel{
		router: router.New(welcome.New(gate)),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// The bottom screen owns esc (the studio uses it for "back").
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	var title, badge string
	if active != nil {
		title = active.Title()
		if bp, ok := active.(screen.BadgeProvider); ok {
			badge = bp.Badge()
		}
	}

	header := layout.RenderHeader(title, badge, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return kp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
