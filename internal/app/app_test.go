package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduvision/internal/config"
	"github.com/abhisek/eduvision/internal/images"
	"github.com/abhisek/eduvision/internal/prompts"
	"github.com/abhisek/eduvision/internal/router"
	"github.com/abhisek/eduvision/internal/wizard"
)

type fakeKeys struct{}

func (fakeKeys) HasKey(context.Context) (bool, error)    { return true, nil }
func (fakeKeys) SelectKey(context.Context, string) error { return nil }

func mockConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Provider:  "mock",
		OutputDir: t.TempDir(),
		DataDir:   t.TempDir(),
		Images:    config.ImagesConfig{Concurrency: 1, Size: "1K"},
	}
}

func TestNewServices_Mock(t *testing.T) {
	svc, err := NewServices(context.Background(), mockConfig(t), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := wizard.New().SelectMode(wizard.ModeTeacher).SetSubject("生物").SetTopic("光合作用")
	outcome := svc.Planner.Generate(context.Background(), st)
	if !outcome.OK() {
		t.Fatalf("expected a demo plan, got %q", outcome.Text())
	}

	items := prompts.Extract(outcome.HTML)
	if len(items) == 0 {
		t.Fatal("demo plan has no prompts")
	}
	g, err := svc.Images.GenerateAll(context.Background(), items, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := g.Counts()[images.StatusCompleted]; n != len(items) {
		t.Fatalf("completed %d of %d images", n, len(items))
	}
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Config: mockConfig(t), Keys: fakeKeys{}})

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestUpdate_EscAtRootReachesScreen(t *testing.T) {
	m := newAppModel(Options{Config: mockConfig(t), Keys: fakeKeys{}})

	// The splash leaves on any key, esc included.
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected the splash to handle esc")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected a screen replacement")
	}
}

func TestUpdate_EscPopsPushedScreen(t *testing.T) {
	m := newAppModel(Options{Config: mockConfig(t), Keys: fakeKeys{}})
	m.router.Push(m.router.Active())

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected router.PopScreenMsg")
	}
}
