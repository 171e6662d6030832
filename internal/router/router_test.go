package router

import (
	"slices"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduvision/internal/screen"
)

type initMsg struct{ title string }

// fakeScreen records Init calls and the messages it receives.
type fakeScreen struct {
	title string
	inits int
	got   []tea.Msg
}

func (s *fakeScreen) Init() tea.Cmd {
	s.inits++
	title := s.title
	return func() tea.Msg { return initMsg{title: title} }
}

func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return s.title }
func (s *fakeScreen) Title() string        { return s.title }

func titles(r *Router) []string {
	var out []string
	for _, s := range r.stack {
		out = append(out, s.Title())
	}
	return out
}

func TestPushPop(t *testing.T) {
	studio := &fakeScreen{title: "studio"}
	r := New(studio)

	detail := &fakeScreen{title: "圖卡 1"}
	if cmd := r.Push(detail); cmd == nil {
		t.Fatal("expected Push to return the screen's Init cmd")
	}
	if detail.inits != 1 {
		t.Errorf("detail inits = %d, want 1", detail.inits)
	}
	if got := r.View(80, 24); got != "圖卡 1" {
		t.Errorf("view = %q, want pushed screen", got)
	}

	r.Pop()
	if r.Active() != studio {
		t.Errorf("active = %q after pop, want studio", r.Active().Title())
	}

	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d after pop at bottom, want 1", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name  string
		setup func() *Router
		want  []string
	}{
		{
			name:  "empty stack",
			setup: func() *Router { return &Router{} },
			want:  []string{"keygate"},
		},
		{
			name:  "single screen",
			setup: func() *Router { return New(&fakeScreen{title: "splash"}) },
			want:  []string{"keygate"},
		},
		{
			name: "keeps lower screens",
			setup: func() *Router {
				r := New(&fakeScreen{title: "studio"})
				r.Push(&fakeScreen{title: "圖卡 1"})
				return r
			},
			want: []string{"studio", "keygate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.setup()
			gate := &fakeScreen{title: "keygate"}

			cmd := r.Replace(gate)
			if cmd == nil {
				t.Fatal("expected Replace to return the screen's Init cmd")
			}
			if msg, ok := cmd().(initMsg); !ok || msg.title != "keygate" {
				t.Errorf("init msg = %#v", msg)
			}
			if gate.inits != 1 {
				t.Errorf("inits = %d, want 1", gate.inits)
			}
			if got := titles(r); !slices.Equal(got, tt.want) {
				t.Errorf("stack = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateRoutesNavigation(t *testing.T) {
	splash := &fakeScreen{title: "splash"}
	r := New(splash)

	gate := &fakeScreen{title: "keygate"}
	if cmd := r.Update(ReplaceScreenMsg{Screen: gate}); cmd == nil {
		t.Fatal("expected ReplaceScreenMsg to yield an Init cmd")
	}
	if r.Depth() != 1 || r.Active() != gate {
		t.Fatalf("stack = %v, want [keygate]", titles(r))
	}
	if len(splash.got) != 0 || len(gate.got) != 0 {
		t.Error("navigation messages must not reach screens")
	}

	studio := &fakeScreen{title: "studio"}
	r.Update(ReplaceScreenMsg{Screen: studio})
	r.Update(PushScreenMsg{Screen: &fakeScreen{title: "圖卡 1"}})
	if got := titles(r); !slices.Equal(got, []string{"studio", "圖卡 1"}) {
		t.Fatalf("stack = %v", got)
	}

	r.Update(PopScreenMsg{})
	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if len(studio.got) != 1 {
		t.Fatalf("studio received %d msgs, want 1", len(studio.got))
	}
	if _, ok := studio.got[0].(tea.KeyPressMsg); !ok {
		t.Errorf("studio got %T, want tea.KeyPressMsg", studio.got[0])
	}
}

func TestEmptyRouter(t *testing.T) {
	r := &Router{}
	if r.Active() != nil {
		t.Error("expected no active screen")
	}
	if cmd := r.Update(tea.KeyPressMsg{Code: 'a'}); cmd != nil {
		t.Error("expected nil cmd with no screens")
	}
	if got := r.View(80, 24); got != "" {
		t.Errorf("view = %q, want empty", got)
	}
}
