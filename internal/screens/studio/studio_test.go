package studio

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eduvision/internal/images"
	"github.com/abhisek/eduvision/internal/pdfexport"
	"github.com/abhisek/eduvision/internal/router"
	"github.com/abhisek/eduvision/internal/wizard"
)

const planHTML = `<h1>光合作用</h1><p>植物利用陽光。</p>
<script id="prompts" type="application/json">[
 {"prompt": "a leaf in sunlight", "aspect_ratio": "4:3"},
 {"prompt": "chloroplast diagram", "aspect_ratio": "1:1"}
]</script>`

type fakePlanner struct {
	mu         sync.Mutex
	suggestion string
	outcome    wizard.Outcome
	generated  []wizard.State
}

func (p *fakePlanner) Suggest(context.Context, wizard.State) string { return p.suggestion }

func (p *fakePlanner) Generate(_ context.Context, st wizard.State) wizard.Outcome {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generated = append(p.generated, st)
	return p.outcome
}

type fakeRenderer struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]bool
}

func (r *fakeRenderer) Render(_ context.Context, img images.GeneratedImage) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, img.Prompt)
	if r.fail[img.Prompt] {
		return "", errors.New("quota")
	}
	return "data:image/png;base64,AA==", nil
}

type fakeExporter struct {
	err error
}

func (e *fakeExporter) Export(context.Context, string, images.Gallery, time.Time) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	return "/tmp/eduvision-plan-2026-10-17.pdf", nil
}

func newStudio() (*Studio, *fakePlanner, *fakeRenderer) {
	p := &fakePlanner{suggestion: "建議組合：A 教材視覺化。", outcome: wizard.Outcome{HTML: planHTML}}
	r := &fakeRenderer{fail: map[string]bool{}}
	s := New(Deps{Planner: p, Images: r, PDF: &fakeExporter{}, OutputDir: "/tmp"})
	return s, p, r
}

func press(s *Studio, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = s.Update(keyMsg(k))
	}
	return cmd
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "ctrl+n":
		return tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}
	case "ctrl+g":
		return tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}

func typeText(s *Studio, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// run executes cmd and returns the non-spinner messages it produced.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, run(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

// one executes cmd and returns its single message of type T.
func one[T any](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	var found []T
	for _, m := range run(cmd) {
		if v, ok := m.(T); ok {
			found = append(found, v)
		}
	}
	require.Len(t, found, 1, "expected exactly one %T", *new(T))
	return found[0]
}

// toTraits drives the wizard to StudentTraits with module A selected.
func toTraits(t *testing.T, s *Studio) {
	t.Helper()
	press(s, "enter")
	require.Equal(t, wizard.StepBasicInfo, s.state.Step)

	typeText(s, "10歲")
	press(s, "tab")
	typeText(s, "生物")
	press(s, "tab")
	typeText(s, "光合作用")
	press(s, "enter")
	require.Equal(t, wizard.StepGoals, s.state.Step)

	press(s, "enter", "enter")
	require.Equal(t, wizard.StepModuleSelection, s.state.Step)

	press(s, "space", "enter")
	require.Equal(t, wizard.StepStudentTraits, s.state.Step)
}

// toResult generates a plan and delivers it.
func toResult(t *testing.T, s *Studio) {
	t.Helper()
	toTraits(t, s)
	msg := one[planReadyMsg](t, press(s, "ctrl+g"))
	s.Update(msg)
	require.Equal(t, wizard.StepResult, s.state.Step)
}

func TestModeSelection(t *testing.T) {
	s, _, _ := newStudio()
	press(s, "down", "enter")

	assert.Equal(t, wizard.ModeStudent, s.state.Mode)
	assert.Equal(t, wizard.StepBasicInfo, s.state.Step)
	assert.Equal(t, "學生模式", s.Badge())
	assert.Equal(t, "步驟 1：基本資訊", s.Title())
}

func TestBasicInfoGuard(t *testing.T) {
	s, _, _ := newStudio()
	press(s, "enter")

	press(s, "tab")
	typeText(s, "English")
	press(s, "ctrl+n")
	assert.Equal(t, wizard.StepBasicInfo, s.state.Step, "topic is required")
	assert.Equal(t, wizard.LanguageEnglish, s.state.VisualLanguage)

	press(s, "tab")
	typeText(s, "Animals")
	press(s, "ctrl+n")
	assert.Equal(t, wizard.StepGoals, s.state.Step)

	press(s, "esc")
	assert.Equal(t, wizard.StepBasicInfo, s.state.Step)
	assert.Equal(t, "Animals", s.state.Topic, "values survive going back")
}

func TestGoalsAndModules(t *testing.T) {
	s, _, _ := newStudio()
	press(s, "enter")
	press(s, "tab")
	typeText(s, "生物")
	press(s, "tab")
	typeText(s, "光合作用")
	press(s, "enter")

	press(s, "ctrl+n")
	assert.Equal(t, wizard.StepGoals, s.state.Step, "learning goal is required")

	press(s, "down", "enter")
	assert.Equal(t, "記憶 (Remember)", s.state.LearningGoal)
	assert.Equal(t, focusTiming, s.focus)

	press(s, "ctrl+n")
	assert.Equal(t, wizard.StepModuleSelection, s.state.Step, "timing is optional")

	press(s, "enter")
	assert.Equal(t, wizard.StepModuleSelection, s.state.Step, "a module is required")

	press(s, "space", "down", "down", "down", "space")
	assert.Equal(t, []string{"A", "D"}, s.state.SelectedModules())

	press(s, "up", "space", "space")
	assert.Equal(t, []string{"A", "D"}, s.state.SelectedModules(), "toggling twice is a no-op")
}

func TestSuggestion(t *testing.T) {
	s, _, _ := newStudio()
	toTraits(t, s)
	press(s, "esc")
	require.Equal(t, wizard.StepModuleSelection, s.state.Step)

	msg := one[suggestionMsg](t, press(s, "a"))
	assert.True(t, s.state.IsSuggesting)
	assert.Nil(t, press(s, "a"), "no second request while suggesting")

	s.Update(msg)
	assert.False(t, s.state.IsSuggesting)
	assert.Equal(t, "建議組合：A 教材視覺化。", s.state.AISuggestion)
	assert.Equal(t, []string{"A"}, s.state.SelectedModules(), "suggestion never selects")
}

func TestSuggestion_StaleAfterReset(t *testing.T) {
	s, _, _ := newStudio()
	toTraits(t, s)
	press(s, "esc")
	msg := one[suggestionMsg](t, press(s, "a"))

	s.reset()
	s.Update(msg)
	assert.Empty(t, s.state.AISuggestion)
	assert.Equal(t, wizard.StepModeSelection, s.state.Step)
}

func TestSuggestion_StaleReplyKeepsNewerRequestBusy(t *testing.T) {
	s, p, _ := newStudio()
	toTraits(t, s)
	press(s, "esc")
	old := one[suggestionMsg](t, press(s, "a"))

	s.reset()
	toTraits(t, s)
	press(s, "esc")
	require.Equal(t, wizard.StepModuleSelection, s.state.Step)
	p.suggestion = "建議組合：E 概念關係圖。"
	fresh := one[suggestionMsg](t, press(s, "a"))

	s.Update(old)
	assert.True(t, s.state.IsSuggesting, "newer request still in flight")
	assert.Empty(t, s.state.AISuggestion)
	assert.Nil(t, press(s, "a"), "no concurrent suggestion request")

	s.Update(fresh)
	assert.False(t, s.state.IsSuggesting)
	assert.Equal(t, "建議組合：E 概念關係圖。", s.state.AISuggestion)
}

func TestGenerate(t *testing.T) {
	s, p, _ := newStudio()
	toTraits(t, s)

	press(s, "tab", "space", "tab", "space")
	assert.True(t, s.state.Differentiation)
	assert.Equal(t, wizard.LanguageEnglish, s.state.VisualLanguage)

	cmd := press(s, "ctrl+g")
	assert.True(t, s.state.IsGenerating)
	assert.Nil(t, press(s, "ctrl+g"), "no second request while generating")

	s.Update(one[planReadyMsg](t, cmd))
	assert.False(t, s.state.IsGenerating)
	assert.Equal(t, wizard.StepResult, s.state.Step)
	assert.Equal(t, planHTML, s.state.FinalResult)

	require.Len(t, p.generated, 1)
	assert.Equal(t, "光合作用", p.generated[0].Topic)
	assert.True(t, p.generated[0].Differentiation)

	view := s.View(120, 40)
	assert.Contains(t, view, "光合作用")
	assert.NotContains(t, view, "chloroplast", "prompts script is not displayed")
}

func TestGenerate_Failure(t *testing.T) {
	s, p, _ := newStudio()
	p.outcome = wizard.Outcome{Err: errors.New("quota exceeded")}
	toResult(t, s)

	assert.Equal(t, wizard.PlanErrorPrefix+"quota exceeded", s.state.FinalResult)
	assert.Contains(t, s.View(120, 40), "quota exceeded")
}

func TestStalePlanDiscarded(t *testing.T) {
	s, _, _ := newStudio()
	toTraits(t, s)
	msg := one[planReadyMsg](t, press(s, "ctrl+g"))

	s.reset()
	s.Update(msg)
	assert.Equal(t, wizard.New().Step, s.state.Step)
	assert.Empty(t, s.state.FinalResult)
	assert.False(t, s.state.IsGenerating)
}

func TestStalePlanDiscardedOnRegenerate(t *testing.T) {
	s, p, _ := newStudio()
	toTraits(t, s)
	first := one[planReadyMsg](t, press(s, "ctrl+g"))
	s.Update(first)

	p.outcome = wizard.Outcome{HTML: "<p>second</p>"}
	second := one[planReadyMsg](t, press(s, "g"))

	s.Update(first)
	assert.True(t, s.state.IsGenerating, "stale result must not finish the new request")

	s.Update(second)
	assert.Equal(t, "<p>second</p>", s.state.FinalResult)
}

func TestImagesSequential(t *testing.T) {
	s, _, r := newStudio()
	toResult(t, s)

	cmd := press(s, "i")
	g := s.state.Images
	require.Len(t, g, 2)
	assert.Equal(t, images.StatusGenerating, g[0].Status)
	assert.Equal(t, images.StatusPending, g[1].Status)
	assert.Nil(t, press(s, "i"), "a busy gallery blocks a new batch")

	first := one[imageDoneMsg](t, cmd)
	assert.Equal(t, g[0].ID, first.ID)

	_, cmd = s.Update(first)
	g = s.state.Images
	assert.Equal(t, images.StatusCompleted, g[0].Status)
	assert.Equal(t, images.StatusGenerating, g[1].Status, "next image starts after the previous one settles")

	r.fail["chloroplast diagram"] = true
	second := one[imageDoneMsg](t, cmd)
	_, cmd = s.Update(second)
	assert.Nil(t, cmd)

	g = s.state.Images
	assert.Equal(t, images.StatusError, g[1].Status)
	assert.Equal(t, images.GenerationFailed, g[1].Error)
	assert.Equal(t, []string{"a leaf in sunlight", "chloroplast diagram"}, r.calls)
	assert.Equal(t, planHTML, s.state.FinalResult, "images never touch the plan")
}

func TestImages_NoPrompts(t *testing.T) {
	s, p, _ := newStudio()
	p.outcome = wizard.Outcome{HTML: "<p>no prompts here</p>"}
	toResult(t, s)

	assert.Nil(t, press(s, "i"))
	assert.Empty(t, s.state.Images)
	assert.Equal(t, images.NoPromptsNotice, s.notice)
}

func TestStaleImageDiscarded(t *testing.T) {
	s, _, _ := newStudio()
	toResult(t, s)
	done := one[imageDoneMsg](t, press(s, "i"))

	regen := one[planReadyMsg](t, press(s, "g"))
	assert.Empty(t, s.state.Images, "regeneration clears images")

	_, cmd := s.Update(done)
	assert.Nil(t, cmd)
	assert.Empty(t, s.state.Images)

	s.Update(regen)
	assert.Empty(t, s.state.Images)
}

func TestRedo(t *testing.T) {
	s, _, r := newStudio()
	toResult(t, s)

	cmd := press(s, "i")
	_, cmd = s.Update(one[imageDoneMsg](t, cmd))
	s.Update(one[imageDoneMsg](t, cmd))
	before := s.state.Images

	require.Equal(t, focusGallery, s.focus)
	r.fail["a leaf in sunlight"] = true
	cmd = press(s, "x")
	assert.Equal(t, images.StatusGenerating, s.state.Images[0].Status)
	assert.Nil(t, press(s, "x"), "redo is refused while generating")

	msg := one[imageDoneMsg](t, cmd)
	assert.True(t, msg.Redo)
	_, next := s.Update(msg)
	assert.Nil(t, next, "redo does not continue the batch")

	after := s.state.Images
	assert.Equal(t, images.StatusError, after[0].Status)
	assert.Equal(t, images.RedoFailed, after[0].Error)
	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, before[0].Prompt, after[0].Prompt)
	assert.Equal(t, before[1], after[1], "siblings are untouched")
}

func TestPDFExport(t *testing.T) {
	s, _, _ := newStudio()
	toResult(t, s)

	cmd := press(s, "p")
	assert.True(t, s.pdfBusy)
	assert.Nil(t, press(s, "p"))

	s.Update(one[pdfExportedMsg](t, cmd))
	assert.False(t, s.pdfBusy)
	assert.Contains(t, s.notice, "eduvision-plan-2026-10-17.pdf")
	assert.False(t, s.noticeErr)
}

func TestPDFExport_Failure(t *testing.T) {
	s, _, _ := newStudio()
	s.deps.PDF = &fakeExporter{err: errors.New("font download failed")}
	toResult(t, s)

	s.Update(one[pdfExportedMsg](t, press(s, "p")))
	assert.False(t, s.pdfBusy, "busy flag is cleared on failure")
	assert.Equal(t, pdfexport.FailureNotice, s.notice)
	assert.True(t, s.noticeErr)
}

func TestReset(t *testing.T) {
	s, _, _ := newStudio()
	toResult(t, s)
	before := s.token

	press(s, "r")
	assert.Equal(t, wizard.New(), s.state)
	assert.Greater(t, s.token, before)
	assert.Empty(t, s.fields[focusSubject].Value())
}

func TestImageDetailPush(t *testing.T) {
	s, _, _ := newStudio()
	toResult(t, s)
	s.Update(one[imageDoneMsg](t, press(s, "i")))

	push := one[router.PushScreenMsg](t, press(s, "enter"))
	assert.Equal(t, "圖卡 1", push.Screen.Title())
}

func TestBackFromResultKeepsPlan(t *testing.T) {
	s, _, _ := newStudio()
	toResult(t, s)

	press(s, "esc")
	assert.Equal(t, wizard.StepStudentTraits, s.state.Step)
	assert.Equal(t, planHTML, s.state.FinalResult)
}
