package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eduvision/internal/images"
	"github.com/abhisek/eduvision/internal/prompts"
)

// at builds a state parked on step with every guard satisfied.
func at(step Step) State {
	s := New().SelectMode(ModeTeacher).
		SetAge("10歲").SetSubject("生物").SetTopic("光合作用").
		SetLearningGoal("理解 (Understand)").SetTiming("概念講解 (Lecture)").
		ToggleModule("A")
	s.Step = step
	return s
}

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, StepModeSelection, s.Step)
	assert.Equal(t, LanguageChinese, s.VisualLanguage)
	assert.Empty(t, s.Mode)
	assert.Empty(t, s.SelectedModules())
	assert.Empty(t, s.Images)
	assert.Empty(t, s.FinalResult)
	assert.Empty(t, s.AISuggestion)
	assert.False(t, s.CanAdvance())
}

func TestNext_GuardFailsIsNoop(t *testing.T) {
	tests := []struct {
		name  string
		state State
	}{
		{"mode unset", New()},
		{"basic info empty", New().SelectMode(ModeStudent)},
		{"subject blank", at(StepBasicInfo).SetSubject("   ")},
		{"topic blank", at(StepBasicInfo).SetTopic("\t")},
		{"goal blank", at(StepGoals).SetLearningGoal(" ")},
		{"no modules", at(StepModuleSelection).ToggleModule("A")},
		{"traits", at(StepStudentTraits)},
		{"result", at(StepResult)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.state.Step < StepStudentTraits {
				require.False(t, tt.state.CanAdvance())
			}
			assert.Equal(t, tt.state, tt.state.Next())
		})
	}
}

func TestNext_Advances(t *testing.T) {
	for _, step := range []Step{StepBasicInfo, StepGoals, StepModuleSelection} {
		s := at(step)
		assert.True(t, s.CanAdvance(), step.String())
		assert.Equal(t, step+1, s.Next().Step, step.String())
	}
}

func TestPrevNextRoundTrip(t *testing.T) {
	for _, step := range []Step{StepBasicInfo, StepGoals, StepModuleSelection, StepStudentTraits} {
		s := at(step)
		back := s.Prev()
		assert.Equal(t, step-1, back.Step)
		assert.Equal(t, step, back.Next().Step, "from %s", step)
	}

	s := New()
	assert.Equal(t, s, s.Prev(), "prev at mode selection is a no-op")
	assert.Equal(t, StepStudentTraits, at(StepResult).Prev().Step)
}

func TestSelectMode(t *testing.T) {
	s := New().SelectMode(ModeStudent)
	assert.Equal(t, ModeStudent, s.Mode)
	assert.Equal(t, StepBasicInfo, s.Step)

	assert.Equal(t, s, s.SelectMode(ModeTeacher), "only valid at mode selection")
	assert.Equal(t, New(), New().SelectMode("admin"))

	assert.Equal(t, "👩‍🏫 教師模式", ModeTeacher.Label())
	assert.Equal(t, "學生模式", ModeStudent.Title())
	m, ok := ParseMode(" Teacher ")
	assert.True(t, ok)
	assert.Equal(t, ModeTeacher, m)
	_, ok = ParseMode("parent")
	assert.False(t, ok)
}

func TestReselectModeAfterPrev(t *testing.T) {
	s := New().SelectMode(ModeTeacher).SetSubject("生物").SetTopic("光合作用")

	back := s.Prev()
	assert.Equal(t, StepModeSelection, back.Step)
	assert.Equal(t, ModeTeacher, back.Mode, "mode kept until a new pick")

	again := back.SelectMode(ModeStudent)
	assert.Equal(t, ModeStudent, again.Mode)
	assert.Equal(t, StepBasicInfo, again.Step)
	assert.Equal(t, "光合作用", again.Topic, "entered fields survive")
}

func TestReset(t *testing.T) {
	s := at(StepResult).
		SetInterests("恐龍").SetDifferentiation(true).SetVisualLanguage(LanguageEnglish).
		FinishGenerate(Outcome{HTML: "<h1>plan</h1>"}).
		SetImages(images.NewBatch([]prompts.Item{{Prompt: "p"}}))
	s.AISuggestion = "建議組合：A"

	for step := StepModeSelection; step <= StepResult; step++ {
		s.Step = step
		assert.Equal(t, New(), s.Reset())
	}
}

func TestVisualLanguageDetection(t *testing.T) {
	s := New().SelectMode(ModeTeacher)
	require.Equal(t, LanguageChinese, s.VisualLanguage)

	s = s.SetSubject("English Reading")
	assert.Equal(t, LanguageEnglish, s.VisualLanguage)

	s = s.SetSubject("")
	assert.Equal(t, LanguageEnglish, s.VisualLanguage, "detection never reverts")

	for _, subject := range []string{"英文", "國中英語", "ENGLISH"} {
		assert.Equal(t, LanguageEnglish, New().SelectMode(ModeStudent).SetSubject(subject).VisualLanguage, subject)
	}

	off := at(StepGoals).SetSubject("english")
	assert.Equal(t, LanguageChinese, off.VisualLanguage, "only evaluated on basic info")

	explicit := at(StepStudentTraits).SetVisualLanguage(LanguageEnglish).SetVisualLanguage("Klingon")
	assert.Equal(t, LanguageEnglish, explicit.VisualLanguage)
	assert.Equal(t, "en", explicit.VisualLanguage.Code())
	assert.Equal(t, "zh-TW", LanguageChinese.Code())
}

func TestToggleModule(t *testing.T) {
	s := at(StepModuleSelection).ToggleModule("F").ToggleModule("C")
	assert.Equal(t, []string{"A", "C", "F"}, s.SelectedModules())
	assert.True(t, s.IsSelected("C"))

	before := s
	s = s.ToggleModule("C")
	assert.Equal(t, []string{"A", "F"}, s.SelectedModules())
	assert.Equal(t, []string{"A", "C", "F"}, before.SelectedModules(), "receiver keeps its selection")

	assert.Equal(t, s, s.ToggleModule("Z"))
	assert.Equal(t, s, s.ToggleModule("a"))

	out := s.SelectedModules()
	out[0] = "X"
	assert.Equal(t, []string{"A", "F"}, s.SelectedModules(), "returned slice is a copy")
}

func TestSuggest(t *testing.T) {
	s := at(StepGoals)
	assert.Equal(t, s, s.BeginSuggest(), "suggest only at module selection")

	s = at(StepModuleSelection)
	modules := s.SelectedModules()

	s = s.BeginSuggest()
	assert.True(t, s.IsSuggesting)
	s = s.EndSuggest("建議組合：A 教材視覺化。")
	assert.False(t, s.IsSuggesting)
	assert.Equal(t, "建議組合：A 教材視覺化。", s.AISuggestion)
	assert.Equal(t, modules, s.SelectedModules())

	s = s.BeginSuggest().EndSuggest("AI 暫時忙碌中，請手動選擇。")
	assert.Equal(t, "AI 暫時忙碌中，請手動選擇。", s.AISuggestion, "later suggestion overwrites")

	assert.Equal(t, s, s.EndSuggest("late"), "no suggestion in flight")
}

func TestGenerate(t *testing.T) {
	s := at(StepStudentTraits).
		FinishGenerate(Outcome{HTML: "<p>old</p>"}).
		SetImages(images.NewBatch([]prompts.Item{{Prompt: "p"}}))
	s.Step = StepStudentTraits

	s = s.BeginGenerate()
	assert.True(t, s.IsGenerating)
	assert.Empty(t, s.FinalResult)
	assert.Empty(t, s.Images)

	done := s.FinishGenerate(Outcome{HTML: "<h1>新計畫</h1>"})
	assert.False(t, done.IsGenerating)
	assert.Equal(t, StepResult, done.Step)
	assert.Equal(t, "<h1>新計畫</h1>", done.FinalResult)
	assert.NoError(t, done.PlanErr)

	failed := s.FinishGenerate(Outcome{Err: errors.New("quota exceeded")})
	assert.Equal(t, StepResult, failed.Step)
	assert.Equal(t, "發生錯誤: quota exceeded", failed.FinalResult)
	assert.EqualError(t, failed.PlanErr, "quota exceeded")

	empty := s.FinishGenerate(Outcome{HTML: "  "})
	assert.Equal(t, "生成失敗，請重試。", empty.FinalResult)
	assert.False(t, Outcome{HTML: "  "}.OK())
}

func TestSetImagesKeepsResult(t *testing.T) {
	s := at(StepResult).FinishGenerate(Outcome{HTML: "<p>plan</p>"})
	g := images.NewBatch([]prompts.Item{{Prompt: "a"}, {Prompt: "b"}})

	s = s.SetImages(g).SetImages(g.Fail(g[0].ID, images.GenerationFailed))
	assert.Equal(t, "<p>plan</p>", s.FinalResult)
	assert.Len(t, s.Images, 2)
}

func TestEndToEnd(t *testing.T) {
	s := New().SelectMode(ModeTeacher)
	s = s.SetAge("10歲").SetSubject("生物").SetTopic("光合作用").Next()
	require.Equal(t, StepGoals, s.Step)
	s = s.SetLearningGoal("理解 (Understand)").SetTiming("概念講解 (Lecture)").Next()
	require.Equal(t, StepModuleSelection, s.Step)
	s = s.ToggleModule("A").Next()
	require.Equal(t, StepStudentTraits, s.Step)
	s = s.SetInterests("").SetDifferentiation(false)

	s = s.BeginGenerate().FinishGenerate(Outcome{HTML: "<h1>光合作用</h1>"})
	assert.Equal(t, StepResult, s.Step)
	assert.True(t, s.HasResult())
	assert.Empty(t, s.Images)
	assert.Equal(t, LanguageChinese, s.VisualLanguage)
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "modules", StepModuleSelection.String())
	assert.Equal(t, "unknown", Step(42).String())
}
