package planner

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/eduvision/internal/llm"
	"github.com/abhisek/eduvision/internal/store"
	"github.com/abhisek/eduvision/internal/wizard"
)

func photosynthesis() wizard.State {
	return wizard.New().SelectMode(wizard.ModeTeacher).
		SetAge("10歲").SetSubject("生物").SetTopic("光合作用").Next().
		SetLearningGoal("理解 (Understand)").SetTiming("概念講解 (Lecture)").Next().
		ToggleModule("D").ToggleModule("A").Next().
		SetInterests("恐龍").SetDifferentiation(true)
}

const samplePlan = `<h1>光合作用</h1><p>葉子是工廠</p>
<script id="prompts" type="application/json">[{"prompt":"leaf factory","aspect_ratio":"4:3"},{"prompt":"sun","aspectRatio":"16:9"}]</script>`

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSuggest_FormatsModules(t *testing.T) {
	fast := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"modules":["A","c","A","Z"],"reason":"抽象概念適合擬人化。"}`),
	})
	svc := NewService(fast, llm.NewMockProvider(), nil, DefaultConfig(), nil)

	got := svc.Suggest(context.Background(), photosynthesis())
	want := "建議組合：A 教材視覺化 ＋ C 客製化教學圖卡。抽象概念適合擬人化。"
	if got != want {
		t.Errorf("Suggest() = %q, want %q", got, want)
	}

	if fast.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", fast.CallCount())
	}
	req := fast.Calls[0]
	if req.Schema != SuggestionSchema {
		t.Error("expected suggestion schema on request")
	}
	if req.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", req.Temperature)
	}
	if req.WebSearch || req.ThinkingBudget != 0 {
		t.Error("suggestions must not enable search or thinking")
	}
	if req.System != SystemPrompt {
		t.Error("expected system prompt")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"👩‍🏫 教師模式", "10歲", "生物", "光合作用", "理解 (Understand)", "概念講解 (Lecture)"} {
		if !strings.Contains(msg, want) {
			t.Errorf("suggest message missing %q", want)
		}
	}
}

func TestSuggest_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
		want string
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrRateLimit{}}, SuggestionBusy},
		{"empty content", llm.MockResponse{Content: json.RawMessage(" ")}, SuggestionEmpty},
		{"not json", llm.MockResponse{Content: json.RawMessage(`建議組合`)}, SuggestionBusy},
		{"no modules no reason", llm.MockResponse{Content: json.RawMessage(`{"modules":[],"reason":""}`)}, SuggestionEmpty},
		{"reason only", llm.MockResponse{Content: json.RawMessage(`{"modules":["Q"],"reason":"手動選擇即可。"}`)}, "手動選擇即可。"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(llm.NewMockProvider(tt.resp), nil, nil, DefaultConfig(), nil)
			if got := svc.Suggest(context.Background(), photosynthesis()); got != tt.want {
				t.Errorf("Suggest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerate_ComposesRequest(t *testing.T) {
	plan := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(samplePlan)})
	svc := NewService(nil, plan, nil, DefaultConfig(), nil)

	out := svc.Generate(context.Background(), photosynthesis())
	if !out.OK() || out.HTML != samplePlan {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if out.Text() != samplePlan {
		t.Error("Text() should return the plan verbatim")
	}

	req := plan.Calls[0]
	if !req.WebSearch {
		t.Error("expected web search enabled")
	}
	if req.ThinkingBudget != 2048 {
		t.Errorf("thinking budget = %d, want 2048", req.ThinkingBudget)
	}
	if req.Schema != nil {
		t.Error("plan requests are free-form HTML")
	}

	msg := req.Messages[0].Content
	for _, want := range []string{
		"1. Mode: 👩‍🏫 教師模式",
		"2. Target: 10歲, 生物, 光合作用",
		"3. Goal: 理解 (Understand), Timing: 概念講解 (Lecture)",
		"4. Selected Modules: A, D",
		"5. Student Traits: 恐龍 (Differentiation: Yes)",
		"Visual Content Language: Traditional Chinese.",
		ChineseTextRule,
		`<script id="prompts" type="application/json">`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("plan message missing %q", want)
		}
	}
}

func TestGenerate_EnglishInstruction(t *testing.T) {
	plan := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(samplePlan)})
	svc := NewService(nil, plan, nil, DefaultConfig(), nil)

	s := photosynthesis().SetVisualLanguage(wizard.LanguageEnglish).SetDifferentiation(false)
	svc.Generate(context.Background(), s)

	msg := plan.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Visual Content Language: English. In the JSON prompts, specific keywords must be English.") {
		t.Error("expected English visual language instruction")
	}
	if strings.Contains(msg, "Visual Content Language: Traditional Chinese.") {
		t.Error("Chinese instruction should be absent")
	}
	if !strings.Contains(msg, "(Differentiation: No)") {
		t.Error("expected differentiation No")
	}
}

func TestGenerate_Failure(t *testing.T) {
	plan := llm.NewMockProvider(llm.MockResponse{Err: errors.New("quota exceeded")})
	svc := NewService(nil, plan, nil, DefaultConfig(), nil)

	out := svc.Generate(context.Background(), photosynthesis())
	if out.OK() {
		t.Fatal("expected failed outcome")
	}
	if got, want := out.Text(), "發生錯誤: quota exceeded"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}

	empty := NewService(nil, llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("")}), nil, DefaultConfig(), nil)
	if got := empty.Generate(context.Background(), photosynthesis()).Text(); got != wizard.EmptyPlanText {
		t.Errorf("Text() = %q, want %q", got, wizard.EmptyPlanText)
	}
}

func TestGenerate_ArchivesPlan(t *testing.T) {
	st := openStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	plan := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(samplePlan)},
		llm.MockResponse{Err: errors.New("boom")},
	)
	svc := NewService(nil, plan, repo, DefaultConfig(), nil)

	svc.Generate(ctx, photosynthesis())
	svc.Generate(ctx, photosynthesis().SetVisualLanguage(wizard.LanguageEnglish))

	events, err := repo.QueryPlanEvents(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query plans: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 plan events, got %d", len(events))
	}

	failed, ok := events[0], events[1]
	if !ok.Success || ok.PromptCount != 2 || ok.HTML != samplePlan {
		t.Errorf("unexpected success record: %+v", ok.PlanEventData)
	}
	if ok.VisualLanguage != "zh-TW" || ok.Mode != "teacher" || strings.Join(ok.Modules, ",") != "A,D" {
		t.Errorf("form inputs not archived: %+v", ok.PlanEventData)
	}
	if failed.Success || failed.ErrorMessage != "boom" || failed.VisualLanguage != "en" {
		t.Errorf("unexpected failure record: %+v", failed.PlanEventData)
	}
}
