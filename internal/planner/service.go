// Package planner turns a completed wizard form into an AI-generated
// lesson plan and offers advisory module suggestions along the way.
package planner

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/abhisek/eduvision/internal/catalog"
	"github.com/abhisek/eduvision/internal/llm"
	"github.com/abhisek/eduvision/internal/logger"
	"github.com/abhisek/eduvision/internal/prompts"
	"github.com/abhisek/eduvision/internal/store"
	"github.com/abhisek/eduvision/internal/wizard"
)

// Suggestion fallbacks shown in place of a recommendation.
const (
	SuggestionEmpty = "無法產生建議，請稍後再試。"
	SuggestionBusy  = "AI 暫時忙碌中，請手動選擇。"
)

// Service calls the text providers on behalf of the wizard.
type Service struct {
	fast   llm.Provider
	plan   llm.Provider
	events store.EventRepo
	cfg    Config
	log    *logger.Logger
}

// NewService creates a planner. fast serves suggestions and plan serves
// lesson plans. events may be nil, in which case plans are not archived.
func NewService(fast, plan llm.Provider, events store.EventRepo, cfg Config, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{fast: fast, plan: plan, events: events, cfg: cfg, log: log}
}

type suggestionOutput struct {
	Modules []string `json:"modules"`
	Reason  string   `json:"reason"`
}

// Suggest asks for a module combination. The result is display text;
// failures are reported through the fallback texts, never as errors.
func (s *Service) Suggest(ctx context.Context, state wizard.State) string {
	ctx = llm.WithPurpose(ctx, llm.PurposeSuggest)

	resp, err := s.fast.Generate(ctx, llm.Request{
		System:      SystemPrompt,
		Messages:    llm.UserMessage(buildSuggestMessage(state)),
		Schema:      SuggestionSchema,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		s.log.Warn("module suggestion failed", "error", err)
		return SuggestionBusy
	}

	if strings.TrimSpace(resp.Text()) == "" {
		return SuggestionEmpty
	}

	var out suggestionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		s.log.Warn("parse module suggestion", "error", err)
		return SuggestionBusy
	}
	return formatSuggestion(out)
}

// formatSuggestion renders "建議組合：A 教材視覺化 ＋ C 客製化教學圖卡。<reason>".
func formatSuggestion(out suggestionOutput) string {
	var labels []string
	seen := map[string]bool{}
	for _, id := range out.Modules {
		id = strings.ToUpper(strings.TrimSpace(id))
		m, ok := catalog.LookupModule(id)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		labels = append(labels, m.Label())
	}
	reason := strings.TrimSpace(out.Reason)
	if len(labels) == 0 {
		if reason == "" {
			return SuggestionEmpty
		}
		return reason
	}
	return "建議組合：" + strings.Join(labels, " ＋ ") + "。" + reason
}

// Generate requests a full lesson plan for state. The outcome carries
// either the HTML or the error; it is archived when an event repo is set.
func (s *Service) Generate(ctx context.Context, state wizard.State) wizard.Outcome {
	ctx = llm.WithPurpose(ctx, llm.PurposePlan)

	s.log.Info("generating plan",
		"mode", string(state.Mode),
		"subject", state.Subject,
		"modules", strings.Join(state.SelectedModules(), ","),
		"language", state.VisualLanguage.Code(),
	)

	var outcome wizard.Outcome
	resp, err := s.plan.Generate(ctx, llm.Request{
		System:         SystemPrompt,
		Messages:       llm.UserMessage(buildPlanMessage(state)),
		Temperature:    s.cfg.Temperature,
		WebSearch:      s.cfg.WebSearch,
		ThinkingBudget: s.cfg.ThinkingBudget,
	})
	if err != nil {
		outcome.Err = err
		s.log.Error("plan generation failed", "error", err)
	} else {
		outcome.HTML = resp.Text()
	}

	s.archive(ctx, state, outcome)
	return outcome
}

func (s *Service) archive(ctx context.Context, state wizard.State, outcome wizard.Outcome) {
	if s.events == nil {
		return
	}
	data := store.PlanEventData{
		Mode:            string(state.Mode),
		Age:             state.Age,
		Subject:         state.Subject,
		Topic:           state.Topic,
		LearningGoal:    state.LearningGoal,
		Timing:          state.Timing,
		Modules:         state.SelectedModules(),
		Interests:       state.Interests,
		Differentiation: state.Differentiation,
		VisualLanguage:  state.VisualLanguage.Code(),
		HTML:            outcome.HTML,
		PromptCount:     len(prompts.Extract(outcome.HTML)),
		Success:         outcome.OK(),
	}
	if outcome.Err != nil {
		data.ErrorMessage = outcome.Err.Error()
	}
	if _, err := s.events.AppendPlanEvent(ctx, data); err != nil {
		s.log.Warn("archive plan", "error", err)
	}
}
