package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// fixedClock returns a clock that advances one minute per call.
func fixedClock(start time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		t := start.Add(time.Duration(n) * time.Minute)
		n++
		return t
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"llm_request_events", "plan_events", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s: %v", table, err)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "plan"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "image"}); err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Sequence != 2 || events[1].Sequence != 1 {
		t.Errorf("sequences = %d, %d, want 2, 1", events[0].Sequence, events[1].Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	s.now = fixedClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	repo := s.EventRepo()
	ctx := context.Background()

	inputs := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-3-flash-preview", Purpose: "suggest", InputTokens: 100, OutputTokens: 20, LatencyMs: 300, Success: true},
		{Provider: "gemini", Model: "gemini-3-pro-preview", Purpose: "plan", InputTokens: 900, OutputTokens: 4000, LatencyMs: 30000, Success: true,
			RequestBody: "[user]\n光合作用", ResponseBody: "<h1>光合作用</h1>"},
		{Provider: "gemini", Model: "gemini-3-pro-image-preview", Purpose: "image", LatencyMs: 8000, Success: false, ErrorMessage: "quota"},
	}
	for _, in := range inputs {
		if err := repo.AppendLLMRequest(ctx, in); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("events = %d, want 3", len(all))
	}
	if all[0].Purpose != "image" || all[2].Purpose != "suggest" {
		t.Errorf("expected newest first, got %s ... %s", all[0].Purpose, all[2].Purpose)
	}
	if all[0].Success || all[0].ErrorMessage != "quota" {
		t.Errorf("failure not round-tripped: %+v", all[0])
	}
	if !all[2].Timestamp.Equal(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("timestamp = %v", all[2].Timestamp)
	}

	plans, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "plan"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(plans) != 1 || plans[0].ResponseBody != "<h1>光合作用</h1>" {
		t.Fatalf("unexpected plan events: %+v", plans)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited = %d, want 2", len(limited))
	}

	windowed, err := repo.QueryLLMEvents(ctx, QueryOpts{
		From: time.Date(2026, 3, 1, 9, 1, 0, 0, time.UTC),
		To:   time.Date(2026, 3, 1, 9, 1, 30, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("query window: %v", err)
	}
	if len(windowed) != 1 || windowed[0].Purpose != "plan" {
		t.Errorf("unexpected window result: %+v", windowed)
	}

	got, err := repo.GetLLMEvent(ctx, plans[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "[user]\n光合作用" {
		t.Fatalf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, in := range []LLMRequestEventData{
		{Model: "gemini-3-pro-preview", Purpose: "plan", InputTokens: 100, OutputTokens: 1000, LatencyMs: 100},
		{Model: "gemini-3-pro-preview", Purpose: "plan", InputTokens: 200, OutputTokens: 2000, LatencyMs: 300},
		{Model: "gemini-3-flash-preview", Purpose: "suggest", InputTokens: 50, OutputTokens: 10, LatencyMs: 40},
	} {
		if err := repo.AppendLLMRequest(ctx, in); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	plan := byPurpose[0]
	if plan.Purpose != "plan" || plan.Calls != 2 || plan.InputTokens != 300 || plan.OutputTokens != 3000 || plan.AvgLatencyMs != 200 {
		t.Errorf("unexpected plan usage: %+v", plan)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "gemini-3-pro-preview" || byModel[0].Calls != 2 {
		t.Errorf("unexpected model usage: %+v", byModel)
	}
}

func TestPlanEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	id, err := repo.AppendPlanEvent(ctx, PlanEventData{
		Mode:            "teacher",
		Age:             "10歲",
		Subject:         "生物",
		Topic:           "光合作用",
		LearningGoal:    "理解 (Understand)",
		Timing:          "概念講解 (Lecture)",
		Modules:         []string{"A", "C"},
		Differentiation: true,
		VisualLanguage:  "zh-TW",
		HTML:            "<h1>光合作用</h1>",
		PromptCount:     3,
		Success:         true,
	})
	if err != nil {
		t.Fatalf("append plan: %v", err)
	}
	if _, err := repo.AppendPlanEvent(ctx, PlanEventData{Subject: "英文", ErrorMessage: "boom"}); err != nil {
		t.Fatalf("append second plan: %v", err)
	}

	got, err := repo.GetPlanEvent(ctx, id)
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if got == nil {
		t.Fatal("expected plan")
	}
	if got.Topic != "光合作用" || len(got.Modules) != 2 || got.Modules[1] != "C" || !got.Differentiation || got.PromptCount != 3 || !got.Success {
		t.Errorf("unexpected plan: %+v", got.PlanEventData)
	}

	list, err := repo.QueryPlanEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query plans: %v", err)
	}
	if len(list) != 2 || list[0].Subject != "英文" {
		t.Fatalf("unexpected plan list: %+v", list)
	}
	if list[0].Modules != nil {
		t.Errorf("expected nil modules for empty selection, got %v", list[0].Modules)
	}

	missing, err := repo.GetPlanEvent(ctx, 42)
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil for missing plan; got %v, %v", missing, err)
	}
}

func TestClientSeesAppendedEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if _, err := repo.AppendPlanEvent(ctx, PlanEventData{Subject: "生物", Modules: []string{"B"}, Success: true}); err != nil {
		t.Fatalf("append plan: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "plan", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	plans, err := s.Client().PlanEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("ent query plans: %v", err)
	}
	if len(plans) != 1 || plans[0].Sequence != 1 || len(plans[0].Modules) != 1 || plans[0].Modules[0] != "B" {
		t.Fatalf("unexpected plan rows: %+v", plans)
	}

	n, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("ent count llm: %v", err)
	}
	if n != 1 {
		t.Errorf("llm rows = %d, want 1", n)
	}
}
