package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/eduvision/internal/store"
)

type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProvider_RecordsEvent(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`<h1>計劃</h1>`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	p := WithLogging(mock, repo, nil)

	ctx := WithPurpose(context.Background(), PurposePlan)
	_, err := p.Generate(ctx, Request{
		System:    "sys",
		Messages:  UserMessage("topic"),
		WebSearch: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Purpose != PurposePlan || !ev.Success || ev.InputTokens != 12 || ev.OutputTokens != 34 {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "[system]\nsys") || !strings.Contains(ev.RequestBody, "web_search: true") {
		t.Fatalf("unexpected request body: %q", ev.RequestBody)
	}
	if ev.ResponseBody != `<h1>計劃</h1>` {
		t.Fatalf("unexpected response body: %q", ev.ResponseBody)
	}
}

func TestLoggingProvider_RepoFailureDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`ok`)})

	resp, err := WithLogging(mock, repo, nil).Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "ok" {
		t.Fatalf("unexpected content: %q", resp.Text())
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})

	_, err := WithLogging(mock, repo, nil).Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if repo.events[0].Success || repo.events[0].ErrorMessage == "" {
		t.Fatalf("expected failed event, got %+v", repo.events[0])
	}
}

func TestLoggingImageProvider_RecordsEvent(t *testing.T) {
	repo := &recordingRepo{}
	p := WithImageLogging(NewMockImageProvider(), repo, nil)

	_, err := p.GenerateImage(context.Background(), ImageRequest{Prompt: "a leaf", AspectRatio: "4:3", Size: "1K"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ev := repo.events[0]
	if ev.Purpose != PurposeImage || !ev.Success {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "a leaf") || !strings.Contains(ev.RequestBody, "aspect_ratio: 4:3") {
		t.Fatalf("unexpected request body: %q", ev.RequestBody)
	}
	if !strings.HasPrefix(ev.ResponseBody, "[image/png, ") {
		t.Fatalf("unexpected response body: %q", ev.ResponseBody)
	}
}
