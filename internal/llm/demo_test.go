package llm

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"
)

func TestDemoProviders_AnswerRepeatedly(t *testing.T) {
	p := newDemoProviders()

	for i := range 2 {
		resp, err := p.Plan.Generate(context.Background(), Request{Messages: UserMessage("plan")})
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if !strings.Contains(resp.Text(), `id="prompts"`) {
			t.Fatalf("call %d: demo plan lacks prompts script", i)
		}
	}

	resp, err := p.Fast.Generate(context.Background(), Request{Messages: UserMessage("suggest")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resp.Text(), `"modules"`) {
		t.Fatalf("unexpected suggestion %s", resp.Content)
	}
}

func TestMockProvider_QueueBeforeFallback(t *testing.T) {
	m := NewMockProvider(MockResponse{Content: []byte("first")})
	m.Fallback = &MockResponse{Content: []byte("again")}

	for _, want := range []string{"first", "again", "again"} {
		resp, err := m.Generate(context.Background(), Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != want {
			t.Fatalf("got %q, want %q", resp.Text(), want)
		}
	}
}

func TestMockImageProvider_Placeholder(t *testing.T) {
	m := &MockImageProvider{Placeholder: true}

	tests := []struct {
		ratio string
		w, h  int
	}{
		{"1:1", 512, 512},
		{"4:3", 640, 480},
		{"16:9", 768, 432},
		{"3:2", 640, 480},
	}
	for _, tt := range tests {
		t.Run(tt.ratio, func(t *testing.T) {
			img, err := m.GenerateImage(context.Background(), ImageRequest{Prompt: "leaf", AspectRatio: tt.ratio})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			decoded, err := png.Decode(bytes.NewReader(img.Data))
			if err != nil {
				t.Fatalf("placeholder is not a PNG: %v", err)
			}
			b := decoded.Bounds()
			if b.Dx() != tt.w || b.Dy() != tt.h {
				t.Fatalf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
			}
		})
	}
}

func TestPlaceholderPNG_DiffersPerPrompt(t *testing.T) {
	a, err := placeholderPNG("1:1", "leaf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := placeholderPNG("1:1", "mind map of the water cycle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("expected different cards for different prompts")
	}
}
