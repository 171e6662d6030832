package images

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eduvision/internal/llm"
	"github.com/abhisek/eduvision/internal/prompts"
)

// recorder collects every gallery snapshot passed to onChange.
type recorder struct {
	mu    sync.Mutex
	steps []Gallery
}

func (r *recorder) record(g Gallery) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, g)
}

func (r *recorder) statuses(i int) []Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Status
	for _, g := range r.steps {
		if s := g[i].Status; len(out) == 0 || out[len(out)-1] != s {
			out = append(out, s)
		}
	}
	return out
}

func TestGenerateAll_Sequential(t *testing.T) {
	mock := llm.NewMockImageProvider(
		llm.MockImage{Delay: 5 * time.Millisecond},
		llm.MockImage{Delay: 5 * time.Millisecond},
		llm.MockImage{Delay: 5 * time.Millisecond},
	)
	p := NewPipeline(mock, DefaultConfig(), nil)
	rec := &recorder{}

	g, err := p.GenerateAll(context.Background(), threeItems(), rec.record)
	require.NoError(t, err)
	require.Len(t, g, 3)

	for _, img := range g {
		assert.Equal(t, StatusCompleted, img.Status)
		assert.Contains(t, img.URL, "data:image/png;base64,")
	}

	require.Len(t, mock.Calls, 3)
	assert.Equal(t, 1, mock.MaxInFlight)
	for k := 1; k < len(mock.Calls); k++ {
		assert.False(t, mock.Calls[k].Start.Before(mock.Calls[k-1].End),
			"call %d started before call %d finished", k, k-1)
	}
	assert.Equal(t, []string{"a leaf in sunlight", "chloroplast diagram", "slide cover"}, mock.Prompts())
	assert.Equal(t, "4:3", mock.Calls[0].Request.AspectRatio)
	assert.Equal(t, "1:1", mock.Calls[1].Request.AspectRatio)
	assert.Equal(t, "1K", mock.Calls[0].Request.Size)

	for i := range g {
		assert.Equal(t, []Status{StatusPending, StatusGenerating, StatusCompleted}, rec.statuses(i))
	}
}

func TestGenerateAll_FailureContinues(t *testing.T) {
	mock := llm.NewMockImageProvider(
		llm.MockImage{},
		llm.MockImage{Err: &llm.ErrProviderUnavailable{}},
		llm.MockImage{},
	)
	p := NewPipeline(mock, DefaultConfig(), nil)

	g, err := p.GenerateAll(context.Background(), threeItems(), nil)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, g[0].Status)
	assert.Equal(t, StatusError, g[1].Status)
	assert.Equal(t, GenerationFailed, g[1].Error)
	assert.Empty(t, g[1].URL)
	assert.Equal(t, StatusCompleted, g[2].Status)
	assert.Equal(t, 3, mock.CallCount())
}

func TestGenerateAll_NoPrompts(t *testing.T) {
	mock := llm.NewMockImageProvider()
	p := NewPipeline(mock, DefaultConfig(), nil)

	g, err := p.GenerateAll(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrNoPrompts)
	assert.Empty(t, g)
	assert.Zero(t, mock.CallCount())
}

func TestGenerateAll_Concurrent(t *testing.T) {
	mock := llm.NewMockImageProvider(
		llm.MockImage{Delay: 20 * time.Millisecond},
		llm.MockImage{Delay: 20 * time.Millisecond},
		llm.MockImage{Delay: 20 * time.Millisecond},
		llm.MockImage{Delay: 20 * time.Millisecond},
	)
	p := NewPipeline(mock, Config{Concurrency: 2}, nil)
	items := append(threeItems(), prompts.Item{Prompt: "fourth", AspectRatio: prompts.Ratio16x9})

	g, err := p.GenerateAll(context.Background(), items, nil)
	require.NoError(t, err)
	assert.Equal(t, map[Status]int{StatusCompleted: 4}, g.Counts())
	assert.LessOrEqual(t, mock.MaxInFlight, 2)
	for i, img := range g {
		assert.Equal(t, items[i].Prompt, img.Prompt, "order is preserved")
	}
}

func TestGenerateAll_Cancelled(t *testing.T) {
	mock := llm.NewMockImageProvider(llm.MockImage{Delay: time.Second})
	p := NewPipeline(mock, DefaultConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	var once sync.Once
	g, err := p.GenerateAll(ctx, threeItems(), func(g Gallery) {
		if g.Generating() {
			once.Do(cancel)
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatusError, g[0].Status)
	assert.Equal(t, StatusPending, g[1].Status)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRedo(t *testing.T) {
	mock := llm.NewMockImageProvider(
		llm.MockImage{},
		llm.MockImage{Err: errors.New("boom")},
		llm.MockImage{},
		llm.MockImage{MIMEType: "image/webp", Data: []byte("new")},
	)
	p := NewPipeline(mock, DefaultConfig(), nil)

	g, err := p.GenerateAll(context.Background(), threeItems(), nil)
	require.NoError(t, err)
	require.Equal(t, StatusError, g[1].Status)

	rec := &recorder{}
	redone := p.Redo(context.Background(), g, g[1].ID, rec.record)

	assert.Equal(t, StatusCompleted, redone[1].Status)
	assert.Equal(t, EncodeDataURI("image/webp", []byte("new")), redone[1].URL)
	assert.Empty(t, redone[1].Error)
	assert.Equal(t, g[0], redone[0])
	assert.Equal(t, g[2], redone[2])
	assert.Equal(t, StatusError, g[1].Status, "input gallery is untouched")
	assert.Equal(t, []Status{StatusGenerating, StatusCompleted}, rec.statuses(1))
}

func TestRedo_Failure(t *testing.T) {
	mock := llm.NewMockImageProvider(llm.MockImage{}, llm.MockImage{Err: &llm.ErrRateLimit{RetryAfter: time.Second}})
	p := NewPipeline(mock, DefaultConfig(), nil)

	g, err := p.GenerateAll(context.Background(), threeItems()[:1], nil)
	require.NoError(t, err)

	redone := p.Redo(context.Background(), g, g[0].ID, nil)
	assert.Equal(t, StatusError, redone[0].Status)
	assert.Equal(t, RedoFailed, redone[0].Error)
}

func TestRedo_UnknownID(t *testing.T) {
	mock := llm.NewMockImageProvider()
	p := NewPipeline(mock, DefaultConfig(), nil)
	g := NewBatch(threeItems())

	out := p.Redo(context.Background(), g, "missing", nil)
	assert.Equal(t, g, out)
	assert.Zero(t, mock.CallCount())
}

func TestDataURI(t *testing.T) {
	uri := EncodeDataURI("image/jpeg", []byte{1, 2, 3})
	assert.Equal(t, "data:image/jpeg;base64,AQID", uri)

	mime, data, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)
	assert.Equal(t, []byte{1, 2, 3}, data)

	for _, bad := range []string{"", "http://x", "data:image/png,raw", "data:image/png;base64"} {
		_, _, err := DecodeDataURI(bad)
		assert.Error(t, err, bad)
	}
}

func TestSave(t *testing.T) {
	mock := llm.NewMockImageProvider()
	p := NewPipeline(mock, DefaultConfig(), nil)
	g, err := p.GenerateAll(context.Background(), threeItems()[:1], nil)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	path, err := Save(dir, g[0])
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "eduvision-"+g[0].ID+".png"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	_, want, _ := DecodeDataURI(g[0].URL)
	assert.Equal(t, want, written)

	_, err = Save(dir, GeneratedImage{ID: "x"})
	assert.ErrorIs(t, err, ErrNotRendered)
}
