package images

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/eduvision/internal/llm"
	"github.com/abhisek/eduvision/internal/logger"
	"github.com/abhisek/eduvision/internal/prompts"
)

// ErrNoPrompts is returned by GenerateAll when the plan carried no usable
// prompts.
var ErrNoPrompts = errors.New("no image prompts found")

// User-facing texts.
const (
	NoPromptsNotice  = "未偵測到可用的生圖提示詞 (JSON)。請嘗試「重新生成教學計劃」。"
	GenerationFailed = "Generation failed"
	RedoFailed       = "Redo failed"
)

// Config tunes the pipeline.
type Config struct {
	// Size is the provider size class sent with every request.
	Size string
	// Concurrency caps simultaneous requests in GenerateAll. At 1 images
	// are rendered strictly in batch order.
	Concurrency int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{Size: "1K", Concurrency: 1}
}

// Pipeline renders gallery images through an image provider.
type Pipeline struct {
	provider llm.ImageProvider
	cfg      Config
	log      *logger.Logger
}

// NewPipeline creates a Pipeline. A nil log discards output.
func NewPipeline(provider llm.ImageProvider, cfg Config, log *logger.Logger) *Pipeline {
	if cfg.Size == "" {
		cfg.Size = DefaultConfig().Size
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{provider: provider, cfg: cfg, log: log}
}

// Render issues one image request for img and returns the result as a
// data URI.
func (p *Pipeline) Render(ctx context.Context, img GeneratedImage) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeImage)
	out, err := p.provider.GenerateImage(ctx, llm.ImageRequest{
		Prompt:      img.Prompt,
		AspectRatio: string(prompts.NormalizeRatio(string(img.AspectRatio))),
		Size:        p.cfg.Size,
	})
	if err != nil {
		return "", fmt.Errorf("render image %s: %w", img.ID, err)
	}
	return EncodeDataURI(out.MIMEType, out.Data), nil
}

// GenerateAll creates a batch for items and renders every image. onChange,
// when non-nil, receives the gallery after every status transition. A
// failed image is marked error and the batch moves on; only ErrNoPrompts
// and context cancellation are returned as errors.
func (p *Pipeline) GenerateAll(ctx context.Context, items []prompts.Item, onChange func(Gallery)) (Gallery, error) {
	if len(items) == 0 {
		return Gallery{}, ErrNoPrompts
	}

	var (
		mu sync.Mutex
		g  = NewBatch(items)
	)
	apply := func(fn func(Gallery) Gallery) {
		mu.Lock()
		defer mu.Unlock()
		g = fn(g)
		if onChange != nil {
			onChange(g)
		}
	}
	if onChange != nil {
		onChange(g)
	}

	p.log.Info("generating images", "count", len(g), "concurrency", p.cfg.Concurrency)

	if p.cfg.Concurrency == 1 {
		for _, img := range g {
			if err := ctx.Err(); err != nil {
				return g, err
			}
			p.renderInto(ctx, img, GenerationFailed, apply)
		}
		return g, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.cfg.Concurrency)
	for _, img := range snapshot(g) {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			p.renderInto(egCtx, img, GenerationFailed, apply)
			return nil
		})
	}
	err := eg.Wait()

	mu.Lock()
	defer mu.Unlock()
	return g, err
}

// Redo renders the image with id again. Siblings are untouched. An unknown
// id returns g itself.
func (p *Pipeline) Redo(ctx context.Context, g Gallery, id string, onChange func(Gallery)) Gallery {
	img, ok := g.Get(id)
	if !ok {
		return g
	}

	apply := func(fn func(Gallery) Gallery) {
		g = fn(g)
		if onChange != nil {
			onChange(g)
		}
	}
	p.renderInto(ctx, img, RedoFailed, apply)
	return g
}

func (p *Pipeline) renderInto(ctx context.Context, img GeneratedImage, failMsg string, apply func(func(Gallery) Gallery)) {
	apply(func(g Gallery) Gallery { return g.MarkGenerating(img.ID) })

	url, err := p.Render(ctx, img)
	if err != nil {
		p.log.Warn("image failed", "id", img.ID, "error", err)
		apply(func(g Gallery) Gallery { return g.Fail(img.ID, failMsg) })
		return
	}
	apply(func(g Gallery) Gallery { return g.Complete(img.ID, url) })
}

// snapshot copies g so goroutines range over a stable slice.
func snapshot(g Gallery) []GeneratedImage {
	return append([]GeneratedImage(nil), g...)
}
