package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/eduvision/internal/logger"
	"github.com/abhisek/eduvision/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
	log       *logger.Logger
}

// WithLogging wraps a Provider with event logging. A nil repo disables
// persistence; requests are still traced through log.
func WithLogging(p Provider, repo store.EventRepo, log *logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &LoggingProvider{inner: p, eventRepo: repo, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}

	if err != nil {
		data.ErrorMessage = err.Error()
		l.log.Warn("llm request failed", "purpose", purpose, "model", data.Model, "latency_ms", latencyMs, "error", err)
	} else {
		l.log.Debug("llm request", "purpose", purpose, "model", data.Model, "latency_ms", latencyMs,
			"input_tokens", data.InputTokens, "output_tokens", data.OutputTokens)
	}

	l.record(ctx, data)
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// Log the event but don't fail the request if logging fails.
func (l *LoggingProvider) record(ctx context.Context, data store.LLMRequestEventData) {
	if l.eventRepo == nil {
		return
	}
	if err := l.eventRepo.AppendLLMRequest(ctx, data); err != nil {
		l.log.Warn("failed to log LLM request event", "error", err)
	}
}

// LoggingImageProvider records every image request as an LLM event with
// purpose "image". The image bytes are not persisted.
type LoggingImageProvider struct {
	inner     ImageProvider
	eventRepo store.EventRepo
	log       *logger.Logger
}

// WithImageLogging wraps an ImageProvider with event logging.
func WithImageLogging(p ImageProvider, repo store.EventRepo, log *logger.Logger) ImageProvider {
	if log == nil {
		log = logger.Nop()
	}
	return &LoggingImageProvider{inner: p, eventRepo: repo, log: log}
}

func (l *LoggingImageProvider) GenerateImage(ctx context.Context, req ImageRequest) (*Image, error) {
	start := time.Now()

	img, err := l.inner.GenerateImage(ctx, req)

	latencyMs := time.Since(start).Milliseconds()
	data := store.LLMRequestEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeImage,
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: fmt.Sprintf("[prompt]\n%s\n\n[aspect_ratio: %s, size: %s]\n", req.Prompt, req.AspectRatio, req.Size),
	}
	if img != nil {
		data.Model = img.Model
		data.InputTokens = img.Usage.InputTokens
		data.OutputTokens = img.Usage.OutputTokens
		data.ResponseBody = fmt.Sprintf("[%s, %d bytes]", img.MIMEType, len(img.Data))
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		l.log.Warn("image request failed", "model", data.Model, "latency_ms", latencyMs, "error", err)
	} else {
		l.log.Debug("image request", "model", data.Model, "latency_ms", latencyMs, "bytes", len(img.Data))
	}

	if l.eventRepo != nil {
		if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
			l.log.Warn("failed to log image request event", "error", logErr)
		}
	}
	return img, err
}

func (l *LoggingImageProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.WebSearch || req.ThinkingBudget > 0 {
		b.WriteString(fmt.Sprintf("[web_search: %t, thinking_budget: %d, temperature: %.2f]\n\n",
			req.WebSearch, req.ThinkingBudget, req.Temperature))
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
