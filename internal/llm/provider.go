package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for text generation.
type Provider interface {
	// Generate sends a prompt to the model. When req.Schema is set the
	// response Content is JSON validated against it; otherwise Content is
	// the raw response text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// ImageProvider generates a single image per request.
type ImageProvider interface {
	GenerateImage(ctx context.Context, req ImageRequest) (*Image, error)
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system instruction.
	System string

	// Messages is the conversation. EduVision always sends a single user turn.
	Messages []Message

	// Schema, when set, asks the provider for JSON conforming to it.
	Schema *Schema

	// Model overrides the provider's configured model for this request.
	Model string

	// MaxTokens caps the response length. Zero leaves it to the provider.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64

	// WebSearch enables grounding with web search where the provider
	// supports it (Gemini). Other providers ignore it.
	WebSearch bool

	// ThinkingBudget is the reasoning token budget where supported.
	// Zero leaves the provider default.
	ThinkingBudget int
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserMessage is a convenience for the common single-turn request.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "module-suggestion".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the validated JSON when a Schema was requested, otherwise
	// the raw response text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Text returns Content as a string.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// ImageRequest asks for one image.
type ImageRequest struct {
	Prompt string

	// AspectRatio is "1:1", "4:3" or "16:9".
	AspectRatio string

	// Size is the provider's size class, e.g. "1K".
	Size string

	// Model overrides the provider's configured model.
	Model string
}

// Image is an inline image payload.
type Image struct {
	MIMEType string
	Data     []byte
	Model    string
	Usage    Usage
}
