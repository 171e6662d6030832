package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
	// Fallback, when set, answers every call once the queue is empty.
	Fallback *MockResponse
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response or ErrProviderUnavailable if
// the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var resp MockResponse
	switch {
	case len(m.responses) > 0:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	case m.Fallback != nil:
		resp = *m.Fallback
	default:
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockImage is a canned result for the MockImageProvider.
type MockImage struct {
	MIMEType string
	Data     []byte
	Err      error
	// Delay is slept before returning, honoring context cancellation.
	Delay time.Duration
}

// ImageCall records one GenerateImage invocation.
type ImageCall struct {
	Request ImageRequest
	Start   time.Time
	End     time.Time
}

// MockImageProvider is a deterministic ImageProvider for testing. Canned
// results are consumed FIFO; once exhausted it returns a tiny PNG.
type MockImageProvider struct {
	mu       sync.Mutex
	results  []MockImage
	Calls    []ImageCall
	inFlight int
	// MaxInFlight is the highest number of concurrent calls observed.
	MaxInFlight int
	// Placeholder draws a card in the requested shape instead of the tiny
	// PNG once the canned results are exhausted.
	Placeholder bool
}

// NewMockImageProvider creates a MockImageProvider with canned results.
func NewMockImageProvider(results ...MockImage) *MockImageProvider {
	return &MockImageProvider{results: results}
}

// mockPNG is a 1x1 transparent PNG.
var mockPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func (m *MockImageProvider) GenerateImage(ctx context.Context, req ImageRequest) (*Image, error) {
	m.mu.Lock()
	start := time.Now()
	m.inFlight++
	if m.inFlight > m.MaxInFlight {
		m.MaxInFlight = m.inFlight
	}
	res := MockImage{MIMEType: "image/png", Data: mockPNG}
	placeholder := m.Placeholder
	if len(m.results) > 0 {
		res = m.results[0]
		m.results = m.results[1:]
		placeholder = false
	}
	m.mu.Unlock()

	if placeholder {
		data, err := placeholderPNG(req.AspectRatio, req.Prompt)
		if err != nil {
			return nil, fmt.Errorf("draw placeholder: %w", err)
		}
		res.Data = data
	}

	var err error
	if res.Delay > 0 {
		select {
		case <-ctx.Done():
			err = ctx.Err()
		case <-time.After(res.Delay):
		}
	}

	m.mu.Lock()
	m.inFlight--
	m.Calls = append(m.Calls, ImageCall{Request: req, Start: start, End: time.Now()})
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if res.Err != nil {
		return nil, res.Err
	}
	mime := res.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return &Image{MIMEType: mime, Data: res.Data, Model: "mock"}, nil
}

// ModelID returns "mock".
func (m *MockImageProvider) ModelID() string {
	return "mock"
}

// CallCount returns the number of GenerateImage calls completed.
func (m *MockImageProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Prompts returns the prompts in completion order.
func (m *MockImageProvider) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		out[i] = c.Request.Prompt
	}
	return out
}
