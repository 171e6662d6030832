package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
// Results are returned newest first.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // LLM events only; empty matches all
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// PlanEventData captures one plan generation: the form inputs that
// produced it and the resulting document.
type PlanEventData struct {
	Mode            string
	Age             string
	Subject         string
	Topic           string
	LearningGoal    string
	Timing          string
	Modules         []string
	Interests       string
	Differentiation bool
	VisualLanguage  string
	HTML            string
	PromptCount     int
	Success         bool
	ErrorMessage    string
}

// PlanEventRecord is a stored plan event.
type PlanEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	PlanEventData
}

// EventRepo provides append and query access to persisted events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendPlanEvent archives a generated plan and returns its ID.
	AppendPlanEvent(ctx context.Context, data PlanEventData) (int, error)

	// QueryPlanEvents returns archived plans, newest first.
	QueryPlanEvents(ctx context.Context, opts QueryOpts) ([]PlanEventRecord, error)

	// GetPlanEvent returns one archived plan by ID, or nil if it does not exist.
	GetPlanEvent(ctx context.Context, id int) (*PlanEventRecord, error)
}
