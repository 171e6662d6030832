package planner

// Config holds generation settings shared by suggestions and plans.
type Config struct {
	Temperature float64
	// ThinkingBudget applies to plan generation only.
	ThinkingBudget int
	// WebSearch grounds plan generation with search results.
	WebSearch bool
}

// DefaultConfig returns the settings lesson plans are tuned for.
func DefaultConfig() Config {
	return Config{
		Temperature:    0.7,
		ThinkingBudget: 2048,
		WebSearch:      true,
	}
}
