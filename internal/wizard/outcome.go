package wizard

import "strings"

// Fallback texts shown in place of a plan.
const (
	EmptyPlanText   = "生成失敗，請重試。"
	PlanErrorPrefix = "發生錯誤: "
)

// Outcome is the result of one plan generation.
type Outcome struct {
	HTML string
	Err  error
}

// Text returns what the result view displays: the plan itself, or a
// description of why there is none.
func (o Outcome) Text() string {
	if o.Err != nil {
		return PlanErrorPrefix + o.Err.Error()
	}
	if strings.TrimSpace(o.HTML) == "" {
		return EmptyPlanText
	}
	return o.HTML
}

// OK reports whether the outcome carries a plan.
func (o Outcome) OK() bool {
	return o.Err == nil && strings.TrimSpace(o.HTML) != ""
}
