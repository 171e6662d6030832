// Package catalog holds the fixed option sets offered by the wizard:
// the six visualization modules, learning goals, and teaching timings.
package catalog

import (
	"slices"
	"strings"
)

// Module is one selectable visualization strategy.
type Module struct {
	ID          string
	Title       string
	Description string
	Icon        string
}

// Label returns "A 教材視覺化".
func (m Module) Label() string {
	return m.ID + " " + m.Title
}

var modules = []Module{
	{ID: "A", Title: "教材視覺化", Description: "擬人/擬物/情境轉換，將抽象概念具象化", Icon: "🧩"},
	{ID: "B", Title: "繪本場景與角色", Description: "角色設定表(含裁剪線)、滿版場景、情境探索", Icon: "📖"},
	{ID: "C", Title: "客製化教學圖卡", Description: "雙面合併輸出(2:1)，左圖右文，可對折黏合", Icon: "🗂️"},
	{ID: "D", Title: "遊戲化學習場景", Description: "陞官圖、大家來找碴(雙圖)、配對卡牌", Icon: "🎮"},
	{ID: "E", Title: "知識圖表", Description: "單頁整合式圖表(心智圖/魚骨圖/階層圖)", Icon: "📊"},
	{ID: "F", Title: "教學簡報", Description: "16:9 投影片視覺設計", Icon: "🖥️"},
}

var learningGoals = []string{
	"理解 (Understand)",
	"記憶 (Remember)",
	"應用 (Apply)",
	"分析 (Analyze)",
	"評鑑 (Evaluate)",
	"創作 (Create)",
}

var timingOptions = []string{
	"引起動機 (Intro)",
	"概念講解 (Lecture)",
	"課堂活動 (Activity)",
	"複習統整 (Review)",
	"評量測驗 (Assessment)",
	"自主學習 (Self-study)",
}

// Modules returns the module definitions in display order.
func Modules() []Module {
	return slices.Clone(modules)
}

// LookupModule returns the module with the given id.
func LookupModule(id string) (Module, bool) {
	for _, m := range modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// IsModuleID reports whether id names one of the six modules.
func IsModuleID(id string) bool {
	_, ok := LookupModule(id)
	return ok
}

// LearningGoals returns the learning-goal options in display order.
func LearningGoals() []string {
	return slices.Clone(learningGoals)
}

// TimingOptions returns the timing options in display order.
func TimingOptions() []string {
	return slices.Clone(timingOptions)
}

// ResolveGoal matches s against the learning goals. Either the full label
// or its English keyword ("Understand") is accepted, case-insensitively.
func ResolveGoal(s string) (string, bool) {
	return resolveOption(learningGoals, s)
}

// ResolveTiming matches s against the timing options the same way
// ResolveGoal does.
func ResolveTiming(s string) (string, bool) {
	return resolveOption(timingOptions, s)
}

func resolveOption(options []string, s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, opt := range options {
		if strings.EqualFold(opt, s) {
			return opt, true
		}
		if strings.EqualFold(keyword(opt), s) || strings.EqualFold(native(opt), s) {
			return opt, true
		}
	}
	return "", false
}

// keyword extracts "Understand" from "理解 (Understand)".
func keyword(opt string) string {
	open := strings.Index(opt, "(")
	end := strings.LastIndex(opt, ")")
	if open < 0 || end <= open {
		return ""
	}
	return strings.TrimSpace(opt[open+1 : end])
}

// native extracts "理解" from "理解 (Understand)".
func native(opt string) string {
	if i := strings.Index(opt, "("); i > 0 {
		return strings.TrimSpace(opt[:i])
	}
	return opt
}
