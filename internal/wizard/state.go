// Package wizard holds the form state of the lesson-plan wizard and the
// pure transitions between its steps.
package wizard

import (
	"slices"
	"strings"

	"github.com/abhisek/eduvision/internal/catalog"
	"github.com/abhisek/eduvision/internal/images"
)

// Step is a wizard stage. Steps are ordered.
type Step int

const (
	StepModeSelection Step = iota
	StepBasicInfo
	StepGoals
	StepModuleSelection
	StepStudentTraits
	StepResult
)

var stepNames = [...]string{"mode", "basic-info", "goals", "modules", "traits", "result"}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return "unknown"
	}
	return stepNames[s]
}

// Mode is the persona the plan is written for.
type Mode string

const (
	ModeTeacher Mode = "teacher"
	ModeStudent Mode = "student"
)

// Label returns the persona label used in prompts and headers.
func (m Mode) Label() string {
	switch m {
	case ModeTeacher:
		return "👩‍🏫 教師模式"
	case ModeStudent:
		return "👨‍🎓 學生模式"
	}
	return ""
}

// Title returns the short layout title for m.
func (m Mode) Title() string {
	switch m {
	case ModeTeacher:
		return "教師模式"
	case ModeStudent:
		return "學生模式"
	}
	return ""
}

// ParseMode accepts "teacher" or "student", case-insensitively.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeTeacher:
		return ModeTeacher, true
	case ModeStudent:
		return ModeStudent, true
	}
	return "", false
}

// VisualLanguage is the language of text rendered inside images.
type VisualLanguage string

const (
	LanguageChinese VisualLanguage = "Chinese"
	LanguageEnglish VisualLanguage = "English"
)

// Code returns the BCP 47 tag stored with archived plans.
func (l VisualLanguage) Code() string {
	if l == LanguageEnglish {
		return "en"
	}
	return "zh-TW"
}

// englishMarkers flip the visual language when found in the subject.
var englishMarkers = []string{"english", "英文", "英語"}

// IsEnglishSubject reports whether subject names an English course.
func IsEnglishSubject(subject string) bool {
	lower := strings.ToLower(subject)
	for _, m := range englishMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// State is the complete wizard form. It is a value: every transition
// returns a new State and leaves the receiver unchanged.
type State struct {
	Step Step
	Mode Mode

	Age     string
	Subject string
	Topic   string

	LearningGoal string
	Timing       string

	// modules is kept sorted and free of duplicates.
	modules []string

	Interests       string
	Differentiation bool

	VisualLanguage VisualLanguage

	AISuggestion string
	FinalResult  string
	// PlanErr is set when FinalResult holds an error description rather
	// than a plan.
	PlanErr error

	IsGenerating bool
	IsSuggesting bool

	Images images.Gallery
}

// New returns the initial state.
func New() State {
	return State{
		Step:           StepModeSelection,
		VisualLanguage: LanguageChinese,
	}
}

// Reset returns the initial state from any step.
func (s State) Reset() State {
	return New()
}

// SelectedModules returns the selected module ids in sorted order.
func (s State) SelectedModules() []string {
	return slices.Clone(s.modules)
}

// IsSelected reports whether module id is selected.
func (s State) IsSelected(id string) bool {
	_, found := slices.BinarySearch(s.modules, id)
	return found
}

// HasResult reports whether a plan or error text is available.
func (s State) HasResult() bool {
	return s.FinalResult != ""
}

// CanAdvance reports whether Next would move past the current step.
func (s State) CanAdvance() bool {
	switch s.Step {
	case StepModeSelection:
		return s.Mode != ""
	case StepBasicInfo:
		return strings.TrimSpace(s.Subject) != "" && strings.TrimSpace(s.Topic) != ""
	case StepGoals:
		return strings.TrimSpace(s.LearningGoal) != ""
	case StepModuleSelection:
		return len(s.modules) > 0
	}
	return false
}

// Next advances one step when the current guard holds. StudentTraits moves
// forward only through plan generation.
func (s State) Next() State {
	if !s.CanAdvance() {
		return s
	}
	s.Step++
	return s
}

// Prev goes back one step. It is a no-op at ModeSelection.
func (s State) Prev() State {
	if s.Step == StepModeSelection {
		return s
	}
	s.Step--
	return s
}

// SelectMode sets the persona and moves to BasicInfo. It only applies at
// ModeSelection.
func (s State) SelectMode(m Mode) State {
	if s.Step != StepModeSelection || m.Label() == "" {
		return s
	}
	s.Mode = m
	s.Step = StepBasicInfo
	return s
}

func (s State) SetAge(v string) State {
	s.Age = v
	return s
}

// SetSubject stores the subject. While on BasicInfo an English subject
// switches the visual language to English; it never switches back.
func (s State) SetSubject(v string) State {
	s.Subject = v
	if s.Step == StepBasicInfo && IsEnglishSubject(v) {
		s.VisualLanguage = LanguageEnglish
	}
	return s
}

func (s State) SetTopic(v string) State {
	s.Topic = v
	return s
}

func (s State) SetLearningGoal(v string) State {
	s.LearningGoal = v
	return s
}

func (s State) SetTiming(v string) State {
	s.Timing = v
	return s
}

// ToggleModule adds or removes a module. Unknown ids are ignored.
func (s State) ToggleModule(id string) State {
	if !catalog.IsModuleID(id) {
		return s
	}
	i, found := slices.BinarySearch(s.modules, id)
	if found {
		s.modules = slices.Delete(slices.Clone(s.modules), i, i+1)
	} else {
		s.modules = slices.Insert(slices.Clone(s.modules), i, id)
	}
	return s
}

func (s State) SetInterests(v string) State {
	s.Interests = v
	return s
}

func (s State) SetDifferentiation(v bool) State {
	s.Differentiation = v
	return s
}

func (s State) SetVisualLanguage(l VisualLanguage) State {
	if l != LanguageChinese && l != LanguageEnglish {
		return s
	}
	s.VisualLanguage = l
	return s
}

// BeginSuggest marks a suggestion request in flight. Only valid at
// ModuleSelection.
func (s State) BeginSuggest() State {
	if s.Step != StepModuleSelection {
		return s
	}
	s.IsSuggesting = true
	return s
}

// EndSuggest stores the suggestion text, overwriting any previous one.
func (s State) EndSuggest(text string) State {
	if !s.IsSuggesting {
		return s
	}
	s.IsSuggesting = false
	s.AISuggestion = text
	return s
}

// BeginGenerate clears the previous plan and images and marks generation
// in flight.
func (s State) BeginGenerate() State {
	s.IsGenerating = true
	s.FinalResult = ""
	s.PlanErr = nil
	s.Images = nil
	return s
}

// FinishGenerate records the outcome and moves to Result whether or not
// generation succeeded.
func (s State) FinishGenerate(o Outcome) State {
	s.IsGenerating = false
	s.FinalResult = o.Text()
	s.PlanErr = o.Err
	s.Step = StepResult
	return s
}

// SetImages replaces the image gallery. FinalResult is never touched.
func (s State) SetImages(g images.Gallery) State {
	s.Images = g
	return s
}
