// Package studio is the wizard screen: it collects the lesson parameters
// step by step, generates the plan, and drives image generation on the
// result page.
package studio

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/catalog"
	"github.com/abhisek/eduvision/internal/images"
	"github.com/abhisek/eduvision/internal/logger"
	"github.com/abhisek/eduvision/internal/screen"
	"github.com/abhisek/eduvision/internal/ui/components"
	"github.com/abhisek/eduvision/internal/ui/layout"
	"github.com/abhisek/eduvision/internal/ui/theme"
	"github.com/abhisek/eduvision/internal/wizard"
)

// Planner produces module suggestions and lesson plans.
type Planner interface {
	Suggest(ctx context.Context, state wizard.State) string
	Generate(ctx context.Context, state wizard.State) wizard.Outcome
}

// ImageRenderer renders one gallery image into a data URI.
type ImageRenderer interface {
	Render(ctx context.Context, img images.GeneratedImage) (string, error)
}

// PlanExporter writes the plan and its finished images to a PDF.
type PlanExporter interface {
	Export(ctx context.Context, html string, gallery images.Gallery, now time.Time) (string, error)
}

// Deps are the collaborators of the studio.
type Deps struct {
	Planner   Planner
	Images    ImageRenderer
	PDF       PlanExporter
	OutputDir string
	Log       *logger.Logger
	Now       func() time.Time
}

// Focus slots per step.
const (
	focusAge = iota
	focusSubject
	focusTopic
)

const (
	focusGoal = iota
	focusTiming
)

const (
	focusInterests = iota
	focusDifferentiation
	focusLanguage
	focusGenerate
	traitsFocusCount
)

const (
	focusPlan = iota
	focusGallery
)

var modes = []wizard.Mode{wizard.ModeTeacher, wizard.ModeStudent}

// Studio owns the wizard state for the lifetime of the program.
type Studio struct {
	deps  Deps
	state wizard.State
	// token invalidates in-flight results; see messages.go.
	token int
	// suggestSeq numbers suggestion requests; only the latest may
	// release IsSuggesting.
	suggestSeq int

	focus      int
	modeMenu   components.Menu
	fields     [3]components.TextInput
	goalMenu   components.Menu
	timingMenu components.Menu
	modules    components.Checklist
	interests  components.TextInput

	plan       viewport.Model
	planSource string
	planWidth  int
	gallerySel int

	pdfBusy   bool
	notice    string
	noticeErr bool

	spinner spinner.Model
}

var _ screen.Screen = (*Studio)(nil)
var _ screen.KeyHintProvider = (*Studio)(nil)
var _ screen.BadgeProvider = (*Studio)(nil)

// New creates the studio at the mode selection step.
func New(deps Deps) *Studio {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	s := &Studio{
		deps:    deps,
		spinner: sp,
		plan:    viewport.New(viewport.WithWidth(60), viewport.WithHeight(10)),
	}
	s.plan.MouseWheelEnabled = true
	s.resetForm()
	return s
}

// State returns the current wizard state.
func (s *Studio) State() wizard.State {
	return s.state
}

// resetForm rebuilds every form control for a fresh wizard.
func (s *Studio) resetForm() {
	s.state = wizard.New()
	s.focus = 0
	s.gallerySel = 0
	s.planSource = ""
	s.notice = ""
	s.noticeErr = false

	var items []components.MenuItem
	for _, m := range modes {
		items = append(items, components.MenuItem{Label: m.Label(), Hint: modeHint(m)})
	}
	s.modeMenu = components.NewMenu(items)

	s.fields = [3]components.TextInput{
		components.NewTextInput("適用年齡 / 年級", "例如：小學五年級、10歲、高中", 40),
		components.NewTextInput("科目 / 領域", "例如：生物、歷史、數學", 40),
		components.NewTextInput("學習主題", "例如：光合作用、法國大革命、分數運算", 80),
	}
	s.fields[focusSubject].Required = true
	s.fields[focusTopic].Required = true

	s.goalMenu = optionMenu(catalog.LearningGoals())
	s.timingMenu = optionMenu(catalog.TimingOptions())
	s.timingMenu.Focused = false

	var rows []components.ChecklistItem
	for _, m := range catalog.Modules() {
		rows = append(rows, components.ChecklistItem{
			ID:          m.ID,
			Label:       m.Icon + " " + m.Title,
			Description: m.Description,
		})
	}
	s.modules = components.NewChecklist(rows)

	s.interests = components.NewTextInput("學生興趣（選填）", "例如：喜歡恐龍、Minecraft、太空、或足球", 200)
}

func optionMenu(options []string) components.Menu {
	items := make([]components.MenuItem, len(options))
	for i, o := range options {
		items[i] = components.MenuItem{Label: o}
	}
	return components.NewMenu(items)
}

func modeHint(m wizard.Mode) string {
	if m == wizard.ModeTeacher {
		return "適用於備課、製作教材、課堂講解。"
	}
	return "適用於學習指南、複習、筆記整理、概念理解。"
}

func (s *Studio) Init() tea.Cmd {
	return nil
}

func (s *Studio) Title() string {
	switch s.state.Step {
	case wizard.StepBasicInfo:
		return "步驟 1：基本資訊"
	case wizard.StepGoals:
		return "步驟 2：目標與情境"
	case wizard.StepModuleSelection:
		return "步驟 3：選擇視覺模組"
	case wizard.StepStudentTraits:
		return "步驟 4：客製化設定"
	case wizard.StepResult:
		return "您的 EduVision 教學計畫"
	}
	return ""
}

// Badge shows the persona once it has been chosen.
func (s *Studio) Badge() string {
	if s.state.Step == wizard.StepModeSelection {
		return ""
	}
	return s.state.Mode.Title()
}

func (s *Studio) KeyHints() []layout.KeyHint {
	quit := layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}
	back := layout.KeyHint{Key: "Esc", Description: "上一步"}
	next := layout.KeyHint{Key: "Ctrl+N", Description: "下一步"}

	switch s.state.Step {
	case wizard.StepModeSelection:
		return []layout.KeyHint{{Key: "↑↓", Description: "Navigate"}, {Key: "Enter", Description: "Select"}, quit}
	case wizard.StepBasicInfo:
		return []layout.KeyHint{{Key: "Tab", Description: "Next field"}, back, next, quit}
	case wizard.StepGoals:
		return []layout.KeyHint{{Key: "↑↓", Description: "Navigate"}, {Key: "Enter", Description: "Select"}, {Key: "Tab", Description: "Switch"}, back, next, quit}
	case wizard.StepModuleSelection:
		return []layout.KeyHint{{Key: "Space", Description: "Toggle"}, {Key: "a", Description: "AI 智慧推薦"}, back, next, quit}
	case wizard.StepStudentTraits:
		return []layout.KeyHint{{Key: "Tab", Description: "Next field"}, {Key: "Space", Description: "Toggle"}, {Key: "Ctrl+G", Description: "建立視覺化計畫"}, back, quit}
	}

	if s.focus == focusGallery {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "放大檢視"},
			{Key: "x", Description: "重做"},
			{Key: "d", Description: "下載"},
			{Key: "Tab", Description: "Plan"},
			back,
			quit,
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "p", Description: "PDF"},
		{Key: "i", Description: "圖像生成"},
		{Key: "g", Description: "重新生成"},
		{Key: "r", Description: "重新開始"},
		{Key: "Tab", Description: "Gallery"},
		back,
		quit,
	}
}

func (s *Studio) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestionMsg:
		return s, s.handleSuggestion(msg)
	case planReadyMsg:
		return s, s.handlePlanReady(msg)
	case imageDoneMsg:
		return s, s.handleImageDone(msg)
	case pdfExportedMsg:
		s.handlePDFExported(msg)
		return s, nil
	case imageSavedMsg:
		s.handleImageSaved(msg)
		return s, nil

	case spinner.TickMsg:
		if !s.busy() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}

	if s.state.Step == wizard.StepResult {
		var cmd tea.Cmd
		s.plan, cmd = s.plan.Update(msg)
		return s, cmd
	}
	return s, nil
}

// busy reports whether any request is in flight.
func (s *Studio) busy() bool {
	return s.state.IsGenerating || s.state.IsSuggesting || s.pdfBusy || s.state.Images.Generating()
}

// spin starts the spinner alongside cmd.
func (s *Studio) spin(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return tea.Batch(cmd, s.spinner.Tick)
}

func (s *Studio) setNotice(text string, isErr bool) {
	s.notice = text
	s.noticeErr = isErr
}

// reset returns to the first step and invalidates every pending result.
func (s *Studio) reset() tea.Cmd {
	s.token++
	s.resetForm()
	s.deps.Log.Info("wizard reset", "token", s.token)
	return nil
}

func (s *Studio) suggest() tea.Cmd {
	if s.state.IsSuggesting || s.state.Step != wizard.StepModuleSelection {
		return nil
	}
	s.state = s.state.BeginSuggest()
	s.suggestSeq++

	token, seq, state, planner := s.token, s.suggestSeq, s.state, s.deps.Planner
	return s.spin(func() tea.Msg {
		return suggestionMsg{Token: token, Seq: seq, Text: planner.Suggest(context.Background(), state)}
	})
}

func (s *Studio) handleSuggestion(msg suggestionMsg) tea.Cmd {
	if msg.Seq != s.suggestSeq {
		s.deps.Log.Debug("stale suggestion dropped", "seq", msg.Seq, "current", s.suggestSeq)
		return nil
	}
	if msg.Token != s.token {
		// Latest request, but the form moved on: release the flag and
		// keep the old text.
		s.state = s.state.EndSuggest(s.state.AISuggestion)
		return nil
	}
	s.state = s.state.EndSuggest(msg.Text)
	return nil
}

// generate starts plan generation from StudentTraits or Result.
func (s *Studio) generate() tea.Cmd {
	if s.state.IsGenerating {
		return nil
	}
	s.token++
	s.state = s.state.BeginGenerate()
	s.gallerySel = 0
	s.planSource = ""
	s.setNotice("", false)

	token, state, planner := s.token, s.state, s.deps.Planner
	s.deps.Log.Info("plan requested", "token", token, "modules", state.SelectedModules())
	return s.spin(func() tea.Msg {
		return planReadyMsg{Token: token, Outcome: planner.Generate(context.Background(), state)}
	})
}

func (s *Studio) handlePlanReady(msg planReadyMsg) tea.Cmd {
	if msg.Token != s.token {
		s.deps.Log.Debug("stale plan dropped", "token", msg.Token, "current", s.token)
		return nil
	}
	s.state = s.state.FinishGenerate(msg.Outcome)
	s.focus = focusPlan
	s.planSource = ""
	s.plan.GotoTop()
	return nil
}
