package studio

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/catalog"
	"github.com/abhisek/eduvision/internal/document"
	"github.com/abhisek/eduvision/internal/images"
	"github.com/abhisek/eduvision/internal/ui/components"
	"github.com/abhisek/eduvision/internal/ui/layout"
	"github.com/abhisek/eduvision/internal/ui/theme"
	"github.com/abhisek/eduvision/internal/wizard"
)

const (
	maxFormWidth   = 88
	galleryMaxRows = 8
	wizardSteps    = 5
)

func (s *Studio) View(width, height int) string {
	switch s.state.Step {
	case wizard.StepModeSelection:
		return s.renderModeSelection(width, height)
	case wizard.StepResult:
		return s.renderResult(width, height)
	}

	fw := min(width-4, maxFormWidth)

	var panel string
	switch s.state.Step {
	case wizard.StepBasicInfo:
		panel = s.renderBasicInfo()
	case wizard.StepGoals:
		panel = s.renderGoals(fw)
	case wizard.StepModuleSelection:
		panel = s.renderModules(fw, height)
	case wizard.StepStudentTraits:
		panel = s.renderTraits(fw)
	}

	progress := components.NewProgressBar("", int(s.state.Step), wizardSteps, fw).View()
	content := strings.Join([]string{progress, "", panel, "", s.renderNav(fw)}, "\n")
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

func (s *Studio) renderModeSelection(width, height int) string {
	content := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render("請問您的身份是？"),
		"",
		s.modeMenu.View(),
	}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *Studio) renderBasicInfo() string {
	parts := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		parts = append(parts, f.View())
	}
	return strings.Join(parts, "\n\n")
}

func (s *Studio) renderGoals(fw int) string {
	goal := theme.Label.Render("學習目標") + "\n" + s.goalMenu.View()
	timing := theme.Label.Render("使用時機") + "\n" + s.timingMenu.View()
	if layout.IsCompactWidth(fw + 4) {
		return goal + "\n" + timing
	}
	col := lipgloss.NewStyle().Width(fw / 2)
	return lipgloss.JoinHorizontal(lipgloss.Top, col.Render(goal), col.Render(timing))
}

func (s *Studio) renderModules(fw, height int) string {
	var b strings.Builder

	action := components.NewButton("a", "✨ AI 智慧推薦", "思考中...")
	action.Busy = s.state.IsSuggesting
	if s.state.IsSuggesting {
		b.WriteString(s.spinner.View() + " ")
	}
	b.WriteString(action.View())
	b.WriteString("\n\n")

	if s.state.AISuggestion != "" {
		b.WriteString(theme.Suggestion.Width(fw).Render("🤖 AI 助手建議： " + s.state.AISuggestion))
		b.WriteString("\n\n")
	}

	list := components.NewChecklist(slices.Clone(s.modules.Items))
	list.Cursor = s.modules.Cursor
	if layout.IsCompactHeight(height) {
		for i := range list.Items {
			list.Items[i].Description = ""
		}
	}
	b.WriteString(list.View(s.state.IsSelected, fw))
	return b.String()
}

func (s *Studio) renderTraits(fw int) string {
	row := func(focus int, text string) string {
		if s.focus == focus {
			return theme.Selected.Render("▸ " + text)
		}
		return theme.Unselected.Render("  " + text)
	}
	radio := func(on bool, label string) string {
		if on {
			return "(●) " + label
		}
		return "( ) " + label
	}
	check := "[ ]"
	if s.state.Differentiation {
		check = "[✓]"
	}

	english := s.state.VisualLanguage == wizard.LanguageEnglish
	lang := strings.Join([]string{
		theme.Label.Render("🔤 生成圖片的語言設定 (Visual Language)"),
		row(focusLanguage, radio(!english, "繁體中文 (Traditional Chinese)")+"   "+radio(english, "英語 (English)")),
		theme.Hint.Render("* 若選擇英語，生成的圖卡或圖表中的文字將會是英文。"),
	}, "\n")

	return strings.Join([]string{
		theme.Hint.Render("已選模組：" + moduleSummary(s.state.SelectedModules())),
		"",
		s.interests.View(),
		"",
		row(focusDifferentiation, check+" 包含差異化教學策略"),
		"",
		lipgloss.NewStyle().Width(fw).Render(lang),
	}, "\n")
}

func (s *Studio) renderNav(fw int) string {
	back := theme.ButtonInactive.Render("[Esc] 上一步")

	var forward string
	if s.state.Step == wizard.StepStudentTraits {
		btn := components.NewButton("Ctrl+G", "建立視覺化計畫", "正在生成...")
		btn.Busy = s.state.IsGenerating
		btn.Focused = s.focus == focusGenerate
		forward = btn.View()
		if s.state.IsGenerating {
			forward = s.spinner.View() + " " + forward
		}
	} else {
		btn := components.NewButton("Ctrl+N", "下一步", "")
		btn.Disabled = !s.state.CanAdvance()
		btn.Focused = true
		forward = btn.View()
	}

	gap := fw - lipgloss.Width(back) - lipgloss.Width(forward)
	return back + strings.Repeat(" ", max(gap, 1)) + forward
}

func (s *Studio) renderResult(width, height int) string {
	actions := s.renderActions()

	var notice string
	if s.notice != "" {
		style := theme.Done
		if s.noticeErr {
			style = theme.Failed
		}
		notice = style.Render(s.notice)
	}

	var gallery string
	if len(s.state.Images) > 0 {
		gallery = s.renderGallery(width - 4)
	}

	used := lipgloss.Height(actions) + 2
	if gallery != "" {
		used += lipgloss.Height(gallery) + 1
	}
	if notice != "" {
		used += lipgloss.Height(notice)
	}

	var body string
	if s.state.IsGenerating {
		body = lipgloss.Place(width-4, max(height-used, 3), lipgloss.Center, lipgloss.Center,
			s.spinner.View()+" "+theme.Hint.Render("正在生成..."))
	} else {
		s.layoutPlan(width-4, max(height-used, 3))
		body = s.plan.View()
	}

	parts := []string{actions, body}
	if gallery != "" {
		parts = append(parts, gallery)
	}
	if notice != "" {
		parts = append(parts, notice)
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(parts, "\n"))
}

func (s *Studio) renderActions() string {
	pdf := components.NewButton("p", "下載教學計畫 (PDF)", "製作中...")
	pdf.Busy = s.pdfBusy
	pdf.Disabled = s.state.IsGenerating

	restart := components.NewButton("r", "重新開始", "")

	regen := components.NewButton("g", "重新生成教學計劃", "")
	regen.Disabled = s.state.IsGenerating

	img := components.NewButton("i", "進行圖像生成", "正在繪製中...")
	img.Busy = s.state.Images.Generating()
	img.Disabled = s.state.IsGenerating || s.state.Images.Busy()

	return lipgloss.JoinHorizontal(lipgloss.Top,
		pdf.View(), " ", restart.View(), " ", regen.View(), " ", img.View())
}

// layoutPlan sizes the viewport and re-renders the plan when the text or
// width changed.
func (s *Studio) layoutPlan(width, height int) {
	s.plan.SetWidth(width)
	s.plan.SetHeight(height)

	if s.planSource == s.state.FinalResult && s.planWidth == width {
		return
	}
	s.planSource = s.state.FinalResult
	s.planWidth = width

	if s.state.PlanErr != nil || !strings.Contains(s.state.FinalResult, "<") {
		s.plan.SetContent(theme.Failed.Width(width).Render(s.state.FinalResult))
		return
	}
	doc := document.Parse(document.Sanitize(s.state.FinalResult))
	s.plan.SetContent(doc.Render(width - 2))
}

func (s *Studio) renderGallery(width int) string {
	g := s.state.Images
	counts := g.Counts()
	done := counts[images.StatusCompleted] + counts[images.StatusError]

	var b strings.Builder
	title := theme.Label.Render("🖼️ 視覺化教材生成結果")
	bar := components.NewProgressBar("", done, len(g), min(30, width/3)).View()
	b.WriteString(title + "  " + bar)

	first := 0
	if s.gallerySel >= galleryMaxRows {
		first = s.gallerySel - galleryMaxRows + 1
	}
	last := min(len(g), first+galleryMaxRows)

	for i := first; i < last; i++ {
		b.WriteString("\n")
		b.WriteString(s.renderImageRow(i, g[i], width))
	}
	return b.String()
}

func (s *Studio) renderImageRow(i int, img images.GeneratedImage, width int) string {
	var status string
	switch img.Status {
	case images.StatusPending:
		status = theme.Hint.Render("等待中...")
	case images.StatusGenerating:
		status = s.spinner.View() + theme.Busy.Render("生成中...")
	case images.StatusCompleted:
		status = theme.Done.Render("✓ 已完成")
	case images.StatusError:
		status = theme.Failed.Render("⚠️ 生成失敗")
	}

	label := fmt.Sprintf("圖卡 %d  [%s]", i+1, img.AspectRatio)
	cursor := "  "
	style := theme.Unselected
	if s.focus == focusGallery && i == s.gallerySel {
		cursor = "▸ "
		style = theme.Selected
	}

	head := style.Render(cursor+label) + "  " + status
	room := width - lipgloss.Width(head) - 2
	if room > 8 {
		head += "  " + theme.Hint.Render(truncate(img.Prompt, room))
	}

	if s.focus == focusGallery && i == s.gallerySel {
		head += "\n    " + theme.Hint.Render(rowActions(img))
	}
	return head
}

func rowActions(img images.GeneratedImage) string {
	switch img.Status {
	case images.StatusCompleted:
		return "[Enter] 放大檢視  [x] 重做  [d] 下載"
	case images.StatusError:
		return "[x] 重試"
	case images.StatusPending:
		return "[x] 重做"
	}
	return ""
}

func truncate(s string, n int) string {
	r := []rune(strings.Join(strings.Fields(s), " "))
	if lipgloss.Width(string(r)) <= n {
		return string(r)
	}
	for len(r) > 0 && lipgloss.Width(string(r))+1 > n {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// moduleSummary lists the selected modules for the traits recap.
func moduleSummary(ids []string) string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if m, ok := catalog.LookupModule(id); ok {
			labels = append(labels, m.Label())
		}
	}
	return strings.Join(labels, "、")
}
