package studio

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduvision/internal/wizard"
)

func (s *Studio) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	step := s.state.Step
	if step == wizard.StepModeSelection {
		return s.modeKey(msg)
	}
	if step == wizard.StepResult {
		return s.resultKey(msg)
	}

	switch msg.String() {
	case "esc":
		return s.back()
	case "ctrl+n":
		return s.advance()
	}

	switch step {
	case wizard.StepBasicInfo:
		return s.basicInfoKey(msg)
	case wizard.StepGoals:
		return s.goalsKey(msg)
	case wizard.StepModuleSelection:
		return s.modulesKey(msg)
	case wizard.StepStudentTraits:
		return s.traitsKey(msg)
	}
	return nil
}

// advance moves forward when the step guard holds.
func (s *Studio) advance() tea.Cmd {
	prev := s.state.Step
	s.state = s.state.Next()
	if s.state.Step == prev {
		return nil
	}
	return s.enterStep()
}

func (s *Studio) back() tea.Cmd {
	prev := s.state.Step
	s.state = s.state.Prev()
	if s.state.Step == prev {
		return nil
	}
	return s.enterStep()
}

// enterStep resets focus for the step just entered.
func (s *Studio) enterStep() tea.Cmd {
	s.focus = 0
	return s.syncFocus()
}

// syncFocus focuses the control under s.focus and blurs the others.
func (s *Studio) syncFocus() tea.Cmd {
	for i := range s.fields {
		s.fields[i].Blur()
	}
	s.interests.Blur()
	s.goalMenu.Focused = false
	s.timingMenu.Focused = false

	switch s.state.Step {
	case wizard.StepBasicInfo:
		return s.fields[s.focus].Focus()
	case wizard.StepGoals:
		if s.focus == focusGoal {
			s.goalMenu.Focused = true
		} else {
			s.timingMenu.Focused = true
		}
	case wizard.StepStudentTraits:
		if s.focus == focusInterests {
			return s.interests.Focus()
		}
	}
	return nil
}

func (s *Studio) modeKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "space":
		s.state = s.state.SelectMode(modes[s.modeMenu.Selected])
		return s.enterStep()
	}
	s.modeMenu, _ = s.modeMenu.Update(msg)
	return nil
}

func (s *Studio) basicInfoKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		s.focus = (s.focus + 1) % len(s.fields)
		return s.syncFocus()
	case "shift+tab", "up":
		s.focus = (s.focus + len(s.fields) - 1) % len(s.fields)
		return s.syncFocus()
	case "enter":
		if s.focus < focusTopic {
			s.focus++
			return s.syncFocus()
		}
		return s.advance()
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	s.state = s.state.
		SetAge(s.fields[focusAge].Value()).
		SetSubject(s.fields[focusSubject].Value()).
		SetTopic(s.fields[focusTopic].Value())
	return cmd
}

func (s *Studio) goalsKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "shift+tab":
		s.focus = 1 - s.focus
		return s.syncFocus()
	case "enter", "space":
		if s.focus == focusGoal {
			goal := s.goalMenu.Items[s.goalMenu.Selected].Label
			s.state = s.state.SetLearningGoal(goal)
			s.goalMenu.Choose(goal)
			s.focus = focusTiming
			return s.syncFocus()
		}
		timing := s.timingMenu.Items[s.timingMenu.Selected].Label
		s.state = s.state.SetTiming(timing)
		s.timingMenu.Choose(timing)
		return s.advance()
	}

	if s.focus == focusGoal {
		s.goalMenu, _ = s.goalMenu.Update(msg)
	} else {
		s.timingMenu, _ = s.timingMenu.Update(msg)
	}
	return nil
}

func (s *Studio) modulesKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "space", "x":
		s.state = s.state.ToggleModule(s.modules.Current())
		return nil
	case "a":
		return s.suggest()
	case "enter":
		return s.advance()
	}
	s.modules, _ = s.modules.Update(msg)
	return nil
}

func (s *Studio) traitsKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "ctrl+g":
		return s.generate()
	case "tab", "down":
		s.focus = (s.focus + 1) % traitsFocusCount
		return s.syncFocus()
	case "shift+tab", "up":
		s.focus = (s.focus + traitsFocusCount - 1) % traitsFocusCount
		return s.syncFocus()
	}

	switch s.focus {
	case focusInterests:
		if key == "enter" {
			s.focus++
			return s.syncFocus()
		}
		var cmd tea.Cmd
		s.interests, cmd = s.interests.Update(msg)
		s.state = s.state.SetInterests(s.interests.Value())
		return cmd

	case focusDifferentiation:
		if key == "space" || key == "enter" {
			s.state = s.state.SetDifferentiation(!s.state.Differentiation)
		}

	case focusLanguage:
		switch key {
		case "space", "enter", "left", "right":
			next := wizard.LanguageEnglish
			if s.state.VisualLanguage == wizard.LanguageEnglish {
				next = wizard.LanguageChinese
			}
			s.state = s.state.SetVisualLanguage(next)
		}

	case focusGenerate:
		if key == "enter" || key == "space" {
			return s.generate()
		}
	}
	return nil
}
