package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eduvision/internal/store"
	"github.com/abhisek/eduvision/internal/wizard"
)

func validOptions() generateOptions {
	return generateOptions{
		Mode:    "teacher",
		Subject: "生物",
		Topic:   "光合作用",
		Goal:    "Understand",
		Modules: []string{"e", "A", "a"},
	}
}

func TestBuildState(t *testing.T) {
	s, err := buildState(validOptions())
	require.NoError(t, err)

	assert.Equal(t, wizard.StepStudentTraits, s.Step)
	assert.Equal(t, wizard.ModeTeacher, s.Mode)
	assert.Equal(t, "理解 (Understand)", s.LearningGoal)
	assert.Equal(t, []string{"A", "E"}, s.SelectedModules())
	assert.Equal(t, wizard.LanguageChinese, s.VisualLanguage)
}

func TestBuildState_EnglishSubjectFlipsLanguage(t *testing.T) {
	o := validOptions()
	o.Subject = "English"
	s, err := buildState(o)
	require.NoError(t, err)
	assert.Equal(t, wizard.LanguageEnglish, s.VisualLanguage)

	o.Language = "zh"
	s, err = buildState(o)
	require.NoError(t, err)
	assert.Equal(t, wizard.LanguageChinese, s.VisualLanguage, "explicit flag wins")
}

func TestBuildState_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*generateOptions)
		want   string
	}{
		{"bad mode", func(o *generateOptions) { o.Mode = "parent" }, "--mode"},
		{"no topic", func(o *generateOptions) { o.Topic = " " }, "--topic"},
		{"bad goal", func(o *generateOptions) { o.Goal = "memorize" }, "--goal"},
		{"bad timing", func(o *generateOptions) { o.Timing = "lunch" }, "--timing"},
		{"unknown module", func(o *generateOptions) { o.Modules = []string{"Z"} }, "unknown module"},
		{"no modules", func(o *generateOptions) { o.Modules = nil }, "--modules"},
		{"bad language", func(o *generateOptions) { o.Language = "fr" }, "--language"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOptions()
			tt.modify(&o)
			_, err := buildState(o)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHistoryFileName(t *testing.T) {
	rec := store.PlanEventRecord{ID: 7}
	rec.Subject = "English"
	rec.Topic = "Farm Animals"
	assert.Equal(t, "eduvision-7-english-farm-animals.html", historyFileName(rec, ".html"))

	assert.Equal(t, "eduvision-8.pdf", historyFileName(store.PlanEventRecord{ID: 8}, ".pdf"))
}

func TestPromptsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.html")
	plan := `<p>x</p><script id="prompts" type="application/json">[{"prompt":"a leaf","aspect_ratio":"1:1"},{"prompt":"a cell"}]</script>`
	require.NoError(t, os.WriteFile(path, []byte(plan), 0o644))

	var out bytes.Buffer
	promptsCmd.SetOut(&out)
	t.Cleanup(func() { promptsCmd.SetOut(nil) })

	require.NoError(t, promptsCmd.RunE(promptsCmd, []string{path}))
	assert.Contains(t, out.String(), "[1:1 ]  a leaf")
	assert.Contains(t, out.String(), "[4:3 ]  a cell")
}
